package store

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject_LoadsOnce(t *testing.T) {
	loads := 0
	s := newSubject("k", func(context.Context) int {
		loads++
		return 7
	}, slog.Default())
	defer s.close()

	assert.Equal(t, 7, s.current(t.Context()))
	assert.Equal(t, 7, receive(t, s.subscribe(t.Context())))
	assert.Equal(t, 1, loads)

	s.publish(9)
	assert.Equal(t, 9, s.current(t.Context()))
	assert.Equal(t, 1, loads)
}

func TestSubject_PublishBeforeLoadSkipsLoad(t *testing.T) {
	s := newSubject("k", func(context.Context) int {
		t.Fatal("load should not run")
		return 0
	}, slog.Default())
	defer s.close()

	s.publish(3)
	assert.Equal(t, 3, receive(t, s.subscribe(t.Context())))
}

func TestSubject_LoadIgnoresCancelledCaller(t *testing.T) {
	s := newSubject("k", func(ctx context.Context) int {
		if ctx.Err() != nil {
			return -1
		}
		return 1
	}, slog.Default())
	defer s.close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	assert.Equal(t, 1, s.current(ctx))
}

func TestOffer_ReplacesUnreadValue(t *testing.T) {
	ch := make(chan int, 1)
	offer(ch, 1)
	offer(ch, 2)
	assert.Equal(t, 2, <-ch)
	assert.Empty(t, ch)
}
