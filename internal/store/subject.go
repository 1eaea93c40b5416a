package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// subject holds the current value of one key and fans it out to subscribers.
// Each subscriber channel has a single slot; a newer value replaces an
// unread older one, so readers always converge on the latest snapshot and
// a slow reader never blocks a writer.
type subject[T any] struct {
	mu          sync.Mutex
	key         string
	load        func(context.Context) T
	loaded      bool
	value       T
	subscribers map[string]chan T
	closed      bool
	done        chan struct{}
	logger      *slog.Logger
}

func newSubject[T any](key string, load func(context.Context) T, logger *slog.Logger) *subject[T] {
	return &subject[T]{
		key:         key,
		load:        load,
		subscribers: make(map[string]chan T),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// ensureLoaded reads the value from storage on first use. The load is
// detached from ctx cancellation so one aborted caller cannot pin an empty
// value for everyone. Caller must hold s.mu.
func (s *subject[T]) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.value = s.load(context.WithoutCancel(ctx))
	s.loaded = true
}

func (s *subject[T]) current(ctx context.Context) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.value
}

// subscribe returns a channel that yields the current value immediately and
// every later published value. It is closed when ctx ends or the subject closes.
func (s *subject[T]) subscribe(ctx context.Context) <-chan T {
	subID := uuid.New().String()
	ch := make(chan T, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	s.ensureLoaded(ctx)
	ch <- s.value
	s.subscribers[subID] = ch
	s.mu.Unlock()

	s.logger.Debug("subscriber added", "key", s.key, "sub_id", subID)

	go func() {
		select {
		case <-ctx.Done():
			s.unsubscribe(subID)
		case <-s.done:
		}
	}()

	return ch
}

// publish records v as the current value and offers it to every subscriber.
func (s *subject[T]) publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.value = v
	s.loaded = true
	for _, ch := range s.subscribers {
		offer(ch, v)
	}
}

// offer puts v into a one-slot channel, discarding any unread value.
// Only publish sends on subscriber channels, under s.mu, so the final
// send cannot block.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}

func (s *subject[T]) unsubscribe(subID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.subscribers[subID]
	if !ok {
		return
	}
	delete(s.subscribers, subID)
	close(ch)

	s.logger.Debug("subscriber removed", "key", s.key, "sub_id", subID)
}

func (s *subject[T]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	for subID, ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, subID)
	}
}
