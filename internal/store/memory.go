package store

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process Backend. Nothing survives the process.
// FailReads and FailWrites inject errors for exercising failure paths.
type MemoryBackend struct {
	mu       sync.Mutex
	values   map[string]string
	readErr  error
	writeErr error
	setCalls int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

// FailReads makes every subsequent Get return err. Pass nil to recover.
func (b *MemoryBackend) FailReads(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readErr = err
}

// FailWrites makes every subsequent Set and Delete return err. Pass nil to recover.
func (b *MemoryBackend) FailWrites(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
}

// Raw returns the stored string for key, bypassing injected read errors.
func (b *MemoryBackend) Raw(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	return v, ok
}

// Writes returns the number of successful Set calls.
func (b *MemoryBackend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.setCalls
}

func (b *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readErr != nil {
		return "", false, b.readErr
	}
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return b.writeErr
	}
	b.values[key] = value
	b.setCalls++
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return b.writeErr
	}
	delete(b.values, key)
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
