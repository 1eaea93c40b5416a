package store

import (
	"context"
	"log/slog"
	"sync"

	"specialchars/internal/model"
)

// Store owns the durable copy of the recent list and the favorite set and
// republishes each after every successful write.
type Store struct {
	mu        sync.Mutex // serializes writes
	closed    bool
	backend   Backend
	logger    *slog.Logger
	recent    *subject[model.RecentList]
	favorites *subject[model.FavoriteSet]
}

// New wraps backend. Values are read lazily on first access. Pass nil
// logger for default.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		backend: backend,
		logger:  logger.With("component", "store"),
	}
	s.recent = newSubject(KeyRecent, s.loadRecent, s.logger)
	s.favorites = newSubject(KeyFavorites, s.loadFavorites, s.logger)
	return s
}

// ObserveRecent yields the current recent list immediately and again after
// every successful SaveRecent or ClearRecent. The channel is closed when ctx
// is cancelled or the store is closed.
func (s *Store) ObserveRecent(ctx context.Context) <-chan model.RecentList {
	return s.recent.subscribe(ctx)
}

// ObserveFavorites is ObserveRecent for the favorite set.
func (s *Store) ObserveFavorites(ctx context.Context) <-chan model.FavoriteSet {
	return s.favorites.subscribe(ctx)
}

// Recent returns the current recent list.
func (s *Store) Recent(ctx context.Context) model.RecentList {
	return s.recent.current(ctx)
}

// Favorites returns the current favorite set.
func (s *Store) Favorites(ctx context.Context) model.FavoriteSet {
	return s.favorites.current(ctx)
}

// SaveRecent overwrites the stored recent list. On failure the published
// value is unchanged and a *StorageWriteError is returned.
func (s *Store) SaveRecent(ctx context.Context, l model.RecentList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if err := s.backend.Set(ctx, KeyRecent, model.EncodeRecent(l)); err != nil {
		return &StorageWriteError{Op: "save", Key: KeyRecent, Err: err}
	}
	s.recent.publish(l)
	s.logger.Debug("recent saved", "count", l.Len())
	return nil
}

// SaveFavorites overwrites the stored favorite set.
func (s *Store) SaveFavorites(ctx context.Context, f model.FavoriteSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if err := s.backend.Set(ctx, KeyFavorites, model.EncodeFavorites(f)); err != nil {
		return &StorageWriteError{Op: "save", Key: KeyFavorites, Err: err}
	}
	s.favorites.publish(f)
	s.logger.Debug("favorites saved", "count", f.Len())
	return nil
}

// ClearRecent removes the recent key. Observers receive an empty list.
func (s *Store) ClearRecent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if err := s.backend.Delete(ctx, KeyRecent); err != nil {
		return &StorageWriteError{Op: "clear", Key: KeyRecent, Err: err}
	}
	s.recent.publish(model.RecentList{})
	s.logger.Debug("recent cleared")
	return nil
}

// Close ends all subscriptions and closes the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.recent.close()
	s.favorites.close()
	return s.backend.Close()
}

func (s *Store) loadRecent(ctx context.Context) model.RecentList {
	raw, ok := s.read(ctx, KeyRecent)
	if !ok {
		return model.RecentList{}
	}
	return model.DecodeRecent(raw)
}

func (s *Store) loadFavorites(ctx context.Context) model.FavoriteSet {
	raw, ok := s.read(ctx, KeyFavorites)
	if !ok {
		return model.FavoriteSet{}
	}
	return model.DecodeFavorites(raw)
}

// read fetches key from the backend. Absent keys and read failures both
// report ok=false; failures are logged and otherwise swallowed.
func (s *Store) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Warn("treating unreadable value as empty", "key", key, "error", &StorageReadError{Key: key, Err: err})
		return "", false
	}
	return raw, ok
}
