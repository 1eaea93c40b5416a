// Package actions implements the user-facing operations shared by the TUI
// and the CLI modes: copy, toggle favorite and clear recent. Each computes
// the next snapshot with the model from the store's current value and
// persists it through the store.
package actions

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"specialchars/internal/clipboard"
	"specialchars/internal/model"
	"specialchars/internal/store"
)

// Service wires the store to the clipboard.
type Service struct {
	mu        sync.Mutex // one read-modify-write at a time
	store     *store.Store
	clipboard clipboard.Writer
	logger    *slog.Logger
}

// New creates a Service. Pass nil logger for default.
func New(st *store.Store, clip clipboard.Writer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     st,
		clipboard: clip,
		logger:    logger.With("component", "actions"),
	}
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Copy puts c on the clipboard, then records it as the most recently used
// character and saves the list. If the clipboard write fails nothing is
// recorded and the current list is returned. If only the save fails, the
// updated list is returned together with the *store.StorageWriteError so
// the caller can keep showing it.
func (s *Service) Copy(ctx context.Context, c model.Character) (model.RecentList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.Recent(ctx)
	if err := s.clipboard.WriteAll(string(c)); err != nil {
		s.logger.Error("clipboard write failed", "char", string(c), "error", err)
		return current, fmt.Errorf("copying %s: %w", c, err)
	}

	updated := model.RecordUsage(c, current)
	if err := s.store.SaveRecent(ctx, updated); err != nil {
		s.logger.Error("saving recent failed", "char", string(c), "error", err)
		return updated, err
	}

	s.logger.Info("character copied", "char", string(c), "recent", updated.Len())
	return updated, nil
}

// ToggleFavorite flips c's membership in the favorite set and saves the result.
func (s *Service) ToggleFavorite(ctx context.Context, c model.Character) (model.FavoriteSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := model.ToggleFavorite(c, s.store.Favorites(ctx))
	if err := s.store.SaveFavorites(ctx, updated); err != nil {
		s.logger.Error("saving favorites failed", "char", string(c), "error", err)
		return updated, err
	}

	s.logger.Info("favorite toggled", "char", string(c), "favorite", updated.Contains(c))
	return updated, nil
}

// ClearRecent removes the recent list.
func (s *Service) ClearRecent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearRecent(ctx); err != nil {
		s.logger.Error("clearing recent failed", "error", err)
		return err
	}
	s.logger.Info("recent cleared")
	return nil
}

// CopiedMessage is the confirmation shown after a successful copy.
func CopiedMessage(c model.Character) string {
	return fmt.Sprintf("%s copied to clipboard", c)
}
