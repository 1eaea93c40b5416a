package store

import (
	"context"
	"fmt"
	"path/filepath"
)

// Keys under which the two collections are persisted.
const (
	KeyRecent    = "recent_chars"
	KeyFavorites = "favorite_chars"
)

// Backend kinds accepted by OpenBackend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// prefsName is the base name of the on-disk preference store.
const prefsName = "special_characters_prefs"

// Backend is the durable string key-value medium behind the Store.
// Get reports ok=false for an absent key; that is not an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// OpenBackend opens the backend of the given kind inside dataDir.
func OpenBackend(kind, dataDir string) (Backend, error) {
	switch kind {
	case BackendFile:
		return NewFileBackend(filepath.Join(dataDir, prefsName+".json")), nil
	case BackendSQLite:
		return NewSQLiteBackend(filepath.Join(dataDir, prefsName+".db"))
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", kind)
	}
}
