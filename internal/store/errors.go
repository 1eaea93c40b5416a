package store

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by writes issued after Close.
var ErrClosed = errors.New("store closed")

// StorageWriteError reports a failed write or delete in the backend.
// It is returned to the caller as-is; the store never retries.
type StorageWriteError struct {
	Op  string // "save" or "clear"
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// StorageReadError reports a failed read in the backend. The store logs it
// and serves an empty collection in its place.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}
