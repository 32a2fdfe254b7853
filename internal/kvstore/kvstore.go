// Package kvstore contains simple key-value stores. The vancli
// command keeps its configuration and sync state in the file-system
// store; the in-memory store serves tests.
package kvstore

import "errors"

// ErrNoSuchKey indicates that there's no value for the given key.
var ErrNoSuchKey = errors.New("no such key")

// Store is a simple key-value store.
type Store interface {
	// Get returns the specified key's value. In case of error, the
	// error type is such that errors.Is(err, ErrNoSuchKey).
	Get(key string) ([]byte, error)

	// Set sets the value of a specific key.
	Set(key string, value []byte) error
}
