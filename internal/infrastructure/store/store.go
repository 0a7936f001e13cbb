package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistence port for whole-document blobs.
// The booking repository writes the entire serialized collection under a
// single fixed key; implementations only need Get and Set on one namespace.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
