package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a key that was never written. Callers
// treat it as "start fresh", not as a failure.
var ErrNotFound = errors.New("store: key not found")

// Store is the persistence boundary for play state and statistics. Values
// are opaque serialized snapshots; the game logic never sees the medium.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
