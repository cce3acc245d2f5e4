// Package metadata is the durable key/value store backing client-side state
// that must survive restarts (the persisted session, mostly).
package metadata

import (
	"context"
)

// Repository stores opaque byte values under string keys.
//
// Get returns common.ErrNotFound for an absent key. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
