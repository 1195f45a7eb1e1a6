// Package metadata is the durable key/value store backing the client session
// (bearer token and decoded role).
package metadata

import (
	"context"
)

// Repository stores string values by key. Get returns ("", nil) for an
// absent key. Clear drops every key and ends the persisted session.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
