// Package state persists the client's durable key/value state: the session
// blob and the mirrored bearer token. There is one logical writer per store
// file, so no locking beyond SQLite's own is needed.
package state

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key in the store.
	Clear(ctx context.Context) error
}
