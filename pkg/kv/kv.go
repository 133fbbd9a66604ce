// Package kv provides the key-value capability the cart engine persists
// through. Persistence is best effort: callers treat a failed Set as
// non-fatal and a failed or empty Get as an absent value.
package kv

import "context"

// Store is a synchronous get/set capability over opaque payloads.
type Store interface {
	// Get returns the payload stored at key. The second return value
	// reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the payload at key, replacing any previous value.
	Set(ctx context.Context, key string, payload []byte) error
	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
	// Close releases any pooled resources.
	Close() error
}
