// Package storage provides the durable key-value substrates the entity
// collections are mirrored into: a local bbolt file, an embedded SQLite
// database, or a plain map for tests.
package storage

import "context"

// KV is the durable store seen by the persistence layer: one opaque JSON
// value per collection key.
type KV interface {
	// Get returns the stored value for key, with found=false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	Close() error
}
