// Package kvstore persists whole-snapshot blobs under a scope and a fixed
// key. Every write replaces the previous value; there is no diffing and no
// schema version.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the persistence surface used by the cart and subscriber
// repositories.
type Store interface {
	Get(ctx context.Context, scope, key string) ([]byte, error)
	Set(ctx context.Context, scope, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
