package port

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Storage is a synchronous key/value byte store. Implementations never fail
// from the caller's point of view: read errors surface as absent keys and
// write errors are handled inside the adapter.
type Storage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type SnapshotRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
}
