package ports

import "context"

// StateStore is a durable key-value store. Values are JSON documents; a
// missing key yields domain.ErrStateNotFound.
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
