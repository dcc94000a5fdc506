package ports

import "context"

// KeyValueStore is a flat string-keyed blob store. Get reports found=false for
// missing keys rather than an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
