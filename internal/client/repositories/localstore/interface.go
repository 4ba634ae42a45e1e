// Package localstore is the client's persistent key/value storage, the
// equivalent of a browser's local storage. It also provides SessionStore,
// the typed session record (bearer token + cached user summary) on top
// of the raw key/value repository.
package localstore

import "context"

// Repository is a flat key/value store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
