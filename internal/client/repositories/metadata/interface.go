// Package metadata is a small key/value repository over the local SQLite
// "metadata" table. The session layer keeps the credential pair in it.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
