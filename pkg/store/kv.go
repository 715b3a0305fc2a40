// Package store holds the console's durable client-side state: the admin
// identity, the bearer token, and the theme selection. Values are plain
// strings under fixed keys, no schema versioning.
package store

import "context"

const (
	KeyAdminData  = "admin-data"
	KeyAdminToken = "admin-token"
	KeyTheme      = "theme"
	KeyPalette    = "palette"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "key not found" }

type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
