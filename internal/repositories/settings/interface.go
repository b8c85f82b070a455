// Package settings persists small key/value preferences, e.g. the toggles on
// the settings screen.
package settings

import (
	"context"
)

// Repository is a string key/value store with upsert semantics.
type Repository interface {
	// Get returns the stored value, or ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores the value, replacing any previous one.
	Set(ctx context.Context, key, value string) error

	// List returns every stored key/value pair.
	List(ctx context.Context) (map[string]string, error)

	// Delete removes a key; absent keys are ignored.
	Delete(ctx context.Context, key string) error
}
