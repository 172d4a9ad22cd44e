// Package prefs persists small per-client view preferences such as the
// colour theme.
package prefs

import "context"

// ThemeKey is the key the theme preference is stored under.
const ThemeKey = "theme"

// Store is a durable string key-value store scoped to one client.
type Store interface {
	// Get returns the value for key and whether it was set.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
