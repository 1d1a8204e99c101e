package driven

import "context"

// PreferenceStore persists small opaque client preferences (theme,
// sidebar state, last-used email addresses). Keys are the constants in
// the domain package; values carry no schema versioning.
type PreferenceStore interface {
	// Get returns the stored value, or "" when the key is unset
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under the key
	Set(ctx context.Context, key, value string) error

	// Delete removes the key
	Delete(ctx context.Context, key string) error
}
