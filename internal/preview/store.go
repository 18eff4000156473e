// Package preview holds locally stored content documents that take precedence
// over the published content while a page is being edited.
package preview

import "context"

// Key is the fixed key the editing tool stores the preview document under.
const Key = "foodeeCmsPreview"

// Store is an origin-scoped key-value store. Get reports ok=false when the key
// is not set.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
