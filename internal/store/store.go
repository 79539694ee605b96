package store

import "context"

// Item is a schemaless record: attribute name to JSON-compatible value.
type Item map[string]any

// Store writes single items to named tables. A put overwrites any existing
// item with the same key.
type Store interface {
	Put(ctx context.Context, table string, item Item) error
}
