package domain

import "context"

// ProductRepository defines the interface for reading the external product store.
// The store is pre-populated and opaque; this service only reads from it.
type ProductRepository interface {
	// FindByCode performs an exact-match lookup on the store's primary code field.
	// Returns ErrProductNotFound when no record matches.
	FindByCode(ctx context.Context, code string) (*Product, error)

	// SearchByName performs a case-insensitive substring match on product names,
	// returning at most limit results.
	SearchByName(ctx context.Context, query string, limit int64) ([]SearchResult, error)

	// Stats aggregates collection-wide statistics.
	Stats(ctx context.Context) (*Statistics, error)

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error
}
