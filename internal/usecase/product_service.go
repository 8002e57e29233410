package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foodlens/backend/internal/domain"
)

// Search limit bounds applied to the client-supplied limit parameter.
const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// LookupResult pairs a matched product with the barcode the client sent and
// the candidate key that actually hit in the store.
type LookupResult struct {
	Searched string
	Found    string
	Product  *domain.Product
}

// ProductService answers barcode lookups, free-text searches, and statistics
// questions against an injected product repository.
type ProductService struct {
	repo domain.ProductRepository
}

// NewProductService creates a new product service with dependencies
func NewProductService(repo domain.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Lookup resolves raw into candidate keys and tries each against the store in
// order, short-circuiting on the first hit. At most three round trips. When
// every candidate misses, the returned error names both the raw and the
// normalized code so the client can see exactly what was tried.
func (s *ProductService) Lookup(ctx context.Context, raw string) (*LookupResult, error) {
	candidates, err := ResolveBarcode(raw)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		product, err := s.repo.FindByCode(ctx, candidate)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		return &LookupResult{
			Searched: raw,
			Found:    candidate,
			Product:  product,
		}, nil
	}

	return nil, fmt.Errorf("%w: no record for barcode %q (normalized: %q)",
		domain.ErrProductNotFound, raw, NormalizeBarcode(raw))
}

// Search delegates a substring match on product names to the store.
// The limit defaults to 10 and is capped at 100.
func (s *ProductService) Search(ctx context.Context, query string, limit int64) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query parameter 'q' is required", domain.ErrMissingQuery)
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	return s.repo.SearchByName(ctx, query, limit)
}

// Stats delegates aggregation to the store.
func (s *ProductService) Stats(ctx context.Context) (*domain.Statistics, error) {
	return s.repo.Stats(ctx)
}

// Ping reports store connectivity for health checks.
func (s *ProductService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
