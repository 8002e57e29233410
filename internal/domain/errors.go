package domain

import "errors"

var (
	// ErrProductNotFound is returned when no candidate barcode matches a record
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidBarcode is returned when the supplied barcode fails validation
	ErrInvalidBarcode = errors.New("invalid barcode")

	// ErrMissingQuery is returned when a search request has no query parameter
	ErrMissingQuery = errors.New("missing search query")

	// ErrStoreUnavailable is returned when the product store cannot be reached
	// or a query against it fails
	ErrStoreUnavailable = errors.New("product store unavailable")
)
