package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrCatalogNotFound indicates the configured catalog file does not exist
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrUnsupportedFormat indicates the catalog file extension is not recognised
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrInvalidCatalog indicates the catalog decoded but failed validation
	ErrInvalidCatalog = errors.New("invalid catalog")
)
