package domain

// CatalogCache holds decoded catalog files (BoltDB + memory).
// Keys identify a catalog source; fingerprints identify a version of it.
type CatalogCache interface {
	GetCatalog(key string) (CatalogData, bool)
	SaveCatalog(key string, data CatalogData, fingerprint string) error

	// IsValid reports whether the cached entry for key was saved with fingerprint
	IsValid(key, fingerprint string) bool

	Invalidate(key string)
	InvalidateAll()

	Close() error
}
