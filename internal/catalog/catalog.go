// Package catalog provides the book dataset: an embedded sample catalog and
// loading of external catalog files (JSON or YAML), cached by fingerprint.
package catalog

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/books.json
var defaultCatalog []byte

// Format identifies a catalog file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Default returns the embedded sample catalog
func Default() (*domain.Catalog, error) {
	data, err := Decode(defaultCatalog, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return domain.NewCatalog(data.Books, data.Stats), nil
}

// Decode parses, normalises and validates raw catalog bytes
func Decode(raw []byte, format Format) (domain.CatalogData, error) {
	var data domain.CatalogData

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return domain.CatalogData{}, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil {
			return domain.CatalogData{}, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	default:
		return domain.CatalogData{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	normalize(&data)
	if err := validate(data); err != nil {
		return domain.CatalogData{}, err
	}
	return data, nil
}

// normalize fills the defaults a book gets when a field is omitted
func normalize(data *domain.CatalogData) {
	for i := range data.Books {
		b := &data.Books[i]
		if b.ID == 0 {
			b.ID = i + 1
		}
		if b.Status == "" {
			b.Status = domain.StatusWantToRead
		}
		if b.Progress != nil && b.Progress.TotalPages == 0 {
			b.Progress.TotalPages = b.Pages
		}
	}
}

func validate(data domain.CatalogData) error {
	var errs []error
	seen := make(map[int]bool, len(data.Books))

	for _, b := range data.Books {
		invalid := func(format string, args ...any) {
			errs = append(errs, fmt.Errorf("%w: book %d (%q): %s",
				domain.ErrInvalidCatalog, b.ID, b.Title, fmt.Sprintf(format, args...)))
		}

		if seen[b.ID] {
			invalid("duplicate id")
		}
		seen[b.ID] = true

		if strings.TrimSpace(b.Title) == "" {
			invalid("empty title")
		}
		if b.Rating < 0 || b.Rating > 5 {
			invalid("rating %.1f outside 0-5", b.Rating)
		}
		if b.Pages < 0 {
			invalid("negative page count")
		}
		if !b.Status.Valid() {
			invalid("unknown status %q", b.Status)
		}
		if p := b.Progress; p != nil && (p.CurrentPage < 0 || p.CurrentPage > p.TotalPages) {
			invalid("progress %d/%d out of range", p.CurrentPage, p.TotalPages)
		}
	}

	return errors.Join(errs...)
}

// Loader reads catalog files through a decoded-catalog cache
type Loader struct {
	cache  domain.CatalogCache
	logger *slog.Logger
}

// NewLoader creates a loader. cache may be nil to disable caching.
func NewLoader(cache domain.CatalogCache, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{cache: cache, logger: logger}
}

// Load returns the catalog at path, or the embedded catalog when path is empty
func (l *Loader) Load(path string) (*domain.Catalog, error) {
	if path == "" {
		l.logger.Debug("using embedded catalog")
		return Default()
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}

	key := cacheKey(path)
	fp := fingerprint(info)

	// 1. Freshness check
	if l.cache != nil && l.cache.IsValid(key, fp) {
		if data, ok := l.cache.GetCatalog(key); ok {
			l.logger.Debug("catalog cache fresh", "path", path, "books", len(data.Books))
			return domain.NewCatalog(data.Books, data.Stats), nil
		}
	}

	// 2. Decode from disk
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	data, err := Decode(raw, format)
	if err != nil {
		// A file that no longer decodes must not be served from an older entry
		if l.cache != nil {
			l.cache.Invalidate(key)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if l.cache != nil {
		if err := l.cache.SaveCatalog(key, data, fp); err != nil {
			l.logger.Error("failed to cache catalog", "error", err, "path", path)
		}
	}

	l.logger.Debug("loaded catalog", "path", path, "format", format, "books", len(data.Books))
	return domain.NewCatalog(data.Books, data.Stats), nil
}

// cacheKey derives a stable cache key from a catalog file path
func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	hash := sha256.Sum256([]byte(filepath.Clean(path)))
	return hex.EncodeToString(hash[:6])
}

// fingerprint identifies one version of a file
func fingerprint(info fs.FileInfo) string {
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size())
}
