package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCatalogs = []byte("catalogs")
)

// CatalogStore implements domain.CatalogCache using BoltDB.
type CatalogStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens the cache database under cacheDir.
// An empty cacheDir gives a memory-only store.
func NewCatalogStore(cacheDir string) (*CatalogStore, error) {
	if cacheDir == "" {
		return &CatalogStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cacheDir, "shelf.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCatalogs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CatalogStore) get(key string, dest interface{}) bool {
	cacheKey := string(bucketCatalogs) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCatalogs)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CatalogStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[string(bucketCatalogs)+":"+key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCatalogs).Put([]byte(key), data)
	})
}

func (s *CatalogStore) deletePrefix(prefix string) {
	s.mu.Lock()
	cachePrefix := string(bucketCatalogs) + ":" + prefix
	for k := range s.cache {
		if strings.HasPrefix(k, cachePrefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCatalogs)
		if b == nil {
			return nil
		}
		// Collect first: deleting while iterating skips keys
		var keys [][]byte
		c := b.Cursor()
		prefixBytes := []byte(prefix)
		for k, _ := c.Seek(prefixBytes); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// === Catalogs (keys: cat:{key}:data, cat:{key}:fp) ===

func (s *CatalogStore) GetCatalog(key string) (domain.CatalogData, bool) {
	var data domain.CatalogData
	ok := s.get("cat:"+key+":data", &data)
	return data, ok
}

func (s *CatalogStore) SaveCatalog(key string, data domain.CatalogData, fingerprint string) error {
	if err := s.set("cat:"+key+":data", data); err != nil {
		return err
	}
	// Fingerprint stored separately for freshness checks
	return s.set("cat:"+key+":fp", fingerprint)
}

// === Validation ===

func (s *CatalogStore) IsValid(key, fingerprint string) bool {
	var stored string
	if !s.get("cat:"+key+":fp", &stored) {
		return false
	}
	return stored == fingerprint
}

// === Invalidation ===

func (s *CatalogStore) Invalidate(key string) {
	s.deletePrefix("cat:" + key + ":")
}

func (s *CatalogStore) InvalidateAll() {
	s.deletePrefix("")
}
