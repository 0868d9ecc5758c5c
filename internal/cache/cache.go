// Package cache stores polish responses so repeated analyses of the same
// deal do not re-bill the provider: an in-memory layer backed by an optional
// disk layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/crelens/dealsense/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a stable key from arbitrary content
func CacheKey(content string) string {
	hash := sha256.Sum256([]byte(content))
	return "dealsense:v1:" + hex.EncodeToString(hash[:])
}

// ForConfig builds the cache described by cfg. Disabled caching returns nil,
// which callers treat as a no-op cache.
func ForConfig(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}

	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	if cfg.Dir == "" {
		return NewMemoryCache(ttl, 10*time.Minute)
	}
	return NewLayeredCache(ttl, cfg.Dir, ttl)
}
