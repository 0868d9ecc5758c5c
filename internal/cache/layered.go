package cache

import "time"

// LayeredCache fronts a disk cache with a memory cache. Reads prefer memory,
// and a disk hit is promoted so repeated lookups within a run stay in
// process. Writes go to both layers.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache builds the two layers with independent TTLs
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory first, then disk, promoting disk hits into memory
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		c.memory.Set(key, val, 0) // Promotion uses the memory default TTL
		return val, true
	}

	return nil, false
}

// Set writes to both layers. The memory write cannot fail, so the disk
// write's error is the result.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	c.memory.Set(key, value, ttl)
	return c.disk.Set(key, value, ttl)
}

// Delete removes a key from both layers
func (c *LayeredCache) Delete(key string) error {
	c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear drops everything from both layers
func (c *LayeredCache) Clear() error {
	c.memory.Clear()
	return c.disk.Clear()
}
