package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crelens/dealsense/internal/model"
)

func TestCacheKey_StableAndPrefixed(t *testing.T) {
	k1 := CacheKey("summary text")
	k2 := CacheKey("summary text")
	if k1 != k2 {
		t.Errorf("same content produced different keys: %s vs %s", k1, k2)
	}
	if k1 == CacheKey("other text") {
		t.Error("different content produced the same key")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	key := CacheKey("riverside commons polish")
	if err := c.Set(key, []byte("a polished summary"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("expected a hit after Set")
	}
	if string(got) != "a polished summary" {
		t.Errorf("got %q", got)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("expected a miss after Delete")
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("Delete of a missing key should not error, got %v", err)
	}
}

func TestDiskCache_ExpiredEntriesMiss(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	key := CacheKey("stale entry")
	if err := c.Set(key, []byte("old"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("expected expired entry to miss")
	}
}

func TestDiskCache_FilenamesAreFilesystemSafe(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	// CacheKey output carries colons, which must not reach the filename
	if err := c.Set(CacheKey("deal"), []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.cache"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one cache file, got %v (err %v)", matches, err)
	}
	base := filepath.Base(matches[0])
	for _, r := range base {
		if r == ':' || r == '/' || r == '\\' {
			t.Errorf("cache filename %q contains separator %q", base, r)
		}
	}
}

func TestDiskCache_ClearKeepsDirectory(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	c.Set(CacheKey("a"), []byte("1"), 0)
	c.Set(CacheKey("b"), []byte("2"), 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get(CacheKey("a")); found {
		t.Error("expected a miss after Clear")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Clear removed the cache directory: %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	key := CacheKey("layered polish")
	if err := c.Set(key, []byte("cached"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Cold memory: a fresh layered cache over the same directory must hit
	// disk and promote the entry
	c2 := NewLayeredCache(time.Minute, dir, time.Minute)
	if _, found := c2.Get(key); !found {
		t.Fatal("expected a disk hit through a fresh layered cache")
	}
	if _, found := c2.memory.Get(key); !found {
		t.Error("expected the disk hit to be promoted into memory")
	}
}

func TestForConfig(t *testing.T) {
	if c := ForConfig(model.CacheConfig{Enabled: false}); c != nil {
		t.Error("disabled config should return a nil cache")
	}

	mem := ForConfig(model.CacheConfig{Enabled: true, TTLMinutes: 5})
	if _, ok := mem.(*MemoryCache); !ok {
		t.Errorf("expected a memory cache without a dir, got %T", mem)
	}

	layered := ForConfig(model.CacheConfig{Enabled: true, Dir: t.TempDir(), TTLMinutes: 5})
	if _, ok := layered.(*LayeredCache); !ok {
		t.Errorf("expected a layered cache with a dir, got %T", layered)
	}
}
