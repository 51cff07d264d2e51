package corpus

import (
	"os"
	"sync"
	"time"

	"github.com/lunarlife/spacebio/internal/model"
)

// Cache memoizes corpus loads per path, keyed by file modification
// time. The corpus is static input, so re-parsing on every interaction
// is wasted work; a changed mtime or an explicit Invalidate forces a
// reload. The cache is an injected object, not ambient global state.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	loader  func(string) ([]model.Publication, error)
}

type cacheEntry struct {
	modTime time.Time
	pubs    []model.Publication
}

// NewCache builds a cache backed by the given loader.
func NewCache(l Loader) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		loader:  l.Load,
	}
}

// Load returns the cached corpus for path, reloading when the file's
// modification time has changed since the last load.
func (c *Cache) Load(path string) ([]model.Publication, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[path]; ok && entry.modTime.Equal(info.ModTime()) {
		return entry.pubs, nil
	}

	pubs, err := c.loader(path)
	if err != nil {
		return nil, err
	}
	c.entries[path] = cacheEntry{modTime: info.ModTime(), pubs: pubs}
	return pubs, nil
}

// Invalidate drops the cached entry for path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
