package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"
)

// cachePrefix namespaces liftlog's versioned caches.
const cachePrefix = "liftlog-"

// ErrNotCached is returned by Fetch for assets outside the active cache.
var ErrNotCached = errors.New("assets: not in active cache")

// Cache is a versioned asset cache. Caches from previous versions stay
// untouched until Activate purges them, so an interrupted install never
// corrupts the version still being served.
type Cache struct {
	version  string
	source   fs.FS
	manifest *Manifest

	mu     sync.RWMutex
	caches map[string]map[string][]byte // cache name -> asset path -> content
}

// NewCache creates a cache for the given version tag over the source
// filesystem.
func NewCache(version string, source fs.FS, manifest *Manifest) *Cache {
	return &Cache{
		version:  version,
		source:   source,
		manifest: manifest,
		caches:   make(map[string]map[string][]byte),
	}
}

// Name returns the versioned cache name, e.g. "liftlog-v3".
func (c *Cache) Name() string { return cachePrefix + c.version }

// Install reads every manifest asset from the source filesystem into the
// versioned cache. A missing asset fails the whole install and discards
// the partial cache.
func (c *Cache) Install(ctx context.Context) error {
	staged := make(map[string][]byte, c.manifest.Len())

	for _, name := range c.manifest.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		assetPath := c.manifest.Resolve(name)
		data, err := fs.ReadFile(c.source, assetPath)
		if err != nil {
			return fmt.Errorf("install %s (%s): %w", name, assetPath, err)
		}
		staged[assetPath] = data
	}

	c.mu.Lock()
	c.caches[c.Name()] = staged
	c.mu.Unlock()
	return nil
}

// Activate purges every versioned cache except the current one.
func (c *Cache) Activate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name := range c.caches {
		if name != c.Name() {
			delete(c.caches, name)
		}
	}
	return nil
}

// Fetch serves an asset from the active cache. The name may be the
// logical manifest name or the resolved path. Returns the content and a
// content type inferred from the extension.
func (c *Cache) Fetch(name string) ([]byte, string, error) {
	assetPath := c.manifest.Resolve(name)

	c.mu.RLock()
	active := c.caches[c.Name()]
	data, ok := active[assetPath]
	c.mu.RUnlock()

	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrNotCached, name)
	}
	return data, contentType(assetPath), nil
}

// CacheNames returns the names of all retained caches, sorted. Before
// Activate this may include stale versions.
func (c *Cache) CacheNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.caches))
	for name := range c.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// adoptStale registers a cache under another version's name. Used by
// tests to simulate leftovers from a previous release.
func (c *Cache) adoptStale(version string, contents map[string][]byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.caches[cachePrefix+version] = contents
}

func contentType(assetPath string) string {
	switch path.Ext(assetPath) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
