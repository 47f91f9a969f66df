// Package assets provides the static asset cache: a fixed manifest of
// assets served under a version tag, with an install/activate/fetch
// lifecycle.
//
// Install populates a cache named after the current version from the
// source filesystem. Activate purges every stale versioned cache. Fetch
// serves from the active cache only, so the set of assets a running
// version can see is exactly what its install step captured:
//
//	cache := assets.NewCache("v3", sourceFS, manifest)
//	if err := cache.Install(ctx); err != nil { ... }
//	if err := cache.Activate(ctx); err != nil { ... }
//	data, ctype, err := cache.Fetch("app.css")
package assets

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"
)

// Manifest holds the fixed mapping from logical asset names to the paths
// shipped with a release. It is safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates a manifest from a name→path mapping.
func NewManifest(entries map[string]string) *Manifest {
	m := &Manifest{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

// LoadManifest reads a manifest.json file: {"app.css": "app.e5f6a7b8.css"}.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return parseManifest(data)
}

// LoadManifestFS reads a manifest.json from a filesystem.
func LoadManifestFS(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return parseManifest(data)
}

func parseManifest(data []byte) (*Manifest, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &Manifest{entries: entries}, nil
}

// Resolve returns the shipped path for a logical name. Unknown names
// resolve to themselves.
func (m *Manifest) Resolve(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[name]; ok {
		return resolved
	}
	return name
}

// Has reports whether the manifest contains the logical name.
func (m *Manifest) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[name]
	return ok
}

// Names returns the logical asset names, sorted.
func (m *Manifest) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.entries))
	for k := range m.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of manifest entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
