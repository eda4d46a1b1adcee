// Package assets handles shader and texture loading and caching.
//
// Files resolve against the embedded data set first mounted at the root,
// then against directories mounted over it. Later mounts win.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
)

//go:embed data/shaders data/textures
var embedded embed.FS

// ErrNotFound is returned when no mounted source holds a path.
var ErrNotFound = errors.New("asset not found")

// Well-known asset paths.
const (
	ShaderDir      = "shaders"
	DefaultTexture = "textures/stripes.png"
)

type mount struct {
	prefix string
	fsys   fs.FS
}

// Manager resolves asset paths across mounted sources.
type Manager struct {
	mounts []mount
	cache  *Cache
	mu     sync.RWMutex
}

// NewManager creates a manager serving the embedded assets.
func NewManager() *Manager {
	data, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return &Manager{
		mounts: []mount{{fsys: data}},
		cache:  NewCache(),
	}
}

// Mount overlays dir at prefix, so Mount("shaders", "./my") makes
// ./my/plane.vert answer for shaders/plane.vert.
func (m *Manager) Mount(prefix, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("mounting %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("mounting %s: not a directory", dir)
	}

	m.mu.Lock()
	m.mounts = append(m.mounts, mount{prefix: strings.Trim(prefix, "/"), fsys: os.DirFS(dir)})
	m.mu.Unlock()

	m.cache.Clear()
	return nil
}

// Load reads an asset.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.mounts) - 1; i >= 0; i-- {
		rel, ok := m.mounts[i].resolve(name)
		if !ok {
			continue
		}
		data, err := fs.ReadFile(m.mounts[i].fsys, rel)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Source loads and concatenates text assets in order.
func (m *Manager) Source(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		data, err := m.Load(name)
		if err != nil {
			return "", err
		}
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// Invalidate drops cached data so the next Load rereads the sources.
func (m *Manager) Invalidate() {
	m.cache.Clear()
}

// Close drops every mount except the embedded set.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mounts = m.mounts[:1]
	m.cache.Clear()
}

func (mt mount) resolve(name string) (string, bool) {
	if mt.prefix == "" {
		return name, true
	}
	rel, ok := strings.CutPrefix(name, mt.prefix+"/")
	return rel, ok
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
