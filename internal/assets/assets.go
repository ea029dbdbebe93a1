// Package assets locates and caches asset files on disk.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/logger"
)

// ErrNotFound is returned when an asset is missing from every search directory.
// Errors wrapping it also match fs.ErrNotExist.
var ErrNotFound = errors.New("asset not found")

// Locator resolves asset names against a fixed, ordered list of
// directories. The first directory is the primary location; the rest are
// fallbacks.
type Locator struct {
	dirs  []string
	cache *Cache
	log   *zap.Logger
}

// NewLocator creates a locator searching dirs in order.
func NewLocator(dirs ...string) *Locator {
	return &Locator{
		dirs:  append([]string(nil), dirs...),
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// DefaultDirs returns the executable's directory followed by the working directory.
func DefaultDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = append(dirs, filepath.Dir(exe))
	}
	return append(dirs, ".")
}

// Resolve returns the absolute path of the first existing candidate for name.
// Candidates that resolve to an already tried path are skipped.
func (l *Locator) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if isFile(name) {
			return name, nil
		}
		return "", notFound(name, []string{name})
	}

	candidates := l.candidates(name)
	for i, path := range candidates {
		if isFile(path) {
			return path, nil
		}
		if i == 0 && len(candidates) > 1 {
			l.log.Warn("asset not found at primary location, trying fallbacks",
				zap.String("asset", name),
				zap.String("path", path),
			)
		}
	}
	return "", notFound(name, candidates)
}

// candidates returns the distinct absolute paths name maps to, in search
// order.
func (l *Locator) candidates(name string) []string {
	var out []string
	seen := make(map[string]bool, len(l.dirs))
	for _, dir := range l.dirs {
		path, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil || seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, path)
	}
	return out
}

// Load resolves and reads an asset, returning its contents and resolved path.
func (l *Locator) Load(name string) ([]byte, string, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, "", err
	}

	if data, ok := l.cache.Get(path); ok {
		return data, path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading asset %s: %w", path, err)
	}
	l.cache.Set(path, data)
	return data, path, nil
}

// Close drops cached data.
func (l *Locator) Close() {
	l.cache.Clear()
}

// Cache returns the locator's cache.
func (l *Locator) Cache() *Cache {
	return l.cache
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func notFound(name string, tried []string) error {
	return fmt.Errorf("%w: %s (tried %s): %w", ErrNotFound, name, strings.Join(tried, ", "), fs.ErrNotExist)
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

// Clear clears the cache.
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
