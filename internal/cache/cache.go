// Package cache holds decoded Index values in memory, keyed by a
// caller-supplied name, so a process can parse an index once and serve many
// queries against it without re-decoding on every request.
package cache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jameslittle/stork/internal/codec"
	"github.com/jameslittle/stork/internal/domain"
)

// ErrIndexNotInCache is returned when no index has been parsed under the
// requested name.
var ErrIndexNotInCache = errors.New("index not in cache")

// Cache is a reader-writer-guarded map from name to a decoded, immutable
// Index. Values are never mutated after insertion: once ParseAndCache
// returns, every reader holding that *domain.Index can use it without
// re-acquiring the lock.
type Cache struct {
	mu      sync.RWMutex
	indexes map[string]*domain.Index
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{indexes: make(map[string]*domain.Index)}
}

// Default is the process-wide cache instance backing the package-level
// ParseAndCache convenience function, mirroring Stork's singleton cache
// model: one process, one set of named indexes.
var Default = New()

// ParseAndCache decodes data as a Stork index and stores it under name,
// replacing whatever was previously cached there. It returns the decoded
// index for convenience.
func (c *Cache) ParseAndCache(data []byte, name string) (*domain.Index, error) {
	idx, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	c.mu.Lock()
	c.indexes[name] = idx
	c.mu.Unlock()

	return idx, nil
}

// Get retrieves the index cached under name.
func (c *Cache) Get(name string) (*domain.Index, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.indexes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrIndexNotInCache, name)
	}
	return idx, nil
}

// Evict removes a cached index.
func (c *Cache) Evict(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.indexes, name)
}

// ParseAndCache decodes data and stores it under name in the process-wide
// default cache.
func ParseAndCache(data []byte, name string) (*domain.Index, error) {
	return Default.ParseAndCache(data, name)
}

// Get retrieves the index cached under name in the process-wide default
// cache.
func Get(name string) (*domain.Index, error) {
	return Default.Get(name)
}
