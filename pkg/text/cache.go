package text

import (
	"fmt"
	"sync"
)

// key identifies one cached font handle.
type key struct {
	size   int
	weight Weight
	slant  Slant
}

// Cache memoizes font handles by (size, weight, slant). It is populated
// lazily and never evicts: the key space is bounded by the distinct style
// triples a document can produce. Insertion is serialized with a mutex so
// the cache stays correct if layout is ever run from more than one
// goroutine.
type Cache struct {
	config FontConfig

	mu    sync.Mutex
	fonts map[key]*Font
}

// NewCache creates an empty cache backed by the given font configuration.
func NewCache(config FontConfig) *Cache {
	return &Cache{
		config: config,
		fonts:  make(map[key]*Font),
	}
}

// Font returns the handle for the given style triple, constructing and
// caching it on first request. Construction failure (unreadable font file,
// non-positive size) is a resource error: no substitute font is returned.
func (c *Cache) Font(size int, weight Weight, slant Slant) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", size)
	}

	k := key{size: size, weight: weight, slant: slant}

	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fonts[k]; ok {
		return f, nil
	}

	data, err := c.config.source(weight, slant)
	if err != nil {
		return nil, err
	}
	f, err := newFont(data, size, weight, slant)
	if err != nil {
		return nil, err
	}
	c.fonts[k] = f
	return f, nil
}

// Len returns the number of cached handles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fonts)
}
