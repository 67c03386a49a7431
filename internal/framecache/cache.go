package framecache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"octahedron-viewer/internal/raster"
)

// Cache keeps rendered results for recently seen wireframe frames. A shell
// redraws far more often than the model changes, and stepping the rotation
// through a full turn revisits the same projected frames.
type Cache[V any] struct {
	lru *lru.Cache[raster.Frame, V]
}

// New creates a cache holding at most size frames.
func New[V any](size int) (*Cache[V], error) {
	c, err := lru.New[raster.Frame, V](size)
	if err != nil {
		return nil, fmt.Errorf("framecache: %w", err)
	}
	return &Cache[V]{lru: c}, nil
}

// NewWithEvict is New with a callback for values dropped from the cache,
// for results that hold resources.
func NewWithEvict[V any](size int, onEvict func(raster.Frame, V)) (*Cache[V], error) {
	c, err := lru.NewWithEvict[raster.Frame, V](size, onEvict)
	if err != nil {
		return nil, fmt.Errorf("framecache: %w", err)
	}
	return &Cache[V]{lru: c}, nil
}

func (c *Cache[V]) Get(f raster.Frame) (V, bool) {
	return c.lru.Get(f)
}

func (c *Cache[V]) Add(f raster.Frame, v V) {
	c.lru.Add(f, v)
}

func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// GetOrRender returns the cached value for f or calls render and stores
// its result. Render errors are not cached.
func (c *Cache[V]) GetOrRender(f raster.Frame, render func() (V, error)) (V, error) {
	if v, ok := c.lru.Get(f); ok {
		return v, nil
	}
	v, err := render()
	if err != nil {
		return v, err
	}
	c.lru.Add(f, v)
	return v, nil
}
