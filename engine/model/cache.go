package model

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

type cache struct {
	mu     *sync.Mutex
	detail Detail
	models map[element.Geometry]Model
}

// Cache memoizes generated models by geometry. Scenes rebuild their elements
// on every mount, but the set of distinct geometries is small and fixed.
type Cache interface {
	// Get returns the model for g, generating it on first use.
	//
	// Parameters:
	//   - g: the geometry
	//
	// Returns:
	//   - Model: the shared model
	Get(g element.Geometry) Model

	// Len returns the number of cached models.
	Len() int

	// Each calls fn for every cached model.
	Each(fn func(Model))
}

var _ Cache = &cache{}

// NewCache creates an empty cache that tessellates at the given detail.
//
// Parameters:
//   - detail: the tessellation density
//
// Returns:
//   - Cache: the new cache
func NewCache(detail Detail) Cache {
	return &cache{
		mu:     &sync.Mutex{},
		detail: detail,
		models: make(map[element.Geometry]Model),
	}
}

func (c *cache) Get(g element.Geometry) Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.models[g]; ok {
		return m
	}
	m := Generate(g, c.detail)
	c.models[g] = m
	return m
}

func (c *cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.models)
}

func (c *cache) Each(fn func(Model)) {
	c.mu.Lock()
	models := make([]Model, 0, len(c.models))
	for _, m := range c.models {
		models = append(models, m)
	}
	c.mu.Unlock()
	for _, m := range models {
		fn(m)
	}
}
