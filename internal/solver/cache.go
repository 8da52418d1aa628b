package solver

import (
	"fmt"
	"sync"

	"github.com/alexiusacademia/gobox/internal/section"
	"github.com/alexiusacademia/gobox/internal/stress"
)

// Cached memoizes another solver on the full (parameters, mesh hints, load
// cases) tuple. Cached fields are shared and must be treated as read-only.
type Cached struct {
	inner Solver

	mu      sync.Mutex
	entries map[string]*stress.StressField
	hits    int
	misses  int
}

// NewCached wraps a solver with a memo table
func NewCached(inner Solver) *Cached {
	return &Cached{
		inner:   inner,
		entries: make(map[string]*stress.StressField),
	}
}

// Solve implements Solver. Errors are returned unchanged and not cached.
func (c *Cached) Solve(cs *section.CrossSection, hints []section.MeshHint, loads []LoadCase) (*stress.StressField, error) {
	if cs == nil {
		return c.inner.Solve(cs, hints, loads)
	}
	key := cacheKey(cs, hints, loads)

	c.mu.Lock()
	if f, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return f, nil
	}
	c.mu.Unlock()

	f, err := c.inner.Solve(cs, hints, loads)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	c.entries[key] = f
	return f, nil
}

// Stats returns the number of cache hits and misses
func (c *Cached) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached fields
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(cs *section.CrossSection, hints []section.MeshHint, loads []LoadCase) string {
	p := cs.Params()
	p.Name = ""
	return fmt.Sprintf("%#v|%#v|%#v", p, hints, loads)
}
