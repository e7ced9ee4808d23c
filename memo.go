package csg

import (
	"fmt"
	"strings"

	"github.com/SegmentController/csg-builder-sub000/cache"
)

// PartCache memoizes solid construction. It owns one canonical instance
// per key for its lifetime; every read — including the one that built the
// canonical instance — returns a clone, so callers may freely transform
// their copy without corrupting the cache or other callers.
//
// Create one cache per authoring session and pass it explicitly to the
// code that needs memoization; there is no hidden global table.
//
// Constructors are assumed pure. Side-effecting constructors and argument
// values without a stable string rendering are unsupported.
type PartCache struct {
	store *cache.Store[string, *Solid]
}

// NewPartCache creates an empty part cache.
func NewPartCache() *PartCache {
	return &PartCache{store: cache.New[string, *Solid]()}
}

// Build returns a clone of the memoized solid for (name, args), invoking
// build on the first call for that key. The name is required because the
// build function itself carries no usable identity; args distinguish
// parameterized variants of the same part.
func (c *PartCache) Build(name string, build func() *Solid, args ...any) *Solid {
	key := cacheKey(name, args)
	canonical := c.store.GetOrCreate(key, func() *Solid {
		s := build()
		Logger().Debug("part cache miss", "key", key, "triangles", s.geom.TriangleCount())
		return s
	})
	return canonical.Clone()
}

// Len returns the number of canonical solids held.
func (c *PartCache) Len() int {
	return c.store.Len()
}

// Stats returns the underlying store's counters.
func (c *PartCache) Stats() cache.Stats {
	return c.store.Stats()
}

// cacheKey renders (name, args) into the memoization key. Arguments are
// serialized with %#v so distinct values of the same fmt rendering cannot
// collide across types.
func cacheKey(name string, args []any) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%#v", a)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}
