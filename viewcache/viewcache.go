// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewcache deduplicates host texture views by surface
// descriptor.
//
// Guest engines redescribe the same surfaces on nearly every draw;
// the cache turns those redescriptions into lookups. Evicted views
// are destroyed.
package viewcache

import (
	"github.com/gogpu/gm20b/interconnect"
	"github.com/gogpu/gm20b/internal/cache"
)

// Factory builds host views for surfaces missing from the cache.
type Factory interface {
	CreateView(desc interconnect.ViewDescriptor, mappings [][]byte) (interconnect.TextureView, error)
}

// Cache implements interconnect.ViewCache over a Factory.
type Cache struct {
	factory Factory
	views   *cache.Cache[interconnect.ViewDescriptor, interconnect.TextureView]
}

// DefaultSoftLimit bounds retained views when no limit is given.
const DefaultSoftLimit = 256

// New returns a view cache with the given soft limit; 0 selects
// DefaultSoftLimit.
func New(factory Factory, softLimit int) *Cache {
	if softLimit == 0 {
		softLimit = DefaultSoftLimit
	}
	return &Cache{
		factory: factory,
		views: cache.New(softLimit,
			func(_ interconnect.ViewDescriptor, v interconnect.TextureView) { v.Destroy() }),
	}
}

// FindOrCreate returns the view for desc, building it on a miss.
func (c *Cache) FindOrCreate(desc interconnect.ViewDescriptor, mappings [][]byte) (interconnect.TextureView, error) {
	return c.views.GetOrCreate(desc, func() (interconnect.TextureView, error) {
		return c.factory.CreateView(desc, mappings)
	})
}

// Invalidate drops the view for desc without destroying it; the
// caller owns teardown ordering during surface invalidation.
func (c *Cache) Invalidate(desc interconnect.ViewDescriptor) bool {
	return c.views.Delete(desc)
}

// Clear destroys every cached view.
func (c *Cache) Clear() { c.views.Clear() }

// Stats reports cache occupancy and hit rate.
func (c *Cache) Stats() cache.Stats { return c.views.Stats() }
