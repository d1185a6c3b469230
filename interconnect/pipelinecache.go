// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"sync"
	"sync/atomic"
)

// PipelineCache deduplicates compiled host pipelines by packed state.
// The packed struct is the key directly; no fingerprinting is needed
// because equality is exact.
//
// Safe for concurrent use.
type PipelineCache[P any] struct {
	mu      sync.RWMutex
	entries map[PackedPipelineState]P

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPipelineCache returns an empty pipeline cache.
func NewPipelineCache[P any]() *PipelineCache[P] {
	return &PipelineCache[P]{entries: make(map[PackedPipelineState]P)}
}

// GetOrCreate returns the pipeline for key, building it with build on
// a miss. Double-checked locking keeps the fast path to one read
// lock; build runs under the write lock so a pipeline is never
// compiled twice.
func (c *PipelineCache[P]) GetOrCreate(key *PackedPipelineState, build func() (P, error)) (P, error) {
	c.mu.RLock()
	p, ok := c.entries[*key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[*key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	c.misses.Add(1)

	p, err := build()
	if err != nil {
		var zero P
		return zero, err
	}
	c.entries[*key] = p
	return p, nil
}

// Len returns the number of cached pipelines.
func (c *PipelineCache[P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CacheStats reports hit and miss counts.
func (c *PipelineCache[P]) CacheStats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
