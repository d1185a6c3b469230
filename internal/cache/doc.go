// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a generic thread-safe cache with a soft
// limit and an eviction callback.
//
// The cache backs the surface view cache, where evicted values own
// host resources that must be released:
//
//	c := cache.New[Key, View](100, func(k Key, v View) { v.Destroy() })
//	v, err := c.GetOrCreate(key, create)
//
// Cache is safe for concurrent use and must not be copied after
// creation.
package cache
