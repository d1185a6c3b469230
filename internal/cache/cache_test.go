// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"errors"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](0, nil)
	calls := 0
	create := func() (string, error) {
		calls++
		return "v", nil
	}

	v, err := c.GetOrCreate(1, create)
	if err != nil || v != "v" {
		t.Fatalf("GetOrCreate = %q, %v", v, err)
	}
	if _, err := c.GetOrCreate(1, create); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}
}

func TestGetOrCreateError(t *testing.T) {
	c := New[int, string](0, nil)
	wantErr := errors.New("boom")
	if _, err := c.GetOrCreate(1, func() (string, error) { return "", wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if c.Len() != 0 {
		t.Error("failed create left an entry behind")
	}
}

func TestEvictionCallback(t *testing.T) {
	evicted := map[int]bool{}
	c := New[int, int](4, func(k, _ int) { evicted[k] = true })

	for i := 0; i < 8; i++ {
		c.GetOrCreate(i, func() (int, error) { return i, nil })
	}
	if len(evicted) == 0 {
		t.Fatal("no evictions past the soft limit")
	}
	if c.Len() > 4 {
		t.Errorf("Len = %d after eviction, want <= 4", c.Len())
	}
	// The most recent insert must survive.
	if evicted[7] {
		t.Error("newest entry was evicted")
	}
}

func TestEvictionPrefersOldest(t *testing.T) {
	evicted := map[int]bool{}
	c := New[int, int](4, func(k, _ int) { evicted[k] = true })

	for i := 0; i < 4; i++ {
		c.GetOrCreate(i, func() (int, error) { return i, nil })
	}
	c.Get(0) // refresh key 0
	c.GetOrCreate(4, func() (int, error) { return 4, nil })
	c.GetOrCreate(5, func() (int, error) { return 5, nil })

	if evicted[0] {
		t.Error("recently used entry evicted before stale ones")
	}
}

func TestClearRunsCallback(t *testing.T) {
	n := 0
	c := New[int, int](0, func(int, int) { n++ })
	for i := 0; i < 3; i++ {
		c.GetOrCreate(i, func() (int, error) { return i, nil })
	}
	c.Clear()
	if n != 3 {
		t.Errorf("Clear ran callback %d times, want 3", n)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after Clear", c.Len())
	}
}

func TestStats(t *testing.T) {
	c := New[int, int](0, nil)
	c.GetOrCreate(1, func() (int, error) { return 1, nil })
	c.Get(1)
	c.Get(2)

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 2 {
		t.Errorf("hits/misses = %d/%d, want 1/2", s.Hits, s.Misses)
	}
}
