// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewcache

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gm20b/interconnect"
)

type fakeView struct {
	destroyed bool
}

func (v *fakeView) Destroy() { v.destroyed = true }

type fakeFactory struct {
	created []*fakeView
}

func (f *fakeFactory) CreateView(interconnect.ViewDescriptor, [][]byte) (interconnect.TextureView, error) {
	v := &fakeView{}
	f.created = append(f.created, v)
	return v, nil
}

func desc(addr uint64) interconnect.ViewDescriptor {
	return interconnect.ViewDescriptor{
		Address: addr,
		Format:  gputypes.TextureFormatRGBA8Unorm,
		Extent:  gputypes.Extent3D{Width: 64, Height: 64, DepthOrArrayLayers: 1},
	}
}

func TestFindOrCreateDeduplicates(t *testing.T) {
	f := &fakeFactory{}
	c := New(f, 0)

	a, err := c.FindOrCreate(desc(0x1000), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.FindOrCreate(desc(0x1000), nil)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same descriptor produced distinct views")
	}
	if len(f.created) != 1 {
		t.Errorf("factory ran %d times, want 1", len(f.created))
	}

	if _, err := c.FindOrCreate(desc(0x2000), nil); err != nil {
		t.Fatal(err)
	}
	if len(f.created) != 2 {
		t.Errorf("distinct descriptor did not create a view")
	}
}

func TestEvictionDestroysViews(t *testing.T) {
	f := &fakeFactory{}
	c := New(f, 4)

	for i := 0; i < 12; i++ {
		if _, err := c.FindOrCreate(desc(uint64(i)*0x1000), nil); err != nil {
			t.Fatal(err)
		}
	}
	destroyed := 0
	for _, v := range f.created {
		if v.destroyed {
			destroyed++
		}
	}
	if destroyed == 0 {
		t.Error("eviction did not destroy any view")
	}
}

func TestClearDestroysAll(t *testing.T) {
	f := &fakeFactory{}
	c := New(f, 0)
	for i := 0; i < 3; i++ {
		c.FindOrCreate(desc(uint64(i)*0x100), nil)
	}
	c.Clear()
	for i, v := range f.created {
		if !v.destroyed {
			t.Errorf("view %d survived Clear", i)
		}
	}
}
