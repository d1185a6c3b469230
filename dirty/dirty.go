// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dirty provides dense dirty-state handles bound to register
// addresses.
//
// A consumer allocates one Handle per derived state blob, binds it to
// every register address the blob reads, and polls Consume before
// using the blob. The dispatcher marks handles dirty when it applies a
// non-redundant register write.
package dirty

import "fmt"

// Handle identifies one tracked state blob. Handles are dense indices
// allocated by a Manager.
type Handle uint32

// Manager tracks dirty state for a register bank of a fixed size.
//
// Not safe for concurrent use.
type Manager struct {
	// binding holds, per register address, the handles bound to it.
	// Nearly all bound addresses have exactly one handle, so the
	// first slot is inline and overflow goes to a spill list.
	binding []entry

	dirty []bool
}

type entry struct {
	handle Handle
	bound  bool
	spill  []Handle
}

// NewManager returns a Manager covering addresses [0, size).
func NewManager(size uint32) *Manager {
	return &Manager{binding: make([]entry, size)}
}

// Allocate returns a new handle. New handles start dirty so the first
// Consume always reports a recompute.
func (m *Manager) Allocate() Handle {
	h := Handle(len(m.dirty))
	m.dirty = append(m.dirty, true)
	return h
}

// Bind attaches h to every address in addrs. Binding an address twice
// to the same handle panics: a double bind means two state blobs were
// wired to overlapping decode logic, which is a construction bug.
func (m *Manager) Bind(h Handle, addrs ...uint32) {
	for _, a := range addrs {
		e := &m.binding[a]
		if e.bound && e.handle == h {
			panic(fmt.Sprintf("dirty: address %#x bound twice to handle %d", a, h))
		}
		for _, s := range e.spill {
			if s == h {
				panic(fmt.Sprintf("dirty: address %#x bound twice to handle %d", a, h))
			}
		}
		if !e.bound {
			e.handle, e.bound = h, true
		} else {
			e.spill = append(e.spill, h)
		}
	}
}

// BindRange attaches h to the count addresses starting at base.
func (m *Manager) BindRange(h Handle, base, count uint32) {
	for a := base; a < base+count; a++ {
		m.Bind(h, a)
	}
}

// MarkDirty marks every handle bound to addr. Unbound addresses are a
// no-op.
func (m *Manager) MarkDirty(addr uint32) {
	e := &m.binding[addr]
	if !e.bound {
		return
	}
	m.dirty[e.handle] = true
	for _, s := range e.spill {
		m.dirty[s] = true
	}
}

// Consume reports whether h was dirty and clears it. The caller must
// recompute the blob when Consume reports true.
func (m *Manager) Consume(h Handle) bool {
	d := m.dirty[h]
	m.dirty[h] = false
	return d
}

// MarkAll dirties every allocated handle.
func (m *Manager) MarkAll() {
	for i := range m.dirty {
		m.dirty[i] = true
	}
}
