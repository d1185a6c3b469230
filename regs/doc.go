// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package regs models the register bank of the GM20B 3D-class engine.
//
// The bank is a flat array of Count 32-bit words. A method address is a
// word index into that array. The package provides the address map, the
// hardware enumerations written by guest drivers (including the D3D and
// OpenGL dual encodings the hardware accepts for the same state), and
// typed decoded views over register groups.
//
// Mutation of a register bank is reserved to the command dispatcher in
// package engine; everything else reads through the decoded views.
package regs
