// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package interconnect translates GM20B fixed-function register state
// into portable pipeline state.
//
// The package is organised around leaf translators, one per register
// group (render targets, vertex input, rasterization, depth-stencil,
// blend, input assembly, tessellation and the shader interface). Each
// translator owns a dirty handle bound to its registers and rewrites
// its slice of the PackedPipelineState when consumed. PipelineState
// orchestrates the translators and yields a packed snapshot plus the
// attachment views for a draw.
//
// Packed state is a fixed-layout comparable value: two generated
// snapshots describe the same pipeline exactly when they compare
// equal, which makes the struct directly usable as a cache key.
package interconnect
