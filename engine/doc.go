// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package engine implements the GM20B 3D-class command processor.
//
// The engine receives methods, which are (register address, argument)
// pairs, through CallMethod and CallMethodBatchNonInc. Dispatch runs
// in priority order: shadow RAM control first, then coalesced
// constant buffer loads, deferred draw handling, redundant write
// suppression with dirty marking, and finally per-method side effects
// such as syncpoints, semaphores, clears, macro RAM loads and inline
// memory transfers.
//
// Draw state translation is delegated to package interconnect.
package engine
