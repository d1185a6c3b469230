// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRenderTarget is returned when a draw or clear reaches a
	// target that is disabled.
	ErrNoRenderTarget = errors.New("interconnect: render target disabled")

	// ErrTranslate is wrapped around address translation failures.
	ErrTranslate = errors.New("interconnect: guest address translation failed")
)

// UnsupportedError reports a register value this translation layer
// cannot express on the portable pipeline state.
type UnsupportedError struct {
	What  string
	Value uint32
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("interconnect: unsupported %s %#x", e.What, e.Value)
}
