// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gm20b/dirty"
	"github.com/gogpu/gm20b/regs"
)

// AddressSpace resolves guest GPU addresses to host memory.
type AddressSpace interface {
	// TranslateRange maps [addr, addr+size) to host spans in guest
	// order. The spans alias guest memory.
	TranslateRange(addr, size uint64) ([][]byte, error)

	// Write copies p into guest memory at addr.
	Write(addr uint64, p []byte) error
}

// TextureView is a host view over a guest surface.
type TextureView interface {
	Destroy()
}

// ViewCache deduplicates host views by surface descriptor.
type ViewCache interface {
	// FindOrCreate returns the view for desc, creating it over the
	// given host spans on a miss.
	FindOrCreate(desc ViewDescriptor, mappings [][]byte) (TextureView, error)
}

// ViewDescriptor identifies a guest surface precisely enough to share
// host views. It is a comparable value and serves as the cache key.
type ViewDescriptor struct {
	Address   uint64
	Format    gputypes.TextureFormat
	Dimension gputypes.TextureViewDimension
	Extent    gputypes.Extent3D

	// PitchLinear surfaces use PitchBytes; block-tiled surfaces use
	// the tile dimensions.
	PitchLinear    bool
	PitchBytes     uint32
	TileWidthLog2  uint8
	TileHeightLog2 uint8
	TileDepthLog2  uint8

	LayerStride uint64
	BaseLayer   uint32
}

// DrawCall carries the per-draw parameters resolved by the engine.
type DrawCall struct {
	Indexed       bool
	IndexFormat   gputypes.IndexFormat
	First         uint32
	Count         uint32
	InstanceCount uint32
	BaseVertex    int32
	BaseInstance  uint32
}

// ClearOp describes one attachment clear.
type ClearOp struct {
	View  TextureView
	Layer uint32

	// Color clear. Mask holds RGBA channel enables in bits 0-3.
	Color     f32.Vec4
	ColorMask uint8

	ClearDepth   bool
	Depth        float32
	ClearStencil bool
	Stencil      uint32
}

// ConstantBufferBinding binds a guest buffer range to a shader stage
// slot.
type ConstantBufferBinding struct {
	Stage   int
	Slot    uint32
	Address uint64
	Size    uint32
}

// Submitter receives translated work. Implementations typically wrap
// a host command encoder.
type Submitter interface {
	Draw(state *PackedPipelineState, colors [PackedColorTargets]TextureView, depth TextureView, call DrawCall) error
	Clear(op ClearOp) error
	BindConstantBuffer(b ConstantBufferBinding) error
	// ConstantBufferUpdated reports an in-place guest buffer write so
	// in-flight copies can be refreshed.
	ConstantBufferUpdated(addr uint64, size uint32)
	Submit() error
}

// Interconnect owns the translation from engine register state to
// Submitter work.
type Interconnect struct {
	mem    AddressSpace
	views  ViewCache
	submit Submitter
	state  *PipelineState
}

// New returns an Interconnect over the given collaborators. The dirty
// manager must be the one the engine marks on register writes.
func New(mem AddressSpace, views ViewCache, submit Submitter, d *dirty.Manager) *Interconnect {
	return &Interconnect{
		mem:    mem,
		views:  views,
		submit: submit,
		state:  NewPipelineState(d),
	}
}

// Pipeline exposes the orchestrated pipeline state, mainly for fast
// path updates and stats.
func (ic *Interconnect) Pipeline() *PipelineState { return ic.state }

// Draw flushes pipeline state and submits one draw.
func (ic *Interconnect) Draw(r *regs.Registers, d *dirty.Manager, call DrawCall) error {
	packed, colors, depth, err := ic.state.Flush(r, d, ic.mem, ic.views)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if packed.CullDiscardsAll || packed.RasterizerDiscard {
		// Nothing reaches the framebuffer; skip the host draw.
		return nil
	}
	return ic.submit.Draw(packed, colors, depth, call)
}

// Clear resolves the targeted attachments and submits clears for the
// channels the flags enable.
func (ic *Interconnect) Clear(r *regs.Registers, d *dirty.Manager, flags regs.ClearSurfaceFlags) error {
	if flags.AnyColor() {
		view, err := ic.state.ColorTargetForClear(r, d, ic.mem, ic.views, int(flags.TargetIndex))
		if err != nil {
			return fmt.Errorf("color clear: %w", err)
		}
		if view != nil {
			op := ClearOp{View: view, Layer: flags.Layer}
			for i, c := range [4]bool{flags.R, flags.G, flags.B, flags.A} {
				if c {
					op.ColorMask |= 1 << i
				}
			}
			op.Color = f32.Vec4{
				floatBits(r[regs.ClearColorValue]),
				floatBits(r[regs.ClearColorValue+1]),
				floatBits(r[regs.ClearColorValue+2]),
				floatBits(r[regs.ClearColorValue+3]),
			}
			if err := ic.submit.Clear(op); err != nil {
				return err
			}
		}
	}
	if flags.Depth || flags.Stencil {
		view, err := ic.state.DepthTargetForClear(r, d, ic.mem, ic.views)
		if err != nil {
			return fmt.Errorf("depth clear: %w", err)
		}
		if view != nil {
			op := ClearOp{
				View:         view,
				Layer:        flags.Layer,
				ClearDepth:   flags.Depth,
				Depth:        floatBits(r[regs.ClearDepthValue]),
				ClearStencil: flags.Stencil,
				Stencil:      r[regs.ClearStencilValue],
			}
			if err := ic.submit.Clear(op); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadConstantBuffer writes words into the selected guest buffer at
// the given byte offset and reports the update.
func (ic *Interconnect) LoadConstantBuffer(addr uint64, offset uint32, words []uint32) error {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	if err := ic.mem.Write(addr+uint64(offset), buf); err != nil {
		return fmt.Errorf("%w: constant buffer load at %#x: %w", ErrTranslate, addr, err)
	}
	ic.submit.ConstantBufferUpdated(addr+uint64(offset), uint32(len(buf)))
	return nil
}

// BindConstantBuffer forwards a stage binding of the selector buffer.
func (ic *Interconnect) BindConstantBuffer(b ConstantBufferBinding) error {
	return ic.submit.BindConstantBuffer(b)
}

// Submit flushes the Submitter.
func (ic *Interconnect) Submit() error { return ic.submit.Submit() }

// floatBits reinterprets a register word as float32.
func floatBits(w uint32) float32 { return math.Float32frombits(w) }
