// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

func alignUp(v, to uint64) uint64 { return (v + to - 1) &^ (to - 1) }

// formatBytes returns the byte size of one texel. Depth formats
// report their storage footprint.
func formatBytes(f gputypes.TextureFormat) uint32 {
	switch f {
	case gputypes.TextureFormatR8Unorm, gputypes.TextureFormatR8Snorm,
		gputypes.TextureFormatR8Uint, gputypes.TextureFormatR8Sint,
		gputypes.TextureFormatStencil8:
		return 1
	case gputypes.TextureFormatRG8Unorm, gputypes.TextureFormatRG8Snorm,
		gputypes.TextureFormatRG8Uint, gputypes.TextureFormatRG8Sint,
		gputypes.TextureFormatR16Float, gputypes.TextureFormatR16Uint,
		gputypes.TextureFormatR16Sint, gputypes.TextureFormatR16Unorm,
		gputypes.TextureFormatR16Snorm, gputypes.TextureFormatDepth16Unorm:
		return 2
	case gputypes.TextureFormatRGBA16Float, gputypes.TextureFormatRGBA16Uint,
		gputypes.TextureFormatRGBA16Sint,
		gputypes.TextureFormatRG32Float, gputypes.TextureFormatRG32Uint,
		gputypes.TextureFormatRG32Sint, gputypes.TextureFormatDepth32FloatStencil8:
		return 8
	case gputypes.TextureFormatRGBA32Float, gputypes.TextureFormatRGBA32Uint,
		gputypes.TextureFormatRGBA32Sint:
		return 16
	default:
		// The 32-bit family is by far the most common target layout.
		return 4
	}
}

// tiledLayerSize returns the byte footprint of one block-tiled layer.
// Rows group into 8-line groups-of-bytes scaled by the tile height.
func tiledLayerSize(widthBytes, height uint64, tileHeightLog2 uint8) uint64 {
	pitch := alignUp(widthBytes, 64)
	alignedHeight := alignUp(height, 8<<tileHeightLog2)
	return pitch * alignedHeight
}

type colorTargetState struct {
	handle handleRef
	index  int
	view   TextureView
}

func (s *colorTargetState) update(ctx *flushContext) error {
	ct := ctx.regs.ColorTargetAt(s.index)
	packed := &ctx.packed.ColorTargets[s.index]

	format, err := convertColorTargetFormat(ct.Format)
	if err != nil {
		return fmt.Errorf("color target %d: %w", s.index, err)
	}
	if format == gputypes.TextureFormatUndefined || ct.Address == 0 {
		packed.Format = gputypes.TextureFormatUndefined
		s.view = nil
		return nil
	}
	packed.Format = format

	bpp := uint64(formatBytes(format))
	desc := ViewDescriptor{
		Address:   ct.Address,
		Format:    format,
		Dimension: gputypes.TextureViewDimension2D,
		BaseLayer: ct.LayerOffset,
	}

	layers := uint64(1)
	switch {
	case ct.ThirdDimensionIsArray && ct.ThirdDimension > 1:
		desc.Dimension = gputypes.TextureViewDimension2DArray
		layers = uint64(ct.ThirdDimension)
	case !ct.ThirdDimensionIsArray && ct.ThirdDimension > 1:
		desc.Dimension = gputypes.TextureViewDimension3D
		layers = uint64(ct.ThirdDimension)
	}

	var size uint64
	if ct.PitchLinear {
		// The width register holds the byte pitch for pitch-linear
		// targets.
		desc.PitchLinear = true
		desc.PitchBytes = ct.Width
		desc.Extent = gputypes.Extent3D{
			Width:              ct.Width / uint32(bpp),
			Height:             ct.Height,
			DepthOrArrayLayers: uint32(layers),
		}
		desc.LayerStride = uint64(ct.Width) * uint64(ct.Height)
		size = desc.LayerStride * layers
	} else {
		desc.TileWidthLog2 = ct.TileWidthLog2
		desc.TileHeightLog2 = ct.TileHeightLog2
		desc.TileDepthLog2 = ct.TileDepthLog2
		desc.Extent = gputypes.Extent3D{
			Width:              ct.Width,
			Height:             ct.Height,
			DepthOrArrayLayers: uint32(layers),
		}
		desc.LayerStride = ct.ArrayPitch
		if desc.LayerStride == 0 {
			desc.LayerStride = tiledLayerSize(uint64(ct.Width)*bpp, uint64(ct.Height), ct.TileHeightLog2)
		}
		size = desc.LayerStride * layers
	}

	spans, err := ctx.mem.TranslateRange(ct.Address, size)
	if err != nil {
		return fmt.Errorf("%w: color target %d at %#x: %w", ErrTranslate, s.index, ct.Address, err)
	}
	view, err := ctx.views.FindOrCreate(desc, spans)
	if err != nil {
		return fmt.Errorf("color target %d: %w", s.index, err)
	}
	s.view = view
	return nil
}

type depthTargetState struct {
	handle handleRef
	view   TextureView
}

func (s *depthTargetState) update(ctx *flushContext) error {
	zt := ctx.regs.DepthTarget()
	if !zt.Enabled || zt.Address == 0 {
		ctx.packed.DepthFormat = gputypes.TextureFormatUndefined
		s.view = nil
		return nil
	}

	format, err := convertDepthTargetFormat(zt.Format)
	if err != nil {
		return fmt.Errorf("depth target: %w", err)
	}
	ctx.packed.DepthFormat = format

	bpp := uint64(formatBytes(format))
	layers := uint64(1)
	dim := gputypes.TextureViewDimension2D
	if zt.ThirdDimensionIsArray && zt.ThirdDimension > 1 {
		dim = gputypes.TextureViewDimension2DArray
		layers = uint64(zt.ThirdDimension)
	}

	desc := ViewDescriptor{
		Address:        zt.Address,
		Format:         format,
		Dimension:      dim,
		BaseLayer:      zt.LayerOffset,
		TileWidthLog2:  zt.TileWidthLog2,
		TileHeightLog2: zt.TileHeightLog2,
		TileDepthLog2:  zt.TileDepthLog2,
		Extent: gputypes.Extent3D{
			Width:              zt.Width,
			Height:             zt.Height,
			DepthOrArrayLayers: uint32(layers),
		},
	}
	desc.LayerStride = zt.ArrayPitch
	if desc.LayerStride == 0 {
		desc.LayerStride = tiledLayerSize(uint64(zt.Width)*bpp, uint64(zt.Height), zt.TileHeightLog2)
	}

	spans, err := ctx.mem.TranslateRange(zt.Address, desc.LayerStride*layers)
	if err != nil {
		return fmt.Errorf("%w: depth target at %#x: %w", ErrTranslate, zt.Address, err)
	}
	view, err := ctx.views.FindOrCreate(desc, spans)
	if err != nil {
		return fmt.Errorf("depth target: %w", err)
	}
	s.view = view
	return nil
}
