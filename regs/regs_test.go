// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

import "testing"

func TestColorTargetDecode(t *testing.T) {
	var r Registers
	base := uint32(ColorTarget + 2*ColorTargetStride)
	r[base] = 0x1
	r[base+1] = 0x2000
	r[base+2] = 1920
	r[base+3] = 1080
	r[base+4] = uint32(CTFormatA8B8G8R8)
	r[base+5] = 0x4<<4 | 1<<16 // blockHeightLog2=4, array control
	r[base+6] = 6
	r[base+7] = 0x100
	r[base+8] = 2

	ct := r.ColorTargetAt(2)
	if ct.Address != 0x1_0000_2000 {
		t.Errorf("Address = %#x, want 0x100002000", ct.Address)
	}
	if ct.Width != 1920 || ct.Height != 1080 {
		t.Errorf("extent = %dx%d, want 1920x1080", ct.Width, ct.Height)
	}
	if ct.Format != CTFormatA8B8G8R8 {
		t.Errorf("Format = %#x, want A8B8G8R8", ct.Format)
	}
	if ct.TileHeightLog2 != 4 || ct.TileWidthLog2 != 0 {
		t.Errorf("tiling = %d/%d, want 0/4", ct.TileWidthLog2, ct.TileHeightLog2)
	}
	if ct.PitchLinear {
		t.Error("PitchLinear = true, want block tiled")
	}
	if !ct.ThirdDimensionIsArray || ct.ThirdDimension != 6 {
		t.Errorf("third dimension = %v/%d, want array of 6", ct.ThirdDimensionIsArray, ct.ThirdDimension)
	}
	if ct.ArrayPitch != 0x400 {
		t.Errorf("ArrayPitch = %#x, want 0x400", ct.ArrayPitch)
	}
	if ct.LayerOffset != 2 {
		t.Errorf("LayerOffset = %d, want 2", ct.LayerOffset)
	}
}

func TestDepthTargetDisabled(t *testing.T) {
	var r Registers
	r[DepthTargetSelect] = 0
	if zt := r.DepthTarget(); zt.Enabled {
		t.Error("Enabled = true with zero select register")
	}
}

func TestVertexStreamDecode(t *testing.T) {
	var r Registers
	base := uint32(VertexStream + 3*VertexStreamStride)
	r[base] = 1<<12 | 32 // enabled, stride 32
	r[base+1] = 0x0
	r[base+2] = 0xA000
	r[base+3] = 4
	r[VertexStreamInstance+3] = 1

	vs := r.VertexStreamAt(3)
	if !vs.Enabled || vs.Stride != 32 {
		t.Errorf("stream = %+v, want enabled stride 32", vs)
	}
	if vs.Address != 0xA000 {
		t.Errorf("Address = %#x, want 0xA000", vs.Address)
	}
	if !vs.PerInstance || vs.Divisor != 4 {
		t.Errorf("instancing = %v/%d, want per-instance divisor 4", vs.PerInstance, vs.Divisor)
	}
}

func TestVertexAttributeDecode(t *testing.T) {
	w := uint32(2) | // stream 2
		12<<7 | // offset 12
		uint32(VertexAttrSize32x3)<<21 |
		uint32(VertexAttrTypeFloat)<<27
	var r Registers
	r[VertexAttribute+5] = w

	va := r.VertexAttributeAt(5)
	if va.Stream != 2 || va.Offset != 12 {
		t.Errorf("placement = stream %d offset %d, want 2/12", va.Stream, va.Offset)
	}
	if va.Size != VertexAttrSize32x3 || va.Type != VertexAttrTypeFloat {
		t.Errorf("format = %#x/%d, want 32x3 float", va.Size, va.Type)
	}
	if va.Constant || va.SwapRB {
		t.Errorf("flags = constant %v swapRB %v, want false/false", va.Constant, va.SwapRB)
	}
}

func TestDecodeBegin(t *testing.T) {
	tests := []struct {
		name string
		arg  uint32
		want BeginInfo
	}{
		{"fresh triangles", uint32(TopologyTriangles), BeginInfo{Topology: TopologyTriangles}},
		{"subsequent quads", uint32(TopologyQuads) | 1<<26, BeginInfo{Topology: TopologyQuads, Subsequent: true}},
		{"instance mode first", uint32(TopologyPoints) | 0<<26, BeginInfo{Topology: TopologyPoints}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeBegin(tt.arg); got != tt.want {
				t.Errorf("DecodeBegin(%#x) = %+v, want %+v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestDecodeClearSurface(t *testing.T) {
	f := DecodeClearSurface(1<<0 | 1<<2 | 1<<5 | 3<<6 | 7<<10)
	if !f.Depth || f.Stencil {
		t.Errorf("depth/stencil = %v/%v, want true/false", f.Depth, f.Stencil)
	}
	if !f.R || f.G || f.B || !f.A {
		t.Errorf("channels = %v %v %v %v, want R and A only", f.R, f.G, f.B, f.A)
	}
	if !f.AnyColor() {
		t.Error("AnyColor() = false")
	}
	if f.TargetIndex != 3 || f.Layer != 7 {
		t.Errorf("target/layer = %d/%d, want 3/7", f.TargetIndex, f.Layer)
	}
}

func TestDecodeSemaphoreInfo(t *testing.T) {
	si := DecodeSemaphoreInfo(uint32(SemaphoreOpRelease) | 1<<24)
	if si.Op != SemaphoreOpRelease || !si.FourWords {
		t.Errorf("info = %+v, want release with four words", si)
	}
}

func TestCtWriteMask(t *testing.T) {
	var r Registers
	r[CtWrite] = 1<<0 | 1<<8 // R and B
	if m := r.CtWriteMask(0); m != 0b0101 {
		t.Errorf("mask = %#b, want 0b0101", m)
	}
}

func TestStencilGroupDecode(t *testing.T) {
	var r Registers
	r[StencilBackOps] = uint32(StencilOGLKeep)
	r[StencilBackOps+1] = uint32(StencilD3DIncrementWrap)
	r[StencilBackOps+2] = uint32(StencilOGLReplace)
	r[StencilBackOps+3] = uint32(CompareOGLNotEqual)

	ops := r.StencilBack()
	want := StencilOpsRegs{
		Fail:      StencilOGLKeep,
		DepthFail: StencilD3DIncrementWrap,
		Pass:      StencilOGLReplace,
		Func:      CompareOGLNotEqual,
	}
	if ops != want {
		t.Errorf("StencilBack() = %+v, want %+v", ops, want)
	}
}
