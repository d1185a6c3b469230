// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

// ColorTargetRegs is the decoded register group of one color render
// target.
type ColorTargetRegs struct {
	Address        uint64
	Width          uint32
	Height         uint32
	Format         CTFormat
	TileWidthLog2  uint8
	TileHeightLog2 uint8
	TileDepthLog2  uint8
	// PitchLinear means Width is a byte pitch and the surface has no
	// block tiling.
	PitchLinear bool
	// ThirdDimensionIsArray means ThirdDimension counts array layers
	// rather than depth slices.
	ThirdDimensionIsArray bool
	ThirdDimension        uint32
	// ArrayPitch is the per-layer stride in bytes.
	ArrayPitch uint64
	// LayerOffset selects the first rendered layer.
	LayerOffset uint32
}

// ColorTargetAt decodes color target i of the bank.
func (r *Registers) ColorTargetAt(i int) ColorTargetRegs {
	base := ColorTarget + uint32(i)*ColorTargetStride
	mem := r[base+5]
	return ColorTargetRegs{
		Address:               uint64(r[base])<<32 | uint64(r[base+1]),
		Width:                 r[base+2],
		Height:                r[base+3],
		Format:                CTFormat(r[base+4]),
		TileWidthLog2:         uint8(mem & 0xF),
		TileHeightLog2:        uint8(mem >> 4 & 0xF),
		TileDepthLog2:         uint8(mem >> 8 & 0xF),
		PitchLinear:           mem&(1<<12) != 0,
		ThirdDimensionIsArray: mem&(1<<16) != 0,
		ThirdDimension:        r[base+6],
		ArrayPitch:            uint64(r[base+7]) << 2,
		LayerOffset:           r[base+8],
	}
}

// DepthTargetRegs is the decoded depth render target register group.
type DepthTargetRegs struct {
	Enabled        bool
	Address        uint64
	Format         ZTFormat
	TileWidthLog2  uint8
	TileHeightLog2 uint8
	TileDepthLog2  uint8
	ArrayPitch     uint64
	LayerOffset    uint32
	Width          uint32
	Height         uint32
	// ThirdDimensionIsArray means ThirdDimension counts array layers.
	ThirdDimensionIsArray bool
	ThirdDimension        uint32
}

// DepthTarget decodes the depth render target registers.
func (r *Registers) DepthTarget() DepthTargetRegs {
	mem := r[DepthTargetMemory]
	return DepthTargetRegs{
		Enabled:               r[DepthTargetSelect]&1 != 0,
		Address:               uint64(r[DepthTargetAddressHigh])<<32 | uint64(r[DepthTargetAddressLow]),
		Format:                ZTFormat(r[DepthTargetFormat]),
		TileWidthLog2:         uint8(mem & 0xF),
		TileHeightLog2:        uint8(mem >> 4 & 0xF),
		TileDepthLog2:         uint8(mem >> 8 & 0xF),
		ArrayPitch:            uint64(r[DepthTargetArrayPitch]) << 2,
		LayerOffset:           r[DepthTargetLayerOffset],
		Width:                 r[DepthTargetWidth],
		Height:                r[DepthTargetHeight],
		ThirdDimensionIsArray: r[DepthTargetControl]&1 != 0,
		ThirdDimension:        r[DepthTargetThirdDimension],
	}
}

// VertexStreamRegs is the decoded register group of one vertex stream.
type VertexStreamRegs struct {
	Enabled bool
	Stride  uint32
	Address uint64
	// Divisor is the instance frequency divisor; meaningful only when
	// PerInstance is set.
	Divisor     uint32
	PerInstance bool
}

// VertexStreamAt decodes vertex stream i of the bank.
func (r *Registers) VertexStreamAt(i int) VertexStreamRegs {
	base := VertexStream + uint32(i)*VertexStreamStride
	cfg := r[base]
	return VertexStreamRegs{
		Enabled:     cfg&(1<<12) != 0,
		Stride:      cfg & 0xFFF,
		Address:     uint64(r[base+1])<<32 | uint64(r[base+2]),
		Divisor:     r[base+3],
		PerInstance: r[VertexStreamInstance+uint32(i)]&1 != 0,
	}
}

// VertexAttributeWord is the decoded packed word of one vertex
// attribute.
type VertexAttributeWord struct {
	Stream uint32
	// Constant attributes carry no per-vertex data.
	Constant bool
	Offset   uint32
	Size     VertexAttrSize
	Type     VertexAttrType
	// SwapRB requests a BGRA component swizzle.
	SwapRB bool
}

// VertexAttributeAt decodes vertex attribute i of the bank.
func (r *Registers) VertexAttributeAt(i int) VertexAttributeWord {
	return DecodeVertexAttribute(r[VertexAttribute+uint32(i)])
}

// DecodeVertexAttribute decodes one packed attribute word.
func DecodeVertexAttribute(w uint32) VertexAttributeWord {
	return VertexAttributeWord{
		Stream:   w & 0x1F,
		Constant: w&(1<<6) != 0,
		Offset:   w >> 7 & 0x3FFF,
		Size:     VertexAttrSize(w >> 21 & 0x3F),
		Type:     VertexAttrType(w >> 27 & 0x7),
		SwapRB:   w&(1<<31) != 0,
	}
}

// StencilOpsRegs is one decoded 4-word stencil op group.
type StencilOpsRegs struct {
	Fail      StencilOp
	DepthFail StencilOp
	Pass      StencilOp
	Func      CompareFunc
}

func (r *Registers) stencilOpsAt(base uint32) StencilOpsRegs {
	return StencilOpsRegs{
		Fail:      StencilOp(r[base]),
		DepthFail: StencilOp(r[base+1]),
		Pass:      StencilOp(r[base+2]),
		Func:      CompareFunc(r[base+3]),
	}
}

// StencilFront decodes the front-face stencil op group.
func (r *Registers) StencilFront() StencilOpsRegs { return r.stencilOpsAt(StencilFrontOps) }

// StencilBack decodes the back-face stencil op group.
func (r *Registers) StencilBack() StencilOpsRegs { return r.stencilOpsAt(StencilBackOps) }

// BlendRegs is one decoded 6-word blend equation group.
type BlendRegs struct {
	ColorOp  BlendOp
	ColorSrc BlendCoeff
	ColorDst BlendCoeff
	AlphaOp  BlendOp
	AlphaSrc BlendCoeff
	AlphaDst BlendCoeff
}

func (r *Registers) blendAt(base uint32) BlendRegs {
	return BlendRegs{
		ColorOp:  BlendOp(r[base]),
		ColorSrc: BlendCoeff(r[base+1]),
		ColorDst: BlendCoeff(r[base+2]),
		AlphaOp:  BlendOp(r[base+3]),
		AlphaSrc: BlendCoeff(r[base+4]),
		AlphaDst: BlendCoeff(r[base+5]),
	}
}

// BlendShared decodes the shared blend group.
func (r *Registers) BlendShared() BlendRegs { return r.blendAt(Blend) }

// BlendForTarget decodes the per-target blend group of color target i.
func (r *Registers) BlendForTarget(i int) BlendRegs {
	return r.blendAt(BlendPerTarget + uint32(i)*BlendPerTargetStride)
}

// CtWriteMask decodes the channel write enables of color target i as
// an RGBA bit quadruple in bits 0-3.
func (r *Registers) CtWriteMask(i int) uint8 {
	w := r[CtWrite+uint32(i)]
	var m uint8
	if w&(1<<0) != 0 {
		m |= 1
	}
	if w&(1<<4) != 0 {
		m |= 2
	}
	if w&(1<<8) != 0 {
		m |= 4
	}
	if w&(1<<12) != 0 {
		m |= 8
	}
	return m
}

// BeginInfo is the decoded Begin register argument.
type BeginInfo struct {
	Topology DrawTopology
	// Subsequent draws extend the previous draw by one instance
	// instead of starting fresh.
	Subsequent bool
}

// DecodeBegin decodes a Begin method argument.
func DecodeBegin(arg uint32) BeginInfo {
	return BeginInfo{
		Topology:   DrawTopology(arg & 0xFFFF),
		Subsequent: arg>>26&0x3 == 1,
	}
}

// UseBeginTopology reports whether draws take their topology from the
// Begin argument rather than the PrimitiveTopology register.
func (r *Registers) UseBeginTopology() bool {
	return r[PrimitiveTopologyControl]&1 != 0
}

// SemaphoreInfoRegs is the decoded SemaphoreInfo argument.
type SemaphoreInfoRegs struct {
	Op          SemaphoreOp
	CounterType uint32
	// FourWords selects the payload-plus-timestamp structure.
	FourWords bool
}

// DecodeSemaphoreInfo decodes a SemaphoreInfo method argument.
func DecodeSemaphoreInfo(arg uint32) SemaphoreInfoRegs {
	return SemaphoreInfoRegs{
		Op:          SemaphoreOp(arg & 0x3),
		CounterType: arg >> 12 & 0xF,
		FourWords:   arg&(1<<24) != 0,
	}
}

// SemaphoreAddress returns the semaphore target address.
func (r *Registers) SemaphoreAddress() uint64 {
	return uint64(r[SemaphoreAddressHigh])<<32 | uint64(r[SemaphoreAddressLow])
}

// ClearSurfaceFlags is the decoded ClearSurface argument.
type ClearSurfaceFlags struct {
	Depth   bool
	Stencil bool
	R       bool
	G       bool
	B       bool
	A       bool
	// TargetIndex selects the color target to clear.
	TargetIndex uint32
	Layer       uint32
}

// DecodeClearSurface decodes a ClearSurface method argument.
func DecodeClearSurface(arg uint32) ClearSurfaceFlags {
	return ClearSurfaceFlags{
		Depth:       arg&(1<<0) != 0,
		Stencil:     arg&(1<<1) != 0,
		R:           arg&(1<<2) != 0,
		G:           arg&(1<<3) != 0,
		B:           arg&(1<<4) != 0,
		A:           arg&(1<<5) != 0,
		TargetIndex: arg >> 6 & 0xF,
		Layer:       arg >> 10 & 0xFFFF,
	}
}

// AnyColor reports whether any color channel clear is enabled.
func (f ClearSurfaceFlags) AnyColor() bool { return f.R || f.G || f.B || f.A }

// TessellationRegs is the decoded TessellationParams register.
type TessellationRegs struct {
	Domain  TessellationDomain
	Spacing TessellationSpacing
	Output  TessellationOutput
}

// Tessellation decodes the TessellationParams register.
func (r *Registers) Tessellation() TessellationRegs {
	w := r[TessellationParams]
	return TessellationRegs{
		Domain:  TessellationDomain(w & 0x3),
		Spacing: TessellationSpacing(w >> 4 & 0x3),
		Output:  TessellationOutput(w >> 8 & 0x3),
	}
}

// ConstantBufferSelector returns the address and size selected for
// constant buffer loads and binds.
func (r *Registers) ConstantBufferSelector() (addr uint64, size uint32) {
	addr = uint64(r[ConstantBufferSelectorAddressHigh])<<32 | uint64(r[ConstantBufferSelectorAddressLow])
	return addr, r[ConstantBufferSelectorSize]
}

// InlineDestAddress returns the i2m destination address.
func (r *Registers) InlineDestAddress() uint64 {
	return uint64(r[InlineDestAddressHigh])<<32 | uint64(r[InlineDestAddressLow])
}
