// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"encoding/binary"
	"hash"
	"hash/fnv"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/wgpu/hal"
)

// Array sizes of the packed state. They mirror the register bank
// limits of the engine.
const (
	PackedColorTargets     = 8
	PackedVertexStreams    = 16
	PackedVertexAttributes = 32
)

// PolygonMode is the canonical polygon rasterization mode. WebGPU has
// no polygon mode, so the packed state carries its own enum.
type PolygonMode uint8

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

// LogicOpFunc is the canonical framebuffer logic operation, the GL
// encoding normalized to a zero base.
type LogicOpFunc uint8

const (
	LogicClear LogicOpFunc = iota
	LogicAnd
	LogicAndReverse
	LogicCopy
	LogicAndInverted
	LogicNoop
	LogicXor
	LogicOr
	LogicNor
	LogicEquiv
	LogicInvert
	LogicOrReverse
	LogicCopyInverted
	LogicOrInverted
	LogicNand
	LogicSet
)

// Tessellation enums carried by the packed state. WebGPU exposes no
// tessellation stage, so these stay module local for the shader
// compiler to consume.
type (
	TessDomain  uint8
	TessSpacing uint8
	TessOutput  uint8
)

const (
	TessDomainIsoline TessDomain = iota
	TessDomainTriangle
	TessDomainQuad
)

const (
	TessSpacingEqual TessSpacing = iota
	TessSpacingFractionOdd
	TessSpacingFractionEven
)

const (
	TessOutputPoints TessOutput = iota
	TessOutputLines
	TessOutputTrianglesCW
	TessOutputTrianglesCCW
)

// PackedColorTarget is the per-color-target slice of the packed state.
// A disabled target holds the zero value.
type PackedColorTarget struct {
	Format       gputypes.TextureFormat
	WriteMask    gputypes.ColorWriteMask
	BlendEnabled bool
	ColorOp      gputypes.BlendOperation
	SrcColor     gputypes.BlendFactor
	DstColor     gputypes.BlendFactor
	AlphaOp      gputypes.BlendOperation
	SrcAlpha     gputypes.BlendFactor
	DstAlpha     gputypes.BlendFactor
}

// PackedVertexStream is the per-stream slice of the packed state.
type PackedVertexStream struct {
	Enabled  bool
	Stride   uint16
	StepMode gputypes.VertexStepMode
	// Divisor applies only to instance-stepped streams.
	Divisor uint32
}

// PackedVertexAttribute is the per-attribute slice of the packed
// state. A disabled attribute holds the zero value.
type PackedVertexAttribute struct {
	Enabled bool
	Stream  uint8
	Offset  uint16
	Format  gputypes.VertexFormat
	Kind    ir.ScalarKind
}

// PackedPipelineState is the fixed-layout snapshot of all translated
// fixed-function state. It is a comparable value type: equality means
// pipeline identity, so the struct serves directly as a cache key.
// Hash gives a stable 64-bit digest for bucketing.
type PackedPipelineState struct {
	ColorTargets [PackedColorTargets]PackedColorTarget

	DepthFormat           gputypes.TextureFormat
	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthBoundsTestEnable bool
	DepthCompare          gputypes.CompareFunction
	StencilEnable         bool
	StencilFront          hal.StencilFaceState
	StencilBack           hal.StencilFaceState
	StencilReadMask       uint32
	StencilWriteMask      uint32

	VertexStreams    [PackedVertexStreams]PackedVertexStream
	VertexAttributes [PackedVertexAttributes]PackedVertexAttribute

	Topology gputypes.PrimitiveTopology
	// QuadConversion marks topologies the host cannot draw natively
	// and the index generator must rewrite.
	QuadConversion   bool
	PrimitiveRestart bool
	PatchSize        uint8
	TessDomain       TessDomain
	TessSpacing      TessSpacing
	TessOutput       TessOutput

	RasterizerDiscard bool
	FrontPolygonMode  PolygonMode
	BackPolygonMode   PolygonMode
	// CullDiscardsAll is the front-and-back cull mode, which WebGPU
	// cannot express as a CullMode and the draw path must honor by
	// skipping rasterization.
	CullDiscardsAll     bool
	CullMode            gputypes.CullMode
	FrontFace           gputypes.FrontFace
	ProvokingVertexLast bool
	DepthBiasPoint      bool
	DepthBiasLine       bool
	DepthBiasFill       bool

	LogicOpEnable bool
	LogicOp       LogicOpFunc

	AttributeSkipMask   [4]uint32
	BindlessTextureSlot uint8
}

// SetVertexStride records the byte stride of stream i. The hardware
// stride field is 12 bits wide.
func (p *PackedPipelineState) SetVertexStride(i int, stride uint32) {
	p.VertexStreams[i].Stride = uint16(stride & 0xFFF)
}

// SetVertexStreamEnabled records whether stream i supplies data.
func (p *PackedPipelineState) SetVertexStreamEnabled(i int, enabled bool) {
	p.VertexStreams[i].Enabled = enabled
}

// SetVertexDivisor records the instance divisor of stream i.
func (p *PackedPipelineState) SetVertexDivisor(i int, divisor uint32) {
	p.VertexStreams[i].Divisor = divisor
}

// SetVertexStepMode records whether stream i steps per instance.
func (p *PackedPipelineState) SetVertexStepMode(i int, perInstance bool) {
	if perInstance {
		p.VertexStreams[i].StepMode = gputypes.VertexStepModeInstance
	} else {
		p.VertexStreams[i].StepMode = gputypes.VertexStepModeVertex
		p.VertexStreams[i].Divisor = 0
	}
}

// SetVertexAttribute replaces attribute slot i.
func (p *PackedPipelineState) SetVertexAttribute(i int, a PackedVertexAttribute) {
	p.VertexAttributes[i] = a
}

// SetTopology records the canonical topology and whether the draw
// path must rewrite indices for it.
func (p *PackedPipelineState) SetTopology(t gputypes.PrimitiveTopology, quadConversion bool) {
	p.Topology = t
	p.QuadConversion = quadConversion
}

// SetPrimitiveRestart records the primitive restart enable.
func (p *PackedPipelineState) SetPrimitiveRestart(enabled bool) {
	p.PrimitiveRestart = enabled
}

// SetPatchSize records the tessellation patch control point count.
func (p *PackedPipelineState) SetPatchSize(size uint32) {
	p.PatchSize = uint8(size & 0x3F)
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

func hashWriteUint64(h hash.Hash64, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func hashWriteBool(h hash.Hash64, v bool) {
	if v {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}

// Hash returns a stable FNV-1a digest of the packed state. Equal
// states hash equally; the digest is a bucketing aid, not a
// substitute for comparing the structs.
func (p *PackedPipelineState) Hash() uint64 {
	h := fnv.New64a()

	for i := range p.ColorTargets {
		ct := &p.ColorTargets[i]
		hashWriteUint32(h, uint32(ct.Format))
		hashWriteUint32(h, uint32(ct.WriteMask))
		hashWriteBool(h, ct.BlendEnabled)
		hashWriteUint32(h, uint32(ct.ColorOp))
		hashWriteUint32(h, uint32(ct.SrcColor))
		hashWriteUint32(h, uint32(ct.DstColor))
		hashWriteUint32(h, uint32(ct.AlphaOp))
		hashWriteUint32(h, uint32(ct.SrcAlpha))
		hashWriteUint32(h, uint32(ct.DstAlpha))
	}

	hashWriteUint32(h, uint32(p.DepthFormat))
	hashWriteBool(h, p.DepthTestEnable)
	hashWriteBool(h, p.DepthWriteEnable)
	hashWriteBool(h, p.DepthBoundsTestEnable)
	hashWriteUint32(h, uint32(p.DepthCompare))
	hashWriteBool(h, p.StencilEnable)
	for _, face := range [2]hal.StencilFaceState{p.StencilFront, p.StencilBack} {
		hashWriteUint32(h, uint32(face.Compare))
		hashWriteUint32(h, uint32(face.FailOp))
		hashWriteUint32(h, uint32(face.DepthFailOp))
		hashWriteUint32(h, uint32(face.PassOp))
	}
	hashWriteUint32(h, p.StencilReadMask)
	hashWriteUint32(h, p.StencilWriteMask)

	for i := range p.VertexStreams {
		vs := &p.VertexStreams[i]
		hashWriteBool(h, vs.Enabled)
		hashWriteUint32(h, uint32(vs.Stride))
		hashWriteUint32(h, uint32(vs.StepMode))
		hashWriteUint32(h, vs.Divisor)
	}
	for i := range p.VertexAttributes {
		va := &p.VertexAttributes[i]
		hashWriteBool(h, va.Enabled)
		hashWriteUint32(h, uint32(va.Stream))
		hashWriteUint32(h, uint32(va.Offset))
		hashWriteUint32(h, uint32(va.Format))
		hashWriteUint32(h, uint32(va.Kind))
	}

	hashWriteUint32(h, uint32(p.Topology))
	hashWriteBool(h, p.QuadConversion)
	hashWriteBool(h, p.PrimitiveRestart)
	hashWriteUint32(h, uint32(p.PatchSize))
	hashWriteUint32(h, uint32(p.TessDomain))
	hashWriteUint32(h, uint32(p.TessSpacing))
	hashWriteUint32(h, uint32(p.TessOutput))

	hashWriteBool(h, p.RasterizerDiscard)
	hashWriteUint32(h, uint32(p.FrontPolygonMode))
	hashWriteUint32(h, uint32(p.BackPolygonMode))
	hashWriteBool(h, p.CullDiscardsAll)
	hashWriteUint32(h, uint32(p.CullMode))
	hashWriteUint32(h, uint32(p.FrontFace))
	hashWriteBool(h, p.ProvokingVertexLast)
	hashWriteBool(h, p.DepthBiasPoint)
	hashWriteBool(h, p.DepthBiasLine)
	hashWriteBool(h, p.DepthBiasFill)

	hashWriteBool(h, p.LogicOpEnable)
	hashWriteUint32(h, uint32(p.LogicOp))

	for _, m := range p.AttributeSkipMask {
		hashWriteUint32(h, m)
	}
	hashWriteUint64(h, uint64(p.BindlessTextureSlot))

	return h.Sum64()
}
