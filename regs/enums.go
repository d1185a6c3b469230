// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

// ShadowMode is the value of the ShadowRAMControl register.
type ShadowMode uint32

const (
	// ShadowTrack records every non-shadow-control write into the
	// shadow bank before applying it.
	ShadowTrack ShadowMode = 0
	// ShadowTrackWithFilter records writes like ShadowTrack; the
	// filtered variant is treated identically here.
	ShadowTrackWithFilter ShadowMode = 1
	// ShadowPassthrough applies writes without touching the shadow
	// bank.
	ShadowPassthrough ShadowMode = 2
	// ShadowReplay replaces the argument of every incoming write with
	// the shadow bank's value for that address.
	ShadowReplay ShadowMode = 3
)

// CompareFunc is a depth or stencil comparison written by the guest.
// The hardware accepts both a D3D encoding (1-8) and an OpenGL
// encoding (0x200-0x207).
type CompareFunc uint32

const (
	CompareD3DNever        CompareFunc = 1
	CompareD3DLess         CompareFunc = 2
	CompareD3DEqual        CompareFunc = 3
	CompareD3DLessEqual    CompareFunc = 4
	CompareD3DGreater      CompareFunc = 5
	CompareD3DNotEqual     CompareFunc = 6
	CompareD3DGreaterEqual CompareFunc = 7
	CompareD3DAlways       CompareFunc = 8

	CompareOGLNever        CompareFunc = 0x200
	CompareOGLLess         CompareFunc = 0x201
	CompareOGLEqual        CompareFunc = 0x202
	CompareOGLLessEqual    CompareFunc = 0x203
	CompareOGLGreater      CompareFunc = 0x204
	CompareOGLNotEqual     CompareFunc = 0x205
	CompareOGLGreaterEqual CompareFunc = 0x206
	CompareOGLAlways       CompareFunc = 0x207
)

// StencilOp is a stencil operation in either the D3D encoding (1-8)
// or the OpenGL encoding (raw GL constants).
type StencilOp uint32

const (
	StencilD3DKeep          StencilOp = 1
	StencilD3DZero          StencilOp = 2
	StencilD3DReplace       StencilOp = 3
	StencilD3DIncrementSat  StencilOp = 4
	StencilD3DDecrementSat  StencilOp = 5
	StencilD3DInvert        StencilOp = 6
	StencilD3DIncrementWrap StencilOp = 7
	StencilD3DDecrementWrap StencilOp = 8

	StencilOGLZero          StencilOp = 0x0000
	StencilOGLKeep          StencilOp = 0x1E00
	StencilOGLReplace       StencilOp = 0x1E01
	StencilOGLIncrementSat  StencilOp = 0x1E02
	StencilOGLDecrementSat  StencilOp = 0x1E03
	StencilOGLInvert        StencilOp = 0x150A
	StencilOGLIncrementWrap StencilOp = 0x8507
	StencilOGLDecrementWrap StencilOp = 0x8508
)

// BlendOp is a blend equation in either the D3D encoding (1-5) or the
// OpenGL encoding (raw GL constants).
type BlendOp uint32

const (
	BlendOpD3DAdd             BlendOp = 1
	BlendOpD3DSubtract        BlendOp = 2
	BlendOpD3DReverseSubtract BlendOp = 3
	BlendOpD3DMin             BlendOp = 4
	BlendOpD3DMax             BlendOp = 5

	BlendOpOGLAdd             BlendOp = 0x8006
	BlendOpOGLMin             BlendOp = 0x8007
	BlendOpOGLMax             BlendOp = 0x8008
	BlendOpOGLSubtract        BlendOp = 0x800A
	BlendOpOGLReverseSubtract BlendOp = 0x800B
)

// BlendCoeff is a blend factor in either the D3D encoding (1-19) or
// the OpenGL encoding (GL constants offset into the 0x4000 and 0xC000
// ranges).
type BlendCoeff uint32

const (
	BlendCoeffD3DZero          BlendCoeff = 0x01
	BlendCoeffD3DOne           BlendCoeff = 0x02
	BlendCoeffD3DSrcColor      BlendCoeff = 0x03
	BlendCoeffD3DInvSrcColor   BlendCoeff = 0x04
	BlendCoeffD3DSrcAlpha      BlendCoeff = 0x05
	BlendCoeffD3DInvSrcAlpha   BlendCoeff = 0x06
	BlendCoeffD3DDstAlpha      BlendCoeff = 0x07
	BlendCoeffD3DInvDstAlpha   BlendCoeff = 0x08
	BlendCoeffD3DDstColor      BlendCoeff = 0x09
	BlendCoeffD3DInvDstColor   BlendCoeff = 0x0A
	BlendCoeffD3DSrcAlphaSat   BlendCoeff = 0x0B
	BlendCoeffD3DConstColor    BlendCoeff = 0x0E
	BlendCoeffD3DInvConstColor BlendCoeff = 0x0F
	BlendCoeffD3DSrc1Color     BlendCoeff = 0x10
	BlendCoeffD3DInvSrc1Color  BlendCoeff = 0x11
	BlendCoeffD3DSrc1Alpha     BlendCoeff = 0x12
	BlendCoeffD3DInvSrc1Alpha  BlendCoeff = 0x13

	BlendCoeffOGLZero          BlendCoeff = 0x4000
	BlendCoeffOGLOne           BlendCoeff = 0x4001
	BlendCoeffOGLSrcColor      BlendCoeff = 0x4300
	BlendCoeffOGLInvSrcColor   BlendCoeff = 0x4301
	BlendCoeffOGLSrcAlpha      BlendCoeff = 0x4302
	BlendCoeffOGLInvSrcAlpha   BlendCoeff = 0x4303
	BlendCoeffOGLDstAlpha      BlendCoeff = 0x4304
	BlendCoeffOGLInvDstAlpha   BlendCoeff = 0x4305
	BlendCoeffOGLDstColor      BlendCoeff = 0x4306
	BlendCoeffOGLInvDstColor   BlendCoeff = 0x4307
	BlendCoeffOGLSrcAlphaSat   BlendCoeff = 0x4308
	BlendCoeffOGLConstColor    BlendCoeff = 0xC001
	BlendCoeffOGLInvConstColor BlendCoeff = 0xC002
	BlendCoeffOGLConstAlpha    BlendCoeff = 0xC003
	BlendCoeffOGLInvConstAlpha BlendCoeff = 0xC004
	BlendCoeffOGLSrc1Color     BlendCoeff = 0xC900
	BlendCoeffOGLInvSrc1Color  BlendCoeff = 0xC901
	BlendCoeffOGLSrc1Alpha     BlendCoeff = 0xC902
	BlendCoeffOGLInvSrc1Alpha  BlendCoeff = 0xC903
)

// PolygonMode selects fill, line or point rasterization.
type PolygonMode uint32

const (
	PolygonModePoint PolygonMode = 0x1B00
	PolygonModeLine  PolygonMode = 0x1B01
	PolygonModeFill  PolygonMode = 0x1B02
)

// CullFaceMode selects which faces are culled when culling is on.
type CullFaceMode uint32

const (
	CullFaceFront        CullFaceMode = 0x404
	CullFaceBack         CullFaceMode = 0x405
	CullFaceFrontAndBack CullFaceMode = 0x408
)

// FrontFaceMode selects the winding of front faces.
type FrontFaceMode uint32

const (
	FrontFaceCW  FrontFaceMode = 0x900
	FrontFaceCCW FrontFaceMode = 0x901
)

// LogicOp is a framebuffer logic operation, GL encoding.
type LogicOp uint32

const (
	LogicOpClear        LogicOp = 0x1500
	LogicOpAnd          LogicOp = 0x1501
	LogicOpAndReverse   LogicOp = 0x1502
	LogicOpCopy         LogicOp = 0x1503
	LogicOpAndInverted  LogicOp = 0x1504
	LogicOpNoop         LogicOp = 0x1505
	LogicOpXor          LogicOp = 0x1506
	LogicOpOr           LogicOp = 0x1507
	LogicOpNor          LogicOp = 0x1508
	LogicOpEquiv        LogicOp = 0x1509
	LogicOpInvert       LogicOp = 0x150A
	LogicOpOrReverse    LogicOp = 0x150B
	LogicOpCopyInverted LogicOp = 0x150C
	LogicOpOrInverted   LogicOp = 0x150D
	LogicOpNand         LogicOp = 0x150E
	LogicOpSet          LogicOp = 0x150F
)

// DrawTopology is the primitive topology field of the Begin register
// and of the separate PrimitiveTopology state.
type DrawTopology uint32

const (
	TopologyPoints        DrawTopology = 0x0
	TopologyLines         DrawTopology = 0x1
	TopologyLineLoop      DrawTopology = 0x2
	TopologyLineStrip     DrawTopology = 0x3
	TopologyTriangles     DrawTopology = 0x4
	TopologyTriangleStrip DrawTopology = 0x5
	TopologyTriangleFan   DrawTopology = 0x6
	TopologyQuads         DrawTopology = 0x7
	TopologyQuadStrip     DrawTopology = 0x8
	TopologyPolygon       DrawTopology = 0x9
	TopologyLinesAdj      DrawTopology = 0xA
	TopologyLineStripAdj  DrawTopology = 0xB
	TopologyTrianglesAdj  DrawTopology = 0xC
	TopologyTriStripAdj   DrawTopology = 0xD
	TopologyPatch         DrawTopology = 0xE
)

// CTFormat is the color render target format register value.
type CTFormat uint32

const (
	CTFormatDisabled CTFormat = 0x00

	CTFormatRF32GF32BF32AF32 CTFormat = 0xC0
	CTFormatRS32GS32BS32AS32 CTFormat = 0xC1
	CTFormatRU32GU32BU32AU32 CTFormat = 0xC2
	CTFormatRF16GF16BF16AF16 CTFormat = 0xCA
	CTFormatRF32GF32         CTFormat = 0xCB
	CTFormatRS32GS32         CTFormat = 0xCC
	CTFormatRU32GU32         CTFormat = 0xCD
	CTFormatA8R8G8B8         CTFormat = 0xCF
	CTFormatA8RL8GL8BL8      CTFormat = 0xD0
	CTFormatA2B10G10R10      CTFormat = 0xD1
	CTFormatAU2BU10GU10RU10  CTFormat = 0xD2
	CTFormatA8B8G8R8         CTFormat = 0xD5
	CTFormatA8BL8GL8RL8      CTFormat = 0xD6
	CTFormatAN8BN8GN8RN8     CTFormat = 0xD7
	CTFormatAS8BS8GS8RS8     CTFormat = 0xD8
	CTFormatAU8BU8GU8RU8     CTFormat = 0xD9
	CTFormatR16G16           CTFormat = 0xDA
	CTFormatRN16GN16         CTFormat = 0xDB
	CTFormatRS16GS16         CTFormat = 0xDC
	CTFormatRU16GU16         CTFormat = 0xDD
	CTFormatRF16GF16         CTFormat = 0xDE
	CTFormatBF10GF11RF11     CTFormat = 0xE0
	CTFormatRS32             CTFormat = 0xE3
	CTFormatRU32             CTFormat = 0xE4
	CTFormatRF32             CTFormat = 0xE5
	CTFormatX8R8G8B8         CTFormat = 0xE6
	CTFormatR5G6B5           CTFormat = 0xE8
	CTFormatA1R5G5B5         CTFormat = 0xE9
	CTFormatG8R8             CTFormat = 0xEA
	CTFormatGN8RN8           CTFormat = 0xEB
	CTFormatGS8RS8           CTFormat = 0xEC
	CTFormatGU8RU8           CTFormat = 0xED
	CTFormatR16              CTFormat = 0xEE
	CTFormatRN16             CTFormat = 0xEF
	CTFormatRS16             CTFormat = 0xF0
	CTFormatRU16             CTFormat = 0xF1
	CTFormatRF16             CTFormat = 0xF2
	CTFormatR8               CTFormat = 0xF3
	CTFormatRN8              CTFormat = 0xF4
	CTFormatRS8              CTFormat = 0xF5
	CTFormatRU8              CTFormat = 0xF6
	CTFormatA8               CTFormat = 0xF7
	CTFormatX8B8G8R8         CTFormat = 0xF9
)

// ZTFormat is the depth render target format register value.
type ZTFormat uint32

const (
	ZTFormatZF32      ZTFormat = 0x0A
	ZTFormatZ16       ZTFormat = 0x13
	ZTFormatZ24S8     ZTFormat = 0x14
	ZTFormatX8Z24     ZTFormat = 0x15
	ZTFormatS8Z24     ZTFormat = 0x16
	ZTFormatS8        ZTFormat = 0x17
	ZTFormatZF32X24S8 ZTFormat = 0x19
)

// VertexAttrSize is the component layout field of a vertex attribute
// word.
type VertexAttrSize uint32

const (
	VertexAttrSize32x4 VertexAttrSize = 0x01
	VertexAttrSize32x3 VertexAttrSize = 0x02
	VertexAttrSize16x4 VertexAttrSize = 0x03
	VertexAttrSize32x2 VertexAttrSize = 0x04
	VertexAttrSize16x3 VertexAttrSize = 0x05
	VertexAttrSize8x4  VertexAttrSize = 0x0A
	VertexAttrSize16x2 VertexAttrSize = 0x0F
	VertexAttrSize32x1 VertexAttrSize = 0x12
	VertexAttrSize8x3  VertexAttrSize = 0x13
	VertexAttrSize8x2  VertexAttrSize = 0x18
	VertexAttrSize16x1 VertexAttrSize = 0x1B
	VertexAttrSize8x1  VertexAttrSize = 0x1D
	VertexAttrSize10a2 VertexAttrSize = 0x30
	VertexAttrSize11f  VertexAttrSize = 0x31
)

// VertexAttrType is the numerical interpretation field of a vertex
// attribute word.
type VertexAttrType uint32

const (
	VertexAttrTypeNone    VertexAttrType = 0
	VertexAttrTypeSnorm   VertexAttrType = 1
	VertexAttrTypeUnorm   VertexAttrType = 2
	VertexAttrTypeSint    VertexAttrType = 3
	VertexAttrTypeUint    VertexAttrType = 4
	VertexAttrTypeUscaled VertexAttrType = 5
	VertexAttrTypeSscaled VertexAttrType = 6
	VertexAttrTypeFloat   VertexAttrType = 7
)

// IndexFormat is the IndexBufferFormat register value.
type IndexFormat uint32

const (
	IndexFormatUint8  IndexFormat = 0
	IndexFormatUint16 IndexFormat = 1
	IndexFormatUint32 IndexFormat = 2
)

// SemaphoreOp is the operation field of SemaphoreInfo.
type SemaphoreOp uint32

const (
	SemaphoreOpRelease SemaphoreOp = 0
	SemaphoreOpAcquire SemaphoreOp = 1
	SemaphoreOpCounter SemaphoreOp = 2
)

// TessellationDomain is the domain field of TessellationParams.
type TessellationDomain uint32

const (
	TessDomainIsoline  TessellationDomain = 0
	TessDomainTriangle TessellationDomain = 1
	TessDomainQuad     TessellationDomain = 2
)

// TessellationSpacing is the spacing field of TessellationParams.
type TessellationSpacing uint32

const (
	TessSpacingEqual        TessellationSpacing = 0
	TessSpacingFractionOdd  TessellationSpacing = 1
	TessSpacingFractionEven TessellationSpacing = 2
)

// TessellationOutput is the output primitive field of
// TessellationParams.
type TessellationOutput uint32

const (
	TessOutputPoints       TessellationOutput = 0
	TessOutputLines        TessellationOutput = 1
	TessOutputTrianglesCW  TessellationOutput = 2
	TessOutputTrianglesCCW TessellationOutput = 3
)
