// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gm20b"
	"github.com/gogpu/gm20b/regs"
)

// convertCompareFunc maps either hardware encoding of a comparison to
// the canonical function. Both encodings are contiguous, so the map
// is a range check plus an offset.
func convertCompareFunc(f regs.CompareFunc) (gputypes.CompareFunction, error) {
	ordered := [8]gputypes.CompareFunction{
		gputypes.CompareFunctionNever,
		gputypes.CompareFunctionLess,
		gputypes.CompareFunctionEqual,
		gputypes.CompareFunctionLessEqual,
		gputypes.CompareFunctionGreater,
		gputypes.CompareFunctionNotEqual,
		gputypes.CompareFunctionGreaterEqual,
		gputypes.CompareFunctionAlways,
	}
	switch {
	case f >= regs.CompareD3DNever && f <= regs.CompareD3DAlways:
		return ordered[f-regs.CompareD3DNever], nil
	case f >= regs.CompareOGLNever && f <= regs.CompareOGLAlways:
		return ordered[f-regs.CompareOGLNever], nil
	}
	return 0, &UnsupportedError{What: "compare function", Value: uint32(f)}
}

func convertStencilOp(op regs.StencilOp) (hal.StencilOperation, error) {
	switch op {
	case regs.StencilD3DKeep, regs.StencilOGLKeep:
		return hal.StencilOperationKeep, nil
	case regs.StencilD3DZero, regs.StencilOGLZero:
		return hal.StencilOperationZero, nil
	case regs.StencilD3DReplace, regs.StencilOGLReplace:
		return hal.StencilOperationReplace, nil
	case regs.StencilD3DIncrementSat, regs.StencilOGLIncrementSat:
		return hal.StencilOperationIncrementClamp, nil
	case regs.StencilD3DDecrementSat, regs.StencilOGLDecrementSat:
		return hal.StencilOperationDecrementClamp, nil
	case regs.StencilD3DInvert, regs.StencilOGLInvert:
		return hal.StencilOperationInvert, nil
	case regs.StencilD3DIncrementWrap, regs.StencilOGLIncrementWrap:
		return hal.StencilOperationIncrementWrap, nil
	case regs.StencilD3DDecrementWrap, regs.StencilOGLDecrementWrap:
		return hal.StencilOperationDecrementWrap, nil
	}
	return 0, &UnsupportedError{What: "stencil op", Value: uint32(op)}
}

func convertBlendOp(op regs.BlendOp) (gputypes.BlendOperation, error) {
	switch op {
	case regs.BlendOpD3DAdd, regs.BlendOpOGLAdd:
		return gputypes.BlendOperationAdd, nil
	case regs.BlendOpD3DSubtract, regs.BlendOpOGLSubtract:
		return gputypes.BlendOperationSubtract, nil
	case regs.BlendOpD3DReverseSubtract, regs.BlendOpOGLReverseSubtract:
		return gputypes.BlendOperationReverseSubtract, nil
	case regs.BlendOpD3DMin, regs.BlendOpOGLMin:
		return gputypes.BlendOperationMin, nil
	case regs.BlendOpD3DMax, regs.BlendOpOGLMax:
		return gputypes.BlendOperationMax, nil
	}
	return 0, &UnsupportedError{What: "blend op", Value: uint32(op)}
}

func convertBlendCoeff(c regs.BlendCoeff) (gputypes.BlendFactor, error) {
	switch c {
	case regs.BlendCoeffD3DZero, regs.BlendCoeffOGLZero:
		return gputypes.BlendFactorZero, nil
	case regs.BlendCoeffD3DOne, regs.BlendCoeffOGLOne:
		return gputypes.BlendFactorOne, nil
	case regs.BlendCoeffD3DSrcColor, regs.BlendCoeffOGLSrcColor:
		return gputypes.BlendFactorSrc, nil
	case regs.BlendCoeffD3DInvSrcColor, regs.BlendCoeffOGLInvSrcColor:
		return gputypes.BlendFactorOneMinusSrc, nil
	case regs.BlendCoeffD3DSrcAlpha, regs.BlendCoeffOGLSrcAlpha:
		return gputypes.BlendFactorSrcAlpha, nil
	case regs.BlendCoeffD3DInvSrcAlpha, regs.BlendCoeffOGLInvSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha, nil
	case regs.BlendCoeffD3DDstAlpha, regs.BlendCoeffOGLDstAlpha:
		return gputypes.BlendFactorDstAlpha, nil
	case regs.BlendCoeffD3DInvDstAlpha, regs.BlendCoeffOGLInvDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha, nil
	case regs.BlendCoeffD3DDstColor, regs.BlendCoeffOGLDstColor:
		return gputypes.BlendFactorDst, nil
	case regs.BlendCoeffD3DInvDstColor, regs.BlendCoeffOGLInvDstColor:
		return gputypes.BlendFactorOneMinusDst, nil
	case regs.BlendCoeffD3DSrcAlphaSat, regs.BlendCoeffOGLSrcAlphaSat:
		return gputypes.BlendFactorSrcAlphaSaturated, nil
	case regs.BlendCoeffD3DConstColor, regs.BlendCoeffOGLConstColor,
		regs.BlendCoeffOGLConstAlpha:
		return gputypes.BlendFactorConstant, nil
	case regs.BlendCoeffD3DInvConstColor, regs.BlendCoeffOGLInvConstColor,
		regs.BlendCoeffOGLInvConstAlpha:
		return gputypes.BlendFactorOneMinusConstant, nil
	case regs.BlendCoeffD3DSrc1Color, regs.BlendCoeffOGLSrc1Color,
		regs.BlendCoeffD3DInvSrc1Color, regs.BlendCoeffOGLInvSrc1Color,
		regs.BlendCoeffD3DSrc1Alpha, regs.BlendCoeffOGLSrc1Alpha,
		regs.BlendCoeffD3DInvSrc1Alpha, regs.BlendCoeffOGLInvSrc1Alpha:
		// Dual-source blending has no portable equivalent.
		return 0, &UnsupportedError{What: "dual-source blend coefficient", Value: uint32(c)}
	}
	return 0, &UnsupportedError{What: "blend coefficient", Value: uint32(c)}
}

// convertColorTargetFormat maps a color target format register value.
// CTFormatDisabled maps to the undefined format with no error. Formats
// whose channel order the host cannot match exactly degrade to the
// closest layout with a warning.
func convertColorTargetFormat(f regs.CTFormat) (gputypes.TextureFormat, error) {
	switch f {
	case regs.CTFormatDisabled:
		return gputypes.TextureFormatUndefined, nil

	case regs.CTFormatRF32GF32BF32AF32:
		return gputypes.TextureFormatRGBA32Float, nil
	case regs.CTFormatRS32GS32BS32AS32:
		return gputypes.TextureFormatRGBA32Sint, nil
	case regs.CTFormatRU32GU32BU32AU32:
		return gputypes.TextureFormatRGBA32Uint, nil
	case regs.CTFormatRF16GF16BF16AF16:
		return gputypes.TextureFormatRGBA16Float, nil
	case regs.CTFormatRF32GF32:
		return gputypes.TextureFormatRG32Float, nil
	case regs.CTFormatRS32GS32:
		return gputypes.TextureFormatRG32Sint, nil
	case regs.CTFormatRU32GU32:
		return gputypes.TextureFormatRG32Uint, nil
	case regs.CTFormatA8R8G8B8:
		return gputypes.TextureFormatBGRA8Unorm, nil
	case regs.CTFormatA8RL8GL8BL8:
		return gputypes.TextureFormatBGRA8UnormSrgb, nil
	case regs.CTFormatA2B10G10R10:
		return gputypes.TextureFormatRGB10A2Unorm, nil
	case regs.CTFormatAU2BU10GU10RU10:
		return gputypes.TextureFormatRGB10A2Uint, nil
	case regs.CTFormatA8B8G8R8:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case regs.CTFormatA8BL8GL8RL8:
		return gputypes.TextureFormatRGBA8UnormSrgb, nil
	case regs.CTFormatAN8BN8GN8RN8:
		return gputypes.TextureFormatRGBA8Snorm, nil
	case regs.CTFormatAS8BS8GS8RS8:
		return gputypes.TextureFormatRGBA8Sint, nil
	case regs.CTFormatAU8BU8GU8RU8:
		return gputypes.TextureFormatRGBA8Uint, nil
	case regs.CTFormatR16G16:
		return gputypes.TextureFormatRG16Unorm, nil
	case regs.CTFormatRN16GN16:
		return gputypes.TextureFormatRG16Snorm, nil
	case regs.CTFormatRF16GF16:
		return gputypes.TextureFormatRG16Float, nil
	case regs.CTFormatRS16GS16:
		return gputypes.TextureFormatRG16Sint, nil
	case regs.CTFormatRU16GU16:
		return gputypes.TextureFormatRG16Uint, nil
	case regs.CTFormatBF10GF11RF11:
		return gputypes.TextureFormatRG11B10Ufloat, nil
	case regs.CTFormatRS32:
		return gputypes.TextureFormatR32Sint, nil
	case regs.CTFormatRU32:
		return gputypes.TextureFormatR32Uint, nil
	case regs.CTFormatRF32:
		return gputypes.TextureFormatR32Float, nil
	case regs.CTFormatX8R8G8B8:
		// No alpha-less 32-bit layout on the host; alpha writes are
		// masked off by the write mask instead.
		gm20b.Logger().Warn("approximating color target format",
			"format", uint32(f), "using", "BGRA8Unorm")
		return gputypes.TextureFormatBGRA8Unorm, nil
	case regs.CTFormatX8B8G8R8:
		gm20b.Logger().Warn("approximating color target format",
			"format", uint32(f), "using", "RGBA8Unorm")
		return gputypes.TextureFormatRGBA8Unorm, nil
	case regs.CTFormatG8R8:
		return gputypes.TextureFormatRG8Unorm, nil
	case regs.CTFormatGN8RN8:
		return gputypes.TextureFormatRG8Snorm, nil
	case regs.CTFormatGS8RS8:
		return gputypes.TextureFormatRG8Sint, nil
	case regs.CTFormatGU8RU8:
		return gputypes.TextureFormatRG8Uint, nil
	case regs.CTFormatR16:
		return gputypes.TextureFormatR16Unorm, nil
	case regs.CTFormatRN16:
		return gputypes.TextureFormatR16Snorm, nil
	case regs.CTFormatRS16:
		return gputypes.TextureFormatR16Sint, nil
	case regs.CTFormatRU16:
		return gputypes.TextureFormatR16Uint, nil
	case regs.CTFormatRF16:
		return gputypes.TextureFormatR16Float, nil
	case regs.CTFormatR8:
		return gputypes.TextureFormatR8Unorm, nil
	case regs.CTFormatRN8:
		return gputypes.TextureFormatR8Snorm, nil
	case regs.CTFormatRS8:
		return gputypes.TextureFormatR8Sint, nil
	case regs.CTFormatRU8:
		return gputypes.TextureFormatR8Uint, nil
	case regs.CTFormatA8:
		gm20b.Logger().Warn("approximating color target format",
			"format", uint32(f), "using", "R8Unorm")
		return gputypes.TextureFormatR8Unorm, nil
	}
	return gputypes.TextureFormatUndefined,
		&UnsupportedError{What: "color target format", Value: uint32(f)}
}

func convertDepthTargetFormat(f regs.ZTFormat) (gputypes.TextureFormat, error) {
	switch f {
	case regs.ZTFormatZF32:
		return gputypes.TextureFormatDepth32Float, nil
	case regs.ZTFormatZ16:
		return gputypes.TextureFormatDepth16Unorm, nil
	case regs.ZTFormatZ24S8, regs.ZTFormatX8Z24, regs.ZTFormatS8Z24:
		return gputypes.TextureFormatDepth24PlusStencil8, nil
	case regs.ZTFormatS8:
		return gputypes.TextureFormatStencil8, nil
	case regs.ZTFormatZF32X24S8:
		return gputypes.TextureFormatDepth32FloatStencil8, nil
	}
	return gputypes.TextureFormatUndefined,
		&UnsupportedError{What: "depth target format", Value: uint32(f)}
}

// convertTopology maps a hardware topology to the canonical one. The
// mapping is total: topologies the host cannot draw natively degrade
// to the closest list or strip, with the quad conversion flag set for
// the ones the index generator rewrites exactly.
func convertTopology(t regs.DrawTopology) (topo gputypes.PrimitiveTopology, quadConversion bool) {
	switch t {
	case regs.TopologyPoints:
		return gputypes.PrimitiveTopologyPointList, false
	case regs.TopologyLines:
		return gputypes.PrimitiveTopologyLineList, false
	case regs.TopologyLineStrip:
		return gputypes.PrimitiveTopologyLineStrip, false
	case regs.TopologyTriangles:
		return gputypes.PrimitiveTopologyTriangleList, false
	case regs.TopologyTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, false
	case regs.TopologyQuads:
		return gputypes.PrimitiveTopologyTriangleList, true
	case regs.TopologyQuadStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	case regs.TopologyLineLoop:
		gm20b.Logger().Warn("degrading topology", "from", "line loop", "to", "line strip")
		return gputypes.PrimitiveTopologyLineStrip, false
	case regs.TopologyTriangleFan, regs.TopologyPolygon:
		gm20b.Logger().Warn("degrading topology", "from", uint32(t), "to", "triangle strip")
		return gputypes.PrimitiveTopologyTriangleStrip, false
	case regs.TopologyLinesAdj:
		gm20b.Logger().Warn("dropping adjacency", "topology", "lines")
		return gputypes.PrimitiveTopologyLineList, false
	case regs.TopologyLineStripAdj:
		gm20b.Logger().Warn("dropping adjacency", "topology", "line strip")
		return gputypes.PrimitiveTopologyLineStrip, false
	case regs.TopologyTrianglesAdj:
		gm20b.Logger().Warn("dropping adjacency", "topology", "triangles")
		return gputypes.PrimitiveTopologyTriangleList, false
	case regs.TopologyTriStripAdj:
		gm20b.Logger().Warn("dropping adjacency", "topology", "triangle strip")
		return gputypes.PrimitiveTopologyTriangleStrip, false
	case regs.TopologyPatch:
		// Patches reach the host as points; the tessellation stage is
		// emulated downstream.
		return gputypes.PrimitiveTopologyPointList, false
	}
	gm20b.Logger().Warn("unknown topology", "value", uint32(t))
	return gputypes.PrimitiveTopologyTriangleList, false
}

// convertCullFace maps the cull face register to the canonical cull
// mode. Front-and-back culling discards all primitives, which the
// host cull mode cannot express; the second result reports it. The
// mapping is total: invalid values disable culling with a warning.
func convertCullFace(enabled bool, f regs.CullFaceMode) (mode gputypes.CullMode, discardsAll bool) {
	if !enabled {
		return gputypes.CullModeNone, false
	}
	switch f {
	case regs.CullFaceFront:
		return gputypes.CullModeFront, false
	case regs.CullFaceBack:
		return gputypes.CullModeBack, false
	case regs.CullFaceFrontAndBack:
		return gputypes.CullModeNone, true
	}
	gm20b.Logger().Warn("invalid cull face", "value", uint32(f))
	return gputypes.CullModeNone, false
}

// convertFrontFace is total: invalid values select counter-clockwise
// with a warning.
func convertFrontFace(f regs.FrontFaceMode) gputypes.FrontFace {
	switch f {
	case regs.FrontFaceCW:
		return gputypes.FrontFaceCW
	case regs.FrontFaceCCW:
		return gputypes.FrontFaceCCW
	}
	gm20b.Logger().Warn("invalid front face", "value", uint32(f))
	return gputypes.FrontFaceCCW
}

// convertPolygonMode is total: invalid values select fill with a
// warning.
func convertPolygonMode(m regs.PolygonMode) PolygonMode {
	switch m {
	case regs.PolygonModeFill:
		return PolygonFill
	case regs.PolygonModeLine:
		return PolygonLine
	case regs.PolygonModePoint:
		return PolygonPoint
	}
	gm20b.Logger().Warn("invalid polygon mode", "value", uint32(m))
	return PolygonFill
}

// convertLogicOp normalizes the GL logic op encoding. Out-of-range
// values select a no-op with a warning.
func convertLogicOp(v uint32) LogicOpFunc {
	if v >= uint32(regs.LogicOpClear) && v <= uint32(regs.LogicOpSet) {
		return LogicOpFunc(v - uint32(regs.LogicOpClear))
	}
	gm20b.Logger().Warn("invalid logic op", "value", v)
	return LogicNoop
}

// convertVertexFormat maps a vertex attribute layout and numerical
// type to the canonical vertex format plus the scalar kind the shader
// sees. Component counts the host lacks widen to the next supported
// count with a warning; the extra components read past the attribute
// but stay within the stream stride.
func convertVertexFormat(size regs.VertexAttrSize, t regs.VertexAttrType) (gputypes.VertexFormat, ir.ScalarKind, error) {
	kind := ir.ScalarFloat
	switch t {
	case regs.VertexAttrTypeSint:
		kind = ir.ScalarSint
	case regs.VertexAttrTypeUint:
		kind = ir.ScalarUint
	case regs.VertexAttrTypeFloat, regs.VertexAttrTypeSnorm, regs.VertexAttrTypeUnorm:
		kind = ir.ScalarFloat
	case regs.VertexAttrTypeUscaled:
		gm20b.Logger().Warn("degrading vertex type", "from", "uscaled", "to", "uint")
		kind = ir.ScalarUint
	case regs.VertexAttrTypeSscaled:
		gm20b.Logger().Warn("degrading vertex type", "from", "sscaled", "to", "sint")
		kind = ir.ScalarSint
	default:
		return 0, 0, &UnsupportedError{What: "vertex attribute type", Value: uint32(t)}
	}

	widen := func(from, to string, f gputypes.VertexFormat) (gputypes.VertexFormat, ir.ScalarKind, error) {
		gm20b.Logger().Warn("widening vertex format", "from", from, "to", to)
		return f, kind, nil
	}

	switch size {
	case regs.VertexAttrSize32x4:
		switch t {
		case regs.VertexAttrTypeSint:
			return gputypes.VertexFormatSint32x4, kind, nil
		case regs.VertexAttrTypeUint, regs.VertexAttrTypeUscaled:
			return gputypes.VertexFormatUint32x4, kind, nil
		default:
			return gputypes.VertexFormatFloat32x4, kind, nil
		}
	case regs.VertexAttrSize32x3:
		switch t {
		case regs.VertexAttrTypeSint:
			return gputypes.VertexFormatSint32x3, kind, nil
		case regs.VertexAttrTypeUint, regs.VertexAttrTypeUscaled:
			return gputypes.VertexFormatUint32x3, kind, nil
		default:
			return gputypes.VertexFormatFloat32x3, kind, nil
		}
	case regs.VertexAttrSize32x2:
		switch t {
		case regs.VertexAttrTypeSint:
			return gputypes.VertexFormatSint32x2, kind, nil
		case regs.VertexAttrTypeUint, regs.VertexAttrTypeUscaled:
			return gputypes.VertexFormatUint32x2, kind, nil
		default:
			return gputypes.VertexFormatFloat32x2, kind, nil
		}
	case regs.VertexAttrSize32x1:
		switch t {
		case regs.VertexAttrTypeSint:
			return gputypes.VertexFormatSint32, kind, nil
		case regs.VertexAttrTypeUint, regs.VertexAttrTypeUscaled:
			return gputypes.VertexFormatUint32, kind, nil
		default:
			return gputypes.VertexFormatFloat32, kind, nil
		}

	case regs.VertexAttrSize16x4:
		switch t {
		case regs.VertexAttrTypeFloat:
			return gputypes.VertexFormatFloat16x4, kind, nil
		case regs.VertexAttrTypeSnorm:
			return gputypes.VertexFormatSnorm16x4, kind, nil
		case regs.VertexAttrTypeUnorm:
			return gputypes.VertexFormatUnorm16x4, kind, nil
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return gputypes.VertexFormatSint16x4, kind, nil
		default:
			return gputypes.VertexFormatUint16x4, kind, nil
		}
	case regs.VertexAttrSize16x3:
		// Three-component 16-bit layouts are not portable.
		switch t {
		case regs.VertexAttrTypeFloat:
			return widen("float16x3", "float16x4", gputypes.VertexFormatFloat16x4)
		case regs.VertexAttrTypeSnorm:
			return widen("snorm16x3", "snorm16x4", gputypes.VertexFormatSnorm16x4)
		case regs.VertexAttrTypeUnorm:
			return widen("unorm16x3", "unorm16x4", gputypes.VertexFormatUnorm16x4)
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return widen("sint16x3", "sint16x4", gputypes.VertexFormatSint16x4)
		default:
			return widen("uint16x3", "uint16x4", gputypes.VertexFormatUint16x4)
		}
	case regs.VertexAttrSize16x2:
		switch t {
		case regs.VertexAttrTypeFloat:
			return gputypes.VertexFormatFloat16x2, kind, nil
		case regs.VertexAttrTypeSnorm:
			return gputypes.VertexFormatSnorm16x2, kind, nil
		case regs.VertexAttrTypeUnorm:
			return gputypes.VertexFormatUnorm16x2, kind, nil
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return gputypes.VertexFormatSint16x2, kind, nil
		default:
			return gputypes.VertexFormatUint16x2, kind, nil
		}
	case regs.VertexAttrSize16x1:
		switch t {
		case regs.VertexAttrTypeFloat:
			return widen("float16", "float16x2", gputypes.VertexFormatFloat16x2)
		case regs.VertexAttrTypeSnorm:
			return widen("snorm16", "snorm16x2", gputypes.VertexFormatSnorm16x2)
		case regs.VertexAttrTypeUnorm:
			return widen("unorm16", "unorm16x2", gputypes.VertexFormatUnorm16x2)
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return widen("sint16", "sint16x2", gputypes.VertexFormatSint16x2)
		default:
			return widen("uint16", "uint16x2", gputypes.VertexFormatUint16x2)
		}

	case regs.VertexAttrSize8x4:
		switch t {
		case regs.VertexAttrTypeSnorm:
			return gputypes.VertexFormatSnorm8x4, kind, nil
		case regs.VertexAttrTypeUnorm:
			return gputypes.VertexFormatUnorm8x4, kind, nil
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return gputypes.VertexFormatSint8x4, kind, nil
		default:
			return gputypes.VertexFormatUint8x4, kind, nil
		}
	case regs.VertexAttrSize8x3:
		switch t {
		case regs.VertexAttrTypeSnorm:
			return widen("snorm8x3", "snorm8x4", gputypes.VertexFormatSnorm8x4)
		case regs.VertexAttrTypeUnorm:
			return widen("unorm8x3", "unorm8x4", gputypes.VertexFormatUnorm8x4)
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return widen("sint8x3", "sint8x4", gputypes.VertexFormatSint8x4)
		default:
			return widen("uint8x3", "uint8x4", gputypes.VertexFormatUint8x4)
		}
	case regs.VertexAttrSize8x2:
		switch t {
		case regs.VertexAttrTypeSnorm:
			return gputypes.VertexFormatSnorm8x2, kind, nil
		case regs.VertexAttrTypeUnorm:
			return gputypes.VertexFormatUnorm8x2, kind, nil
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return gputypes.VertexFormatSint8x2, kind, nil
		default:
			return gputypes.VertexFormatUint8x2, kind, nil
		}
	case regs.VertexAttrSize8x1:
		switch t {
		case regs.VertexAttrTypeSnorm:
			return widen("snorm8", "snorm8x2", gputypes.VertexFormatSnorm8x2)
		case regs.VertexAttrTypeUnorm:
			return widen("unorm8", "unorm8x2", gputypes.VertexFormatUnorm8x2)
		case regs.VertexAttrTypeSint, regs.VertexAttrTypeSscaled:
			return widen("sint8", "sint8x2", gputypes.VertexFormatSint8x2)
		default:
			return widen("uint8", "uint8x2", gputypes.VertexFormatUint8x2)
		}
	}
	return 0, 0, &UnsupportedError{What: "vertex attribute size", Value: uint32(size)}
}
