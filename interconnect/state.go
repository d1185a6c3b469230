// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gm20b"
	"github.com/gogpu/gm20b/regs"
)

type vertexInputState struct {
	handle handleRef
}

// packAttribute converts one decoded attribute word. Attributes the
// host cannot express are disabled with a warning rather than failing
// the whole draw; stale attribute slots routinely hold garbage.
func packAttribute(i int, va regs.VertexAttributeWord) PackedVertexAttribute {
	if va.Constant || va.Type == regs.VertexAttrTypeNone {
		return PackedVertexAttribute{}
	}
	format, kind, err := convertVertexFormat(va.Size, va.Type)
	if err != nil {
		gm20b.Logger().Warn("disabling vertex attribute", "index", i, "err", err)
		return PackedVertexAttribute{}
	}
	return PackedVertexAttribute{
		Enabled: true,
		Stream:  uint8(va.Stream),
		Offset:  uint16(va.Offset),
		Format:  format,
		Kind:    kind,
	}
}

func (s *vertexInputState) update(ctx *flushContext) error {
	for i := 0; i < regs.VertexStreamCount; i++ {
		vs := ctx.regs.VertexStreamAt(i)
		ctx.packed.SetVertexStreamEnabled(i, vs.Enabled)
		ctx.packed.SetVertexStride(i, vs.Stride)
		ctx.packed.SetVertexStepMode(i, vs.PerInstance)
		if vs.PerInstance {
			ctx.packed.SetVertexDivisor(i, vs.Divisor)
		}
	}
	for i := 0; i < regs.VertexAttributeCount; i++ {
		ctx.packed.SetVertexAttribute(i, packAttribute(i, ctx.regs.VertexAttributeAt(i)))
	}
	return nil
}

type inputAssemblyState struct {
	handle handleRef
}

func (s *inputAssemblyState) update(ctx *flushContext) error {
	ctx.packed.SetPrimitiveRestart(ctx.regs[regs.PrimitiveRestartEnable]&1 != 0)
	if !ctx.regs.UseBeginTopology() {
		topo, quads := convertTopology(regs.DrawTopology(ctx.regs[regs.PrimitiveTopology]))
		ctx.packed.SetTopology(topo, quads)
	}
	return nil
}

type tessellationState struct {
	handle handleRef
}

func (s *tessellationState) update(ctx *flushContext) error {
	ctx.packed.SetPatchSize(ctx.regs[regs.PatchSize])
	t := ctx.regs.Tessellation()
	ctx.packed.TessDomain = TessDomain(t.Domain)
	ctx.packed.TessSpacing = TessSpacing(t.Spacing)
	ctx.packed.TessOutput = TessOutput(t.Output)
	return nil
}

type rasterizationState struct {
	handle handleRef
}

func (s *rasterizationState) update(ctx *flushContext) error {
	r := ctx.regs
	p := ctx.packed

	p.RasterizerDiscard = r[regs.RasterEnable]&1 == 0
	p.FrontPolygonMode = convertPolygonMode(regs.PolygonMode(r[regs.FrontPolygonMode]))
	p.BackPolygonMode = convertPolygonMode(regs.PolygonMode(r[regs.BackPolygonMode]))
	p.CullMode, p.CullDiscardsAll = convertCullFace(r[regs.CullEnable]&1 != 0, regs.CullFaceMode(r[regs.CullFace]))

	front := convertFrontFace(regs.FrontFaceMode(r[regs.FrontFace]))
	// A lower-left window origin flips Y on the host, which inverts
	// winding.
	if r[regs.WindowOriginMode]&1 != 0 {
		if front == gputypes.FrontFaceCW {
			front = gputypes.FrontFaceCCW
		} else {
			front = gputypes.FrontFaceCW
		}
	}
	p.FrontFace = front

	p.ProvokingVertexLast = r[regs.ProvokingVertexIsLast]&1 != 0
	p.DepthBiasPoint = r[regs.PolyOffsetPointEnable]&1 != 0
	p.DepthBiasLine = r[regs.PolyOffsetLineEnable]&1 != 0
	p.DepthBiasFill = r[regs.PolyOffsetFillEnable]&1 != 0
	return nil
}

type depthStencilState struct {
	handle handleRef
}

func convertStencilFace(ops regs.StencilOpsRegs) (hal.StencilFaceState, error) {
	var face hal.StencilFaceState
	var err error
	if face.Compare, err = convertCompareFunc(ops.Func); err != nil {
		return face, err
	}
	if face.FailOp, err = convertStencilOp(ops.Fail); err != nil {
		return face, err
	}
	if face.DepthFailOp, err = convertStencilOp(ops.DepthFail); err != nil {
		return face, err
	}
	if face.PassOp, err = convertStencilOp(ops.Pass); err != nil {
		return face, err
	}
	return face, nil
}

func (s *depthStencilState) update(ctx *flushContext) error {
	r := ctx.regs
	p := ctx.packed

	p.DepthTestEnable = r[regs.DepthTestEnable]&1 != 0
	p.DepthWriteEnable = r[regs.DepthWriteEnable]&1 != 0
	p.DepthBoundsTestEnable = r[regs.DepthBoundsTestEnable]&1 != 0
	if p.DepthTestEnable {
		f, err := convertCompareFunc(regs.CompareFunc(r[regs.DepthFunc]))
		if err != nil {
			return fmt.Errorf("depth func: %w", err)
		}
		p.DepthCompare = f
	} else {
		p.DepthCompare = gputypes.CompareFunctionAlways
	}

	p.StencilEnable = r[regs.StencilTestEnable]&1 != 0
	if !p.StencilEnable {
		p.StencilFront = hal.StencilFaceState{}
		p.StencilBack = hal.StencilFaceState{}
		p.StencilReadMask = 0
		p.StencilWriteMask = 0
		return nil
	}

	front, err := convertStencilFace(r.StencilFront())
	if err != nil {
		return fmt.Errorf("front stencil: %w", err)
	}
	p.StencilFront = front

	// Back faces use their own op group only with two-sided stencil;
	// otherwise they share the front group.
	if r[regs.TwoSidedStencilEnable]&1 != 0 {
		back, err := convertStencilFace(r.StencilBack())
		if err != nil {
			return fmt.Errorf("back stencil: %w", err)
		}
		p.StencilBack = back
	} else {
		p.StencilBack = front
	}

	p.StencilReadMask = r[regs.StencilFrontFuncMask]
	p.StencilWriteMask = r[regs.StencilFrontMask]
	return nil
}

type blendState struct {
	handle handleRef
}

func convertBlendEquation(b regs.BlendRegs, out *PackedColorTarget) error {
	var err error
	if out.ColorOp, err = convertBlendOp(b.ColorOp); err != nil {
		return err
	}
	if out.SrcColor, err = convertBlendCoeff(b.ColorSrc); err != nil {
		return err
	}
	if out.DstColor, err = convertBlendCoeff(b.ColorDst); err != nil {
		return err
	}
	if out.AlphaOp, err = convertBlendOp(b.AlphaOp); err != nil {
		return err
	}
	if out.SrcAlpha, err = convertBlendCoeff(b.AlphaSrc); err != nil {
		return err
	}
	if out.DstAlpha, err = convertBlendCoeff(b.AlphaDst); err != nil {
		return err
	}
	return nil
}

func (s *blendState) update(ctx *flushContext) error {
	r := ctx.regs
	p := ctx.packed

	p.LogicOpEnable = r[regs.LogicOpEnable]&1 != 0
	if p.LogicOpEnable {
		p.LogicOp = convertLogicOp(r[regs.LogicOpFunc])
	} else {
		p.LogicOp = LogicCopy
	}

	singleMask := r[regs.SingleCtWriteControl]&1 != 0
	perTarget := r[regs.BlendStatePerTargetEnable]&1 != 0
	shared := r.BlendShared()

	for i := range p.ColorTargets {
		ct := &p.ColorTargets[i]

		maskIndex := i
		if singleMask {
			maskIndex = 0
		}
		ct.WriteMask = gputypes.ColorWriteMask(r.CtWriteMask(maskIndex))

		ct.BlendEnabled = r[regs.BlendEnable+uint32(i)]&1 != 0
		if !ct.BlendEnabled {
			ct.ColorOp, ct.SrcColor, ct.DstColor = 0, 0, 0
			ct.AlphaOp, ct.SrcAlpha, ct.DstAlpha = 0, 0, 0
			continue
		}
		eq := shared
		if perTarget {
			eq = r.BlendForTarget(i)
		}
		if err := convertBlendEquation(eq, ct); err != nil {
			return fmt.Errorf("color target %d blend: %w", i, err)
		}
	}
	return nil
}

type shaderConfigState struct {
	handle handleRef
}

func (s *shaderConfigState) update(ctx *flushContext) error {
	for i := range ctx.packed.AttributeSkipMask {
		ctx.packed.AttributeSkipMask[i] = ctx.regs[regs.PostVtgShaderAttributeSkipMask+uint32(i)]
	}
	ctx.packed.BindlessTextureSlot = uint8(ctx.regs[regs.BindlessTextureConstantBufferSlot] & 0x1F)
	return nil
}
