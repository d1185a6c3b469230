// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interconnect

import (
	"sync/atomic"

	"github.com/gogpu/gm20b/dirty"
	"github.com/gogpu/gm20b/regs"
)

type handleRef = dirty.Handle

// flushContext carries the inputs of one translator pass.
type flushContext struct {
	regs   *regs.Registers
	packed *PackedPipelineState
	mem    AddressSpace
	views  ViewCache
}

// PipelineState orchestrates the leaf translators over one packed
// snapshot. Translators recompute only when their dirty handle fires;
// the vertex input block is instead kept current by the dispatcher's
// fast-path setters and recomputes only on its initial pass.
type PipelineState struct {
	packed PackedPipelineState

	colorTargets  [PackedColorTargets]colorTargetState
	depthTarget   depthTargetState
	vertexInput   vertexInputState
	inputAssembly inputAssemblyState
	tessellation  tessellationState
	rasterization rasterizationState
	depthStencil  depthStencilState
	blend         blendState
	shaderConfig  shaderConfigState

	stats pipelineStats
}

type pipelineStats struct {
	colorTargets  atomic.Uint64
	depthTarget   atomic.Uint64
	vertexInput   atomic.Uint64
	inputAssembly atomic.Uint64
	tessellation  atomic.Uint64
	rasterization atomic.Uint64
	depthStencil  atomic.Uint64
	blend         atomic.Uint64
	shaderConfig  atomic.Uint64
}

// PipelineStats is a snapshot of per-translator recompute counts.
type PipelineStats struct {
	ColorTargets  uint64
	DepthTarget   uint64
	VertexInput   uint64
	InputAssembly uint64
	Tessellation  uint64
	Rasterization uint64
	DepthStencil  uint64
	Blend         uint64
	ShaderConfig  uint64
}

// NewPipelineState allocates the translator handles on d and binds
// them to their register groups.
func NewPipelineState(d *dirty.Manager) *PipelineState {
	p := &PipelineState{}

	for i := range p.colorTargets {
		s := &p.colorTargets[i]
		s.index = i
		s.handle = d.Allocate()
		d.BindRange(s.handle, regs.ColorTarget+uint32(i)*regs.ColorTargetStride, 9)
	}

	p.depthTarget.handle = d.Allocate()
	d.BindRange(p.depthTarget.handle, regs.DepthTargetAddressHigh, 11)

	// Not bound: kept current by the dispatcher fast paths.
	p.vertexInput.handle = d.Allocate()

	p.inputAssembly.handle = d.Allocate()
	d.Bind(p.inputAssembly.handle,
		regs.PrimitiveRestartEnable, regs.PrimitiveTopology, regs.PrimitiveTopologyControl)

	p.tessellation.handle = d.Allocate()
	d.Bind(p.tessellation.handle, regs.PatchSize, regs.TessellationParams)

	p.rasterization.handle = d.Allocate()
	d.BindRange(p.rasterization.handle, regs.RasterEnable, 12)

	p.depthStencil.handle = d.Allocate()
	d.BindRange(p.depthStencil.handle, regs.DepthTestEnable, 20)

	p.blend.handle = d.Allocate()
	d.Bind(p.blend.handle,
		regs.LogicOpEnable, regs.LogicOpFunc,
		regs.SingleCtWriteControl, regs.BlendStatePerTargetEnable)
	d.BindRange(p.blend.handle, regs.CtWrite, 8)
	d.BindRange(p.blend.handle, regs.BlendEnable, 8)
	d.BindRange(p.blend.handle, regs.Blend, 6)
	d.BindRange(p.blend.handle, regs.BlendPerTarget, 8*regs.BlendPerTargetStride)

	p.shaderConfig.handle = d.Allocate()
	d.BindRange(p.shaderConfig.handle,
		regs.PostVtgShaderAttributeSkipMask, regs.PostVtgShaderAttributeSkipMaskCount)
	d.Bind(p.shaderConfig.handle, regs.BindlessTextureConstantBufferSlot)

	return p
}

// Flush recomputes every dirty translator in a fixed order and
// returns the packed snapshot with the attachment views.
func (p *PipelineState) Flush(r *regs.Registers, d *dirty.Manager, mem AddressSpace, views ViewCache) (*PackedPipelineState, [PackedColorTargets]TextureView, TextureView, error) {
	ctx := &flushContext{regs: r, packed: &p.packed, mem: mem, views: views}
	var colors [PackedColorTargets]TextureView

	for i := range p.colorTargets {
		s := &p.colorTargets[i]
		if d.Consume(s.handle) {
			p.stats.colorTargets.Add(1)
			if err := s.update(ctx); err != nil {
				return nil, colors, nil, err
			}
		}
	}
	if d.Consume(p.depthTarget.handle) {
		p.stats.depthTarget.Add(1)
		if err := p.depthTarget.update(ctx); err != nil {
			return nil, colors, nil, err
		}
	}

	steps := []struct {
		handle  handleRef
		counter *atomic.Uint64
		update  func(*flushContext) error
	}{
		{p.vertexInput.handle, &p.stats.vertexInput, p.vertexInput.update},
		{p.inputAssembly.handle, &p.stats.inputAssembly, p.inputAssembly.update},
		{p.tessellation.handle, &p.stats.tessellation, p.tessellation.update},
		{p.rasterization.handle, &p.stats.rasterization, p.rasterization.update},
		{p.depthStencil.handle, &p.stats.depthStencil, p.depthStencil.update},
		{p.blend.handle, &p.stats.blend, p.blend.update},
		{p.shaderConfig.handle, &p.stats.shaderConfig, p.shaderConfig.update},
	}
	for _, st := range steps {
		if d.Consume(st.handle) {
			st.counter.Add(1)
			if err := st.update(ctx); err != nil {
				return nil, colors, nil, err
			}
		}
	}

	for i := range p.colorTargets {
		colors[i] = p.colorTargets[i].view
	}
	return &p.packed, colors, p.depthTarget.view, nil
}

// ColorTargetForClear refreshes only color target i and returns its
// view, nil when the target is disabled.
func (p *PipelineState) ColorTargetForClear(r *regs.Registers, d *dirty.Manager, mem AddressSpace, views ViewCache, i int) (TextureView, error) {
	s := &p.colorTargets[i]
	if d.Consume(s.handle) {
		p.stats.colorTargets.Add(1)
		if err := s.update(&flushContext{regs: r, packed: &p.packed, mem: mem, views: views}); err != nil {
			return nil, err
		}
	}
	return s.view, nil
}

// DepthTargetForClear refreshes only the depth target and returns its
// view, nil when disabled.
func (p *PipelineState) DepthTargetForClear(r *regs.Registers, d *dirty.Manager, mem AddressSpace, views ViewCache) (TextureView, error) {
	if d.Consume(p.depthTarget.handle) {
		p.stats.depthTarget.Add(1)
		if err := p.depthTarget.update(&flushContext{regs: r, packed: &p.packed, mem: mem, views: views}); err != nil {
			return nil, err
		}
	}
	return p.depthTarget.view, nil
}

// Stats returns a snapshot of the recompute counters.
func (p *PipelineState) Stats() PipelineStats {
	return PipelineStats{
		ColorTargets:  p.stats.colorTargets.Load(),
		DepthTarget:   p.stats.depthTarget.Load(),
		VertexInput:   p.stats.vertexInput.Load(),
		InputAssembly: p.stats.inputAssembly.Load(),
		Tessellation:  p.stats.tessellation.Load(),
		Rasterization: p.stats.rasterization.Load(),
		DepthStencil:  p.stats.depthStencil.Load(),
		Blend:         p.stats.blend.Load(),
		ShaderConfig:  p.stats.shaderConfig.Load(),
	}
}

// Packed exposes the current snapshot without flushing. Callers that
// need coherent state must Flush first.
func (p *PipelineState) Packed() *PackedPipelineState { return &p.packed }

// Fast-path setters, called by the dispatcher when it applies writes
// to vertex input registers or a Begin method. They keep the packed
// state current without a translator pass.

// SetVertexStreamConfig applies a raw stream config word: 12-bit
// stride plus the enable bit.
func (p *PipelineState) SetVertexStreamConfig(i int, raw uint32) {
	p.packed.SetVertexStreamEnabled(i, raw&(1<<12) != 0)
	p.packed.SetVertexStride(i, raw&0xFFF)
}

// SetVertexStreamDivisor applies an instance divisor write.
func (p *PipelineState) SetVertexStreamDivisor(i int, divisor uint32) {
	p.packed.SetVertexDivisor(i, divisor)
}

// SetVertexStreamStepMode applies an instance enable write.
func (p *PipelineState) SetVertexStreamStepMode(i int, perInstance bool) {
	p.packed.SetVertexStepMode(i, perInstance)
}

// SetVertexAttributeWord applies a raw packed attribute write.
func (p *PipelineState) SetVertexAttributeWord(i int, raw uint32) {
	p.packed.SetVertexAttribute(i, packAttribute(i, regs.DecodeVertexAttribute(raw)))
}

// SetBeginTopology applies the topology carried by a Begin method.
func (p *PipelineState) SetBeginTopology(t regs.DrawTopology) {
	topo, quads := convertTopology(t)
	p.packed.SetTopology(topo, quads)
}
