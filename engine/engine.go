// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gm20b"
	"github.com/gogpu/gm20b/dirty"
	"github.com/gogpu/gm20b/interconnect"
	"github.com/gogpu/gm20b/regs"
)

// SyncpointPool receives syncpoint increments requested by the
// command stream.
type SyncpointPool interface {
	Increment(id uint32)
}

// MacroExecutor runs a loaded macro program. Methods the macro emits
// come back through the engine.
type MacroExecutor interface {
	Execute(code []uint32, start uint32, arg uint32, call func(method, arg uint32) error) error
}

// constantBufferBatch accumulates consecutive constant buffer data
// writes into one bulk load. Any other method flushes it.
type constantBufferBatch struct {
	active bool
	start  uint32
	words  []uint32
}

// deferredDraw accumulates draw methods until a non-draw method or an
// explicit flush forces submission. Subsequent Begin methods extend
// the pending draw by one instance. All parameters are captured when
// the draw count arrives; later register writes cannot rewrite a
// pending draw.
type deferredDraw struct {
	pending       bool
	indexed       bool
	first         uint32
	count         uint32
	instanceCount uint32
	baseVertex    uint32
	baseInstance  uint32
	topology      regs.DrawTopology
	// coalescing marks a subsequent Begin, whose repeated draw count
	// methods must not restart the accumulated draw.
	coalescing bool
}

// Engine is one GM20B 3D-class engine instance.
type Engine struct {
	registers regs.Registers
	shadow    regs.Registers

	dirty *dirty.Manager
	ic    *interconnect.Interconnect
	mem   interconnect.AddressSpace
	sync  SyncpointPool
	macro MacroExecutor

	macroCode       [macroCodeWords]uint32
	macroPositions  [macroPositionCount]uint32
	macroCodeCursor uint32
	macroPosCursor  uint32
	// macroSlot holds the selected macro between the bind and argument
	// writes of the call window.
	macroSlot uint32

	cbuf constantBufferBatch
	draw deferredDraw
	i2m  inlineTransfer
	// beginTopology is the topology of the last fresh Begin, recorded
	// into the deferred draw for mismatch detection.
	beginTopology regs.DrawTopology

	// now supplies semaphore timestamps, injectable for tests.
	now func() uint64
}

// Options configures optional Engine collaborators.
type Options struct {
	// Sync receives syncpoint increments. Nil drops them with a
	// debug log.
	Sync SyncpointPool
	// Macro executes loaded macro programs. Nil warns on macro calls.
	Macro MacroExecutor
	// Now supplies semaphore timestamps. Nil uses wall-clock
	// nanoseconds.
	Now func() uint64
}

// New returns an engine over the given guest memory, view cache and
// work submitter.
func New(mem interconnect.AddressSpace, views interconnect.ViewCache, submit interconnect.Submitter, opts Options) *Engine {
	d := dirty.NewManager(regs.Count)
	e := &Engine{
		dirty: d,
		ic:    interconnect.New(mem, views, submit, d),
		mem:   mem,
		sync:  opts.Sync,
		macro: opts.Macro,
		now:   opts.Now,
	}
	if e.now == nil {
		e.now = func() uint64 { return uint64(time.Now().UnixNano()) }
	}
	e.initializeRegisters()
	return e
}

// Interconnect exposes the translation layer, mainly for stats.
func (e *Engine) Interconnect() *interconnect.Interconnect { return e.ic }

// Registers exposes the live register bank read-only.
func (e *Engine) Registers() *regs.Registers { return &e.registers }

// initializeRegisters applies the hardware reset values the guest
// relies on without writing them.
func (e *Engine) initializeRegisters() {
	r := &e.registers
	r[regs.RasterEnable] = 1
	r[regs.FrontPolygonMode] = uint32(regs.PolygonModeFill)
	r[regs.BackPolygonMode] = uint32(regs.PolygonModeFill)
	r[regs.CullFace] = uint32(regs.CullFaceBack)
	r[regs.FrontFace] = uint32(regs.FrontFaceCCW)
	r[regs.DepthFunc] = uint32(regs.CompareOGLAlways)
	r[regs.PrimitiveTopologyControl] = 1 // topology comes from Begin

	for _, base := range [2]uint32{regs.StencilFrontOps, regs.StencilBackOps} {
		r[base] = uint32(regs.StencilOGLKeep)
		r[base+1] = uint32(regs.StencilOGLKeep)
		r[base+2] = uint32(regs.StencilOGLKeep)
		r[base+3] = uint32(regs.CompareOGLAlways)
	}
	r[regs.StencilFrontFuncMask] = 0xFF
	r[regs.StencilFrontMask] = 0xFF
	r[regs.StencilBackFuncMask] = 0xFF
	r[regs.StencilBackMask] = 0xFF

	for i := uint32(0); i < 8; i++ {
		r[regs.CtWrite+i] = 1<<0 | 1<<4 | 1<<8 | 1<<12
	}
	blendDefaults := func(base uint32) {
		r[base] = uint32(regs.BlendOpOGLAdd)
		r[base+1] = uint32(regs.BlendCoeffOGLOne)
		r[base+2] = uint32(regs.BlendCoeffOGLZero)
		r[base+3] = uint32(regs.BlendOpOGLAdd)
		r[base+4] = uint32(regs.BlendCoeffOGLOne)
		r[base+5] = uint32(regs.BlendCoeffOGLZero)
	}
	blendDefaults(regs.Blend)
	for i := uint32(0); i < 8; i++ {
		blendDefaults(regs.BlendPerTarget + i*regs.BlendPerTargetStride)
	}
}

// CallMethod dispatches one method.
func (e *Engine) CallMethod(method, arg uint32) error {
	if method >= regs.Count {
		return fmt.Errorf("engine: method %#x out of range", method)
	}

	// Shadow control is handled before anything can observe it.
	if method == regs.ShadowRAMControl {
		e.registers[method] = arg
		e.shadow[method] = arg
		return nil
	}
	switch regs.ShadowMode(e.registers[regs.ShadowRAMControl]) {
	case regs.ShadowTrack, regs.ShadowTrackWithFilter:
		e.shadow[method] = arg
	case regs.ShadowReplay:
		arg = e.shadow[method]
	}

	// Constant buffer data writes accumulate into the batch and never
	// touch redundancy suppression. Any other method flushes an active
	// batch before it is processed. A pending draw must land before
	// the buffer it read from changes.
	if method >= regs.LoadConstantBufferData &&
		method < regs.LoadConstantBufferData+regs.LoadConstantBufferDataCount {
		if !e.cbuf.active && e.draw.pending {
			if err := e.flushDeferredDraw(); err != nil {
				return err
			}
		}
		return e.batchConstantBufferWord(arg)
	}
	if e.cbuf.active {
		if err := e.flushConstantBufferBatch(); err != nil {
			return err
		}
	}

	// A pending draw survives only across draw-related methods.
	if e.draw.pending && !isDrawMethod(method) {
		if err := e.flushDeferredDraw(); err != nil {
			return err
		}
	}

	if e.registers[method] == arg && !hasSideEffect(method) {
		return nil
	}
	e.registers[method] = arg
	e.dirty.MarkDirty(method)

	return e.sideEffect(method, arg)
}

// CallMethodBatchNonInc dispatches a non-incrementing batch: every
// argument targets the same method. Inline data and constant buffer
// loads take bulk paths; anything else degrades to per-word dispatch.
func (e *Engine) CallMethodBatchNonInc(method uint32, args []uint32) error {
	switch {
	case method == regs.InlineLoadData:
		if e.cbuf.active {
			if err := e.flushConstantBufferBatch(); err != nil {
				return err
			}
		}
		if e.draw.pending {
			if err := e.flushDeferredDraw(); err != nil {
				return err
			}
		}
		return e.i2mLoad(args)
	case method >= regs.LoadConstantBufferData &&
		method < regs.LoadConstantBufferData+regs.LoadConstantBufferDataCount:
		if !e.cbuf.active && e.draw.pending {
			if err := e.flushDeferredDraw(); err != nil {
				return err
			}
		}
		for _, arg := range args {
			if err := e.batchConstantBufferWord(arg); err != nil {
				return err
			}
		}
		return nil
	}
	for _, arg := range args {
		if err := e.CallMethod(method, arg); err != nil {
			return err
		}
	}
	return nil
}

// Flush emits any accumulated constant buffer batch and deferred draw
// and flushes the submitter. Called at command stream boundaries.
func (e *Engine) Flush() error {
	if e.cbuf.active {
		if err := e.flushConstantBufferBatch(); err != nil {
			return err
		}
	}
	if e.draw.pending {
		if err := e.flushDeferredDraw(); err != nil {
			return err
		}
	}
	return e.ic.Submit()
}

// isDrawMethod reports the methods a pending draw survives across.
// Start and base index registers are not among them: the pending draw
// captured them already, and a new value belongs to the next draw.
func isDrawMethod(method uint32) bool {
	switch method {
	case regs.Begin, regs.End,
		regs.DrawVertexArrayCount, regs.DrawIndexBufferCount:
		return true
	}
	return false
}

// hasSideEffect reports methods that must run even when the argument
// matches the stored value.
func hasSideEffect(method uint32) bool {
	switch method {
	case regs.SyncpointAction, regs.SemaphoreInfo, regs.ClearSurface,
		regs.Begin, regs.End,
		regs.DrawVertexArrayCount, regs.DrawIndexBufferCount,
		regs.MacroInstructionRAMPointer, regs.MacroInstructionRAMLoad,
		regs.MacroStartAddressRAMPointer, regs.MacroStartAddressRAMLoad,
		regs.InlineLaunchDMA, regs.InlineLoadData,
		regs.LoadConstantBufferOffset,
		regs.FirmwareCall + 4:
		return true
	}
	if method >= regs.MacroCall && method < regs.MacroCall+regs.MacroCallCount {
		return true
	}
	if method >= regs.BindGroupConstantBuffer && method < regs.BindGroupConstantBuffer+regs.PipelineStageCount {
		return true
	}
	return false
}

func (e *Engine) sideEffect(method, arg uint32) error {
	switch method {
	case regs.SyncpointAction:
		return e.syncpointAction(arg)
	case regs.SemaphoreInfo:
		return e.semaphore(arg)
	case regs.ClearSurface:
		return e.ic.Clear(&e.registers, e.dirty, regs.DecodeClearSurface(arg))

	case regs.Begin:
		return e.handleBegin(regs.DecodeBegin(arg))
	case regs.End:
		return nil // the draw stays pending for instance coalescing
	case regs.DrawVertexArrayCount:
		return e.recordDraw(false, e.registers[regs.VertexArrayStart], arg)
	case regs.DrawIndexBufferCount:
		return e.recordDraw(true, e.registers[regs.IndexBufferFirst], arg)

	case regs.MacroInstructionRAMPointer:
		e.macroCodeCursor = arg
		return nil
	case regs.MacroInstructionRAMLoad:
		return e.macroLoadCode(arg)
	case regs.MacroStartAddressRAMPointer:
		e.macroPosCursor = arg
		return nil
	case regs.MacroStartAddressRAMLoad:
		return e.macroLoadPosition(arg)

	case regs.InlineLaunchDMA:
		e.i2mLaunch()
		return nil
	case regs.InlineLoadData:
		return e.i2mLoad([]uint32{arg})

	case regs.FirmwareCall + 4:
		// The only modelled firmware call acknowledges through the
		// scratch register.
		e.registers[regs.FirmwareScratch] = 1
		return nil
	}

	if method >= regs.MacroCall && method < regs.MacroCall+regs.MacroCallCount {
		return e.macroCallWindow(method-regs.MacroCall, arg)
	}
	if method >= regs.BindGroupConstantBuffer && method < regs.BindGroupConstantBuffer+regs.PipelineStageCount {
		return e.bindConstantBuffer(int(method-regs.BindGroupConstantBuffer), arg)
	}

	e.vertexFastPath(method, arg)
	return nil
}

// vertexFastPath forwards vertex input register writes straight into
// the packed state, skipping a full translator pass.
func (e *Engine) vertexFastPath(method, arg uint32) {
	p := e.ic.Pipeline()
	switch {
	case method >= regs.VertexStream && method < regs.VertexStream+regs.VertexStreamCount*regs.VertexStreamStride:
		i := int(method-regs.VertexStream) / regs.VertexStreamStride
		switch (method - regs.VertexStream) % regs.VertexStreamStride {
		case 0:
			p.SetVertexStreamConfig(i, arg)
		case 3:
			p.SetVertexStreamDivisor(i, arg)
		}
	case method >= regs.VertexStreamInstance && method < regs.VertexStreamInstance+regs.VertexStreamCount:
		p.SetVertexStreamStepMode(int(method-regs.VertexStreamInstance), arg&1 != 0)
	case method >= regs.VertexAttribute && method < regs.VertexAttribute+regs.VertexAttributeCount:
		p.SetVertexAttributeWord(int(method-regs.VertexAttribute), arg)
	}
}

func (e *Engine) handleBegin(info regs.BeginInfo) error {
	if info.Subsequent && e.draw.pending {
		// One more instance of the same draw. A topology change here
		// is an inconsistency the guest should not produce; the
		// recorded topology stands.
		if info.Topology != e.draw.topology {
			gm20b.Logger().Warn("topology changed in a coalesced draw",
				"recorded", uint32(e.draw.topology), "got", uint32(info.Topology))
		}
		e.draw.instanceCount++
		e.draw.coalescing = true
		return nil
	}
	if e.draw.pending {
		if err := e.flushDeferredDraw(); err != nil {
			return err
		}
	}
	if e.registers.UseBeginTopology() {
		e.ic.Pipeline().SetBeginTopology(info.Topology)
	}
	e.beginTopology = info.Topology
	return nil
}

func (e *Engine) recordDraw(indexed bool, first, count uint32) error {
	if e.draw.pending && e.draw.coalescing {
		// Draw parameters must repeat exactly under coalescing. A
		// mismatch is an inconsistency; the first recorded values
		// stand for every accumulated instance.
		if e.draw.indexed != indexed || e.draw.first != first || e.draw.count != count {
			gm20b.Logger().Warn("draw parameters changed in a coalesced draw",
				"recordedCount", e.draw.count, "got", count)
		}
		return nil
	}
	e.draw = deferredDraw{
		pending:       true,
		indexed:       indexed,
		first:         first,
		count:         count,
		instanceCount: 1,
		baseVertex:    e.registers[regs.GlobalBaseVertexIndex],
		baseInstance:  e.registers[regs.GlobalBaseInstanceIndex],
		topology:      e.beginTopology,
	}
	return nil
}

func (e *Engine) flushDeferredDraw() error {
	d := e.draw
	e.draw = deferredDraw{}

	call := interconnect.DrawCall{
		Indexed:       d.indexed,
		First:         d.first,
		Count:         d.count,
		InstanceCount: d.instanceCount,
		BaseVertex:    int32(d.baseVertex),
		BaseInstance:  d.baseInstance,
	}
	if d.indexed {
		switch regs.IndexFormat(e.registers[regs.IndexBufferFormat]) {
		case regs.IndexFormatUint16:
			call.IndexFormat = gputypes.IndexFormatUint16
		case regs.IndexFormatUint32:
			call.IndexFormat = gputypes.IndexFormatUint32
		default:
			// 8-bit indices widen on upload; report them as 16-bit.
			gm20b.Logger().Warn("widening 8-bit index buffer")
			call.IndexFormat = gputypes.IndexFormatUint16
		}
	}
	gm20b.Logger().Debug("draw",
		"indexed", d.indexed, "count", d.count, "instances", d.instanceCount)
	return e.ic.Draw(&e.registers, e.dirty, call)
}

// batchConstantBufferWord appends one data word. The first word of a
// batch records the current load offset; selector registers cannot
// change under an active batch, so the size bound holds for the whole
// accumulation.
func (e *Engine) batchConstantBufferWord(word uint32) error {
	if !e.cbuf.active {
		e.cbuf.active = true
		e.cbuf.start = e.registers[regs.LoadConstantBufferOffset]
		e.cbuf.words = e.cbuf.words[:0]
	}
	_, size := e.registers.ConstantBufferSelector()
	if uint64(e.cbuf.start)+uint64(len(e.cbuf.words)+1)*4 > uint64(size) {
		return fmt.Errorf("engine: constant buffer load at offset %#x exceeds size %#x",
			e.cbuf.start, size)
	}
	e.cbuf.words = append(e.cbuf.words, word)
	return nil
}

func (e *Engine) flushConstantBufferBatch() error {
	words := e.cbuf.words
	e.cbuf.active = false
	if len(words) == 0 {
		return nil
	}
	addr, _ := e.registers.ConstantBufferSelector()
	if err := e.ic.LoadConstantBuffer(addr, e.cbuf.start, words); err != nil {
		return err
	}
	e.registers[regs.LoadConstantBufferOffset] = e.cbuf.start + uint32(len(words))*4
	return nil
}

func (e *Engine) bindConstantBuffer(stage int, arg uint32) error {
	if arg&1 == 0 {
		return nil
	}
	addr, size := e.registers.ConstantBufferSelector()
	return e.ic.BindConstantBuffer(interconnect.ConstantBufferBinding{
		Stage:   stage,
		Slot:    arg >> 4 & 0x1F,
		Address: addr,
		Size:    size,
	})
}

func (e *Engine) syncpointAction(arg uint32) error {
	id := arg & 0xFFF
	if arg&(1<<16) == 0 {
		return nil
	}
	if e.sync == nil {
		gm20b.Logger().Debug("dropping syncpoint increment", "id", id)
		return nil
	}
	// Wait for outstanding work before signalling.
	if err := e.Flush(); err != nil {
		return err
	}
	e.sync.Increment(id)
	return nil
}
