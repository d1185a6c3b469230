// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/gogpu/gm20b/interconnect"
	"github.com/gogpu/gm20b/regs"
)

type memWrite struct {
	addr uint64
	size int
}

type fakeMem struct {
	data   []byte
	writes []memWrite
}

func newFakeMem(size int) *fakeMem { return &fakeMem{data: make([]byte, size)} }

func (m *fakeMem) TranslateRange(addr, size uint64) ([][]byte, error) {
	if addr+size > uint64(len(m.data)) {
		return nil, fmt.Errorf("range %#x+%#x out of bounds", addr, size)
	}
	return [][]byte{m.data[addr : addr+size]}, nil
}

func (m *fakeMem) Write(addr uint64, p []byte) error {
	if addr+uint64(len(p)) > uint64(len(m.data)) {
		return fmt.Errorf("write %#x+%#x out of bounds", addr, len(p))
	}
	copy(m.data[addr:], p)
	m.writes = append(m.writes, memWrite{addr: addr, size: len(p)})
	return nil
}

func (m *fakeMem) u32(addr uint64) uint32 { return binary.LittleEndian.Uint32(m.data[addr:]) }
func (m *fakeMem) u64(addr uint64) uint64 { return binary.LittleEndian.Uint64(m.data[addr:]) }

type fakeView struct{}

func (fakeView) Destroy() {}

type fakeViews struct{}

func (fakeViews) FindOrCreate(interconnect.ViewDescriptor, [][]byte) (interconnect.TextureView, error) {
	return fakeView{}, nil
}

type fakeSubmit struct {
	draws   []interconnect.DrawCall
	clears  []interconnect.ClearOp
	binds   []interconnect.ConstantBufferBinding
	updates int
	submits int
}

func (s *fakeSubmit) Draw(_ *interconnect.PackedPipelineState, _ [interconnect.PackedColorTargets]interconnect.TextureView, _ interconnect.TextureView, call interconnect.DrawCall) error {
	s.draws = append(s.draws, call)
	return nil
}
func (s *fakeSubmit) Clear(op interconnect.ClearOp) error {
	s.clears = append(s.clears, op)
	return nil
}
func (s *fakeSubmit) BindConstantBuffer(b interconnect.ConstantBufferBinding) error {
	s.binds = append(s.binds, b)
	return nil
}
func (s *fakeSubmit) ConstantBufferUpdated(uint64, uint32) { s.updates++ }
func (s *fakeSubmit) Submit() error                        { s.submits++; return nil }

type fakeSync struct {
	incs []uint32
}

func (s *fakeSync) Increment(id uint32) { s.incs = append(s.incs, id) }

func newTestEngine(t *testing.T) (*Engine, *fakeMem, *fakeSubmit, *fakeSync) {
	t.Helper()
	mem := newFakeMem(16 << 20)
	sub := &fakeSubmit{}
	sync := &fakeSync{}
	e := New(mem, fakeViews{}, sub, Options{
		Sync: sync,
		Now:  func() uint64 { return 0xCAFEBABE_12345678 },
	})
	return e, mem, sub, sync
}

func call(t *testing.T, e *Engine, method, arg uint32) {
	t.Helper()
	if err := e.CallMethod(method, arg); err != nil {
		t.Fatalf("CallMethod(%#x, %#x): %v", method, arg, err)
	}
}

func TestShadowModes(t *testing.T) {
	e, _, _, _ := newTestEngine(t)

	// Track records into the shadow bank.
	call(t, e, regs.ShadowRAMControl, uint32(regs.ShadowTrack))
	call(t, e, regs.DepthFunc, uint32(regs.CompareOGLLess))

	// Passthrough leaves the shadow bank alone.
	call(t, e, regs.ShadowRAMControl, uint32(regs.ShadowPassthrough))
	call(t, e, regs.DepthFunc, uint32(regs.CompareOGLGreater))

	// Replay overrides the incoming argument with the shadow value.
	call(t, e, regs.ShadowRAMControl, uint32(regs.ShadowReplay))
	call(t, e, regs.DepthFunc, uint32(regs.CompareOGLAlways))

	if got := e.Registers()[regs.DepthFunc]; got != uint32(regs.CompareOGLLess) {
		t.Errorf("replayed depth func = %#x, want tracked %#x", got, uint32(regs.CompareOGLLess))
	}
}

func submitDraw(t *testing.T, e *Engine, count uint32) {
	t.Helper()
	call(t, e, regs.Begin, uint32(regs.TopologyTriangles))
	call(t, e, regs.DrawVertexArrayCount, count)
	call(t, e, regs.End, 0)
}

func TestRedundantWriteSuppression(t *testing.T) {
	e, _, _, _ := newTestEngine(t)

	submitDraw(t, e, 3)
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}
	base := e.Interconnect().Pipeline().Stats()

	// Same value: no dirty, no recompute on the next draw.
	call(t, e, regs.CullFace, uint32(regs.CullFaceBack))
	submitDraw(t, e, 3)
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := e.Interconnect().Pipeline().Stats(); got.Rasterization != base.Rasterization {
		t.Errorf("redundant write triggered a recompute")
	}

	// New value: exactly the bound translator reruns.
	call(t, e, regs.CullFace, uint32(regs.CullFaceFront))
	submitDraw(t, e, 3)
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}
	got := e.Interconnect().Pipeline().Stats()
	if got.Rasterization != base.Rasterization+1 {
		t.Errorf("rasterization recomputes = %d, want %d", got.Rasterization, base.Rasterization+1)
	}
	if got.DepthStencil != base.DepthStencil {
		t.Errorf("unrelated translator recomputed")
	}
}

func TestInstancedDrawCoalescing(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	submitDraw(t, e, 6)
	const extra = 4
	for i := 0; i < extra; i++ {
		call(t, e, regs.Begin, uint32(regs.TopologyTriangles)|1<<26)
		call(t, e, regs.DrawVertexArrayCount, 6)
		call(t, e, regs.End, 0)
	}
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}

	if len(sub.draws) != 1 {
		t.Fatalf("draws = %d, want 1 coalesced draw", len(sub.draws))
	}
	if got := sub.draws[0].InstanceCount; got != extra+1 {
		t.Errorf("instance count = %d, want %d", got, extra+1)
	}
	if sub.draws[0].Count != 6 || sub.draws[0].Indexed {
		t.Errorf("draw = %+v, want non-indexed count 6", sub.draws[0])
	}
}

func TestNonDrawMethodFlushesPendingDraw(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	submitDraw(t, e, 3)
	if len(sub.draws) != 0 {
		t.Fatal("draw submitted before a flush boundary")
	}
	// Any unrelated method forces the pending draw out.
	call(t, e, regs.DepthTestEnable, 1)
	if len(sub.draws) != 1 {
		t.Fatalf("draws = %d after non-draw method, want 1", len(sub.draws))
	}
}

func TestIndexedDrawParameters(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	call(t, e, regs.IndexBufferFormat, uint32(regs.IndexFormatUint32))
	call(t, e, regs.IndexBufferFirst, 12)
	call(t, e, regs.GlobalBaseVertexIndex, 100)
	call(t, e, regs.GlobalBaseInstanceIndex, 2)
	call(t, e, regs.Begin, uint32(regs.TopologyTriangles))
	call(t, e, regs.DrawIndexBufferCount, 36)
	call(t, e, regs.End, 0)
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}

	if len(sub.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(sub.draws))
	}
	d := sub.draws[0]
	if !d.Indexed || d.First != 12 || d.Count != 36 {
		t.Errorf("draw = %+v, want indexed first 12 count 36", d)
	}
	if d.BaseVertex != 100 || d.BaseInstance != 2 {
		t.Errorf("bases = %d/%d, want 100/2", d.BaseVertex, d.BaseInstance)
	}
}

func TestCoalescedDrawKeepsFirstParameters(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	submitDraw(t, e, 3)
	// A subsequent draw whose count disagrees is inconsistent; the
	// first recorded parameters stand and the instance still counts.
	call(t, e, regs.Begin, uint32(regs.TopologyTriangles)|1<<26)
	call(t, e, regs.DrawVertexArrayCount, 5)
	call(t, e, regs.End, 0)
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}

	if len(sub.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(sub.draws))
	}
	d := sub.draws[0]
	if d.Count != 3 || d.InstanceCount != 2 {
		t.Errorf("draw = count %d instances %d, want count 3 instances 2", d.Count, d.InstanceCount)
	}
}

func TestPendingDrawCapturesBaseRegisters(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	call(t, e, regs.GlobalBaseVertexIndex, 10)
	call(t, e, regs.Begin, uint32(regs.TopologyTriangles))
	call(t, e, regs.DrawVertexArrayCount, 3)
	call(t, e, regs.End, 0)
	// A new base value belongs to the next draw, not the pending one.
	call(t, e, regs.GlobalBaseVertexIndex, 99)

	if len(sub.draws) != 1 {
		t.Fatalf("draws = %d after base register write, want 1 flushed", len(sub.draws))
	}
	if got := sub.draws[0].BaseVertex; got != 10 {
		t.Errorf("base vertex = %d, want captured 10", got)
	}
}

func TestConstantBufferLoadFlushesPendingDraw(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	call(t, e, regs.ConstantBufferSelectorSize, 0x1000)
	call(t, e, regs.ConstantBufferSelectorAddressLow, 0x8000)

	submitDraw(t, e, 3)
	// The first data word of a buffer load lands after the draw; the
	// draw must go out before the buffer changes under it.
	call(t, e, regs.LoadConstantBufferData, 0x11)
	if len(sub.draws) != 1 {
		t.Fatalf("draws = %d after buffer data write, want 1 flushed first", len(sub.draws))
	}
	if sub.updates != 0 {
		t.Fatal("buffer update emitted before the batch boundary")
	}
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}
	if sub.updates != 1 {
		t.Errorf("updates = %d, want 1", sub.updates)
	}
}

func TestConstantBufferBatchCoalescing(t *testing.T) {
	e, mem, sub, _ := newTestEngine(t)

	call(t, e, regs.ConstantBufferSelectorSize, 0x1000)
	call(t, e, regs.ConstantBufferSelectorAddressLow, 0x8000)
	call(t, e, regs.LoadConstantBufferOffset, 0x40)

	words := []uint32{1, 2, 3, 4, 5}
	for _, w := range words {
		call(t, e, regs.LoadConstantBufferData, w)
	}
	if sub.updates != 0 {
		t.Fatal("batch emitted before a flush boundary")
	}

	// Any unrelated method flushes the accumulated batch as one load.
	call(t, e, regs.DepthTestEnable, 1)
	for i, w := range words {
		if got := mem.u32(0x8040 + uint64(i)*4); got != w {
			t.Errorf("word %d = %#x, want %#x", i, got, w)
		}
	}
	if got := e.Registers()[regs.LoadConstantBufferOffset]; got != 0x40+uint32(len(words))*4 {
		t.Errorf("offset = %#x, want advanced to %#x", got, 0x40+len(words)*4)
	}
	if sub.updates != 1 {
		t.Errorf("batch produced %d update notifications, want 1", sub.updates)
	}
}

func TestConstantBufferBatchEntryPoint(t *testing.T) {
	e, mem, sub, _ := newTestEngine(t)

	call(t, e, regs.ConstantBufferSelectorSize, 0x1000)
	call(t, e, regs.ConstantBufferSelectorAddressLow, 0x8000)

	if err := e.CallMethodBatchNonInc(regs.LoadConstantBufferData, []uint32{7, 8}); err != nil {
		t.Fatal(err)
	}
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}
	if mem.u32(0x8000) != 7 || mem.u32(0x8004) != 8 {
		t.Errorf("words = %#x %#x, want 7 8", mem.u32(0x8000), mem.u32(0x8004))
	}
	if sub.updates != 1 {
		t.Errorf("updates = %d, want 1", sub.updates)
	}

	// Overflowing the declared size fails on append.
	call(t, e, regs.LoadConstantBufferOffset, 0xFFC)
	if err := e.CallMethodBatchNonInc(regs.LoadConstantBufferData, []uint32{1, 2}); err == nil {
		t.Error("load past the buffer size did not fail")
	}
}

func TestBindConstantBuffer(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	call(t, e, regs.ConstantBufferSelectorSize, 0x200)
	call(t, e, regs.ConstantBufferSelectorAddressLow, 0x4000)
	call(t, e, regs.BindGroupConstantBuffer+2, 1|5<<4)

	if len(sub.binds) != 1 {
		t.Fatalf("binds = %d, want 1", len(sub.binds))
	}
	b := sub.binds[0]
	if b.Stage != 2 || b.Slot != 5 || b.Address != 0x4000 || b.Size != 0x200 {
		t.Errorf("bind = %+v", b)
	}

	// A disabled bind word is dropped.
	call(t, e, regs.BindGroupConstantBuffer+3, 0)
	if len(sub.binds) != 1 {
		t.Error("disabled bind was forwarded")
	}
}

func TestSemaphoreFourWordOrdering(t *testing.T) {
	e, mem, _, _ := newTestEngine(t)

	call(t, e, regs.SemaphoreAddressLow, 0x9000)
	call(t, e, regs.SemaphorePayload, 0x1234)
	call(t, e, regs.SemaphoreInfo, uint32(regs.SemaphoreOpRelease)|1<<24)

	if mem.u32(0x9000) != 0x1234 {
		t.Errorf("payload = %#x, want 0x1234", mem.u32(0x9000))
	}
	if mem.u64(0x9008) != 0xCAFEBABE_12345678 {
		t.Errorf("timestamp = %#x", mem.u64(0x9008))
	}
	if len(mem.writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(mem.writes))
	}
	// Timestamp lands before the payload.
	if mem.writes[0].addr != 0x9008 || mem.writes[1].addr != 0x9000 {
		t.Errorf("write order = %+v, want timestamp then payload", mem.writes)
	}
}

func TestSemaphoreSingleWord(t *testing.T) {
	e, mem, _, _ := newTestEngine(t)

	call(t, e, regs.SemaphoreAddressLow, 0xA000)
	call(t, e, regs.SemaphorePayload, 77)
	call(t, e, regs.SemaphoreInfo, uint32(regs.SemaphoreOpRelease))

	if mem.u32(0xA000) != 77 {
		t.Errorf("payload = %d, want 77", mem.u32(0xA000))
	}
	if len(mem.writes) != 1 {
		t.Errorf("writes = %d, want 1", len(mem.writes))
	}
}

func TestSemaphoreFlushesPendingDraw(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	submitDraw(t, e, 3)
	call(t, e, regs.SemaphoreAddressLow, 0xB000)
	call(t, e, regs.SemaphoreInfo, uint32(regs.SemaphoreOpRelease))

	if len(sub.draws) != 1 {
		t.Error("semaphore released before the pending draw")
	}
	if sub.submits == 0 {
		t.Error("semaphore did not flush the submitter")
	}
}

func TestSyncpointIncrement(t *testing.T) {
	e, _, _, sync := newTestEngine(t)

	call(t, e, regs.SyncpointAction, 9) // no increment bit
	if len(sync.incs) != 0 {
		t.Fatal("increment without the request bit")
	}
	call(t, e, regs.SyncpointAction, 9|1<<16)
	if len(sync.incs) != 1 || sync.incs[0] != 9 {
		t.Errorf("increments = %v, want [9]", sync.incs)
	}
}

func TestMacroRAM(t *testing.T) {
	e, _, _, _ := newTestEngine(t)

	call(t, e, regs.MacroInstructionRAMPointer, 0)
	for _, w := range []uint32{0xAAA, 0xBBB, 0xCCC} {
		call(t, e, regs.MacroInstructionRAMLoad, w)
	}
	if e.macroCode[1] != 0xBBB {
		t.Errorf("macro code[1] = %#x, want 0xBBB", e.macroCode[1])
	}

	// The code RAM wraps past its last slot.
	call(t, e, regs.MacroInstructionRAMPointer, macroCodeWords-1)
	call(t, e, regs.MacroInstructionRAMLoad, 1)
	call(t, e, regs.MacroInstructionRAMLoad, 2)
	if e.macroCode[macroCodeWords-1] != 1 || e.macroCode[0] != 2 {
		t.Errorf("wrapped code = last %#x first %#x, want 1 and 2",
			e.macroCode[macroCodeWords-1], e.macroCode[0])
	}

	// A pointer written out of range fails on the next load.
	call(t, e, regs.MacroInstructionRAMPointer, macroCodeWords)
	if err := e.CallMethod(regs.MacroInstructionRAMLoad, 3); err == nil {
		t.Error("out-of-range macro code pointer did not fail")
	}

	// The position table does not wrap; overrunning it is fatal.
	call(t, e, regs.MacroStartAddressRAMPointer, macroPositionCount-1)
	call(t, e, regs.MacroStartAddressRAMLoad, 0x123)
	if e.macroPositions[macroPositionCount-1] != 0x123 {
		t.Errorf("position[last] = %#x, want 0x123", e.macroPositions[macroPositionCount-1])
	}
	if err := e.CallMethod(regs.MacroStartAddressRAMLoad, 0x456); err == nil {
		t.Error("macro position table overrun did not fail")
	}
}

type fakeMacro struct {
	start uint32
	arg   uint32
	runs  int
}

func (m *fakeMacro) Execute(code []uint32, start, arg uint32, call func(method, arg uint32) error) error {
	m.start, m.arg = start, arg
	m.runs++
	return nil
}

func TestMacroCallWindow(t *testing.T) {
	mem := newFakeMem(1 << 20)
	macro := &fakeMacro{}
	e := New(mem, fakeViews{}, &fakeSubmit{}, Options{Macro: macro})

	call(t, e, regs.MacroStartAddressRAMPointer, 1)
	call(t, e, regs.MacroStartAddressRAMLoad, 0x40)

	call(t, e, regs.MacroCall+2, 1)    // select slot 1
	call(t, e, regs.MacroCall+3, 0x55) // argument, starts execution

	if macro.runs != 1 {
		t.Fatalf("macro ran %d times, want 1", macro.runs)
	}
	if macro.start != 0x40 || macro.arg != 0x55 {
		t.Errorf("macro invoked with start %#x arg %#x, want 0x40/0x55", macro.start, macro.arg)
	}
}

func TestInlineToMemory(t *testing.T) {
	e, mem, _, _ := newTestEngine(t)

	call(t, e, regs.InlineDestAddressLow, 0x6000)
	call(t, e, regs.InlineLineLengthIn, 8)
	call(t, e, regs.InlineLineCount, 2)
	call(t, e, regs.InlineDestPitch, 16)
	call(t, e, regs.InlineLaunchDMA, 1)

	if err := e.CallMethodBatchNonInc(regs.InlineLoadData, []uint32{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}

	if mem.u32(0x6000) != 1 || mem.u32(0x6004) != 2 {
		t.Errorf("line 0 = %#x %#x, want 1 2", mem.u32(0x6000), mem.u32(0x6004))
	}
	// The second line starts at the destination pitch, not the line
	// length.
	if mem.u32(0x6010) != 3 || mem.u32(0x6014) != 4 {
		t.Errorf("line 1 = %#x %#x, want 3 4", mem.u32(0x6010), mem.u32(0x6014))
	}
}

func TestFirmwareCallAcknowledges(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	call(t, e, regs.FirmwareCall+4, 0)
	if e.Registers()[regs.FirmwareScratch] != 1 {
		t.Error("firmware call did not acknowledge through the scratch register")
	}
}

func TestExplicitFlush(t *testing.T) {
	e, _, sub, _ := newTestEngine(t)

	submitDraw(t, e, 3)
	if err := e.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(sub.draws) != 1 {
		t.Errorf("draws = %d after explicit flush, want 1", len(sub.draws))
	}
	if sub.submits != 1 {
		t.Errorf("submits = %d, want 1", sub.submits)
	}
}

func TestBatchNonIncFallback(t *testing.T) {
	e, _, _, _ := newTestEngine(t)

	args := []uint32{uint32(regs.CompareOGLLess), uint32(regs.CompareOGLGreater)}
	if err := e.CallMethodBatchNonInc(regs.DepthFunc, args); err != nil {
		t.Fatal(err)
	}
	if got := e.Registers()[regs.DepthFunc]; got != uint32(regs.CompareOGLGreater) {
		t.Errorf("depth func = %#x, want the last batch word", got)
	}
}

func BenchmarkCallMethod(b *testing.B) {
	e := New(newFakeMem(1<<20), fakeViews{}, &fakeSubmit{}, Options{})

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		if err := e.CallMethod(regs.DepthFunc, uint32(regs.CompareOGLLess)+uint32(i&1)); err != nil {
			b.Fatal(err)
		}
	}
}
