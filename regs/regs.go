// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

// Count is the number of 32-bit words in the register bank. Method
// addresses are word indices in [0, Count).
const Count = 0x400

// Registers is the raw register bank. Two banks exist per engine: the
// live bank and the shadow bank used by shadow RAM replay.
type Registers [Count]uint32

// Control, macro and transfer registers.
const (
	// ShadowRAMControl selects the shadow RAM mode. See ShadowMode.
	ShadowRAMControl = 0x000

	// SyncpointAction requests a syncpoint operation when written.
	// Bits 0-11 hold the syncpoint index; bit 16 requests an
	// increment.
	SyncpointAction = 0x010

	// Macro instruction RAM and start-address RAM load ports. Writing
	// a pointer register sets the load cursor; each write to the
	// matching load register stores one word and advances the cursor.
	MacroInstructionRAMPointer  = 0x020
	MacroInstructionRAMLoad     = 0x021
	MacroStartAddressRAMPointer = 0x022
	MacroStartAddressRAMLoad    = 0x023

	// MacroCall is the base of the macro call window. Even offsets
	// select a macro slot, odd offsets supply the argument and start
	// execution.
	MacroCall      = 0x028
	MacroCallCount = 8

	// Inline-to-memory (i2m) transfer registers.
	InlineDestAddressHigh = 0x030
	InlineDestAddressLow  = 0x031
	InlineLineLengthIn    = 0x032
	InlineLineCount       = 0x033
	InlineDestPitch       = 0x034
	InlineLaunchDMA       = 0x035
	InlineLoadData        = 0x036

	// FirmwareCall is the base of the firmware call registers.
	// Writing FirmwareCall+4 performs the one modelled call.
	FirmwareCall      = 0x040
	FirmwareCallCount = 8

	// FirmwareScratch is read back by firmware-call macros.
	FirmwareScratch = 0x048
)

// Draw registers.
const (
	// Begin starts a draw batch. Bits 0-15 hold the DrawTopology,
	// bits 26-27 the instance control: 0 begins a fresh draw, 1
	// continues the previous draw as one more instance.
	Begin = 0x050

	// End closes the current draw batch.
	End = 0x051

	DrawVertexArrayCount    = 0x052
	DrawIndexBufferCount    = 0x053
	VertexArrayStart        = 0x054
	IndexBufferFirst        = 0x055
	GlobalBaseVertexIndex   = 0x056
	GlobalBaseInstanceIndex = 0x057

	// PrimitiveTopology is the separate topology state, used instead
	// of the Begin topology field when PrimitiveTopologyControl
	// selects it.
	PrimitiveTopology        = 0x058
	PrimitiveTopologyControl = 0x059

	IndexBufferAddressHigh = 0x05A
	IndexBufferAddressLow  = 0x05B
	IndexBufferFormat      = 0x05C
)

// Semaphore registers.
const (
	SemaphoreAddressHigh = 0x060
	SemaphoreAddressLow  = 0x061
	SemaphorePayload     = 0x062

	// SemaphoreInfo triggers the semaphore operation when written.
	// Bits 0-1 hold the SemaphoreOp, bits 12-15 the counter type and
	// bit 24 selects a 4-word (payload plus timestamp) structure
	// instead of a single payload word.
	SemaphoreInfo = 0x063
)

// Clear registers.
const (
	// ClearSurface triggers a clear when written. Bit 0 enables the
	// depth clear, bit 1 the stencil clear, bits 2-5 the R, G, B and
	// A channel clears, bits 6-9 select the color target and bits
	// 10-25 the layer.
	ClearSurface = 0x070

	ClearColorValue      = 0x071 // 4 words, RGBA as float bits
	ClearColorValueCount = 4
	ClearDepthValue      = 0x075
	ClearStencilValue    = 0x076
)

// Constant buffer registers.
const (
	ConstantBufferSelectorSize        = 0x080
	ConstantBufferSelectorAddressHigh = 0x081
	ConstantBufferSelectorAddressLow  = 0x082

	// LoadConstantBufferOffset sets the byte offset for subsequent
	// data writes. Each write to a LoadConstantBufferData word stores
	// one word at the offset and advances it by 4.
	LoadConstantBufferOffset    = 0x083
	LoadConstantBufferData      = 0x084 // 16 words
	LoadConstantBufferDataCount = 16

	// BindGroupConstantBuffer binds the selector buffer to a per-stage
	// slot. One word per pipeline stage; bit 0 enables the binding and
	// bits 4-8 hold the slot index.
	BindGroupConstantBuffer = 0x0A0
	PipelineStageCount      = 5
)

// Render target registers.
const (
	// ColorTarget is the base of the color render target array. Each
	// target occupies ColorTargetStride words, see ColorTargetRegs
	// for the layout.
	ColorTarget       = 0x100
	ColorTargetStride = 0x10
	ColorTargetCount  = 8

	DepthTargetAddressHigh    = 0x180
	DepthTargetAddressLow     = 0x181
	DepthTargetFormat         = 0x182
	DepthTargetMemory         = 0x183
	DepthTargetArrayPitch     = 0x184
	DepthTargetSelect         = 0x185
	DepthTargetLayerOffset    = 0x186
	DepthTargetWidth          = 0x187
	DepthTargetHeight         = 0x188
	DepthTargetThirdDimension = 0x189

	// DepthTargetControl bit 0 set means the third dimension holds an
	// array size, clear means it holds a depth extent.
	DepthTargetControl = 0x18A
)

// Vertex input registers.
const (
	// VertexStream is the base of the vertex stream array. Each
	// stream occupies VertexStreamStride words, see VertexStreamRegs.
	VertexStream       = 0x200
	VertexStreamStride = 4
	VertexStreamCount  = 16

	// VertexStreamInstance holds one word per stream; bit 0 set
	// selects per-instance stepping.
	VertexStreamInstance = 0x240

	// VertexAttribute holds one packed attribute word per attribute,
	// see VertexAttributeWord.
	VertexAttribute      = 0x260
	VertexAttributeCount = 32
)

// Input assembly and tessellation registers.
const (
	PrimitiveRestartEnable = 0x300
	PrimitiveRestartIndex  = 0x301
	PatchSize              = 0x302

	// TessellationParams packs the domain type in bits 0-1, the
	// spacing in bits 4-5 and the output primitive in bits 8-9.
	TessellationParams = 0x303
)

// Rasterization registers.
const (
	RasterEnable          = 0x310
	FrontPolygonMode      = 0x311
	BackPolygonMode       = 0x312
	CullEnable            = 0x313
	CullFace              = 0x314
	FrontFace             = 0x315
	WindowOriginMode      = 0x316
	ViewportClipControl   = 0x317
	PolyOffsetPointEnable = 0x318
	PolyOffsetLineEnable  = 0x319
	PolyOffsetFillEnable  = 0x31A
	ProvokingVertexIsLast = 0x31B
	PointSize             = 0x31C
	LineWidthSmooth       = 0x31D
	LineWidthAliased      = 0x31E
	DepthBiasValue        = 0x31F
)

// Depth-stencil registers.
const (
	DepthTestEnable       = 0x320
	DepthWriteEnable      = 0x321
	DepthFunc             = 0x322
	DepthBoundsTestEnable = 0x323
	StencilTestEnable     = 0x324

	// TwoSidedStencilEnable selects the back-face stencil register
	// group for back faces; when clear, back faces use the front
	// group.
	TwoSidedStencilEnable = 0x325

	// Stencil op groups, 4 words each: fail op, depth-fail op, pass
	// op, compare func. See StencilOpsRegs.
	StencilFrontOps      = 0x326
	StencilBackOps       = 0x32A
	StencilOpsStride     = 4
	StencilFrontFuncRef  = 0x32E
	StencilFrontFuncMask = 0x32F
	StencilFrontMask     = 0x330
	StencilBackFuncRef   = 0x331
	StencilBackFuncMask  = 0x332
	StencilBackMask      = 0x333
)

// Blend and write-mask registers.
const (
	LogicOpEnable = 0x338
	LogicOpFunc   = 0x339

	// SingleCtWriteControl set means color target 0's write mask
	// applies to every target.
	SingleCtWriteControl = 0x33A

	// CtWrite holds one word per color target: bit 0 enables R, bit 4
	// G, bit 8 B and bit 12 A.
	CtWrite = 0x340 // 8 words

	// BlendStatePerTargetEnable selects the per-target blend groups
	// over the shared one.
	BlendStatePerTargetEnable = 0x348

	// BlendEnable holds one enable word per color target.
	BlendEnable = 0x350 // 8 words

	// Blend is the shared blend group, 6 words: color op, color
	// source coefficient, color destination coefficient, alpha op,
	// alpha source coefficient, alpha destination coefficient.
	Blend = 0x358

	// BlendPerTarget is the base of the per-target blend groups, 8
	// words each in the same order as the shared group.
	BlendPerTarget       = 0x360
	BlendPerTargetStride = 8
)

// Shader interface registers.
const (
	// PostVtgShaderAttributeSkipMask holds 4 words of per-component
	// skip bits applied between the vertex/tessellation/geometry
	// stages and the fragment stage.
	PostVtgShaderAttributeSkipMask      = 0x3C0
	PostVtgShaderAttributeSkipMaskCount = 4

	// BindlessTextureConstantBufferSlot selects which constant buffer
	// slot carries bindless texture handles.
	BindlessTextureConstantBufferSlot = 0x3C4
)
