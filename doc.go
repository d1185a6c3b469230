// Package gm20b emulates the 3D-class engine of the GM20B (Maxwell
// generation) GPU: the command-stream processor that turns guest
// (method, argument) register writes back into a modern graphics
// pipeline description.
//
// # Overview
//
// Guest command processing produces a stream of word-sized writes into
// the engine's register bank. This module reconstructs, with minimal
// recomputation, the pipeline state those writes describe:
//
//	guest writes -> engine.Engine (shadow RAM, batching, dirty marking)
//	             -> interconnect.PipelineState (leaf state translators)
//	             -> interconnect.PackedPipelineState (pipeline-cache key)
//
// # Packages
//
// The library is organized into:
//   - regs: the register bank model, word addresses, and the hardware
//     enumerations with their D3D/OpenGL dual encodings
//   - dirty: the dependency registry that tells each state translator
//     whether any register it reads has changed
//   - interconnect: leaf state translators, the packed pipeline state,
//     and the outbound collaborator interfaces (address space, view
//     cache, submitter)
//   - engine: the command dispatcher with shadow-RAM semantics,
//     redundant-write suppression, constant-buffer batch coalescing
//     and deferred instanced-draw coalescing
//   - viewcache: a reference descriptor-keyed resource view cache
//
// The module never creates GPU objects itself: it emits descriptors and
// canonical gputypes/wgpu enumerations for an external pipeline cache.
//
// # Threading
//
// One Engine instance processes one channel's write stream, strictly in
// order, on one goroutine. Multiple hardware channels get independent
// instances; nothing is shared between them.
package gm20b

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
