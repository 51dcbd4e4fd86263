// Package resonix is a safety-wrapping and marshalling layer over the
// native Resonix audio engine.
//
// The engine is a large, stateful, handle-based C library. This package
// makes it usable from Go without losing performance or silently
// introducing undefined behavior: resource handles are thin copyable
// values with explicit release, the engine's informal base-type
// relationship between channels and channel groups is emulated with a
// verified zero-cost view, DSP parameter storage is read and written
// through statically typed accessors, and every callback the engine
// delivers from its own threads crosses back through a trampoline that
// contains panics rather than letting them unwind into engine code.
//
// Handles carry no automatic teardown. Release the underlying resource
// explicitly, or wrap a handle in Own for scope-bound cleanup. Using a
// handle after its resource was released is a contract violation, not a
// detectable error.
package resonix
