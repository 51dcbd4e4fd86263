// Package backend hosts the raw surface of the native Resonix engine.
//
// It defines the engine's closed status-code enumeration, the C-shaped
// types that cross the boundary (addresses, flags, parameter
// descriptions, raw callback signatures) and the Engine interface that
// mirrors the C ABI one function per entry point. The real cgo
// implementation lives behind the resonix_native build tag so that the
// rest of the repository compiles without the native library; the
// default build installs an engine whose every call reports
// StatusUnbuilt.
package backend
