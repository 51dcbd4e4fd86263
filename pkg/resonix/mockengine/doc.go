// Package mockengine provides a scripted stand-in for the native
// Resonix engine.
//
// The package tests use it to exercise the wrapper's marshalling,
// retry and containment paths without linking the native library, and
// embedders can use it the same way to test their callback handlers
// and custom filesystems. Fire* and file-driving helpers invoke the
// registered hooks exactly the way the engine's worker threads would:
// raw addresses, numeric discriminants, untyped payload pointers.
package mockengine
