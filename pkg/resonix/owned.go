package resonix

import (
	"runtime"
	"sync/atomic"
)

// Releaser is any handle with an explicit release operation.
type Releaser interface {
	Release() error
}

// Owned layers scope-bound cleanup on top of a non-owning handle for
// callers who want automatic release. The base handle types stay
// non-owning because the same resource is frequently reachable through
// independently created handle values.
//
// A finalizer is set as a safety net, but relying on it may leak the
// native resource for an arbitrary time. Best practice: always call
// Close explicitly, preferably with defer.
type Owned[H Releaser] struct {
	handle H
	closed atomic.Bool
}

// Own takes responsibility for releasing h.
func Own[H Releaser](h H) *Owned[H] {
	o := &Owned[H]{handle: h}
	runtime.SetFinalizer(o, func(o *Owned[H]) {
		_ = o.Close()
	})
	return o
}

// Handle returns the wrapped non-owning handle. The value must not be
// used after Close.
func (o *Owned[H]) Handle() H { return o.handle }

// Close releases the underlying resource. It is safe to call multiple
// times; only the first call reaches the engine.
func (o *Owned[H]) Close() error {
	if !o.closed.CompareAndSwap(false, true) {
		return nil
	}
	runtime.SetFinalizer(o, nil)
	return o.handle.Release()
}
