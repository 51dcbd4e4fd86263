package resonix

import (
	"sync/atomic"
	"unsafe"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
	"github.com/resonix-audio/resonix-go/pkg/resonix/logging"
)

// WrapperVersion returns the semantic version of this binding.
func WrapperVersion() string { return "0.3.0" }

// HeaderVersion returns the engine header version the binding was
// written against. System.Create reports CodeVersion when the linked
// engine is older than this.
func HeaderVersion() uint32 { return backend.Version }

var activeLogger atomic.Pointer[logging.Logger]

func init() {
	l := logging.New(nil)
	activeLogger.Store(&l)
}

// SetLogger routes the wrapper's diagnostics, notably the best-effort
// message emitted when a panic is contained at a callback boundary,
// through l. Passing nil restores the slog default.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	activeLogger.Store(&l)
}

func logger() logging.Logger { return *activeLogger.Load() }

// eng returns the active engine. Every wrapper operation funnels
// through here so the thread-confined build variant has a single place
// to assert ownership.
func eng() backend.Engine {
	assertConfined()
	return backend.Current()
}

// goString copies a NUL-terminated C string the engine handed us.
// The pointer must reference a valid terminated string; the engine
// supplying one is a documented precondition of every callback payload
// decoded this way.
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
