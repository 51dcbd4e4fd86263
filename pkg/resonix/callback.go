package resonix

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
	"github.com/resonix-audio/resonix-go/pkg/resonix/logging"
)

// The engine stores a raw entry point plus an opaque context value per
// callback registration and invokes them from its own worker threads.
// Go cannot specialize an entry point per handler type at compile
// time, so one dispatcher per callback family looks the handler up in
// a registry keyed by the context value. A registration is permanent:
// entries are never removed or mutated, so lookups after registration
// race with nothing.
//
// Every dispatcher runs under containPanic. This is the load-bearing
// invariant of the whole binding: no panic ever crosses from handler
// code back into engine code, because unwinding across the foreign
// boundary is undefined behavior.

var (
	handlerMu   sync.Mutex
	handlerNext uintptr = 1
	handlers            = map[uintptr]any{}
)

func registerHandler(h any) uintptr {
	handlerMu.Lock()
	ctx := handlerNext
	handlerNext++
	handlers[ctx] = h
	handlerMu.Unlock()
	return ctx
}

func handlerFor(ctx uintptr) (any, bool) {
	handlerMu.Lock()
	h, ok := handlers[ctx]
	handlerMu.Unlock()
	return h, ok
}

// containPanic converts a panic in handler code into a benign success
// status crossing back into the engine, with one best-effort
// diagnostic. It is the sole deliberate error suppression in the
// wrapper.
func containPanic(st *backend.Status, source uintptr) {
	if r := recover(); r != nil {
		logger().Error(context.Background(), "panic contained at engine callback boundary",
			"panic", fmt.Sprint(r), logging.Addr("source", source))
		*st = backend.StatusOK
	}
}

// ErrorInfo is the payload of a SystemEventError notification.
type ErrorInfo struct {
	Code           Code
	Function       string
	FunctionParams string
}

// SystemEvent selects system-level notifications at registration time.
type SystemEvent = backend.SystemEvent

const (
	SystemEventDeviceListChanged = backend.SystemEventDeviceListChanged
	SystemEventMemoryAllocFailed = backend.SystemEventMemoryAllocFailed
	SystemEventThreadCreated     = backend.SystemEventThreadCreated
	SystemEventBadDSPConnection  = backend.SystemEventBadDSPConnection
	SystemEventPreMix            = backend.SystemEventPreMix
	SystemEventPostMix           = backend.SystemEventPostMix
	SystemEventError             = backend.SystemEventError
	SystemEventPreUpdate         = backend.SystemEventPreUpdate
	SystemEventPostUpdate        = backend.SystemEventPostUpdate
	SystemEventAll               = backend.SystemEventAll
)

// ControlEventSource identifies which derived kind an engine
// notification concerns. The engine supplies the discriminant; the
// wrapper never guesses from the address.
type ControlEventSource struct {
	control   ChannelControl
	isChannel bool
}

// Channel returns the source as a Channel when the discriminant said
// so.
func (s ControlEventSource) Channel() (Channel, bool) {
	if !s.isChannel {
		return Channel{}, false
	}
	return Channel{addr: s.control.addr}, true
}

// Group returns the source as a ChannelGroup when the discriminant
// said so.
func (s ControlEventSource) Group() (ChannelGroup, bool) {
	if s.isChannel {
		return ChannelGroup{}, false
	}
	return ChannelGroup{addr: s.control.addr}, true
}

// Control returns the shared control surface, valid for either kind.
func (s ControlEventSource) Control() ChannelControl { return s.control }

// ControlCallbackHandler receives channel and channel-group
// notifications. Embed BaseControlHandler to implement only the events
// of interest.
type ControlCallbackHandler interface {
	// End fires when a sound finishes. Channels only.
	End(src ControlEventSource) error
	// VirtualVoice fires when a channel is made virtual or real.
	VirtualVoice(src ControlEventSource, isVirtual bool) error
	// SyncPoint fires when a sync point is encountered. Channels only.
	SyncPoint(src ControlEventSource, index int32) error
	// Occlusion fires when occlusion is calculated; the handler may
	// adjust both values in place.
	Occlusion(src ControlEventSource, direct, reverb *float32) error
}

// BaseControlHandler is a no-op ControlCallbackHandler for embedding.
type BaseControlHandler struct{}

func (BaseControlHandler) End(ControlEventSource) error                { return nil }
func (BaseControlHandler) VirtualVoice(ControlEventSource, bool) error { return nil }
func (BaseControlHandler) SyncPoint(ControlEventSource, int32) error   { return nil }
func (BaseControlHandler) Occlusion(ControlEventSource, *float32, *float32) error {
	return nil
}

// SystemCallbackHandler receives system-level notifications for the
// events selected by the registration mask. Embed BaseSystemHandler to
// implement only the events of interest.
type SystemCallbackHandler interface {
	DeviceListChanged(s System) error
	MemoryAllocFailed(s System) error
	ThreadCreated(s System, name string) error
	BadDSPConnection(s System) error
	Error(s System, info ErrorInfo) error
	PreMix(s System) error
	PostMix(s System) error
	PreUpdate(s System) error
	PostUpdate(s System) error
}

// BaseSystemHandler is a no-op SystemCallbackHandler for embedding.
type BaseSystemHandler struct{}

func (BaseSystemHandler) DeviceListChanged(System) error     { return nil }
func (BaseSystemHandler) MemoryAllocFailed(System) error     { return nil }
func (BaseSystemHandler) ThreadCreated(System, string) error { return nil }
func (BaseSystemHandler) BadDSPConnection(System) error      { return nil }
func (BaseSystemHandler) Error(System, ErrorInfo) error      { return nil }
func (BaseSystemHandler) PreMix(System) error                { return nil }
func (BaseSystemHandler) PostMix(System) error               { return nil }
func (BaseSystemHandler) PreUpdate(System) error             { return nil }
func (BaseSystemHandler) PostUpdate(System) error            { return nil }

// DSPCallbackHandler receives plugin-level notifications.
type DSPCallbackHandler interface {
	// DataParameterRelease fires when the engine is done with a data
	// blob previously handed to a plugin parameter.
	DataParameterRelease(d DSP, index int32) error
}

// SetCallback registers h for channel-control notifications. The
// registration is permanent for the lifetime of the process.
func (c ChannelControl) SetCallback(h ControlCallbackHandler) error {
	ctx := registerHandler(h)
	return statusErr(eng().ControlSetCallback(c.addr, dispatchControlEvent, ctx))
}

// SetCallback registers h for the system events selected by mask.
func (s System) SetCallback(h SystemCallbackHandler, mask SystemEvent) error {
	ctx := registerHandler(h)
	return statusErr(eng().SystemSetCallback(s.addr, mask, dispatchSystemEvent, ctx))
}

// SetCallback registers h for plugin notifications.
func (d DSP) SetCallback(h DSPCallbackHandler) error {
	ctx := registerHandler(h)
	return statusErr(eng().DSPSetCallback(d.addr, dispatchDSPEvent, ctx))
}

func dispatchControlEvent(ctl uintptr, kind backend.ControlKind, event backend.ControlEvent, data1, data2 unsafe.Pointer, ctx uintptr) (st backend.Status) {
	defer containPanic(&st, ctl)
	raw, ok := handlerFor(ctx)
	if !ok {
		return backend.StatusOK
	}
	h, ok := raw.(ControlCallbackHandler)
	if !ok {
		return backend.StatusOK
	}

	var src ControlEventSource
	switch kind {
	case backend.ControlChannel:
		src = ControlEventSource{control: ChannelControlFromAddress(ctl), isChannel: true}
	case backend.ControlChannelGroup:
		src = ControlEventSource{control: ChannelControlFromAddress(ctl)}
	default:
		// The discriminant enumeration is closed; anything else is an
		// engine-side defect.
		return backend.StatusInvalidParam
	}

	var err error
	switch event {
	case backend.ControlEventEnd:
		err = h.End(src)
	case backend.ControlEventVirtualVoice:
		err = h.VirtualVoice(src, *(*int32)(data1) != 0)
	case backend.ControlEventSyncPoint:
		err = h.SyncPoint(src, *(*int32)(data1))
	case backend.ControlEventOcclusion:
		err = h.Occlusion(src, (*float32)(data1), (*float32)(data2))
	default:
		// Unknown event kinds from a newer engine are a silent no-op.
		return backend.StatusOK
	}
	return resultStatus(err)
}

func dispatchSystemEvent(sys uintptr, event backend.SystemEvent, data1, data2 unsafe.Pointer, ctx uintptr) (st backend.Status) {
	defer containPanic(&st, sys)
	raw, ok := handlerFor(ctx)
	if !ok {
		return backend.StatusOK
	}
	h, ok := raw.(SystemCallbackHandler)
	if !ok {
		return backend.StatusOK
	}

	system := SystemFromAddress(sys)
	var err error
	switch event {
	case backend.SystemEventDeviceListChanged:
		err = h.DeviceListChanged(system)
	case backend.SystemEventMemoryAllocFailed:
		err = h.MemoryAllocFailed(system)
	case backend.SystemEventThreadCreated:
		err = h.ThreadCreated(system, goString(data2))
	case backend.SystemEventBadDSPConnection:
		err = h.BadDSPConnection(system)
	case backend.SystemEventError:
		info := (*backend.ErrorInfo)(data1)
		err = h.Error(system, ErrorInfo{
			Code:           Code(info.Status),
			Function:       info.Function,
			FunctionParams: info.FunctionParams,
		})
	case backend.SystemEventPreMix:
		err = h.PreMix(system)
	case backend.SystemEventPostMix:
		err = h.PostMix(system)
	case backend.SystemEventPreUpdate:
		err = h.PreUpdate(system)
	case backend.SystemEventPostUpdate:
		err = h.PostUpdate(system)
	default:
		return backend.StatusOK
	}
	return resultStatus(err)
}

func dispatchDSPEvent(dsp uintptr, event backend.DSPEvent, data unsafe.Pointer, index int32, ctx uintptr) (st backend.Status) {
	defer containPanic(&st, dsp)
	raw, ok := handlerFor(ctx)
	if !ok {
		return backend.StatusOK
	}
	h, ok := raw.(DSPCallbackHandler)
	if !ok {
		return backend.StatusOK
	}

	switch event {
	case backend.DSPEventDataParameterRelease:
		return resultStatus(h.DataParameterRelease(DSPFromAddress(dsp), index))
	default:
		return backend.StatusOK
	}
}
