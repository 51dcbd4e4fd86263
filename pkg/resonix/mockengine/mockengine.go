package mockengine

import (
	"sync"
	"unsafe"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// Param scripts one DSP parameter slot.
type Param struct {
	Desc  backend.ParamDesc
	Bool  bool
	Int   int32
	Float float32
	Data  []byte
	// ValueStr is what the engine formats into the caller's short
	// display buffer.
	ValueStr string

	// DataReads and DataWrites count raw blob accesses, so tests can
	// assert the tag check short-circuits before any buffer traffic.
	DataReads  int
	DataWrites int
}

type paramKey struct {
	dsp   uintptr
	index int32
}

type controlReg struct {
	cb  backend.RawControlCallback
	ctx uintptr
}

type systemReg struct {
	mask backend.SystemEventMask
	cb   backend.RawSystemCallback
	ctx  uintptr
}

type dspReg struct {
	cb  backend.RawDSPCallback
	ctx uintptr
}

// Engine is a scripted backend.Engine. The zero value is not usable;
// call New.
type Engine struct {
	mu   sync.Mutex
	next uintptr

	// CastFn overrides the base-type cast entry point. The default
	// returns the address unchanged, matching a well-behaved engine.
	CastFn func(addr uintptr, kind backend.ControlKind) (uintptr, backend.Status)

	// NameHint controls whether truncated name queries report the
	// exact required size or leave the wrapper to double blindly.
	NameHint bool

	// OpenStateFn overrides load-progress queries. The default reports
	// a fully loaded sound.
	OpenStateFn func(addr uintptr) (backend.OpenState, uint32, backend.Status)

	names  map[uintptr]string
	params map[paramKey]*Param

	controlCBs map[uintptr]controlReg
	systemCBs  map[uintptr]systemReg
	dspCBs     map[uintptr]dspReg

	fs    backend.RawFileSystem
	fsCtx uintptr

	calls map[string]int
}

// New returns an engine with default well-behaved scripting.
func New() *Engine {
	return &Engine{
		next:       0x1000,
		names:      map[uintptr]string{},
		params:     map[paramKey]*Param{},
		controlCBs: map[uintptr]controlReg{},
		systemCBs:  map[uintptr]systemReg{},
		dspCBs:     map[uintptr]dspReg{},
		calls:      map[string]int{},
	}
}

// Install makes e the active engine and returns a restore function for
// deferring.
func Install(e *Engine) func() {
	prev := backend.Use(e)
	return func() { backend.Use(prev) }
}

// Alloc returns a fresh fake engine address.
func (e *Engine) Alloc() uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.next += 0x10
	return e.next
}

// Calls reports how many times the named entry point was invoked.
func (e *Engine) Calls(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[name]
}

func (e *Engine) count(name string) {
	e.mu.Lock()
	e.calls[name]++
	e.mu.Unlock()
}

// SetName scripts the engine-side name of a resource.
func (e *Engine) SetName(addr uintptr, name string) {
	e.mu.Lock()
	e.names[addr] = name
	e.mu.Unlock()
}

// SetParam scripts one parameter slot of a DSP instance.
func (e *Engine) SetParam(dsp uintptr, index int32, p *Param) {
	e.mu.Lock()
	e.params[paramKey{dsp: dsp, index: index}] = p
	e.mu.Unlock()
}

func (e *Engine) param(dsp uintptr, index int32) (*Param, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.params[paramKey{dsp: dsp, index: index}]
	return p, ok
}

// FireControlEvent invokes the callback registered on ctl the way an
// engine worker thread would. It reports StatusOK when no callback is
// registered.
func (e *Engine) FireControlEvent(ctl uintptr, kind backend.ControlKind, event backend.ControlEvent, data1, data2 unsafe.Pointer) backend.Status {
	e.mu.Lock()
	reg, ok := e.controlCBs[ctl]
	e.mu.Unlock()
	if !ok {
		return backend.StatusOK
	}
	return reg.cb(ctl, kind, event, data1, data2, reg.ctx)
}

// FireSystemEvent invokes the system callback registered on sys,
// honoring the registration mask.
func (e *Engine) FireSystemEvent(sys uintptr, event backend.SystemEvent, data1, data2 unsafe.Pointer) backend.Status {
	e.mu.Lock()
	reg, ok := e.systemCBs[sys]
	e.mu.Unlock()
	if !ok || reg.mask&event == 0 {
		return backend.StatusOK
	}
	return reg.cb(sys, event, data1, data2, reg.ctx)
}

// FireDSPEvent invokes the plugin callback registered on dsp.
func (e *Engine) FireDSPEvent(dsp uintptr, event backend.DSPEvent, data unsafe.Pointer, index int32) backend.Status {
	e.mu.Lock()
	reg, ok := e.dspCBs[dsp]
	e.mu.Unlock()
	if !ok {
		return backend.StatusOK
	}
	return reg.cb(dsp, event, data, index, reg.ctx)
}

// FileHooks returns the installed filesystem hooks and their context
// so tests can drive them like the engine's stream thread.
func (e *Engine) FileHooks() (backend.RawFileSystem, uintptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fs, e.fsCtx
}

// AsyncCompletion captures the terminal report of one issued read.
type AsyncCompletion struct {
	mu     sync.Mutex
	fired  int
	read   uint32
	status backend.Status
}

// Fired reports how many times Done ran; the contract is exactly once.
func (c *AsyncCompletion) Fired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}

// Result returns the reported byte count and status.
func (c *AsyncCompletion) Result() (uint32, backend.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read, c.status
}

// IssueAsyncRead submits a read request through the installed async
// hooks, returning the descriptor and a completion capture.
func (e *Engine) IssueAsyncRead(handle uintptr, offset, size uint32, priority int32) (*backend.AsyncReadInfo, *AsyncCompletion, backend.Status) {
	fs, ctx := e.FileHooks()
	if fs.ReadAsync == nil {
		return nil, nil, backend.StatusUnimplemented
	}
	done := &AsyncCompletion{}
	info := &backend.AsyncReadInfo{
		Handle:   handle,
		Offset:   offset,
		Size:     size,
		Priority: priority,
		Buffer:   make([]byte, size),
		Done: func(read uint32, st backend.Status) {
			done.mu.Lock()
			done.fired++
			done.read = read
			done.status = st
			done.mu.Unlock()
		},
	}
	st := fs.ReadAsync(info, ctx)
	return info, done, st
}

// CancelAsyncRead drives the cancellation hook for an issued request.
func (e *Engine) CancelAsyncRead(info *backend.AsyncReadInfo) backend.Status {
	fs, ctx := e.FileHooks()
	if fs.CancelAsync == nil {
		return backend.StatusUnimplemented
	}
	return fs.CancelAsync(info, ctx)
}

// backend.Engine implementation. Unscripted entry points succeed with
// plausible defaults so tests only script what they assert on.

func (e *Engine) SystemCreate(uint32) (uintptr, backend.Status) {
	e.count("SystemCreate")
	return e.Alloc(), backend.StatusOK
}

func (e *Engine) SystemInit(uintptr, int32, backend.InitFlags) backend.Status {
	e.count("SystemInit")
	return backend.StatusOK
}

func (e *Engine) SystemClose(uintptr) backend.Status   { return backend.StatusOK }
func (e *Engine) SystemRelease(uintptr) backend.Status { return backend.StatusOK }
func (e *Engine) SystemUpdate(uintptr) backend.Status {
	e.count("SystemUpdate")
	return backend.StatusOK
}

func (e *Engine) SystemCreateSound(_ uintptr, source string, _ backend.Mode) (uintptr, backend.Status) {
	e.count("SystemCreateSound")
	addr := e.Alloc()
	e.SetName(addr, source)
	return addr, backend.StatusOK
}

func (e *Engine) SystemCreateChannelGroup(_ uintptr, name string) (uintptr, backend.Status) {
	addr := e.Alloc()
	e.SetName(addr, name)
	return addr, backend.StatusOK
}

func (e *Engine) SystemCreateDSPByType(uintptr, backend.DSPType) (uintptr, backend.Status) {
	return e.Alloc(), backend.StatusOK
}

func (e *Engine) SystemPlaySound(uintptr, uintptr, uintptr, bool) (uintptr, backend.Status) {
	return e.Alloc(), backend.StatusOK
}

func (e *Engine) SystemSetCallback(sys uintptr, mask backend.SystemEventMask, cb backend.RawSystemCallback, ctx uintptr) backend.Status {
	e.mu.Lock()
	e.systemCBs[sys] = systemReg{mask: mask, cb: cb, ctx: ctx}
	e.mu.Unlock()
	return backend.StatusOK
}

func (e *Engine) SystemSetFileSystem(_ uintptr, fs backend.RawFileSystem, _ int32, ctx uintptr) backend.Status {
	e.mu.Lock()
	e.fs = fs
	e.fsCtx = ctx
	e.mu.Unlock()
	return backend.StatusOK
}

func (e *Engine) ControlCast(addr uintptr, kind backend.ControlKind) (uintptr, backend.Status) {
	e.count("ControlCast")
	if e.CastFn != nil {
		return e.CastFn(addr, kind)
	}
	return addr, backend.StatusOK
}

func (e *Engine) ControlStop(uintptr) backend.Status            { return backend.StatusOK }
func (e *Engine) ControlSetPaused(uintptr, bool) backend.Status { return backend.StatusOK }
func (e *Engine) ControlGetPaused(uintptr) (bool, backend.Status) {
	return false, backend.StatusOK
}
func (e *Engine) ControlSetVolume(uintptr, float32) backend.Status { return backend.StatusOK }
func (e *Engine) ControlGetVolume(uintptr) (float32, backend.Status) {
	return 1, backend.StatusOK
}
func (e *Engine) ControlSetPitch(uintptr, float32) backend.Status { return backend.StatusOK }
func (e *Engine) ControlGetPitch(uintptr) (float32, backend.Status) {
	return 1, backend.StatusOK
}
func (e *Engine) ControlSetMute(uintptr, bool) backend.Status { return backend.StatusOK }
func (e *Engine) ControlIsPlaying(uintptr) (bool, backend.Status) {
	return false, backend.StatusOK
}

func (e *Engine) ControlSetCallback(ctl uintptr, cb backend.RawControlCallback, ctx uintptr) backend.Status {
	e.mu.Lock()
	e.controlCBs[ctl] = controlReg{cb: cb, ctx: ctx}
	e.mu.Unlock()
	return backend.StatusOK
}

func (e *Engine) ChannelSetPosition(uintptr, uint32, backend.TimeUnit) backend.Status {
	return backend.StatusOK
}

func (e *Engine) ChannelGetPosition(uintptr, backend.TimeUnit) (uint32, backend.Status) {
	return 0, backend.StatusOK
}

func (e *Engine) GroupGetName(group uintptr, buf []byte) (int32, backend.Status) {
	e.count("GroupGetName")
	return e.fillName(group, buf)
}

func (e *Engine) GroupAddGroup(uintptr, uintptr, bool) backend.Status { return backend.StatusOK }
func (e *Engine) GroupRelease(uintptr) backend.Status                 { return backend.StatusOK }

func (e *Engine) SoundGetName(sound uintptr, buf []byte) (int32, backend.Status) {
	e.count("SoundGetName")
	return e.fillName(sound, buf)
}

// fillName reproduces the engine's fixed-buffer text contract: copy
// what fits NUL-terminated, report Truncated otherwise, with the
// required size only when NameHint is set.
func (e *Engine) fillName(addr uintptr, buf []byte) (int32, backend.Status) {
	e.mu.Lock()
	name, ok := e.names[addr]
	hint := e.NameHint
	e.mu.Unlock()
	if !ok {
		return 0, backend.StatusInvalidHandle
	}
	needed := int32(len(name) + 1)
	if len(buf) < int(needed) {
		n := copy(buf, name)
		if n > 0 {
			buf[n-1] = 0
		}
		if hint {
			return needed, backend.StatusTruncated
		}
		return 0, backend.StatusTruncated
	}
	copy(buf, name)
	buf[len(name)] = 0
	return needed, backend.StatusOK
}

func (e *Engine) SoundGetLength(uintptr, backend.TimeUnit) (uint32, backend.Status) {
	return 0, backend.StatusOK
}

func (e *Engine) SoundGetOpenState(sound uintptr) (backend.OpenState, uint32, backend.Status) {
	e.count("SoundGetOpenState")
	if e.OpenStateFn != nil {
		return e.OpenStateFn(sound)
	}
	return backend.OpenStateReady, 100, backend.StatusOK
}

func (e *Engine) SoundRelease(uintptr) backend.Status {
	e.count("SoundRelease")
	return backend.StatusOK
}

func (e *Engine) DSPGetNumParameters(dsp uintptr) (int32, backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var n int32
	for k := range e.params {
		if k.dsp == dsp && k.index >= n {
			n = k.index + 1
		}
	}
	return n, backend.StatusOK
}

func (e *Engine) DSPGetParameterInfo(dsp uintptr, index int32) (backend.ParamDesc, backend.Status) {
	e.count("DSPGetParameterInfo")
	p, ok := e.param(dsp, index)
	if !ok {
		return backend.ParamDesc{}, backend.StatusInvalidParam
	}
	return p.Desc, backend.StatusOK
}

func (e *Engine) DSPGetParameterBool(dsp uintptr, index int32, valueStr []byte) (bool, backend.Status) {
	p, ok := e.param(dsp, index)
	if !ok {
		return false, backend.StatusInvalidParam
	}
	fillValueStr(valueStr, p.ValueStr)
	return p.Bool, backend.StatusOK
}

func (e *Engine) DSPSetParameterBool(dsp uintptr, index int32, v bool) backend.Status {
	p, ok := e.param(dsp, index)
	if !ok {
		return backend.StatusInvalidParam
	}
	p.Bool = v
	return backend.StatusOK
}

func (e *Engine) DSPGetParameterInt(dsp uintptr, index int32, valueStr []byte) (int32, backend.Status) {
	p, ok := e.param(dsp, index)
	if !ok {
		return 0, backend.StatusInvalidParam
	}
	fillValueStr(valueStr, p.ValueStr)
	return p.Int, backend.StatusOK
}

func (e *Engine) DSPSetParameterInt(dsp uintptr, index int32, v int32) backend.Status {
	p, ok := e.param(dsp, index)
	if !ok {
		return backend.StatusInvalidParam
	}
	p.Int = v
	return backend.StatusOK
}

func (e *Engine) DSPGetParameterFloat(dsp uintptr, index int32, valueStr []byte) (float32, backend.Status) {
	p, ok := e.param(dsp, index)
	if !ok {
		return 0, backend.StatusInvalidParam
	}
	fillValueStr(valueStr, p.ValueStr)
	return p.Float, backend.StatusOK
}

func (e *Engine) DSPSetParameterFloat(dsp uintptr, index int32, v float32) backend.Status {
	p, ok := e.param(dsp, index)
	if !ok {
		return backend.StatusInvalidParam
	}
	p.Float = v
	return backend.StatusOK
}

func (e *Engine) DSPGetParameterData(dsp uintptr, index int32, dst []byte) backend.Status {
	p, ok := e.param(dsp, index)
	if !ok {
		return backend.StatusInvalidParam
	}
	p.DataReads++
	if len(p.Data) < len(dst) {
		return backend.StatusInvalidParam
	}
	copy(dst, p.Data)
	return backend.StatusOK
}

func (e *Engine) DSPSetParameterData(dsp uintptr, index int32, src []byte) backend.Status {
	p, ok := e.param(dsp, index)
	if !ok {
		return backend.StatusInvalidParam
	}
	p.DataWrites++
	p.Data = append([]byte(nil), src...)
	return backend.StatusOK
}

func (e *Engine) DSPSetBypass(uintptr, bool) backend.Status { return backend.StatusOK }

func (e *Engine) DSPSetCallback(dsp uintptr, cb backend.RawDSPCallback, ctx uintptr) backend.Status {
	e.mu.Lock()
	e.dspCBs[dsp] = dspReg{cb: cb, ctx: ctx}
	e.mu.Unlock()
	return backend.StatusOK
}

func (e *Engine) DSPRelease(uintptr) backend.Status { return backend.StatusOK }

func fillValueStr(buf []byte, s string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf, s)
	if n == len(buf) {
		n--
	}
	buf[n] = 0
}
