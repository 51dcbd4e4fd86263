package resonix_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonix-audio/resonix-go/pkg/resonix"
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
	"github.com/resonix-audio/resonix-go/pkg/resonix/logging"
	"github.com/resonix-audio/resonix-go/pkg/resonix/mockengine"
)

// countingHandler counts error-level records so tests can assert the
// contained-panic diagnostic fires exactly once.
type countingHandler struct {
	errors atomic.Int64

	mu    sync.Mutex
	attrs map[string]string
}

func (h *countingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *countingHandler) Handle(_ context.Context, r slog.Record) error {
	if r.Level < slog.LevelError {
		return nil
	}
	h.errors.Add(1)
	h.mu.Lock()
	h.attrs = map[string]string{}
	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value.String()
		return true
	})
	h.mu.Unlock()
	return nil
}

func (h *countingHandler) attr(key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attrs[key]
}

func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countingHandler) WithGroup(string) slog.Handler      { return h }

type recordingControlHandler struct {
	resonix.BaseControlHandler

	ended      int
	virtual    []bool
	syncPoints []int32
	lastSource resonix.ControlEventSource
	fail       error
	panicWith  any
}

func (h *recordingControlHandler) End(src resonix.ControlEventSource) error {
	if h.panicWith != nil {
		panic(h.panicWith)
	}
	h.ended++
	h.lastSource = src
	return h.fail
}

func (h *recordingControlHandler) VirtualVoice(src resonix.ControlEventSource, isVirtual bool) error {
	h.virtual = append(h.virtual, isVirtual)
	return nil
}

func (h *recordingControlHandler) SyncPoint(src resonix.ControlEventSource, index int32) error {
	h.syncPoints = append(h.syncPoints, index)
	return nil
}

func (h *recordingControlHandler) Occlusion(_ resonix.ControlEventSource, direct, reverb *float32) error {
	*direct = 0.25
	*reverb = 0.5
	return nil
}

func TestControlCallbackDispatch(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	h := &recordingControlHandler{}
	require.NoError(t, ch.Control().SetCallback(h))

	st := eng.FireControlEvent(ch.Address(), backend.ControlChannel,
		backend.ControlEventEnd, nil, nil)
	assert.Equal(t, backend.StatusOK, st)
	assert.Equal(t, 1, h.ended)

	got, ok := h.lastSource.Channel()
	require.True(t, ok)
	assert.Equal(t, ch, got)
	_, ok = h.lastSource.Group()
	assert.False(t, ok)

	isVirtual := int32(1)
	st = eng.FireControlEvent(ch.Address(), backend.ControlChannel,
		backend.ControlEventVirtualVoice, unsafe.Pointer(&isVirtual), nil)
	assert.Equal(t, backend.StatusOK, st)
	assert.Equal(t, []bool{true}, h.virtual)

	point := int32(7)
	st = eng.FireControlEvent(ch.Address(), backend.ControlChannel,
		backend.ControlEventSyncPoint, unsafe.Pointer(&point), nil)
	assert.Equal(t, backend.StatusOK, st)
	assert.Equal(t, []int32{7}, h.syncPoints)
}

func TestControlCallbackOcclusionMutatesInPlace(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	require.NoError(t, ch.Control().SetCallback(&recordingControlHandler{}))

	direct, reverb := float32(1), float32(1)
	st := eng.FireControlEvent(ch.Address(), backend.ControlChannel,
		backend.ControlEventOcclusion,
		unsafe.Pointer(&direct), unsafe.Pointer(&reverb))
	assert.Equal(t, backend.StatusOK, st)
	assert.Equal(t, float32(0.25), direct)
	assert.Equal(t, float32(0.5), reverb)
}

func TestControlCallbackGroupSource(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	grp := resonix.ChannelGroupFromAddress(eng.Alloc())
	h := &recordingControlHandler{}
	require.NoError(t, grp.Control().SetCallback(h))

	st := eng.FireControlEvent(grp.Address(), backend.ControlChannelGroup,
		backend.ControlEventEnd, nil, nil)
	assert.Equal(t, backend.StatusOK, st)

	got, ok := h.lastSource.Group()
	require.True(t, ok)
	assert.Equal(t, grp, got)
	_, ok = h.lastSource.Channel()
	assert.False(t, ok)
}

func TestControlCallbackHandlerErrorBecomesStatus(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	h := &recordingControlHandler{fail: resonix.ErrNotReady}
	require.NoError(t, ch.Control().SetCallback(h))

	st := eng.FireControlEvent(ch.Address(), backend.ControlChannel,
		backend.ControlEventEnd, nil, nil)
	assert.Equal(t, backend.StatusNotReady, st)
}

func TestControlCallbackPanicNeverReachesEngine(t *testing.T) {
	counter := &countingHandler{}
	resonix.SetLogger(logging.New(slog.New(counter)))
	defer resonix.SetLogger(nil)

	eng := mockengine.New()
	defer mockengine.Install(eng)()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	h := &recordingControlHandler{panicWith: "handler exploded"}
	require.NoError(t, ch.Control().SetCallback(h))

	st := eng.FireControlEvent(ch.Address(), backend.ControlChannel,
		backend.ControlEventEnd, nil, nil)
	assert.Equal(t, backend.StatusOK, st, "the engine must see a clean return")
	assert.Equal(t, int64(1), counter.errors.Load(), "exactly one diagnostic")
	assert.Equal(t, fmt.Sprintf("0x%x", ch.Address()), counter.attr("source"),
		"the diagnostic must name the originating engine object")
}

func TestControlCallbackUnknownEventIgnored(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	h := &recordingControlHandler{}
	require.NoError(t, ch.Control().SetCallback(h))

	st := eng.FireControlEvent(ch.Address(), backend.ControlChannel,
		backend.ControlEvent(0x7fff), nil, nil)
	assert.Equal(t, backend.StatusOK, st)
	assert.Zero(t, h.ended)
}

func TestControlCallbackUnknownKindRejected(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	require.NoError(t, ch.Control().SetCallback(&recordingControlHandler{}))

	st := eng.FireControlEvent(ch.Address(), backend.ControlKind(9),
		backend.ControlEventEnd, nil, nil)
	assert.Equal(t, backend.StatusInvalidParam, st)
}

type recordingSystemHandler struct {
	resonix.BaseSystemHandler

	threadNames []string
	errorInfos  []resonix.ErrorInfo
	premixes    int
}

func (h *recordingSystemHandler) ThreadCreated(_ resonix.System, name string) error {
	h.threadNames = append(h.threadNames, name)
	return nil
}

func (h *recordingSystemHandler) Error(_ resonix.System, info resonix.ErrorInfo) error {
	h.errorInfos = append(h.errorInfos, info)
	return nil
}

func (h *recordingSystemHandler) PreMix(resonix.System) error {
	h.premixes++
	return nil
}

func TestSystemCallbackDispatchAndMask(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	sys := resonix.SystemFromAddress(eng.Alloc())
	h := &recordingSystemHandler{}
	require.NoError(t, sys.SetCallback(h,
		resonix.SystemEventThreadCreated|resonix.SystemEventError))

	name := []byte("rsx mixer\x00")
	st := eng.FireSystemEvent(sys.Address(), backend.SystemEventThreadCreated,
		nil, unsafe.Pointer(&name[0]))
	assert.Equal(t, backend.StatusOK, st)
	assert.Equal(t, []string{"rsx mixer"}, h.threadNames, "text payload decoded up to NUL")

	info := backend.ErrorInfo{
		Status:         backend.StatusFileNotFound,
		Function:       "RSX_System_CreateSound",
		FunctionParams: "missing.wav",
	}
	st = eng.FireSystemEvent(sys.Address(), backend.SystemEventError,
		unsafe.Pointer(&info), nil)
	assert.Equal(t, backend.StatusOK, st)
	require.Len(t, h.errorInfos, 1)
	assert.Equal(t, resonix.CodeFileNotFound, h.errorInfos[0].Code)
	assert.Equal(t, "RSX_System_CreateSound", h.errorInfos[0].Function)

	// PreMix was not in the mask, so the engine never delivers it.
	st = eng.FireSystemEvent(sys.Address(), backend.SystemEventPreMix, nil, nil)
	assert.Equal(t, backend.StatusOK, st)
	assert.Zero(t, h.premixes)
}

type releaseRecorder struct {
	released []int32
}

func (h *releaseRecorder) DataParameterRelease(_ resonix.DSP, index int32) error {
	h.released = append(h.released, index)
	return nil
}

func TestDSPCallbackDataParameterRelease(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	d := resonix.DSPFromAddress(eng.Alloc())
	h := &releaseRecorder{}
	require.NoError(t, d.SetCallback(h))

	st := eng.FireDSPEvent(d.Address(), backend.DSPEventDataParameterRelease, nil, 5)
	assert.Equal(t, backend.StatusOK, st)
	assert.Equal(t, []int32{5}, h.released)
}
