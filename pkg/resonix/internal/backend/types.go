package backend

import "unsafe"

// Version is the engine header version this wrapper was written
// against. SystemCreate reports StatusVersion when the linked engine
// is older.
const Version uint32 = 0x00020210

// InitFlags configure System initialization.
type InitFlags uint32

const (
	InitNormal             InitFlags = 0x0
	InitStreamFromUpdate   InitFlags = 0x1
	InitMixFromUpdate      InitFlags = 0x2
	Init3DRighthanded      InitFlags = 0x4
	InitProfileEnable      InitFlags = 0x10000
	InitVol0BecomesVirtual InitFlags = 0x20000
)

// Mode configures sound creation.
type Mode uint32

const (
	ModeDefault      Mode = 0x0
	ModeLoopOff      Mode = 0x1
	ModeLoopNormal   Mode = 0x2
	Mode2D           Mode = 0x8
	Mode3D           Mode = 0x10
	ModeCreateStream Mode = 0x80
	ModeCreateSample Mode = 0x100
	ModeNonBlocking  Mode = 0x10000
)

// TimeUnit selects the unit for position and length queries.
type TimeUnit uint32

const (
	TimeUnitMS       TimeUnit = 0x1
	TimeUnitPCM      TimeUnit = 0x2
	TimeUnitPCMBytes TimeUnit = 0x4
	TimeUnitRawBytes TimeUnit = 0x8
)

// OpenState reports the readiness of a sound opened non-blocking.
type OpenState int32

const (
	OpenStateReady OpenState = iota
	OpenStateLoading
	OpenStateError
	OpenStateConnecting
	OpenStateBuffering
	OpenStateSeeking
	OpenStatePlaying
	OpenStateSetPosition
)

// ControlKind is the engine discriminant distinguishing the handle
// kinds that share the channel-control surface.
type ControlKind int32

const (
	ControlChannel      ControlKind = 0
	ControlChannelGroup ControlKind = 1
)

// ControlEvent is the numeric event kind delivered to a registered
// channel-control callback.
type ControlEvent int32

const (
	ControlEventEnd ControlEvent = iota
	ControlEventVirtualVoice
	ControlEventSyncPoint
	ControlEventOcclusion
)

// SystemEvent is the numeric event kind delivered to a registered
// system callback. Values are bit flags so a registration can select a
// subset via SystemEventMask.
type SystemEvent uint32

const (
	SystemEventDeviceListChanged SystemEvent = 0x1
	SystemEventMemoryAllocFailed SystemEvent = 0x4
	SystemEventThreadCreated     SystemEvent = 0x8
	SystemEventBadDSPConnection  SystemEvent = 0x10
	SystemEventPreMix            SystemEvent = 0x20
	SystemEventPostMix           SystemEvent = 0x40
	SystemEventError             SystemEvent = 0x80
	SystemEventPreUpdate         SystemEvent = 0x400
	SystemEventPostUpdate        SystemEvent = 0x800
	SystemEventAll               SystemEvent = 0xFFFFFFFF
)

// SystemEventMask selects which system events a registration receives.
type SystemEventMask = SystemEvent

// DSPEvent is the numeric event kind delivered to a registered DSP
// callback.
type DSPEvent int32

const (
	DSPEventDataParameterRelease DSPEvent = iota
)

// DSPType identifies a built-in DSP plugin kind.
type DSPType int32

const (
	DSPTypeUnknown DSPType = iota
	DSPTypeMixer
	DSPTypeOscillator
	DSPTypeLowpass
	DSPTypeHighpass
	DSPTypeEcho
	DSPTypeFader
	DSPTypeFlange
	DSPTypeDistortion
	DSPTypeNormalize
	DSPTypeLimiter
	DSPTypeParamEQ
	DSPTypePitchShift
	DSPTypeChorus
	DSPTypeCompressor
	DSPTypeSFXReverb
	DSPTypeFFT
	DSPTypeThreeEQ
	DSPTypeConvolutionReverb
	DSPTypeObjectPan
)

// ParamType classifies a DSP parameter's storage class.
type ParamType int32

const (
	ParamTypeFloat ParamType = iota
	ParamTypeInt
	ParamTypeBool
	ParamTypeData
)

// DataTag identifies which binary layout a data ("blob") parameter
// follows. The engine reports it in ParamDesc for ParamTypeData
// parameters. User-defined layouts are zero or positive; engine-defined
// layouts are negative.
type DataTag int32

const (
	DataTagUser              DataTag = 0
	DataTagOverallGain       DataTag = -1
	DataTagAttributes3D      DataTag = -2
	DataTagSidechain         DataTag = -3
	DataTagFFT               DataTag = -4
	DataTagAttributes3DMulti DataTag = -5
)

// ParamValueStrLen is the fixed capacity the engine guarantees is
// sufficient for a parameter's display string.
const ParamValueStrLen = 32

// ParamDesc is the engine's description of one DSP parameter. For
// ParamTypeData parameters DataTag identifies the blob layout; it is a
// property of the live plugin instance and must be re-read before
// every data access.
type ParamDesc struct {
	Type    ParamType
	Name    string
	Label   string
	DataTag DataTag
}

// ErrorInfo is the payload of a SystemEventError callback.
type ErrorInfo struct {
	Status         Status
	Function       string
	FunctionParams string
}

// ErrorInfoFrom copies the engine's raw RSX_ERRORINFO fields into Go
// memory. function and params point at NUL-terminated engine-owned
// strings that are only valid for the duration of the callback; either
// may be nil.
func ErrorInfoFrom(st Status, function, params unsafe.Pointer) *ErrorInfo {
	return &ErrorInfo{
		Status:         st,
		Function:       goString(function),
		FunctionParams: goString(params),
	}
}

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

// Raw callback signatures. The engine invokes these from its own
// threads with raw addresses and untyped payload pointers; ctx is the
// opaque user-context value supplied at registration, round-tripped
// unmodified.
type (
	RawControlCallback func(ctl uintptr, kind ControlKind, event ControlEvent, data1, data2 unsafe.Pointer, ctx uintptr) Status
	RawSystemCallback  func(sys uintptr, event SystemEvent, data1, data2 unsafe.Pointer, ctx uintptr) Status
	RawDSPCallback     func(dsp uintptr, event DSPEvent, data unsafe.Pointer, index int32, ctx uintptr) Status
)

// RawFileSystem is the hook set installed by SystemSetFileSystem. Read
// and Seek are nil for asynchronous registrations; ReadAsync and
// CancelAsync are nil for synchronous ones.
type RawFileSystem struct {
	Open  func(name string, ctx uintptr) (handle uintptr, size uint32, st Status)
	Close func(handle uintptr, ctx uintptr) Status

	Read func(handle uintptr, buf []byte, ctx uintptr) (read uint32, st Status)
	Seek func(handle uintptr, pos uint32, ctx uintptr) Status

	ReadAsync   func(info *AsyncReadInfo, ctx uintptr) Status
	CancelAsync func(info *AsyncReadInfo, ctx uintptr) Status
}

// AsyncReadInfo describes one in-flight engine-issued read request.
// Buffer is the engine-owned destination view, len(Buffer) == Size.
// Done must be invoked exactly once with the byte count produced and
// the completion status; the engine frees the request afterwards.
type AsyncReadInfo struct {
	Handle   uintptr
	Offset   uint32
	Size     uint32
	Priority int32
	Buffer   []byte
	Done     func(read uint32, st Status)
}
