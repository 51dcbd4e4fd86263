package backend

import "sync/atomic"

// Engine mirrors the native C ABI one method per entry point. Addresses
// are opaque; the engine serializes its own internal state, so methods
// may be called from any goroutine. Implementations: the cgo layer
// (resonix_native build tag), the unbuilt fallback, and the scripted
// test double in pkg/resonix/mockengine.
type Engine interface {
	// System lifecycle.
	SystemCreate(headerVersion uint32) (uintptr, Status)
	SystemInit(sys uintptr, maxChannels int32, flags InitFlags) Status
	SystemClose(sys uintptr) Status
	SystemRelease(sys uintptr) Status
	SystemUpdate(sys uintptr) Status

	// System factories.
	SystemCreateSound(sys uintptr, source string, mode Mode) (uintptr, Status)
	SystemCreateChannelGroup(sys uintptr, name string) (uintptr, Status)
	SystemCreateDSPByType(sys uintptr, kind DSPType) (uintptr, Status)
	SystemPlaySound(sys, sound, group uintptr, paused bool) (uintptr, Status)

	// System callback and filesystem registration.
	SystemSetCallback(sys uintptr, mask SystemEventMask, cb RawSystemCallback, ctx uintptr) Status
	SystemSetFileSystem(sys uintptr, fs RawFileSystem, blockAlign int32, ctx uintptr) Status

	// Channel-control shared surface. ControlCast is the engine's real
	// base-type cast entry point; the wrapper calls it only for the
	// one-time layout self-check.
	ControlCast(addr uintptr, kind ControlKind) (uintptr, Status)
	ControlStop(ctl uintptr) Status
	ControlSetPaused(ctl uintptr, paused bool) Status
	ControlGetPaused(ctl uintptr) (bool, Status)
	ControlSetVolume(ctl uintptr, volume float32) Status
	ControlGetVolume(ctl uintptr) (float32, Status)
	ControlSetPitch(ctl uintptr, pitch float32) Status
	ControlGetPitch(ctl uintptr) (float32, Status)
	ControlSetMute(ctl uintptr, mute bool) Status
	ControlIsPlaying(ctl uintptr) (bool, Status)
	ControlSetCallback(ctl uintptr, cb RawControlCallback, ctx uintptr) Status

	// Channel specifics.
	ChannelSetPosition(ch uintptr, pos uint32, unit TimeUnit) Status
	ChannelGetPosition(ch uintptr, unit TimeUnit) (uint32, Status)

	// Channel-group specifics.
	GroupGetName(group uintptr, buf []byte) (needed int32, st Status)
	GroupAddGroup(parent, child uintptr, propagateClock bool) Status
	GroupRelease(group uintptr) Status

	// Sound.
	SoundGetName(sound uintptr, buf []byte) (needed int32, st Status)
	SoundGetLength(sound uintptr, unit TimeUnit) (uint32, Status)
	SoundGetOpenState(sound uintptr) (state OpenState, percentBuffered uint32, st Status)
	SoundRelease(sound uintptr) Status

	// DSP.
	DSPGetNumParameters(dsp uintptr) (int32, Status)
	DSPGetParameterInfo(dsp uintptr, index int32) (ParamDesc, Status)
	DSPGetParameterBool(dsp uintptr, index int32, valueStr []byte) (bool, Status)
	DSPSetParameterBool(dsp uintptr, index int32, value bool) Status
	DSPGetParameterInt(dsp uintptr, index int32, valueStr []byte) (int32, Status)
	DSPSetParameterInt(dsp uintptr, index int32, value int32) Status
	DSPGetParameterFloat(dsp uintptr, index int32, valueStr []byte) (float32, Status)
	DSPSetParameterFloat(dsp uintptr, index int32, value float32) Status
	DSPGetParameterData(dsp uintptr, index int32, dst []byte) Status
	DSPSetParameterData(dsp uintptr, index int32, src []byte) Status
	DSPSetBypass(dsp uintptr, bypass bool) Status
	DSPSetCallback(dsp uintptr, cb RawDSPCallback, ctx uintptr) Status
	DSPRelease(dsp uintptr) Status
}

var current atomic.Pointer[Engine]

func init() {
	e := defaultEngine()
	current.Store(&e)
}

// Current returns the active engine implementation.
func Current() Engine { return *current.Load() }

// Use installs e as the active engine and returns the previous one.
// Tests install mockengine doubles through this; production code never
// calls it.
func Use(e Engine) Engine {
	prev := current.Swap(&e)
	return *prev
}
