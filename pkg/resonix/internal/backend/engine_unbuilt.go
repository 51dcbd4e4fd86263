//go:build !resonix_native || !cgo

package backend

// unbuiltEngine reports StatusUnbuilt from every entry point. It is
// the default engine when the binary was compiled without the native
// library, mirroring the graceful-degradation behavior callers expect
// from ErrNotBuilt.
type unbuiltEngine struct{}

func defaultEngine() Engine { return unbuiltEngine{} }

func (unbuiltEngine) SystemCreate(uint32) (uintptr, Status)       { return 0, StatusUnbuilt }
func (unbuiltEngine) SystemInit(uintptr, int32, InitFlags) Status { return StatusUnbuilt }
func (unbuiltEngine) SystemClose(uintptr) Status                  { return StatusUnbuilt }
func (unbuiltEngine) SystemRelease(uintptr) Status                { return StatusUnbuilt }
func (unbuiltEngine) SystemUpdate(uintptr) Status                 { return StatusUnbuilt }

func (unbuiltEngine) SystemCreateSound(uintptr, string, Mode) (uintptr, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) SystemCreateChannelGroup(uintptr, string) (uintptr, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) SystemCreateDSPByType(uintptr, DSPType) (uintptr, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) SystemPlaySound(uintptr, uintptr, uintptr, bool) (uintptr, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) SystemSetCallback(uintptr, SystemEventMask, RawSystemCallback, uintptr) Status {
	return StatusUnbuilt
}

func (unbuiltEngine) SystemSetFileSystem(uintptr, RawFileSystem, int32, uintptr) Status {
	return StatusUnbuilt
}

func (unbuiltEngine) ControlCast(uintptr, ControlKind) (uintptr, Status) { return 0, StatusUnbuilt }
func (unbuiltEngine) ControlStop(uintptr) Status                         { return StatusUnbuilt }
func (unbuiltEngine) ControlSetPaused(uintptr, bool) Status              { return StatusUnbuilt }
func (unbuiltEngine) ControlGetPaused(uintptr) (bool, Status)            { return false, StatusUnbuilt }
func (unbuiltEngine) ControlSetVolume(uintptr, float32) Status           { return StatusUnbuilt }
func (unbuiltEngine) ControlGetVolume(uintptr) (float32, Status)         { return 0, StatusUnbuilt }
func (unbuiltEngine) ControlSetPitch(uintptr, float32) Status            { return StatusUnbuilt }
func (unbuiltEngine) ControlGetPitch(uintptr) (float32, Status)          { return 0, StatusUnbuilt }
func (unbuiltEngine) ControlSetMute(uintptr, bool) Status                { return StatusUnbuilt }
func (unbuiltEngine) ControlIsPlaying(uintptr) (bool, Status)            { return false, StatusUnbuilt }

func (unbuiltEngine) ControlSetCallback(uintptr, RawControlCallback, uintptr) Status {
	return StatusUnbuilt
}

func (unbuiltEngine) ChannelSetPosition(uintptr, uint32, TimeUnit) Status { return StatusUnbuilt }

func (unbuiltEngine) ChannelGetPosition(uintptr, TimeUnit) (uint32, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) GroupGetName(uintptr, []byte) (int32, Status) { return 0, StatusUnbuilt }
func (unbuiltEngine) GroupAddGroup(uintptr, uintptr, bool) Status  { return StatusUnbuilt }
func (unbuiltEngine) GroupRelease(uintptr) Status                  { return StatusUnbuilt }
func (unbuiltEngine) SoundGetName(uintptr, []byte) (int32, Status) { return 0, StatusUnbuilt }
func (unbuiltEngine) SoundGetLength(uintptr, TimeUnit) (uint32, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) SoundGetOpenState(uintptr) (OpenState, uint32, Status) {
	return OpenStateError, 0, StatusUnbuilt
}

func (unbuiltEngine) SoundRelease(uintptr) Status { return StatusUnbuilt }

func (unbuiltEngine) DSPGetNumParameters(uintptr) (int32, Status) { return 0, StatusUnbuilt }

func (unbuiltEngine) DSPGetParameterInfo(uintptr, int32) (ParamDesc, Status) {
	return ParamDesc{}, StatusUnbuilt
}

func (unbuiltEngine) DSPGetParameterBool(uintptr, int32, []byte) (bool, Status) {
	return false, StatusUnbuilt
}

func (unbuiltEngine) DSPSetParameterBool(uintptr, int32, bool) Status { return StatusUnbuilt }

func (unbuiltEngine) DSPGetParameterInt(uintptr, int32, []byte) (int32, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) DSPSetParameterInt(uintptr, int32, int32) Status { return StatusUnbuilt }

func (unbuiltEngine) DSPGetParameterFloat(uintptr, int32, []byte) (float32, Status) {
	return 0, StatusUnbuilt
}

func (unbuiltEngine) DSPSetParameterFloat(uintptr, int32, float32) Status { return StatusUnbuilt }
func (unbuiltEngine) DSPGetParameterData(uintptr, int32, []byte) Status   { return StatusUnbuilt }
func (unbuiltEngine) DSPSetParameterData(uintptr, int32, []byte) Status   { return StatusUnbuilt }
func (unbuiltEngine) DSPSetBypass(uintptr, bool) Status                   { return StatusUnbuilt }

func (unbuiltEngine) DSPSetCallback(uintptr, RawDSPCallback, uintptr) Status {
	return StatusUnbuilt
}

func (unbuiltEngine) DSPRelease(uintptr) Status { return StatusUnbuilt }
