//go:build resonix_native && cgo

package backend

/*
#cgo CFLAGS: -I${SRCDIR}/../../../../native/include
#cgo LDFLAGS: -L${SRCDIR}/../../../../native/lib -lresonix
#include <stdlib.h>
#include <string.h>
#include "resonix.h"

extern RSX_RESULT rsxgoSystemCallback(RSX_SYSTEM *sys, unsigned int event, void *data1, void *data2, void *ctx);
extern RSX_RESULT rsxgoControlCallback(RSX_CHANNELCONTROL *ctl, int kind, int event, void *data1, void *data2, void *ctx);
extern RSX_RESULT rsxgoDSPCallback(RSX_DSP *dsp, int event, void *data, int index, void *ctx);

extern RSX_RESULT rsxgoFileOpen(const char *name, unsigned int *filesize, void **handle, void *ctx);
extern RSX_RESULT rsxgoFileClose(void *handle, void *ctx);
extern RSX_RESULT rsxgoFileRead(void *handle, void *buffer, unsigned int sizebytes, unsigned int *bytesread, void *ctx);
extern RSX_RESULT rsxgoFileSeek(void *handle, unsigned int pos, void *ctx);
extern RSX_RESULT rsxgoFileReadAsync(RSX_ASYNCREADINFO *info, void *ctx);
extern RSX_RESULT rsxgoFileCancelAsync(RSX_ASYNCREADINFO *info, void *ctx);
*/
import "C"

import (
	"sync"
	"unsafe"
)

// nativeEngine forwards every Engine method to libresonix. Callback
// registrations store the Go-side raw callback in a process-global
// registry keyed by the opaque context value; the exported C
// trampolines above look the callback up on every invocation, so the
// engine never holds a Go pointer.
type nativeEngine struct{}

func defaultEngine() Engine { return nativeEngine{} }

type registration struct {
	control RawControlCallback
	system  RawSystemCallback
	dsp     RawDSPCallback
	fs      RawFileSystem
	user    uintptr
}

var (
	regMu sync.Mutex
	regs  = map[uintptr]*registration{}
)

func register(r *registration, ctx uintptr) unsafe.Pointer {
	regMu.Lock()
	regs[ctx] = r
	regMu.Unlock()
	return unsafe.Pointer(ctx)
}

func lookup(ctx unsafe.Pointer) (*registration, bool) {
	regMu.Lock()
	r, ok := regs[uintptr(ctx)]
	regMu.Unlock()
	return r, ok
}

//export rsxgoSystemCallback
func rsxgoSystemCallback(sys *C.RSX_SYSTEM, event C.uint, data1, data2, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.system == nil {
		return C.RSX_RESULT(StatusOK)
	}
	// The error payload is a C struct of engine-owned pointers; copy it
	// out into the Go shape the dispatcher decodes.
	if SystemEvent(event) == SystemEventError && data1 != nil {
		raw := (*C.RSX_ERRORINFO)(data1)
		data1 = unsafe.Pointer(ErrorInfoFrom(Status(raw.result),
			unsafe.Pointer(raw.function), unsafe.Pointer(raw.functionparams)))
	}
	st := r.system(uintptr(unsafe.Pointer(sys)), SystemEvent(event), data1, data2, r.user)
	return C.RSX_RESULT(st)
}

//export rsxgoControlCallback
func rsxgoControlCallback(ctl *C.RSX_CHANNELCONTROL, kind, event C.int, data1, data2, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.control == nil {
		return C.RSX_RESULT(StatusOK)
	}
	st := r.control(uintptr(unsafe.Pointer(ctl)), ControlKind(kind), ControlEvent(event), data1, data2, r.user)
	return C.RSX_RESULT(st)
}

//export rsxgoDSPCallback
func rsxgoDSPCallback(dsp *C.RSX_DSP, event C.int, data unsafe.Pointer, index C.int, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.dsp == nil {
		return C.RSX_RESULT(StatusOK)
	}
	st := r.dsp(uintptr(unsafe.Pointer(dsp)), DSPEvent(event), data, int32(index), r.user)
	return C.RSX_RESULT(st)
}

//export rsxgoFileOpen
func rsxgoFileOpen(name *C.char, filesize *C.uint, handle *unsafe.Pointer, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.fs.Open == nil {
		return C.RSX_RESULT(StatusInternal)
	}
	h, size, st := r.fs.Open(C.GoString(name), r.user)
	if st == StatusOK {
		*filesize = C.uint(size)
		*handle = unsafe.Pointer(h)
	}
	return C.RSX_RESULT(st)
}

//export rsxgoFileClose
func rsxgoFileClose(handle, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.fs.Close == nil {
		return C.RSX_RESULT(StatusInternal)
	}
	return C.RSX_RESULT(r.fs.Close(uintptr(handle), r.user))
}

//export rsxgoFileRead
func rsxgoFileRead(handle, buffer unsafe.Pointer, sizebytes C.uint, bytesread *C.uint, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.fs.Read == nil {
		return C.RSX_RESULT(StatusInternal)
	}
	buf := unsafe.Slice((*byte)(buffer), int(sizebytes))
	n, st := r.fs.Read(uintptr(handle), buf, r.user)
	*bytesread = C.uint(n)
	return C.RSX_RESULT(st)
}

//export rsxgoFileSeek
func rsxgoFileSeek(handle unsafe.Pointer, pos C.uint, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.fs.Seek == nil {
		return C.RSX_RESULT(StatusInternal)
	}
	return C.RSX_RESULT(r.fs.Seek(uintptr(handle), uint32(pos), r.user))
}

//export rsxgoFileReadAsync
func rsxgoFileReadAsync(info *C.RSX_ASYNCREADINFO, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.fs.ReadAsync == nil {
		return C.RSX_RESULT(StatusInternal)
	}
	return C.RSX_RESULT(r.fs.ReadAsync(wrapAsyncInfo(info), r.user))
}

//export rsxgoFileCancelAsync
func rsxgoFileCancelAsync(info *C.RSX_ASYNCREADINFO, ctx unsafe.Pointer) C.RSX_RESULT {
	r, ok := lookup(ctx)
	if !ok || r.fs.CancelAsync == nil {
		return C.RSX_RESULT(StatusInternal)
	}
	return C.RSX_RESULT(r.fs.CancelAsync(wrapAsyncInfo(info), r.user))
}

func wrapAsyncInfo(info *C.RSX_ASYNCREADINFO) *AsyncReadInfo {
	size := uint32(info.sizebytes)
	return &AsyncReadInfo{
		Handle:   uintptr(info.handle),
		Offset:   uint32(info.offset),
		Size:     size,
		Priority: int32(info.priority),
		Buffer:   unsafe.Slice((*byte)(info.buffer), int(size)),
		Done: func(read uint32, st Status) {
			info.bytesread = C.uint(read)
			C.RSX_AsyncReadInfo_Done(info, C.RSX_RESULT(st))
		},
	}
}

func (nativeEngine) SystemCreate(headerVersion uint32) (uintptr, Status) {
	var sys *C.RSX_SYSTEM
	st := Status(C.RSX_System_Create(&sys, C.uint(headerVersion)))
	return uintptr(unsafe.Pointer(sys)), st
}

func (nativeEngine) SystemInit(sys uintptr, maxChannels int32, flags InitFlags) Status {
	return Status(C.RSX_System_Init(csys(sys), C.int(maxChannels), C.uint(flags), nil))
}

func (nativeEngine) SystemClose(sys uintptr) Status {
	return Status(C.RSX_System_Close(csys(sys)))
}

func (nativeEngine) SystemRelease(sys uintptr) Status {
	return Status(C.RSX_System_Release(csys(sys)))
}

func (nativeEngine) SystemUpdate(sys uintptr) Status {
	return Status(C.RSX_System_Update(csys(sys)))
}

func (nativeEngine) SystemCreateSound(sys uintptr, source string, mode Mode) (uintptr, Status) {
	cname := C.CString(source)
	defer C.free(unsafe.Pointer(cname))
	var snd *C.RSX_SOUND
	st := Status(C.RSX_System_CreateSound(csys(sys), cname, C.uint(mode), &snd))
	return uintptr(unsafe.Pointer(snd)), st
}

func (nativeEngine) SystemCreateChannelGroup(sys uintptr, name string) (uintptr, Status) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var grp *C.RSX_CHANNELGROUP
	st := Status(C.RSX_System_CreateChannelGroup(csys(sys), cname, &grp))
	return uintptr(unsafe.Pointer(grp)), st
}

func (nativeEngine) SystemCreateDSPByType(sys uintptr, kind DSPType) (uintptr, Status) {
	var dsp *C.RSX_DSP
	st := Status(C.RSX_System_CreateDSPByType(csys(sys), C.int(kind), &dsp))
	return uintptr(unsafe.Pointer(dsp)), st
}

func (nativeEngine) SystemPlaySound(sys, sound, group uintptr, paused bool) (uintptr, Status) {
	var ch *C.RSX_CHANNEL
	st := Status(C.RSX_System_PlaySound(csys(sys), csnd(sound), cgrp(group), cbool(paused), &ch))
	return uintptr(unsafe.Pointer(ch)), st
}

func (nativeEngine) SystemSetCallback(sys uintptr, mask SystemEventMask, cb RawSystemCallback, ctx uintptr) Status {
	p := register(&registration{system: cb, user: ctx}, ctx)
	return Status(C.RSX_System_SetCallback(csys(sys), C.RSX_SYSTEM_CALLBACK(C.rsxgoSystemCallback), C.uint(mask), p))
}

func (nativeEngine) SystemSetFileSystem(sys uintptr, fs RawFileSystem, blockAlign int32, ctx uintptr) Status {
	p := register(&registration{fs: fs, user: ctx}, ctx)
	return Status(C.RSX_System_SetFileSystem(csys(sys),
		C.RSX_FILE_OPEN_CALLBACK(C.rsxgoFileOpen),
		C.RSX_FILE_CLOSE_CALLBACK(C.rsxgoFileClose),
		C.RSX_FILE_READ_CALLBACK(C.rsxgoFileRead),
		C.RSX_FILE_SEEK_CALLBACK(C.rsxgoFileSeek),
		C.RSX_FILE_ASYNCREAD_CALLBACK(C.rsxgoFileReadAsync),
		C.RSX_FILE_ASYNCCANCEL_CALLBACK(C.rsxgoFileCancelAsync),
		C.int(blockAlign), p))
}

func (nativeEngine) ControlCast(addr uintptr, kind ControlKind) (uintptr, Status) {
	var ctl *C.RSX_CHANNELCONTROL
	st := Status(C.RSX_CastToChannelControl(unsafe.Pointer(addr), C.int(kind), &ctl))
	return uintptr(unsafe.Pointer(ctl)), st
}

func (nativeEngine) ControlStop(ctl uintptr) Status {
	return Status(C.RSX_ChannelControl_Stop(cctl(ctl)))
}

func (nativeEngine) ControlSetPaused(ctl uintptr, paused bool) Status {
	return Status(C.RSX_ChannelControl_SetPaused(cctl(ctl), cbool(paused)))
}

func (nativeEngine) ControlGetPaused(ctl uintptr) (bool, Status) {
	var v C.int
	st := Status(C.RSX_ChannelControl_GetPaused(cctl(ctl), &v))
	return v != 0, st
}

func (nativeEngine) ControlSetVolume(ctl uintptr, volume float32) Status {
	return Status(C.RSX_ChannelControl_SetVolume(cctl(ctl), C.float(volume)))
}

func (nativeEngine) ControlGetVolume(ctl uintptr) (float32, Status) {
	var v C.float
	st := Status(C.RSX_ChannelControl_GetVolume(cctl(ctl), &v))
	return float32(v), st
}

func (nativeEngine) ControlSetPitch(ctl uintptr, pitch float32) Status {
	return Status(C.RSX_ChannelControl_SetPitch(cctl(ctl), C.float(pitch)))
}

func (nativeEngine) ControlGetPitch(ctl uintptr) (float32, Status) {
	var v C.float
	st := Status(C.RSX_ChannelControl_GetPitch(cctl(ctl), &v))
	return float32(v), st
}

func (nativeEngine) ControlSetMute(ctl uintptr, mute bool) Status {
	return Status(C.RSX_ChannelControl_SetMute(cctl(ctl), cbool(mute)))
}

func (nativeEngine) ControlIsPlaying(ctl uintptr) (bool, Status) {
	var v C.int
	st := Status(C.RSX_ChannelControl_IsPlaying(cctl(ctl), &v))
	return v != 0, st
}

func (nativeEngine) ControlSetCallback(ctl uintptr, cb RawControlCallback, ctx uintptr) Status {
	p := register(&registration{control: cb, user: ctx}, ctx)
	return Status(C.RSX_ChannelControl_SetCallback(cctl(ctl), C.RSX_CHANNELCONTROL_CALLBACK(C.rsxgoControlCallback), p))
}

func (nativeEngine) ChannelSetPosition(ch uintptr, pos uint32, unit TimeUnit) Status {
	return Status(C.RSX_Channel_SetPosition(cchan(ch), C.uint(pos), C.uint(unit)))
}

func (nativeEngine) ChannelGetPosition(ch uintptr, unit TimeUnit) (uint32, Status) {
	var v C.uint
	st := Status(C.RSX_Channel_GetPosition(cchan(ch), &v, C.uint(unit)))
	return uint32(v), st
}

func (nativeEngine) GroupGetName(group uintptr, buf []byte) (int32, Status) {
	var needed C.int
	st := Status(C.RSX_ChannelGroup_GetName(cgrp(group), (*C.char)(unsafe.Pointer(&buf[0])), C.int(len(buf)), &needed))
	return int32(needed), st
}

func (nativeEngine) GroupAddGroup(parent, child uintptr, propagateClock bool) Status {
	return Status(C.RSX_ChannelGroup_AddGroup(cgrp(parent), cgrp(child), cbool(propagateClock), nil))
}

func (nativeEngine) GroupRelease(group uintptr) Status {
	return Status(C.RSX_ChannelGroup_Release(cgrp(group)))
}

func (nativeEngine) SoundGetName(sound uintptr, buf []byte) (int32, Status) {
	var needed C.int
	st := Status(C.RSX_Sound_GetName(csnd(sound), (*C.char)(unsafe.Pointer(&buf[0])), C.int(len(buf)), &needed))
	return int32(needed), st
}

func (nativeEngine) SoundGetLength(sound uintptr, unit TimeUnit) (uint32, Status) {
	var v C.uint
	st := Status(C.RSX_Sound_GetLength(csnd(sound), &v, C.uint(unit)))
	return uint32(v), st
}

func (nativeEngine) SoundGetOpenState(sound uintptr) (OpenState, uint32, Status) {
	var state C.int
	var pct C.uint
	st := Status(C.RSX_Sound_GetOpenState(csnd(sound), &state, &pct, nil, nil))
	return OpenState(state), uint32(pct), st
}

func (nativeEngine) SoundRelease(sound uintptr) Status {
	return Status(C.RSX_Sound_Release(csnd(sound)))
}

func (nativeEngine) DSPGetNumParameters(dsp uintptr) (int32, Status) {
	var v C.int
	st := Status(C.RSX_DSP_GetNumParameters(cdsp(dsp), &v))
	return int32(v), st
}

func (nativeEngine) DSPGetParameterInfo(dsp uintptr, index int32) (ParamDesc, Status) {
	var raw C.RSX_DSP_PARAMETER_DESC
	st := Status(C.RSX_DSP_GetParameterInfo(cdsp(dsp), C.int(index), &raw))
	if st != StatusOK {
		return ParamDesc{}, st
	}
	desc := ParamDesc{
		Type:  ParamType(raw.paramtype),
		Name:  C.GoString(&raw.name[0]),
		Label: C.GoString(&raw.label[0]),
	}
	if desc.Type == ParamTypeData {
		desc.DataTag = DataTag(raw.datatype)
	}
	return desc, st
}

func (nativeEngine) DSPGetParameterBool(dsp uintptr, index int32, valueStr []byte) (bool, Status) {
	var v C.int
	st := Status(C.RSX_DSP_GetParameterBool(cdsp(dsp), C.int(index), &v, cstrbuf(valueStr), C.int(len(valueStr))))
	return v != 0, st
}

func (nativeEngine) DSPSetParameterBool(dsp uintptr, index int32, value bool) Status {
	return Status(C.RSX_DSP_SetParameterBool(cdsp(dsp), C.int(index), cbool(value)))
}

func (nativeEngine) DSPGetParameterInt(dsp uintptr, index int32, valueStr []byte) (int32, Status) {
	var v C.int
	st := Status(C.RSX_DSP_GetParameterInt(cdsp(dsp), C.int(index), &v, cstrbuf(valueStr), C.int(len(valueStr))))
	return int32(v), st
}

func (nativeEngine) DSPSetParameterInt(dsp uintptr, index int32, value int32) Status {
	return Status(C.RSX_DSP_SetParameterInt(cdsp(dsp), C.int(index), C.int(value)))
}

func (nativeEngine) DSPGetParameterFloat(dsp uintptr, index int32, valueStr []byte) (float32, Status) {
	var v C.float
	st := Status(C.RSX_DSP_GetParameterFloat(cdsp(dsp), C.int(index), &v, cstrbuf(valueStr), C.int(len(valueStr))))
	return float32(v), st
}

func (nativeEngine) DSPSetParameterFloat(dsp uintptr, index int32, value float32) Status {
	return Status(C.RSX_DSP_SetParameterFloat(cdsp(dsp), C.int(index), C.float(value)))
}

func (nativeEngine) DSPGetParameterData(dsp uintptr, index int32, dst []byte) Status {
	var ptr unsafe.Pointer
	var length C.uint
	st := Status(C.RSX_DSP_GetParameterData(cdsp(dsp), C.int(index), &ptr, &length, nil, 0))
	if st != StatusOK {
		return st
	}
	if int(length) < len(dst) {
		return StatusInvalidParam
	}
	copy(dst, unsafe.Slice((*byte)(ptr), len(dst)))
	return st
}

func (nativeEngine) DSPSetParameterData(dsp uintptr, index int32, src []byte) Status {
	return Status(C.RSX_DSP_SetParameterData(cdsp(dsp), C.int(index), unsafe.Pointer(&src[0]), C.uint(len(src))))
}

func (nativeEngine) DSPSetBypass(dsp uintptr, bypass bool) Status {
	return Status(C.RSX_DSP_SetBypass(cdsp(dsp), cbool(bypass)))
}

func (nativeEngine) DSPSetCallback(dsp uintptr, cb RawDSPCallback, ctx uintptr) Status {
	p := register(&registration{dsp: cb, user: ctx}, ctx)
	return Status(C.RSX_DSP_SetCallback(cdsp(dsp), C.RSX_DSP_CALLBACK(C.rsxgoDSPCallback), p))
}

func (nativeEngine) DSPRelease(dsp uintptr) Status {
	return Status(C.RSX_DSP_Release(cdsp(dsp)))
}

func csys(p uintptr) *C.RSX_SYSTEM         { return (*C.RSX_SYSTEM)(unsafe.Pointer(p)) }
func csnd(p uintptr) *C.RSX_SOUND          { return (*C.RSX_SOUND)(unsafe.Pointer(p)) }
func cgrp(p uintptr) *C.RSX_CHANNELGROUP   { return (*C.RSX_CHANNELGROUP)(unsafe.Pointer(p)) }
func cchan(p uintptr) *C.RSX_CHANNEL       { return (*C.RSX_CHANNEL)(unsafe.Pointer(p)) }
func cctl(p uintptr) *C.RSX_CHANNELCONTROL { return (*C.RSX_CHANNELCONTROL)(unsafe.Pointer(p)) }
func cdsp(p uintptr) *C.RSX_DSP            { return (*C.RSX_DSP)(unsafe.Pointer(p)) }

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func cstrbuf(b []byte) *C.char {
	if len(b) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}
