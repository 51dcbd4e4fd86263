package resonix

import (
	"unsafe"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// The engine stores plugin parameters untyped, addressed by index and
// described by a runtime tag. The types here move the bookkeeping to
// compile time: an Index carries both the plugin kind it belongs to
// and the Go type it marshals, so addressing a compressor index
// against an EQ unit, or reading a float index as a bool, fails at the
// call site instead of at runtime.

// Index addresses one parameter of plugin kind K marshalling type T.
type Index[K, T any] int32

// Unit is a DSP whose plugin kind is statically known. Construct one
// with As after creating the matching DSPType.
type Unit[K any] struct {
	DSP
}

// As brands a DSP with its plugin kind. The caller asserts that d was
// created with the DSPType matching K.
func As[K any](d DSP) Unit[K] { return Unit[K]{DSP: d} }

// Scalar enumerates the primitive parameter types the engine stores
// directly.
type Scalar interface {
	bool | int32 | float32
}

// GetParameter reads a primitive parameter by direct pass-through to
// the engine accessor matching T.
func GetParameter[K any, T Scalar](u Unit[K], idx Index[K, T]) (T, error) {
	var v T
	var st backend.Status
	switch p := any(&v).(type) {
	case *bool:
		*p, st = eng().DSPGetParameterBool(u.addr, int32(idx), nil)
	case *int32:
		*p, st = eng().DSPGetParameterInt(u.addr, int32(idx), nil)
	case *float32:
		*p, st = eng().DSPGetParameterFloat(u.addr, int32(idx), nil)
	}
	if st != backend.StatusOK {
		var zero T
		return zero, statusErr(st)
	}
	return v, nil
}

// SetParameter writes a primitive parameter by direct pass-through to
// the engine accessor matching T.
func SetParameter[K any, T Scalar](u Unit[K], idx Index[K, T], value T) error {
	var st backend.Status
	switch v := any(value).(type) {
	case bool:
		st = eng().DSPSetParameterBool(u.addr, int32(idx), v)
	case int32:
		st = eng().DSPSetParameterInt(u.addr, int32(idx), v)
	case float32:
		st = eng().DSPSetParameterFloat(u.addr, int32(idx), v)
	}
	return statusErr(st)
}

// ParameterString returns the engine's short display form of any
// parameter. The engine guarantees the string fits ParamValueStrLen
// bytes, so unlike name queries this never needs the growing-buffer
// protocol.
func ParameterString[K, T any](u Unit[K], idx Index[K, T]) (string, error) {
	desc, st := eng().DSPGetParameterInfo(u.addr, int32(idx))
	if st != backend.StatusOK {
		return "", statusErr(st)
	}
	var buf [backend.ParamValueStrLen]byte
	switch desc.Type {
	case backend.ParamTypeBool:
		_, st = eng().DSPGetParameterBool(u.addr, int32(idx), buf[:])
	case backend.ParamTypeInt:
		_, st = eng().DSPGetParameterInt(u.addr, int32(idx), buf[:])
	case backend.ParamTypeFloat:
		_, st = eng().DSPGetParameterFloat(u.addr, int32(idx), buf[:])
	default:
		return "", Error{Code: CodeInvalidParam}
	}
	if st != backend.StatusOK {
		return "", statusErr(st)
	}
	return stringUntilNul(buf[:])
}

// DataParameter is implemented by blob types whose binary layout the
// engine describes with a data tag. Implementations are fixed-layout
// structs declared in this package; the tag comparison before every
// raw access is what makes the reinterpretation below sound.
type DataParameter interface {
	dataTag() backend.DataTag
}

// checkDataTag fetches the parameter's description and rejects the
// access unless the engine reports exactly the layout T declares. The
// description is read fresh on every access because the tag belongs to
// the plugin instance, not to the index type.
func checkDataTag[K any](u Unit[K], index int32, want backend.DataTag) error {
	desc, st := eng().DSPGetParameterInfo(u.addr, index)
	if st != backend.StatusOK {
		return statusErr(st)
	}
	if desc.Type != backend.ParamTypeData || desc.DataTag != want {
		return Error{Code: CodeInvalidParam}
	}
	return nil
}

// GetDataParameter reads a blob parameter. On a tag mismatch it
// returns CodeInvalidParam without touching the raw buffer. The final
// byte-to-struct reinterpretation is the single unchecked step in the
// path; the preceding tag comparison plus T's declared layout make it
// sound.
func GetDataParameter[K any, T DataParameter](u Unit[K], idx Index[K, T]) (T, error) {
	var v T
	if err := checkDataTag(u, int32(idx), v.dataTag()); err != nil {
		return v, err
	}
	buf := make([]byte, unsafe.Sizeof(v))
	if st := eng().DSPGetParameterData(u.addr, int32(idx), buf); st != backend.StatusOK {
		return v, statusErr(st)
	}
	v = *(*T)(unsafe.Pointer(&buf[0]))
	return v, nil
}

// SetDataParameter writes a blob parameter, mirroring the read path:
// tag check first, then the value's raw bytes go to the engine.
func SetDataParameter[K any, T DataParameter](u Unit[K], idx Index[K, T], value T) error {
	if err := checkDataTag(u, int32(idx), value.dataTag()); err != nil {
		return err
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	return statusErr(eng().DSPSetParameterData(u.addr, int32(idx), raw))
}
