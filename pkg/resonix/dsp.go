package resonix

import (
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// DSPType identifies a built-in DSP plugin kind.
type DSPType = backend.DSPType

const (
	DSPTypeUnknown           = backend.DSPTypeUnknown
	DSPTypeMixer             = backend.DSPTypeMixer
	DSPTypeOscillator        = backend.DSPTypeOscillator
	DSPTypeLowpass           = backend.DSPTypeLowpass
	DSPTypeHighpass          = backend.DSPTypeHighpass
	DSPTypeEcho              = backend.DSPTypeEcho
	DSPTypeFader             = backend.DSPTypeFader
	DSPTypeFlange            = backend.DSPTypeFlange
	DSPTypeDistortion        = backend.DSPTypeDistortion
	DSPTypeNormalize         = backend.DSPTypeNormalize
	DSPTypeLimiter           = backend.DSPTypeLimiter
	DSPTypeParamEQ           = backend.DSPTypeParamEQ
	DSPTypePitchShift        = backend.DSPTypePitchShift
	DSPTypeChorus            = backend.DSPTypeChorus
	DSPTypeCompressor        = backend.DSPTypeCompressor
	DSPTypeSFXReverb         = backend.DSPTypeSFXReverb
	DSPTypeFFT               = backend.DSPTypeFFT
	DSPTypeThreeEQ           = backend.DSPTypeThreeEQ
	DSPTypeConvolutionReverb = backend.DSPTypeConvolutionReverb
	DSPTypeObjectPan         = backend.DSPTypeObjectPan
)

// ParamType classifies a DSP parameter's storage class.
type ParamType = backend.ParamType

const (
	ParamTypeFloat = backend.ParamTypeFloat
	ParamTypeInt   = backend.ParamTypeInt
	ParamTypeBool  = backend.ParamTypeBool
	ParamTypeData  = backend.ParamTypeData
)

// ParamDesc is the engine's description of one parameter.
type ParamDesc = backend.ParamDesc

// NumParameters returns how many parameters the plugin instance
// exposes.
func (d DSP) NumParameters() (int32, error) {
	v, st := eng().DSPGetNumParameters(d.addr)
	return v, statusErr(st)
}

// ParameterInfo fetches the engine's description of one parameter. For
// data parameters the description's tag is a property of the live
// plugin instance; typed accessors re-read it before every access
// rather than caching it.
func (d DSP) ParameterInfo(index int32) (ParamDesc, error) {
	desc, st := eng().DSPGetParameterInfo(d.addr, index)
	if st != backend.StatusOK {
		return ParamDesc{}, statusErr(st)
	}
	return desc, nil
}

// SetBypass makes the unit pass its input through unprocessed.
func (d DSP) SetBypass(bypass bool) error {
	return statusErr(eng().DSPSetBypass(d.addr, bypass))
}

// Release frees the DSP unit.
func (d DSP) Release() error {
	return statusErr(eng().DSPRelease(d.addr))
}
