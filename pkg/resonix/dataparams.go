package resonix

import (
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// Blob parameter layouts. Each struct matches, field for field, the
// binary layout the engine associates with its data tag; the tag
// comparison in GetDataParameter/SetDataParameter is what licenses the
// raw reinterpretation, so changing any field here is an ABI change.

// Vector is a position or direction in engine units.
type Vector struct {
	X, Y, Z float32
}

// Attributes3D is the engine's spatialization bundle for one emitter
// or listener.
type Attributes3D struct {
	Position Vector
	Velocity Vector
	Forward  Vector
	Up       Vector
}

// DSPAttributes3D is the 3D-attributes blob of spatializer plugins:
// emitter attributes relative to the listener plus the absolute ones.
type DSPAttributes3D struct {
	Relative Attributes3D
	Absolute Attributes3D
}

func (DSPAttributes3D) dataTag() backend.DataTag { return backend.DataTagAttributes3D }

// OverallGain is the blob through which a plugin reports its net gain
// so the engine can factor it into audibility calculations.
type OverallGain struct {
	LinearGain         float32
	LinearGainAdditive float32
}

func (OverallGain) dataTag() backend.DataTag { return backend.DataTagOverallGain }

// Sidechain is the blob enabling sidechain input on dynamics plugins.
// Enable is an int32 rather than a bool to match the engine's layout.
type Sidechain struct {
	Enable int32
}

func (Sidechain) dataTag() backend.DataTag { return backend.DataTagSidechain }

// Plugin kind markers. A Unit branded with one of these accepts only
// the indices declared for that kind.
type (
	// Compressor is the built-in dynamics compressor.
	Compressor struct{}
	// Fader is the built-in gain fader.
	Fader struct{}
	// ThreeEQ is the built-in three-band equalizer.
	ThreeEQ struct{}
	// ObjectPan is the built-in 3D object panner.
	ObjectPan struct{}
)

// Compressor parameters.
const (
	CompressorThreshold    Index[Compressor, float32]   = 0
	CompressorRatio        Index[Compressor, float32]   = 1
	CompressorAttack       Index[Compressor, float32]   = 2
	CompressorRelease      Index[Compressor, float32]   = 3
	CompressorGainMakeup   Index[Compressor, float32]   = 4
	CompressorUseSidechain Index[Compressor, Sidechain] = 5
	CompressorLinked       Index[Compressor, bool]      = 6
)

// Fader parameters.
const (
	FaderGain        Index[Fader, float32]     = 0
	FaderOverallGain Index[Fader, OverallGain] = 1
)

// ThreeEQ parameters.
const (
	ThreeEQLowGain    Index[ThreeEQ, float32] = 0
	ThreeEQMidGain    Index[ThreeEQ, float32] = 1
	ThreeEQHighGain   Index[ThreeEQ, float32] = 2
	ThreeEQLowCross   Index[ThreeEQ, float32] = 3
	ThreeEQHighCross  Index[ThreeEQ, float32] = 4
	ThreeEQCrossSlope Index[ThreeEQ, int32]   = 5
)

// ObjectPan parameters.
const (
	ObjectPan3DAttributes Index[ObjectPan, DSPAttributes3D] = 0
	ObjectPanSpread       Index[ObjectPan, float32]         = 1
	ObjectPanOverallGain  Index[ObjectPan, OverallGain]     = 2
	ObjectPanOutputGain   Index[ObjectPan, float32]         = 3
)
