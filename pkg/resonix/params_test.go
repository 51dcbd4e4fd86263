package resonix_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonix-audio/resonix-go/pkg/resonix"
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
	"github.com/resonix-audio/resonix-go/pkg/resonix/mockengine"
)

func newCompressor(t *testing.T, eng *mockengine.Engine) resonix.Unit[resonix.Compressor] {
	t.Helper()
	d := resonix.DSPFromAddress(eng.Alloc())
	return resonix.As[resonix.Compressor](d)
}

func TestScalarParameterPassThrough(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	comp := newCompressor(t, eng)
	eng.SetParam(comp.Address(), int32(resonix.CompressorThreshold), &mockengine.Param{
		Desc:  backend.ParamDesc{Type: backend.ParamTypeFloat, Name: "Threshold"},
		Float: -24,
	})
	eng.SetParam(comp.Address(), int32(resonix.CompressorLinked), &mockengine.Param{
		Desc: backend.ParamDesc{Type: backend.ParamTypeBool, Name: "Linked"},
		Bool: true,
	})

	th, err := resonix.GetParameter(comp, resonix.CompressorThreshold)
	require.NoError(t, err)
	assert.Equal(t, float32(-24), th)

	linked, err := resonix.GetParameter(comp, resonix.CompressorLinked)
	require.NoError(t, err)
	assert.True(t, linked)

	require.NoError(t, resonix.SetParameter(comp, resonix.CompressorThreshold, float32(-12)))
	th, err = resonix.GetParameter(comp, resonix.CompressorThreshold)
	require.NoError(t, err)
	assert.Equal(t, float32(-12), th)
}

func sidechainBytes(enable int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(enable))
	return b
}

func TestDataParameterTagMatchRoundTrip(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	comp := newCompressor(t, eng)
	eng.SetParam(comp.Address(), int32(resonix.CompressorUseSidechain), &mockengine.Param{
		Desc: backend.ParamDesc{
			Type:    backend.ParamTypeData,
			Name:    "Sidechain",
			DataTag: backend.DataTagSidechain,
		},
		Data: sidechainBytes(1),
	})

	sc, err := resonix.GetDataParameter(comp, resonix.CompressorUseSidechain)
	require.NoError(t, err)
	assert.Equal(t, int32(1), sc.Enable)

	require.NoError(t, resonix.SetDataParameter(comp, resonix.CompressorUseSidechain, resonix.Sidechain{Enable: 0}))
	sc, err = resonix.GetDataParameter(comp, resonix.CompressorUseSidechain)
	require.NoError(t, err)
	assert.Equal(t, int32(0), sc.Enable)
}

func TestDataParameterWrongTagNeverTouchesBuffer(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	comp := newCompressor(t, eng)
	param := &mockengine.Param{
		Desc: backend.ParamDesc{
			Type: backend.ParamTypeData,
			Name: "Sidechain",
			// Deliberately wrong: the engine claims a 3D-attributes
			// layout where the index type expects sidechain.
			DataTag: backend.DataTagAttributes3D,
		},
		Data: sidechainBytes(1),
	}
	eng.SetParam(comp.Address(), int32(resonix.CompressorUseSidechain), param)

	_, err := resonix.GetDataParameter(comp, resonix.CompressorUseSidechain)
	assert.ErrorIs(t, err, resonix.ErrInvalidParam)

	err = resonix.SetDataParameter(comp, resonix.CompressorUseSidechain, resonix.Sidechain{Enable: 1})
	assert.ErrorIs(t, err, resonix.ErrInvalidParam)

	assert.Zero(t, param.DataReads, "raw buffer must not be read on tag mismatch")
	assert.Zero(t, param.DataWrites, "raw buffer must not be written on tag mismatch")
}

func TestDataParameterNonDataSlotRejected(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	comp := newCompressor(t, eng)
	eng.SetParam(comp.Address(), int32(resonix.CompressorUseSidechain), &mockengine.Param{
		Desc: backend.ParamDesc{Type: backend.ParamTypeFloat, Name: "Threshold"},
	})

	_, err := resonix.GetDataParameter(comp, resonix.CompressorUseSidechain)
	assert.ErrorIs(t, err, resonix.ErrInvalidParam)
}

func TestDataParameterLayoutReinterpretation(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	fader := resonix.As[resonix.Fader](resonix.DSPFromAddress(eng.Alloc()))

	raw := make([]byte, 8)
	binary.LittleEndian.PutUint32(raw[0:], math.Float32bits(0.25))
	binary.LittleEndian.PutUint32(raw[4:], math.Float32bits(0.75))
	eng.SetParam(fader.Address(), int32(resonix.FaderOverallGain), &mockengine.Param{
		Desc: backend.ParamDesc{
			Type:    backend.ParamTypeData,
			Name:    "Overall Gain",
			DataTag: backend.DataTagOverallGain,
		},
		Data: raw,
	})

	g, err := resonix.GetDataParameter(fader, resonix.FaderOverallGain)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), g.LinearGain)
	assert.Equal(t, float32(0.75), g.LinearGainAdditive)
}

func TestParameterString(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	comp := newCompressor(t, eng)
	eng.SetParam(comp.Address(), int32(resonix.CompressorThreshold), &mockengine.Param{
		Desc:     backend.ParamDesc{Type: backend.ParamTypeFloat, Name: "Threshold"},
		Float:    -24,
		ValueStr: "-24.0 dB",
	})

	s, err := resonix.ParameterString(comp, resonix.CompressorThreshold)
	require.NoError(t, err)
	assert.Equal(t, "-24.0 dB", s)
}

func TestParameterInfo(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	d := resonix.DSPFromAddress(eng.Alloc())
	eng.SetParam(d.Address(), 0, &mockengine.Param{
		Desc: backend.ParamDesc{Type: backend.ParamTypeFloat, Name: "Gain", Label: "dB"},
	})

	n, err := d.NumParameters()
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)

	desc, err := d.ParameterInfo(0)
	require.NoError(t, err)
	assert.Equal(t, "Gain", desc.Name)
	assert.Equal(t, "dB", desc.Label)

	_, err = d.ParameterInfo(7)
	assert.ErrorIs(t, err, resonix.ErrInvalidParam)
}
