package backend

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorInfoFromCopiesOutCStrings(t *testing.T) {
	function := []byte("RSX_System_CreateSound\x00trailing junk")
	params := []byte("missing.wav\x00")

	info := ErrorInfoFrom(StatusFileNotFound,
		unsafe.Pointer(&function[0]), unsafe.Pointer(&params[0]))

	require.NotNil(t, info)
	assert.Equal(t, StatusFileNotFound, info.Status)
	assert.Equal(t, "RSX_System_CreateSound", info.Function)
	assert.Equal(t, "missing.wav", info.FunctionParams)

	// The copies must survive the engine reclaiming its buffers.
	for i := range function {
		function[i] = 0xff
	}
	assert.Equal(t, "RSX_System_CreateSound", info.Function)
}

func TestErrorInfoFromNilPointers(t *testing.T) {
	info := ErrorInfoFrom(StatusInternal, nil, nil)

	require.NotNil(t, info)
	assert.Equal(t, StatusInternal, info.Status)
	assert.Empty(t, info.Function)
	assert.Empty(t, info.FunctionParams)
}

func TestErrorInfoFromEmptyStrings(t *testing.T) {
	empty := []byte{0}

	info := ErrorInfoFrom(StatusOK, unsafe.Pointer(&empty[0]), unsafe.Pointer(&empty[0]))

	assert.Empty(t, info.Function)
	assert.Empty(t, info.FunctionParams)
}
