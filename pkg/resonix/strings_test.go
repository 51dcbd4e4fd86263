package resonix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonix-audio/resonix-go/pkg/resonix"
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
	"github.com/resonix-audio/resonix-go/pkg/resonix/mockengine"
)

func TestSoundNameFitsFirstBuffer(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	s := resonix.SoundFromAddress(eng.Alloc())
	eng.SetName(s.Address(), "drumloop")

	name, err := s.Name()
	require.NoError(t, err)
	assert.Equal(t, "drumloop", name)
	assert.Equal(t, 1, eng.Calls("SoundGetName"))
}

func TestSoundNameDoublingRetry(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	// 600 bytes of name: 256 -> 512 -> 1024, two doublings, so the
	// protocol must finish in exactly three engine calls.
	long := strings.Repeat("x", 600)
	s := resonix.SoundFromAddress(eng.Alloc())
	eng.SetName(s.Address(), long)

	name, err := s.Name()
	require.NoError(t, err)
	assert.Equal(t, long, name)
	assert.Equal(t, 3, eng.Calls("SoundGetName"))
}

func TestSoundNameExactRequirementHint(t *testing.T) {
	eng := mockengine.New()
	eng.NameHint = true
	defer mockengine.Install(eng)()

	long := strings.Repeat("y", 5000)
	s := resonix.SoundFromAddress(eng.Alloc())
	eng.SetName(s.Address(), long)

	name, err := s.Name()
	require.NoError(t, err)
	assert.Equal(t, long, name)
	assert.Equal(t, 2, eng.Calls("SoundGetName"),
		"a reported requirement skips the doubling walk")
}

func TestSoundNameHardErrorNotRetried(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	s := resonix.SoundFromAddress(eng.Alloc()) // no name scripted

	_, err := s.Name()
	assert.ErrorIs(t, err, resonix.ErrInvalidHandle)
	assert.Equal(t, 1, eng.Calls("SoundGetName"))
}

func TestGroupNameUsesSameProtocol(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	g := resonix.ChannelGroupFromAddress(eng.Alloc())
	eng.SetName(g.Address(), "music bus")

	name, err := g.Name()
	require.NoError(t, err)
	assert.Equal(t, "music bus", name)
}

func TestGetStringRejectsInvalidUTF8(t *testing.T) {
	_, err := resonix.GetStringProtocol(func(buf []byte) (int32, backend.Status) {
		copy(buf, []byte{0xff, 0xfe, 0x00})
		return 3, backend.StatusOK
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, resonix.Error{Code: resonix.CodeFormat})
}
