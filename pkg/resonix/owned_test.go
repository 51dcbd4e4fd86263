package resonix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonix-audio/resonix-go/pkg/resonix"
	"github.com/resonix-audio/resonix-go/pkg/resonix/mockengine"
)

func TestOwnedCloseReleasesOnce(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	s := resonix.SoundFromAddress(eng.Alloc())
	owned := resonix.Own(s)
	assert.Equal(t, s, owned.Handle())

	require.NoError(t, owned.Close())
	assert.Equal(t, 1, eng.Calls("SoundRelease"))

	// Redundant closes are accepted and never reach the engine again.
	require.NoError(t, owned.Close())
	require.NoError(t, owned.Close())
	assert.Equal(t, 1, eng.Calls("SoundRelease"))
}

func TestOwnedHandleStaysNonOwning(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()

	s := resonix.SoundFromAddress(eng.Alloc())
	a := resonix.Own(s)
	b := resonix.Own(s)

	require.NoError(t, a.Close())
	require.NoError(t, b.Close())
	// Two independent owners each forward one release; deduplicating
	// them is the engine's business, not the wrapper's.
	assert.Equal(t, 2, eng.Calls("SoundRelease"))
}
