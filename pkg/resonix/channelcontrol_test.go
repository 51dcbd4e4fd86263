package resonix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonix-audio/resonix-go/pkg/resonix"
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
	"github.com/resonix-audio/resonix-go/pkg/resonix/mockengine"
)

func TestControlViewUsesAddressDirectly(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()
	resonix.ResetLayoutChecks()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	ctl := ch.Control()
	assert.Equal(t, ch.Address(), ctl.Address())
}

func TestControlLayoutSelfCheckRunsOncePerKind(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()
	resonix.ResetLayoutChecks()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	ch.Control()
	ch.Control()
	resonix.ChannelFromAddress(eng.Alloc()).Control()
	assert.Equal(t, 1, eng.Calls("ControlCast"), "channel kind verified exactly once")

	resonix.ChannelGroupFromAddress(eng.Alloc()).Control()
	assert.Equal(t, 2, eng.Calls("ControlCast"), "group kind verified separately")
}

func TestControlLayoutMismatchIsFatal(t *testing.T) {
	eng := mockengine.New()
	eng.CastFn = func(addr uintptr, _ backend.ControlKind) (uintptr, backend.Status) {
		return addr + 8, backend.StatusOK
	}
	defer mockengine.Install(eng)()
	resonix.ResetLayoutChecks()

	ch := resonix.ChannelFromAddress(eng.Alloc())
	require.Panics(t, func() { ch.Control() },
		"a cast disagreeing with the direct reinterpretation is silent memory corruption and must abort")
}

func TestControlOperationsPassThrough(t *testing.T) {
	eng := mockengine.New()
	defer mockengine.Install(eng)()
	resonix.ResetLayoutChecks()

	ctl := resonix.ChannelFromAddress(eng.Alloc()).Control()
	require.NoError(t, ctl.SetVolume(0.5))
	require.NoError(t, ctl.SetPaused(true))
	require.NoError(t, ctl.Stop())

	playing, err := ctl.IsPlaying()
	require.NoError(t, err)
	assert.False(t, playing)
}
