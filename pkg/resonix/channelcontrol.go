package resonix

import (
	"fmt"
	"sync"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// The engine's C++ layer derives Channel and ChannelGroup from a
// common ChannelControl base with no field or vtable difference, so a
// channel or group address is documented to be directly usable as a
// channel-control address. Re-deriving the view through the engine's
// real cast entry point on every access would waste a call on one of
// the hottest paths, so Control reinterprets the address at zero cost
// and verifies the documented invariant once per derived kind against
// the real cast. A mismatch is silent memory corruption in the making
// and aborts loudly instead of surfacing as an error.

var layoutChecks [2]sync.Once

func verifyControlLayout(kind backend.ControlKind, addr uintptr) {
	layoutChecks[kind].Do(func() {
		cast, st := eng().ControlCast(addr, kind)
		if st != backend.StatusOK {
			// Engine refused the cast (typically unbuilt); nothing to
			// compare against.
			return
		}
		if cast != addr {
			panic(fmt.Sprintf(
				"resonix: channel-control layout mismatch for kind %d: cast 0x%x != direct 0x%x; the wrapper does not match this engine build",
				kind, cast, addr))
		}
	})
}

// resetLayoutChecks re-arms the one-time verification. Test hook.
func resetLayoutChecks() {
	layoutChecks = [2]sync.Once{}
}

// Control views the channel as its shared control surface.
func (c Channel) Control() ChannelControl {
	verifyControlLayout(backend.ControlChannel, c.addr)
	return ChannelControl{addr: c.addr}
}

// Control views the group as its shared control surface.
func (g ChannelGroup) Control() ChannelControl {
	verifyControlLayout(backend.ControlChannelGroup, g.addr)
	return ChannelControl{addr: g.addr}
}

// Stop halts playback and frees the voice for reuse.
func (c ChannelControl) Stop() error {
	return statusErr(eng().ControlStop(c.addr))
}

// SetPaused pauses or resumes playback.
func (c ChannelControl) SetPaused(paused bool) error {
	return statusErr(eng().ControlSetPaused(c.addr, paused))
}

// Paused reports whether playback is paused.
func (c ChannelControl) Paused() (bool, error) {
	v, st := eng().ControlGetPaused(c.addr)
	return v, statusErr(st)
}

// SetVolume sets linear gain; 1 is unity.
func (c ChannelControl) SetVolume(volume float32) error {
	return statusErr(eng().ControlSetVolume(c.addr, volume))
}

// Volume returns the linear gain.
func (c ChannelControl) Volume() (float32, error) {
	v, st := eng().ControlGetVolume(c.addr)
	return v, statusErr(st)
}

// SetPitch scales playback rate; 1 is unmodified.
func (c ChannelControl) SetPitch(pitch float32) error {
	return statusErr(eng().ControlSetPitch(c.addr, pitch))
}

// Pitch returns the playback rate scale.
func (c ChannelControl) Pitch() (float32, error) {
	v, st := eng().ControlGetPitch(c.addr)
	return v, statusErr(st)
}

// SetMute silences output without stopping playback.
func (c ChannelControl) SetMute(mute bool) error {
	return statusErr(eng().ControlSetMute(c.addr, mute))
}

// IsPlaying reports whether the voice is still producing audio.
func (c ChannelControl) IsPlaying() (bool, error) {
	v, st := eng().ControlIsPlaying(c.addr)
	return v, statusErr(st)
}
