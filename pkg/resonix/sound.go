package resonix

import (
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// OpenState reports the readiness of a sound created with
// ModeNonBlocking.
type OpenState int32

const (
	OpenStateReady       = OpenState(backend.OpenStateReady)
	OpenStateLoading     = OpenState(backend.OpenStateLoading)
	OpenStateError       = OpenState(backend.OpenStateError)
	OpenStateConnecting  = OpenState(backend.OpenStateConnecting)
	OpenStateBuffering   = OpenState(backend.OpenStateBuffering)
	OpenStateSeeking     = OpenState(backend.OpenStateSeeking)
	OpenStatePlaying     = OpenState(backend.OpenStatePlaying)
	OpenStateSetPosition = OpenState(backend.OpenStateSetPosition)
)

func (s OpenState) String() string {
	switch s {
	case OpenStateReady:
		return "ready"
	case OpenStateLoading:
		return "loading"
	case OpenStateError:
		return "error"
	case OpenStateConnecting:
		return "connecting"
	case OpenStateBuffering:
		return "buffering"
	case OpenStateSeeking:
		return "seeking"
	case OpenStatePlaying:
		return "playing"
	case OpenStateSetPosition:
		return "setposition"
	}
	return "unknown"
}

// Name fetches the sound's name from the engine, growing the buffer as
// needed for long names.
func (s Sound) Name() (string, error) {
	return getString(func(buf []byte) (int32, backend.Status) {
		return eng().SoundGetName(s.addr, buf)
	})
}

// Length returns the sound's length in the requested unit.
func (s Sound) Length(unit TimeUnit) (uint32, error) {
	v, st := eng().SoundGetLength(s.addr, unit)
	return v, statusErr(st)
}

// OpenState reports load progress for non-blocking sounds. Waiting for
// an asynchronous load is a caller-side polling idiom over this query;
// the wrapper provides no blocking primitive. The raw state value is
// validated against the closed enumeration.
func (s Sound) OpenState() (OpenState, uint32, error) {
	state, pct, st := eng().SoundGetOpenState(s.addr)
	if st != backend.StatusOK {
		return OpenStateError, 0, statusErr(st)
	}
	if state < backend.OpenStateReady || state > backend.OpenStateSetPosition {
		return OpenStateError, 0, &InvalidEnumError{Name: "OpenState", Value: int64(state)}
	}
	return OpenState(state), pct, nil
}

// Release frees the sound's engine-side resources.
func (s Sound) Release() error {
	return statusErr(eng().SoundRelease(s.addr))
}
