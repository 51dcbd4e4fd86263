package resonix

import (
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// InitFlags configure System.Init.
type InitFlags = backend.InitFlags

const (
	InitNormal             = backend.InitNormal
	InitStreamFromUpdate   = backend.InitStreamFromUpdate
	InitMixFromUpdate      = backend.InitMixFromUpdate
	Init3DRighthanded      = backend.Init3DRighthanded
	InitProfileEnable      = backend.InitProfileEnable
	InitVol0BecomesVirtual = backend.InitVol0BecomesVirtual
)

// Mode configures sound creation.
type Mode = backend.Mode

const (
	ModeDefault      = backend.ModeDefault
	ModeLoopOff      = backend.ModeLoopOff
	ModeLoopNormal   = backend.ModeLoopNormal
	Mode2D           = backend.Mode2D
	Mode3D           = backend.Mode3D
	ModeCreateStream = backend.ModeCreateStream
	ModeCreateSample = backend.ModeCreateSample
	ModeNonBlocking  = backend.ModeNonBlocking
)

// TimeUnit selects the unit for position and length values.
type TimeUnit = backend.TimeUnit

const (
	TimeUnitMS       = backend.TimeUnitMS
	TimeUnitPCM      = backend.TimeUnitPCM
	TimeUnitPCMBytes = backend.TimeUnitPCMBytes
	TimeUnitRawBytes = backend.TimeUnitRawBytes
)

// NewSystem creates an engine instance. The engine checks that it is
// at least as new as the headers this binding was written against and
// reports CodeVersion otherwise.
func NewSystem() (System, error) {
	noteOwner()
	addr, st := eng().SystemCreate(backend.Version)
	if st != backend.StatusOK {
		return System{}, statusErr(st)
	}
	return SystemFromAddress(addr), nil
}

// Init initializes the engine with the given voice budget.
func (s System) Init(maxChannels int32, flags InitFlags) error {
	return statusErr(eng().SystemInit(s.addr, maxChannels, flags))
}

// Update drives the engine's once-per-tick housekeeping. Call it from
// the application's main loop.
func (s System) Update() error {
	return statusErr(eng().SystemUpdate(s.addr))
}

// Close shuts the mixer down. The system handle stays valid and can be
// re-initialized.
func (s System) Close() error {
	return statusErr(eng().SystemClose(s.addr))
}

// Release frees the engine instance. Every handle derived from this
// system dangles afterwards.
func (s System) Release() error {
	return statusErr(eng().SystemRelease(s.addr))
}

// CreateSound loads source as a sample or stream according to mode.
// With ModeNonBlocking the load proceeds on an engine thread; poll
// Sound.OpenState until it stops reporting ErrNotReady.
func (s System) CreateSound(source string, mode Mode) (Sound, error) {
	addr, st := eng().SystemCreateSound(s.addr, source, mode)
	if st != backend.StatusOK {
		return Sound{}, statusErr(st)
	}
	return SoundFromAddress(addr), nil
}

// CreateStream is CreateSound with ModeCreateStream implied.
func (s System) CreateStream(source string, mode Mode) (Sound, error) {
	return s.CreateSound(source, mode|ModeCreateStream)
}

// CreateChannelGroup creates a named submix bus.
func (s System) CreateChannelGroup(name string) (ChannelGroup, error) {
	addr, st := eng().SystemCreateChannelGroup(s.addr, name)
	if st != backend.StatusOK {
		return ChannelGroup{}, statusErr(st)
	}
	return ChannelGroupFromAddress(addr), nil
}

// CreateDSPByType instantiates a built-in DSP plugin.
func (s System) CreateDSPByType(kind DSPType) (DSP, error) {
	addr, st := eng().SystemCreateDSPByType(s.addr, backend.DSPType(kind))
	if st != backend.StatusOK {
		return DSP{}, statusErr(st)
	}
	return DSPFromAddress(addr), nil
}

// PlaySound starts sound on a fresh channel routed into group. A zero
// ChannelGroup routes to the master group. Starting paused lets the
// caller configure the channel before audibility.
func (s System) PlaySound(sound Sound, group ChannelGroup, paused bool) (Channel, error) {
	addr, st := eng().SystemPlaySound(s.addr, sound.addr, group.addr, paused)
	if st != backend.StatusOK {
		return Channel{}, statusErr(st)
	}
	return ChannelFromAddress(addr), nil
}
