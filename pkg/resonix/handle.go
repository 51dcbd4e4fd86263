package resonix

// Handles are thin comparable values wrapping a non-zero engine
// address. Identity is the address: two handles compare equal exactly
// when they refer to the same engine resource. Handles carry no
// teardown; the resource is freed only by an explicit Release, after
// which remaining handle values dangle by contract.

// mustAddr enforces the non-null construction contract. A zero address
// from the engine is always an upstream bug, never a recoverable
// condition, so this panics instead of returning an error.
func mustAddr(addr uintptr, kind string) uintptr {
	if addr == 0 {
		panic("resonix: nil " + kind + " address")
	}
	return addr
}

// System is the top-level engine instance handle.
type System struct {
	addr uintptr
}

// SystemFromAddress reconstructs a System from a raw engine address.
// Panics if addr is zero.
func SystemFromAddress(addr uintptr) System {
	return System{addr: mustAddr(addr, "system")}
}

// Address returns the raw engine address.
func (s System) Address() uintptr { return s.addr }

// Sound is a loaded sample or stream handle.
type Sound struct {
	addr uintptr
}

// SoundFromAddress reconstructs a Sound from a raw engine address.
// Panics if addr is zero.
func SoundFromAddress(addr uintptr) Sound {
	return Sound{addr: mustAddr(addr, "sound")}
}

// Address returns the raw engine address.
func (s Sound) Address() uintptr { return s.addr }

// Channel is a playing-voice handle.
type Channel struct {
	addr uintptr
}

// ChannelFromAddress reconstructs a Channel from a raw engine address.
// Panics if addr is zero.
func ChannelFromAddress(addr uintptr) Channel {
	return Channel{addr: mustAddr(addr, "channel")}
}

// Address returns the raw engine address.
func (c Channel) Address() uintptr { return c.addr }

// ChannelGroup is a submix-bus handle.
type ChannelGroup struct {
	addr uintptr
}

// ChannelGroupFromAddress reconstructs a ChannelGroup from a raw engine
// address. Panics if addr is zero.
func ChannelGroupFromAddress(addr uintptr) ChannelGroup {
	return ChannelGroup{addr: mustAddr(addr, "channel group")}
}

// Address returns the raw engine address.
func (g ChannelGroup) Address() uintptr { return g.addr }

// DSP is a signal-processor unit handle.
type DSP struct {
	addr uintptr
}

// DSPFromAddress reconstructs a DSP from a raw engine address. Panics
// if addr is zero.
func DSPFromAddress(addr uintptr) DSP {
	return DSP{addr: mustAddr(addr, "dsp")}
}

// Address returns the raw engine address.
func (d DSP) Address() uintptr { return d.addr }

// ChannelControl is the shared control surface of Channel and
// ChannelGroup. Values are obtained through Channel.Control and
// ChannelGroup.Control, or reconstructed inside callbacks.
type ChannelControl struct {
	addr uintptr
}

// ChannelControlFromAddress reconstructs a ChannelControl from a raw
// engine address. Panics if addr is zero.
func ChannelControlFromAddress(addr uintptr) ChannelControl {
	return ChannelControl{addr: mustAddr(addr, "channel control")}
}

// Address returns the raw engine address.
func (c ChannelControl) Address() uintptr { return c.addr }
