package resonix

import (
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// SetPosition seeks the playing voice.
func (c Channel) SetPosition(pos uint32, unit TimeUnit) error {
	return statusErr(eng().ChannelSetPosition(c.addr, pos, unit))
}

// Position returns the playback position in the requested unit.
func (c Channel) Position(unit TimeUnit) (uint32, error) {
	v, st := eng().ChannelGetPosition(c.addr, unit)
	return v, statusErr(st)
}

// Name fetches the group's name, growing the buffer as needed.
func (g ChannelGroup) Name() (string, error) {
	return getString(func(buf []byte) (int32, backend.Status) {
		return eng().GroupGetName(g.addr, buf)
	})
}

// AddGroup routes child's output into g. With propagateClock the DSP
// clock of the parent drives the child.
func (g ChannelGroup) AddGroup(child ChannelGroup, propagateClock bool) error {
	return statusErr(eng().GroupAddGroup(g.addr, child.addr, propagateClock))
}

// Release frees the group. Channels playing into it are re-routed to
// the master group by the engine.
func (g ChannelGroup) Release() error {
	return statusErr(eng().GroupRelease(g.addr))
}
