package player

import (
	"math"

	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the output level, 0.0 (silent) to 1.0 (unchanged).
func (p *Player) SetVolume(level float64) {
	level = min(max(level, 0), 1)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = level
	if p.volume == nil {
		return
	}
	speaker.Lock()
	applyLevel(p.volume, level)
	speaker.Unlock()
}

// applyLevel maps a linear level onto beep's base-2 gain: 0.5 is -1, 0.25
// is -2. Zero mutes.
func applyLevel(v *effects.Volume, level float64) {
	v.Silent = level <= 0
	switch {
	case level <= 0:
		v.Volume = -10
	case level >= 1:
		v.Volume = 0
	default:
		v.Volume = math.Log2(level)
	}
}
