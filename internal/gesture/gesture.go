// Package gesture turns pointer press/release pairs into swipe directions.
package gesture

import (
	"math"
	"time"
)

// Direction is a resolved swipe.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

const (
	DefaultMinDistance = 50
	DefaultMaxDuration = 500 * time.Millisecond
)

// Detector resolves one swipe at a time. The zero value uses the defaults.
type Detector struct {
	MinDistance float64
	MaxDuration time.Duration

	active bool
	startX float64
	startY float64
	start  time.Time
}

// New creates a detector with the given thresholds. Non-positive values
// fall back to the defaults.
func New(minDistance float64, maxDuration time.Duration) *Detector {
	return &Detector{MinDistance: minDistance, MaxDuration: maxDuration}
}

// Begin records the pointer press.
func (d *Detector) Begin(x, y float64, at time.Time) {
	d.active = true
	d.startX, d.startY = x, y
	d.start = at
}

// Cancel forgets a pending press.
func (d *Detector) Cancel() {
	d.active = false
}

// Active returns true between Begin and End.
func (d *Detector) Active() bool {
	return d.active
}

// End resolves the swipe. ok is false when there was no press, the movement
// was shorter than the minimum distance, or it took too long.
func (d *Detector) End(x, y float64, at time.Time) (Direction, bool) {
	if !d.active {
		return 0, false
	}
	d.active = false

	if at.Sub(d.start) > d.maxDuration() {
		return 0, false
	}

	dx, dy := x-d.startX, y-d.startY
	if math.Max(math.Abs(dx), math.Abs(dy)) < d.minDistance() {
		return 0, false
	}

	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return Left, true
		}
		return Right, true
	}
	if dy < 0 {
		return Up, true
	}
	return Down, true
}

func (d *Detector) minDistance() float64 {
	if d.MinDistance <= 0 {
		return DefaultMinDistance
	}
	return d.MinDistance
}

func (d *Detector) maxDuration() time.Duration {
	if d.MaxDuration <= 0 {
		return DefaultMaxDuration
	}
	return d.MaxDuration
}
