package player

import (
	"errors"
	"sync"
	"time"
)

// Clock is a timeline-only player. It keeps elapsed time against the wall
// clock for media whose frames are not rendered, such as video in a
// terminal. It stops advancing at a known duration.
type Clock struct {
	mu       sync.Mutex
	state    State
	locator  string
	base     time.Duration // position at anchor
	anchor   time.Time
	duration time.Duration
}

// NewClock creates a stopped clock.
func NewClock() *Clock {
	return &Clock{}
}

// SetDuration sets the timeline length; 0 means unknown.
func (c *Clock) SetDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.duration = max(d, 0)
}

// Play starts the timeline at zero.
func (c *Clock) Play(locator string) error {
	if locator == "" {
		return errors.New("no media locator")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locator = locator
	c.base = 0
	c.anchor = time.Now()
	c.state = Playing
	return nil
}

// Stop detaches the timeline and forgets the duration.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Stopped
	c.locator = ""
	c.base = 0
	c.duration = 0
}

func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settle()
	if c.state != Playing {
		return
	}
	c.base = c.position()
	c.state = Paused
}

// Resume continues the timeline, from the start when it sits at its end.
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settle()
	if c.state != Paused {
		return
	}
	if c.duration > 0 && c.base >= c.duration {
		c.base = 0
	}
	c.anchor = time.Now()
	c.state = Playing
}

func (c *Clock) SeekTo(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Stopped {
		return
	}
	pos = max(pos, 0)
	if c.duration > 0 {
		pos = min(pos, c.duration)
	}
	c.base = pos
	c.anchor = time.Now()
}

func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settle()
	return c.state
}

func (c *Clock) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settle()
	return c.position()
}

func (c *Clock) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// position computes the current position. Callers hold mu.
func (c *Clock) position() time.Duration {
	if c.state != Playing {
		return c.base
	}
	pos := c.base + time.Since(c.anchor)
	if c.duration > 0 {
		pos = min(pos, c.duration)
	}
	return pos
}

// settle pauses a timeline that has run to its end. Callers hold mu.
func (c *Clock) settle() {
	if c.state == Playing && c.duration > 0 && c.position() >= c.duration {
		c.base = c.duration
		c.state = Paused
	}
}
