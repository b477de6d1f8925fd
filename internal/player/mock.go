package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state     State
	position  time.Duration
	duration  time.Duration
	playErr   error
	playCalls []string
	seekCalls []time.Duration
	calls     []string
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Play(locator string) error {
	m.playCalls = append(m.playCalls, locator)
	m.calls = append(m.calls, "play:"+locator)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	m.calls = append(m.calls, "stop")
	m.state = Stopped
	m.position = 0
}

func (m *Mock) Pause() {
	m.calls = append(m.calls, "pause")
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.calls = append(m.calls, "resume")
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	m.calls = append(m.calls, "seek")
	m.position = pos
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

// SetDuration records a duration hint the way Clock does.
func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// Calls returns every control call in order, e.g. "stop", "play:/a.mp3".
func (m *Mock) Calls() []string { return m.calls }

// ResetCalls forgets recorded calls.
func (m *Mock) ResetCalls() {
	m.calls = nil
	m.playCalls = nil
	m.seekCalls = nil
}

// Verify Mock implements Interface at compile time.
var (
	_ Interface      = (*Mock)(nil)
	_ DurationHinter = (*Mock)(nil)
)
