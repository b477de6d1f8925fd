// Package viewer owns the single open gallery item: its display mode and,
// for audio and video, its transport state.
//
// The machine has two states:
//
//	┌────────┐   Open    ┌──────────────────┐
//	│ Closed │ ─────────▶│ Open(ActiveItem) │ ◀─┐ Open / Navigate / Minimize /
//	└────────┘           └──────────────────┘ ──┘ Restore / TogglePlay / Seek / Report*
//	     ▲                        │
//	     └────────── Close ───────┘
//
// Every operation is legal in every state; operations that do not apply are
// no-ops. All calls must come from one goroutine (the UI event loop).
package viewer

import (
	"math"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/navigation"
)

// Machine is the active-item state machine.
type Machine struct {
	list      Lister
	open      bool
	active    ActiveItem
	listeners []Listener
}

// New creates a closed machine navigating over list.
func New(list Lister) *Machine {
	return &Machine{list: list}
}

// Subscribe registers a listener. Listeners are called in registration order
// and must not call back into the machine.
func (m *Machine) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	if !m.open {
		return Snapshot{}
	}
	a := m.active
	a.Transport = copyTransport(m.active.Transport)
	return Snapshot{Open: true, Active: a}
}

// IsOpen returns true if an item is active.
func (m *Machine) IsOpen() bool { return m.open }

// Open makes item the active item. Reopening the same playable item while it
// is minimized only brings it back to full screen, keeping playback as is.
// Anything else replaces the active item and starts playback from the
// item's resume hint.
func (m *Machine) Open(item content.Item, position int) {
	prev := m.Snapshot()

	if m.open && item.Playable() && m.active.Item.ID == item.ID && m.active.Mode == Minimized {
		m.active.Mode = FullScreen
		m.active.Position = position
		m.emit(EventModeChanged, prev)
		return
	}

	m.open = true
	m.active = ActiveItem{
		Item:      item,
		Position:  position,
		Mode:      FullScreen,
		Transport: newTransport(item, item.InitialTime),
	}
	m.emit(EventItemChanged, prev)
}

// Close releases the active item.
func (m *Machine) Close() {
	if !m.open {
		return
	}
	prev := m.Snapshot()
	m.open = false
	m.active = ActiveItem{}
	m.emit(EventClosed, prev)
}

// Minimize collapses a playable item into the corner player. Playback is
// untouched.
func (m *Machine) Minimize() {
	m.setMode(Minimized)
}

// Restore expands a minimized item back to full screen. Playback is untouched.
func (m *Machine) Restore() {
	m.setMode(FullScreen)
}

func (m *Machine) setMode(mode DisplayMode) {
	if !m.open || m.active.Transport == nil || m.active.Mode == mode {
		return
	}
	prev := m.Snapshot()
	m.active.Mode = mode
	m.emit(EventModeChanged, prev)
}

// CanNavigate reports whether Navigate(dir) would change the active item.
func (m *Machine) CanNavigate(dir navigation.Direction) bool {
	if !m.open {
		return false
	}
	_, _, ok := navigation.Step(m.list.Filtered(), m.active.Position, dir)
	return ok
}

// Navigate replaces the active item with its neighbour in the current
// filtered list. Playback of the new item always restarts at zero.
func (m *Machine) Navigate(dir navigation.Direction) {
	if !m.open {
		return
	}
	pos, item, ok := navigation.Step(m.list.Filtered(), m.active.Position, dir)
	if !ok {
		return
	}
	prev := m.Snapshot()
	m.active = ActiveItem{
		Item:      item,
		Position:  pos,
		Mode:      FullScreen,
		Transport: newTransport(item, 0),
	}
	m.emit(EventItemChanged, prev)
}

// TogglePlay flips playing/paused.
func (m *Machine) TogglePlay() {
	if !m.open || m.active.Transport == nil {
		return
	}
	prev := m.Snapshot()
	m.active.Transport.Playing = !m.active.Transport.Playing
	m.emit(EventTransportChanged, prev)
}

// Seek moves to target seconds, clamped to [0, duration]. No-op while the
// duration is unknown.
func (m *Machine) Seek(target float64) {
	if !m.open || m.active.Transport == nil || !m.active.Transport.DurationKnown {
		return
	}
	if math.IsNaN(target) {
		return
	}
	t := m.active.Transport
	clamped := math.Min(math.Max(target, 0), t.Duration)
	if clamped == t.Elapsed {
		return
	}
	prev := m.Snapshot()
	t.Elapsed = clamped
	m.emit(EventTransportChanged, prev)
}

// SeekBy seeks relative to the current elapsed time.
func (m *Machine) SeekBy(delta float64) {
	if !m.open || m.active.Transport == nil {
		return
	}
	m.Seek(m.active.Transport.Elapsed + delta)
}

// ReportElapsed copies the elapsed time observed on the playback surface.
func (m *Machine) ReportElapsed(seconds float64) {
	if !m.open || m.active.Transport == nil || m.active.Transport.Elapsed == seconds {
		return
	}
	prev := m.Snapshot()
	m.active.Transport.Elapsed = seconds
	m.emit(EventTransportChanged, prev)
}

// ReportDuration copies the duration observed on the playback surface.
// Non-positive or non-finite values mark the duration unknown.
func (m *Machine) ReportDuration(seconds float64) {
	if !m.open || m.active.Transport == nil {
		return
	}
	known := seconds > 0 && !math.IsInf(seconds, 0) && !math.IsNaN(seconds)
	if !known {
		seconds = 0
	}
	t := m.active.Transport
	if t.Duration == seconds && t.DurationKnown == known {
		return
	}
	prev := m.Snapshot()
	t.Duration = seconds
	t.DurationKnown = known
	m.emit(EventTransportChanged, prev)
}

// ReportPlayState copies the playing flag observed on the playback surface.
func (m *Machine) ReportPlayState(playing bool) {
	if !m.open || m.active.Transport == nil || m.active.Transport.Playing == playing {
		return
	}
	prev := m.Snapshot()
	m.active.Transport.Playing = playing
	m.emit(EventTransportChanged, prev)
}

func (m *Machine) emit(kind EventKind, prev Snapshot) {
	if len(m.listeners) == 0 {
		return
	}
	ev := Event{Kind: kind, Previous: prev, Current: m.Snapshot()}
	for _, l := range m.listeners {
		l(ev)
	}
}
