package viewer

import "github.com/llehouerou/gallery/internal/content"

// DisplayMode is how the active item is shown.
type DisplayMode int

const (
	FullScreen DisplayMode = iota
	Minimized
)

// String returns the mode name.
func (m DisplayMode) String() string {
	switch m {
	case FullScreen:
		return "fullscreen"
	case Minimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// Transport is the playback state of a playable active item.
type Transport struct {
	Playing       bool
	Elapsed       float64 // seconds
	Duration      float64 // seconds, meaningful only when DurationKnown
	DurationKnown bool
}

// ActiveItem is the single open item.
type ActiveItem struct {
	Item     content.Item
	Position int // index into the filtered list when opened or last navigated to
	Mode     DisplayMode
	// Transport is non-nil iff Item is playable.
	Transport *Transport
}

// Snapshot is a copy of the machine state, safe to keep after the machine moves on.
type Snapshot struct {
	Open   bool
	Active ActiveItem
}

// Playable returns true if an item is open and carries transport state.
func (s Snapshot) Playable() bool {
	return s.Open && s.Active.Transport != nil
}

// ItemID returns the open item's id, or "" when closed.
func (s Snapshot) ItemID() string {
	if !s.Open {
		return ""
	}
	return s.Active.Item.ID
}

// EventKind classifies a committed transition.
type EventKind int

const (
	// EventItemChanged fires when the active item identity changes (open, replace, navigate).
	EventItemChanged EventKind = iota
	// EventModeChanged fires on FullScreen <-> Minimized without identity change.
	EventModeChanged
	// EventTransportChanged fires when transport fields change on the same item.
	EventTransportChanged
	// EventClosed fires on Open -> Closed.
	EventClosed
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventItemChanged:
		return "item_changed"
	case EventModeChanged:
		return "mode_changed"
	case EventTransportChanged:
		return "transport_changed"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event describes a committed transition.
type Event struct {
	Kind     EventKind
	Previous Snapshot
	Current  Snapshot
}

// Listener receives events synchronously, after the state is committed.
type Listener func(Event)

// Lister provides the current filtered list used for navigation.
type Lister interface {
	Filtered() []content.Item
}

func copyTransport(t *Transport) *Transport {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func newTransport(item content.Item, elapsed float64) *Transport {
	if !item.Playable() {
		return nil
	}
	t := &Transport{Playing: true, Elapsed: max(elapsed, 0)}
	if item.Duration > 0 {
		t.Duration = item.Duration
		t.DurationKnown = true
	}
	return t
}
