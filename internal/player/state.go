package player

// State is the playback state of a player.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │◀─┐
//	└──────────┘                 └──────────┘  │
//	     ▲                            │        │ resume
//	     │ stop                 pause │        │
//	     │                            ▼        │
//	     │                       ┌──────────┐  │
//	     └───────────────────────│  Paused  │──┘
//	                  stop       └──────────┘
//
// Play always stops the current resource first. Pause on a non-playing player
// and Resume on a non-paused one are ignored.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a resource is attached (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
