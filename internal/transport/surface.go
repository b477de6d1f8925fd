// Package transport mirrors the active item onto the host's now-playing
// surface and routes the host's media keys back into the viewer.
package transport

import "time"

// PlaybackState is what the host surface shows.
type PlaybackState int

const (
	PlaybackNone PlaybackState = iota
	PlaybackPlaying
	PlaybackPaused
)

// String returns the state name.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackNone:
		return "None"
	case PlaybackPlaying:
		return "Playing"
	case PlaybackPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Metadata is the now-playing description. The zero value means "nothing".
type Metadata struct {
	ID       string
	Title    string
	Artwork  string // locator of the cover image, may be empty
	Kind     string
	Duration time.Duration // 0 if unknown
}

// IsZero returns true for the "nothing playing" metadata.
func (m Metadata) IsZero() bool {
	return m.ID == "" && m.Title == ""
}

// SignalKind is an inbound media-key request.
type SignalKind int

const (
	SignalPlay SignalKind = iota
	SignalPause
	SignalPlayPause
	SignalNext
	SignalPrevious
	SignalStop
	SignalSeekTo
)

// String returns the signal name.
func (k SignalKind) String() string {
	switch k {
	case SignalPlay:
		return "play"
	case SignalPause:
		return "pause"
	case SignalPlayPause:
		return "play_pause"
	case SignalNext:
		return "next"
	case SignalPrevious:
		return "previous"
	case SignalStop:
		return "stop"
	case SignalSeekTo:
		return "seek_to"
	default:
		return "unknown"
	}
}

// Signal is an inbound request from the host.
type Signal struct {
	Kind     SignalKind
	Position time.Duration // SignalSeekTo only
}

// Surface is the host now-playing capability. OnSignal handlers may be
// invoked from any goroutine.
type Surface interface {
	PublishMetadata(meta Metadata)
	PublishPlaybackState(state PlaybackState)
	OnSignal(handler func(Signal))
	Close() error
}

// PositionPublisher is implemented by surfaces that expose the elapsed time.
type PositionPublisher interface {
	PublishPosition(pos time.Duration)
}

// Nop is a Surface for hosts without media-key integration.
type Nop struct{}

func (Nop) PublishMetadata(Metadata)           {}
func (Nop) PublishPlaybackState(PlaybackState) {}
func (Nop) OnSignal(func(Signal))              {}
func (Nop) Close() error                       { return nil }

var _ Surface = Nop{}
