// Package content defines gallery items and the catalog text filter.
package content

import (
	"strings"
	"time"
)

// Kind is the closed set of content types shown in the gallery.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
	KindAudio
	KindNote
	KindQuote
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	case KindNote:
		return "note"
	case KindQuote:
		return "quote"
	default:
		return "unknown"
	}
}

// Playable returns true for kinds that carry transport state.
func (k Kind) Playable() bool {
	return k == KindVideo || k == KindAudio
}

var kindAliases = map[string]Kind{
	"image": KindImage,
	"photo": KindImage,
	"video": KindVideo,
	"audio": KindAudio,
	"music": KindAudio,
	"note":  KindNote,
	"text":  KindNote,
	"quote": KindQuote,
}

// ParseKind parses a kind name, case-insensitively.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// Item is one immutable catalog entry. Which payload fields matter depends on
// Kind; missing fields render as nothing.
type Item struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	MediaURL    string // Image, Video, Audio
	CoverURL    string // Video, Audio
	Body        string // Note
	Quote       string // Quote
	Source      string // Quote attribution
	Tags        []string
	CreatedAt   time.Time
	InitialTime float64 // resume hint in seconds, first open only
	Duration    float64 // known length in seconds, 0 if unknown
}

// Playable reports whether the item participates in transport state.
func (it Item) Playable() bool {
	return it.Kind.Playable()
}

// Artwork returns the best image locator for now-playing surfaces.
func (it Item) Artwork() string {
	if it.CoverURL != "" {
		return it.CoverURL
	}
	if it.Kind == KindImage {
		return it.MediaURL
	}
	return ""
}
