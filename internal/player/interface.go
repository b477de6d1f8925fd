package player

import "time"

// Interface defines the player contract for dependency injection and testing.
// Locators are local paths or http(s) URLs.
type Interface interface {
	Play(locator string) error
	Stop()
	Pause()
	Resume()
	SeekTo(pos time.Duration)
	State() State
	Position() time.Duration
	Duration() time.Duration
}

// DurationHinter is implemented by players that cannot discover the media
// length on their own.
type DurationHinter interface {
	SetDuration(d time.Duration)
}

// Verify implementations at compile time.
var (
	_ Interface      = (*Player)(nil)
	_ Interface      = (*Clock)(nil)
	_ DurationHinter = (*Clock)(nil)
)
