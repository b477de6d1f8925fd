package mpris

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const noTrack = "/org/mpris/MediaPlayer2/TrackList/NoTrack"

// artURL turns an artwork locator into the URL form MPRIS clients expect.
func artURL(locator string) string {
	if locator == "" || strings.Contains(locator, "://") {
		return locator
	}
	abs, err := filepath.Abs(locator)
	if err != nil {
		return ""
	}
	return "file://" + abs
}

// trackPath derives a D-Bus object path from an item id, which may contain
// characters object paths do not allow.
func trackPath(id string) string {
	if id == "" {
		return noTrack
	}
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", xxhash.Sum64String(id))
}
