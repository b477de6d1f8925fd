package preview

import (
	"os"
	"strings"
)

// protocolEnv overrides detection: "kitty" forces images on, "none" disables them.
const protocolEnv = "GALLERY_IMAGE_PROTOCOL"

// IsKittySupported reports whether the terminal understands the Kitty
// graphics protocol.
func IsKittySupported() bool {
	switch os.Getenv(protocolEnv) {
	case "kitty":
		return true
	case "none":
		return false
	}

	// Contour sets CONTOUR_PROFILE but has no Kitty graphics; parent terminal
	// variables can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	// KONSOLE_VERSION looks like "220401"; graphics arrived in 22.04.
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
