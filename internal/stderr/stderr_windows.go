//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does not
// write to the console.
package stderr

import "os"

// Capture is a placeholder on Windows.
type Capture struct{}

// Start does nothing on Windows.
func Start(_ func(line string)) (*Capture, error) {
	return &Capture{}, nil
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop does nothing on Windows.
func (c *Capture) Stop() {}
