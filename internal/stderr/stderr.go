//go:build !windows

// Package stderr redirects file descriptor 2 while the UI is running. Audio
// backends (ALSA through the speaker) write there directly and would
// otherwise draw over the terminal UI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"
)

// Capture holds a live redirection of fd 2.
type Capture struct {
	orig  int
	read  *os.File
	write *os.File
	wg    sync.WaitGroup
}

// Start redirects fd 2 into a pipe and calls sink for every non-empty line.
// On error nothing is redirected and the program can continue without it.
func Start(sink func(line string)) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, read: r, write: w}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" && sink != nil {
				sink(line)
			}
		}
	}()
	return c, nil
}

// WriteOriginal writes to the terminal's real stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores fd 2 and waits for buffered lines to reach the sink.
func (c *Capture) Stop() {
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	// fd 2 no longer points at the pipe; closing our end ends the reader.
	c.write.Close()
	c.wg.Wait()
	c.read.Close()
}
