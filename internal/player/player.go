// Package player plays the audio behind playable gallery items, and keeps a
// wall-clock timeline for media the terminal cannot render.
package player

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player is a beep-backed audio player for mp3, flac and wav.
type Player struct {
	mu          sync.Mutex
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	src         *source
	volumeLevel float64
	client      *http.Client

	// ended is set from the speaker goroutine, which holds the speaker lock,
	// so it must not touch mu.
	ended atomic.Bool
}

// New creates a player at the given volume level (0.0 to 1.0).
func New(volume float64) *Player {
	p := &Player{
		state:  Stopped,
		client: &http.Client{Timeout: fetchTimeout},
	}
	p.SetVolume(volume)
	return p
}

// Play stops the current track and starts the given one.
func (p *Player) Play(locator string) error {
	p.Stop()

	src, err := openSource(context.Background(), p.client, locator)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch src.ext {
	case extMP3:
		streamer, format, err = decodeMP3(src)
	case extFLAC:
		if err := skipID3v2(src); err != nil {
			src.Close()
			return err
		}
		streamer, format, err = flac.Decode(src)
	case extWAV:
		streamer, format, err = wav.Decode(src)
	default:
		src.Close()
		return fmt.Errorf("unsupported format: %q", src.ext)
	}
	if err != nil {
		src.Close()
		return err
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		return err
	}

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}

	p.mu.Lock()
	p.src = src
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: playStreamer}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	applyLevel(p.volume, p.volumeLevel)
	p.state = Playing
	p.ended.Store(false)
	vol := p.volume
	p.mu.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(p.finished)))
	return nil
}

// finished runs on the speaker goroutine when the stream is drained.
// The track stays attached at its end and reads as paused.
func (p *Player) finished() {
	p.ended.Store(true)
}

// settle folds a drained stream into state. Callers hold mu.
func (p *Player) settle() {
	if p.state == Playing && p.ended.Load() {
		p.state = Paused
	}
}

func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	p.mu.Lock()
	if p.state == Stopped {
		p.mu.Unlock()
		return
	}
	streamer, src := p.streamer, p.src
	p.streamer, p.src, p.ctrl, p.volume = nil, nil, nil, nil
	p.state = Stopped
	p.mu.Unlock()

	speaker.Clear()

	if streamer != nil {
		streamer.Close()
	}
	if src != nil {
		src.Close()
	}
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settle()
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback. A drained track is re-queued, from the
// start if it sits at its end.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settle()
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	drained := p.ended.Load()
	if drained && p.streamer.Position() >= p.streamer.Len() {
		_ = p.streamer.Seek(0)
	}
	speaker.Unlock()
	if drained {
		p.ended.Store(false)
		speaker.Play(beep.Seq(p.volume, beep.Callback(p.finished)))
	}
	p.state = Playing
}

// SeekTo moves to an absolute position, clamped to the track.
func (p *Player) SeekTo(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}
	speaker.Lock()
	n := min(max(p.format.SampleRate.N(pos), 0), p.streamer.Len())
	_ = p.streamer.Seek(n)
	speaker.Unlock()
}

// State returns the playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settle()
	return p.state
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the track length, or 0 when nothing is loaded.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}
