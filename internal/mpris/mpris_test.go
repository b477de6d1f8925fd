//go:build linux

package mpris

import (
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/transport"
)

// newDetached builds a surface without a bus connection.
func newDetached() (*Surface, *playerAdapter, *[]transport.Signal) {
	s := &Surface{log: zap.NewNop()}
	var got []transport.Signal
	s.OnSignal(func(sig transport.Signal) { got = append(got, sig) })
	return s, &playerAdapter{s: s}, &got
}

func TestPlayerAdapter_ButtonsBecomeSignals(t *testing.T) {
	_, p, got := newDetached()

	_ = p.Play()
	_ = p.Pause()
	_ = p.PlayPause()
	_ = p.Next()
	_ = p.Previous()
	_ = p.Stop()

	want := []transport.SignalKind{
		transport.SignalPlay, transport.SignalPause, transport.SignalPlayPause,
		transport.SignalNext, transport.SignalPrevious, transport.SignalStop,
	}
	if len(*got) != len(want) {
		t.Fatalf("got %d signals, want %d", len(*got), len(want))
	}
	for i, k := range want {
		if (*got)[i].Kind != k {
			t.Errorf("signal %d = %v, want %v", i, (*got)[i].Kind, k)
		}
	}
}

func TestPlayerAdapter_SeekIsRelative(t *testing.T) {
	s, p, got := newDetached()
	s.PublishPosition(10 * time.Second)

	_ = p.Seek(types.Microseconds(5 * time.Second / time.Microsecond))
	_ = p.Seek(types.Microseconds(-60 * time.Second / time.Microsecond))

	if len(*got) != 2 {
		t.Fatalf("got %d signals, want 2", len(*got))
	}
	if (*got)[0].Position != 15*time.Second {
		t.Errorf("forward seek target = %v, want 15s", (*got)[0].Position)
	}
	if (*got)[1].Position != 0 {
		t.Errorf("backward seek target = %v, want clamp to 0", (*got)[1].Position)
	}
}

func TestPlayerAdapter_SetPositionChecksTrack(t *testing.T) {
	s, p, got := newDetached()
	s.PublishMetadata(transport.Metadata{ID: "clip", Title: "Clip", Duration: time.Minute})

	_ = p.SetPosition("/org/mpris/MediaPlayer2/Track/stale", 1_000_000)
	if len(*got) != 0 {
		t.Fatalf("stale track id produced a signal")
	}

	_ = p.SetPosition(trackPath("clip"), 30_000_000)
	if len(*got) != 1 || (*got)[0].Position != 30*time.Second {
		t.Fatalf("signals = %+v, want one seek to 30s", *got)
	}
}

func TestPlayerAdapter_ReflectsPublishedState(t *testing.T) {
	s, p, _ := newDetached()

	status, _ := p.PlaybackStatus()
	if status != types.PlaybackStatusStopped {
		t.Errorf("status = %v, want Stopped", status)
	}
	meta, _ := p.Metadata()
	if meta.TrackId != dbus.ObjectPath(noTrack) {
		t.Errorf("TrackId = %v, want NoTrack", meta.TrackId)
	}
	if ok, _ := p.CanPlay(); ok {
		t.Error("CanPlay with nothing active")
	}

	s.PublishMetadata(transport.Metadata{ID: "song", Title: "Song", Artwork: "https://cdn.example.org/a.jpg", Duration: 90 * time.Second})
	s.PublishPlaybackState(transport.PlaybackPaused)
	s.PublishPosition(3 * time.Second)

	status, _ = p.PlaybackStatus()
	if status != types.PlaybackStatusPaused {
		t.Errorf("status = %v, want Paused", status)
	}
	meta, _ = p.Metadata()
	if meta.Title != "Song" || meta.ArtUrl != "https://cdn.example.org/a.jpg" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Length != types.Microseconds(90_000_000) {
		t.Errorf("Length = %v, want 90s", meta.Length)
	}
	if pos, _ := p.Position(); pos != 3_000_000 {
		t.Errorf("Position = %d, want 3000000", pos)
	}
	if ok, _ := p.CanSeek(); !ok {
		t.Error("CanSeek false with a known duration")
	}
}

// recordingEmitter reads state back through the adapter like the bus
// handlers do, so it deadlocks if a publish still holds the surface lock.
type recordingEmitter struct {
	p     *playerAdapter
	calls []string
	seeks []types.Microseconds
	title string
}

func (e *recordingEmitter) OnTitle() error {
	meta, _ := e.p.Metadata()
	e.title = meta.Title
	e.calls = append(e.calls, "title")
	return nil
}

func (e *recordingEmitter) OnOptions() error {
	_, _ = e.p.CanGoNext()
	e.calls = append(e.calls, "options")
	return nil
}

func (e *recordingEmitter) OnPlayback() error {
	_, _ = e.p.PlaybackStatus()
	e.calls = append(e.calls, "playback")
	return nil
}

func (e *recordingEmitter) OnSeek(pos types.Microseconds) error {
	_, _ = e.p.Position()
	e.seeks = append(e.seeks, pos)
	e.calls = append(e.calls, "seek")
	return nil
}

func TestSurface_EmitsPropertyChanges(t *testing.T) {
	s, p, _ := newDetached()
	rec := &recordingEmitter{p: p}
	s.changes = rec

	meta := transport.Metadata{ID: "song", Title: "Song", Duration: time.Minute}
	s.PublishMetadata(meta)
	s.PublishMetadata(meta)
	s.PublishPlaybackState(transport.PlaybackPlaying)
	s.PublishPlaybackState(transport.PlaybackPlaying)

	want := []string{"title", "options", "playback"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i, c := range want {
		if rec.calls[i] != c {
			t.Errorf("call %d = %q, want %q", i, rec.calls[i], c)
		}
	}
	if rec.title != "Song" {
		t.Errorf("title read during emit = %q, want Song", rec.title)
	}
}

func TestSurface_ClosingAnnouncesNothingActive(t *testing.T) {
	s, p, _ := newDetached()
	s.PublishMetadata(transport.Metadata{ID: "song", Title: "Song"})
	s.PublishPlaybackState(transport.PlaybackPlaying)

	rec := &recordingEmitter{p: p}
	s.changes = rec
	s.PublishMetadata(transport.Metadata{})
	s.PublishPlaybackState(transport.PlaybackNone)

	if len(rec.calls) != 3 || rec.calls[0] != "title" || rec.calls[2] != "playback" {
		t.Fatalf("calls = %v, want title, options, playback", rec.calls)
	}
	if rec.title != "" {
		t.Errorf("title after close = %q, want empty", rec.title)
	}
	if status, _ := p.PlaybackStatus(); status != types.PlaybackStatusStopped {
		t.Errorf("status after close = %v, want Stopped", status)
	}
}

func TestSurface_SeekedOnlyOnJumps(t *testing.T) {
	s, p, _ := newDetached()
	rec := &recordingEmitter{p: p}
	s.changes = rec

	s.PublishPosition(1 * time.Second)
	s.PublishPosition(2 * time.Second)
	s.PublishPosition(30 * time.Second)
	s.PublishPosition(5 * time.Second)

	want := []types.Microseconds{30_000_000, 5_000_000}
	if len(rec.seeks) != len(want) {
		t.Fatalf("seeks = %v, want %v", rec.seeks, want)
	}
	for i, w := range want {
		if rec.seeks[i] != w {
			t.Errorf("seek %d = %d, want %d", i, rec.seeks[i], w)
		}
	}
}

func TestSurface_EmitErrorsAreIgnored(t *testing.T) {
	s, _, _ := newDetached()
	s.changes = failingEmitter{}

	s.PublishMetadata(transport.Metadata{ID: "a", Title: "A"})
	s.PublishPlaybackState(transport.PlaybackPaused)
	s.PublishPosition(time.Minute)

	if meta, _, pos := s.snapshot(); meta.ID != "a" || pos != time.Minute {
		t.Errorf("state not stored when emits fail: %+v %v", meta, pos)
	}
}

type failingEmitter struct{}

func (failingEmitter) OnTitle() error                  { return errNoBus }
func (failingEmitter) OnOptions() error                { return errNoBus }
func (failingEmitter) OnPlayback() error               { return errNoBus }
func (failingEmitter) OnSeek(types.Microseconds) error { return errNoBus }

var errNoBus = errors.New("no dbus connection")
