//go:build linux

package mpris

import (
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/transport"
)

// Surface exposes the active item on the session bus as an MPRIS player.
// D-Bus calls are answered from the last published state and turned into
// transport signals.
type Surface struct {
	server  *server.Server
	changes emitter
	log     *zap.Logger

	mu       sync.Mutex
	meta     transport.Metadata
	state    transport.PlaybackState
	position time.Duration
	handler  func(transport.Signal)
}

// New creates and starts the MPRIS server.
func New(log *zap.Logger) (*Surface, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Surface{log: log}
	s.server = server.NewServer("gallery", &rootAdapter{}, &playerAdapter{s: s})
	s.changes = events.NewEventHandler(s.server).Player

	go func() {
		if err := s.server.Listen(); err != nil {
			log.Warn("mpris server stopped", zap.Error(err))
		}
	}()

	return s, nil
}

// emitter sends PropertiesChanged and Seeked on the bus. The handlers read
// properties back through playerAdapter, so they run without s.mu held.
type emitter interface {
	OnTitle() error
	OnOptions() error
	OnPlayback() error
	OnSeek(position types.Microseconds) error
}

// seekTolerance separates a seek from regular playback progress between
// two position reports.
const seekTolerance = 2 * time.Second

func (s *Surface) PublishMetadata(meta transport.Metadata) {
	s.mu.Lock()
	changed := s.meta != meta
	s.meta = meta
	s.mu.Unlock()

	if changed {
		s.notify("title", emitter.OnTitle)
		s.notify("options", emitter.OnOptions)
	}
}

func (s *Surface) PublishPlaybackState(state transport.PlaybackState) {
	s.mu.Lock()
	changed := s.state != state
	s.state = state
	s.mu.Unlock()

	if changed {
		s.notify("playback", emitter.OnPlayback)
	}
}

// PublishPosition stores the elapsed time and announces Seeked when it
// jumps backwards or further ahead than playback alone would move it.
func (s *Surface) PublishPosition(pos time.Duration) {
	s.mu.Lock()
	delta := pos - s.position
	s.position = pos
	s.mu.Unlock()

	if delta < 0 || delta > seekTolerance {
		s.notify("seek", func(e emitter) error {
			return e.OnSeek(types.Microseconds(pos.Microseconds()))
		})
	}
}

func (s *Surface) notify(what string, fn func(emitter) error) {
	if s.changes == nil {
		return
	}
	if err := fn(s.changes); err != nil {
		s.log.Debug("mpris change not emitted", zap.String("change", what), zap.Error(err))
	}
}

func (s *Surface) OnSignal(handler func(transport.Signal)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

// Close stops the server and releases the bus name.
func (s *Surface) Close() error {
	return s.server.Stop()
}

func (s *Surface) emit(sig transport.Signal) {
	s.mu.Lock()
	h := s.handler
	s.mu.Unlock()
	if h != nil {
		h(sig)
	}
	s.log.Debug("mpris signal", zap.Stringer("kind", sig.Kind))
}

func (s *Surface) snapshot() (transport.Metadata, transport.PlaybackState, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta, s.state, s.position
}

var (
	_ transport.Surface           = (*Surface)(nil)
	_ transport.PositionPublisher = (*Surface)(nil)
)

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // the TUI owns its lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Gallery", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "video/mp4"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	s *Surface
}

func (p *playerAdapter) Next() error {
	p.s.emit(transport.Signal{Kind: transport.SignalNext})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.s.emit(transport.Signal{Kind: transport.SignalPrevious})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.s.emit(transport.Signal{Kind: transport.SignalPause})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.s.emit(transport.Signal{Kind: transport.SignalPlayPause})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.s.emit(transport.Signal{Kind: transport.SignalStop})
	return nil
}

func (p *playerAdapter) Play() error {
	p.s.emit(transport.Signal{Kind: transport.SignalPlay})
	return nil
}

// Seek is relative in MPRIS.
func (p *playerAdapter) Seek(offset types.Microseconds) error {
	_, _, pos := p.s.snapshot()
	target := max(pos+time.Duration(offset)*time.Microsecond, 0)
	p.s.emit(transport.Signal{Kind: transport.SignalSeekTo, Position: target})
	return nil
}

// SetPosition is ignored unless trackID names the current item.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	meta, _, _ := p.s.snapshot()
	if meta.IsZero() || trackID != trackPath(meta.ID) {
		return nil
	}
	p.s.emit(transport.Signal{
		Kind:     transport.SignalSeekTo,
		Position: time.Duration(position) * time.Microsecond,
	})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	_, state, _ := p.s.snapshot()
	switch state {
	case transport.PlaybackPlaying:
		return types.PlaybackStatusPlaying, nil
	case transport.PlaybackPaused:
		return types.PlaybackStatusPaused, nil
	case transport.PlaybackNone:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	meta, _, _ := p.s.snapshot()
	if meta.IsZero() {
		return types.Metadata{TrackId: dbus.ObjectPath(noTrack)}, nil
	}

	return types.Metadata{
		TrackId: dbus.ObjectPath(trackPath(meta.ID)),
		Length:  types.Microseconds(meta.Duration.Microseconds()),
		Title:   meta.Title,
		ArtUrl:  artURL(meta.Artwork),
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	_, _, pos := p.s.snapshot()
	return pos.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Navigation is gated by the bridge; advertise it whenever something is active.
func (p *playerAdapter) CanGoNext() (bool, error) {
	meta, _, _ := p.s.snapshot()
	return !meta.IsZero(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	meta, _, _ := p.s.snapshot()
	return !meta.IsZero(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	meta, _, _ := p.s.snapshot()
	return !meta.IsZero(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	meta, _, _ := p.s.snapshot()
	return !meta.IsZero(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	meta, _, _ := p.s.snapshot()
	return meta.Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}
