package transport

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/navigation"
	"github.com/llehouerou/gallery/internal/viewer"
)

// SignalMsg carries an inbound signal into the UI event loop. Generation is
// the active-item generation at the moment the host fired the signal.
type SignalMsg struct {
	Signal     Signal
	Generation uint64
}

// Dispatch hands a signal to the event loop (tea.Program.Send in the app).
type Dispatch func(SignalMsg)

// Bridge mirrors viewer state to a Surface and relays host signals back.
type Bridge struct {
	surface Surface
	machine *viewer.Machine
	log     *zap.Logger

	// generation changes whenever the active item identity changes, so
	// signals fired against a superseded item can be recognised.
	generation atomic.Uint64

	dispatchMu sync.RWMutex
	dispatch   Dispatch

	lastMeta  Metadata
	lastState PlaybackState
}

// NewBridge subscribes to machine and registers for surface signals.
// Signals are dropped until Bind is called.
func NewBridge(surface Surface, machine *viewer.Machine, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Bridge{
		surface: surface,
		machine: machine,
		log:     log.Named("transport"),
	}
	machine.Subscribe(b.onEvent)
	surface.OnSignal(b.onSignal)
	return b
}

// Bind sets the function used to hand signals to the event loop.
func (b *Bridge) Bind(dispatch Dispatch) {
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()
	b.dispatch = dispatch
}

// Generation returns the current active-item generation.
func (b *Bridge) Generation() uint64 {
	return b.generation.Load()
}

// Close clears the host surface and releases it.
func (b *Bridge) Close() error {
	b.publish(Metadata{}, PlaybackNone)
	return b.surface.Close()
}

// onSignal runs on the surface's goroutine.
func (b *Bridge) onSignal(sig Signal) {
	b.dispatchMu.RLock()
	dispatch := b.dispatch
	b.dispatchMu.RUnlock()
	if dispatch == nil {
		b.log.Debug("signal dropped, no dispatcher", zap.Stringer("signal", sig.Kind))
		return
	}
	dispatch(SignalMsg{Signal: sig, Generation: b.generation.Load()})
}

// Handle applies a signal to the machine. Must run on the event loop.
// Returns false if the signal was stale or did not apply.
func (b *Bridge) Handle(msg SignalMsg) bool {
	if msg.Generation != b.generation.Load() {
		b.log.Debug("stale signal dropped",
			zap.Stringer("signal", msg.Signal.Kind),
			zap.Uint64("generation", msg.Generation))
		return false
	}

	snap := b.machine.Snapshot()
	if !snap.Open {
		return false
	}

	switch msg.Signal.Kind {
	case SignalPlay:
		if !snap.Playable() || snap.Active.Transport.Playing {
			return false
		}
		b.machine.TogglePlay()
	case SignalPause:
		if !snap.Playable() || !snap.Active.Transport.Playing {
			return false
		}
		b.machine.TogglePlay()
	case SignalPlayPause:
		if !snap.Playable() {
			return false
		}
		b.machine.TogglePlay()
	case SignalNext:
		if !b.machine.CanNavigate(navigation.Next) {
			return false
		}
		b.machine.Navigate(navigation.Next)
	case SignalPrevious:
		if !b.machine.CanNavigate(navigation.Prev) {
			return false
		}
		b.machine.Navigate(navigation.Prev)
	case SignalStop:
		b.machine.Close()
	case SignalSeekTo:
		if !snap.Playable() {
			return false
		}
		b.machine.Seek(msg.Signal.Position.Seconds())
	default:
		return false
	}
	return true
}

func (b *Bridge) onEvent(ev viewer.Event) {
	switch ev.Kind {
	case viewer.EventItemChanged, viewer.EventClosed:
		b.generation.Add(1)
		b.publish(metadataFor(ev.Current), stateFor(ev.Current))
		b.publishPosition(ev.Current)
	case viewer.EventTransportChanged:
		b.publish(metadataFor(ev.Current), stateFor(ev.Current))
		b.publishPosition(ev.Current)
	case viewer.EventModeChanged:
		// view-only change, nothing to mirror
	}
}

func (b *Bridge) publish(meta Metadata, state PlaybackState) {
	if meta != b.lastMeta {
		b.lastMeta = meta
		b.surface.PublishMetadata(meta)
	}
	if state != b.lastState {
		b.lastState = state
		b.surface.PublishPlaybackState(state)
	}
}

func (b *Bridge) publishPosition(s viewer.Snapshot) {
	pp, ok := b.surface.(PositionPublisher)
	if !ok {
		return
	}
	var pos time.Duration
	if s.Playable() {
		pos = time.Duration(s.Active.Transport.Elapsed * float64(time.Second))
	}
	pp.PublishPosition(pos)
}

func metadataFor(s viewer.Snapshot) Metadata {
	if !s.Playable() {
		return Metadata{}
	}
	item := s.Active.Item
	meta := Metadata{
		ID:      item.ID,
		Title:   item.Title,
		Artwork: item.Artwork(),
		Kind:    item.Kind.String(),
	}
	if t := s.Active.Transport; t.DurationKnown {
		meta.Duration = time.Duration(t.Duration * float64(time.Second))
	}
	return meta
}

func stateFor(s viewer.Snapshot) PlaybackState {
	if !s.Playable() {
		return PlaybackNone
	}
	if s.Active.Transport.Playing {
		return PlaybackPlaying
	}
	return PlaybackPaused
}
