package transport

import (
	"sync"
	"time"
)

// Recorder is an in-memory Surface that records what was published and lets
// callers inject signals. Used by tests and the headless list command.
type Recorder struct {
	mu       sync.Mutex
	metadata []Metadata
	states   []PlaybackState
	position time.Duration
	handler  func(Signal)
	closed   bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) PublishMetadata(meta Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = append(r.metadata, meta)
}

func (r *Recorder) PublishPlaybackState(state PlaybackState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *Recorder) PublishPosition(pos time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = pos
}

func (r *Recorder) OnSignal(handler func(Signal)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler = handler
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Emit delivers a signal as the host would.
func (r *Recorder) Emit(sig Signal) {
	r.mu.Lock()
	h := r.handler
	r.mu.Unlock()
	if h != nil {
		h(sig)
	}
}

// Metadata returns all published metadata in order.
func (r *Recorder) Metadata() []Metadata {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Metadata(nil), r.metadata...)
}

// States returns all published playback states in order.
func (r *Recorder) States() []PlaybackState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]PlaybackState(nil), r.states...)
}

// LastMetadata returns the most recent metadata, or the zero value.
func (r *Recorder) LastMetadata() Metadata {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.metadata) == 0 {
		return Metadata{}
	}
	return r.metadata[len(r.metadata)-1]
}

// LastState returns the most recent playback state, or PlaybackNone.
func (r *Recorder) LastState() PlaybackState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return PlaybackNone
	}
	return r.states[len(r.states)-1]
}

// Position returns the last published position.
func (r *Recorder) Position() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

var (
	_ Surface           = (*Recorder)(nil)
	_ PositionPublisher = (*Recorder)(nil)
)
