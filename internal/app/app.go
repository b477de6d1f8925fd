// Package app is the root bubbletea model wiring the catalog, the viewer
// state machine, playback and the media-key bridge together.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/catalog"
	"github.com/llehouerou/gallery/internal/gesture"
	"github.com/llehouerou/gallery/internal/keymap"
	"github.com/llehouerou/gallery/internal/playback"
	"github.com/llehouerou/gallery/internal/state"
	"github.com/llehouerou/gallery/internal/transport"
	"github.com/llehouerou/gallery/internal/ui/grid"
	"github.com/llehouerou/gallery/internal/ui/searchbar"
	"github.com/llehouerou/gallery/internal/viewer"
)

const defaultSeekStep = 5.0

// PreviewLoader fetches scaled PNG artwork for the full-screen viewer.
type PreviewLoader interface {
	Load(ctx context.Context, locator string, cols, rows int) ([]byte, error)
}

// Options configures New.
type Options struct {
	Loader   catalog.Loader
	State    state.Interface
	Surface  transport.Surface // nil means no host media keys
	Players  playback.Players
	Previews PreviewLoader // nil disables artwork
	Images   bool          // terminal supports Kitty graphics

	SeekStep         float64 // seconds per seek key press
	SwipeMinDistance float64
	SwipeMaxDuration time.Duration

	Log *zap.Logger
}

// Model is the root application model. The collaborators behind pointers
// are shared by every copy bubbletea makes of the model.
type Model struct {
	Catalog  *catalog.View
	Machine  *viewer.Machine
	Bridge   *transport.Bridge
	Playback *playback.Controller
	Gestures *gesture.Detector
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Loader   catalog.Loader
	Previews PreviewLoader
	Log      *zap.Logger

	Grid   grid.Model
	Search searchbar.Model

	SeekStep float64
	Images   bool

	// fetchSeq identifies the latest fetch; older results are dropped.
	fetchSeq int
	// fetched is set once a fetch succeeded; cached results arriving later
	// must not replace fresher data.
	fetched  bool
	loading  bool
	ErrorMsg string
	ShowHelp bool

	preview previewState
	now     func() time.Time

	Width  int
	Height int
}

// New builds the model and subscribes the bridge and the playback
// controller to the viewer machine.
func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	surface := opts.Surface
	if surface == nil {
		surface = transport.Nop{}
	}
	step := opts.SeekStep
	if step <= 0 {
		step = defaultSeekStep
	}

	view := catalog.NewView()
	machine := viewer.New(view)

	m := Model{
		Catalog:  view,
		Machine:  machine,
		Bridge:   transport.NewBridge(surface, machine, log),
		Playback: playback.New(machine, opts.Players, log),
		Gestures: gesture.New(opts.SwipeMinDistance, opts.SwipeMaxDuration),
		StateMgr: opts.State,
		Keys:     keymap.NewResolver(keymap.Bindings),
		Loader:   opts.Loader,
		Previews: opts.Previews,
		Log:      log.Named("app"),
		Grid:     grid.New(),
		Search:   searchbar.New(),
		SeekStep: step,
		Images:   opts.Images,
		fetchSeq: 1,
		loading:  true,
		now:      time.Now,
	}

	if q, err := m.StateMgr.GetQuery(); err != nil {
		m.Log.Warn("restore search query", zap.Error(err))
	} else if q != "" {
		m.Catalog.SetQuery(q)
		m.Search.SetValue(q)
	}
	return m
}

// Init starts the cache read and the fetch concurrently, plus the
// playback clock tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCachedCmd(m.StateMgr),
		FetchCmd(m.Loader, m.fetchSeq),
		TickCmd(),
	)
}

// shutdown stops playback, releases the media-key surface and flushes state.
func (m *Model) shutdown() {
	m.Playback.Close()
	if err := m.Bridge.Close(); err != nil {
		m.Log.Warn("close media keys", zap.Error(err))
	}
	if err := m.StateMgr.Close(); err != nil {
		m.Log.Warn("close state", zap.Error(err))
	}
}
