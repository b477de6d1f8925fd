package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/gallery/internal/catalog"
	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/playback"
	"github.com/llehouerou/gallery/internal/player"
	"github.com/llehouerou/gallery/internal/state"
	"github.com/llehouerou/gallery/internal/transport"
)

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testItems() []content.Item {
	return []content.Item{
		{ID: "img1", Kind: content.KindImage, Title: "Harbour at dusk", MediaURL: "harbour.png", CreatedAt: testEpoch},
		{ID: "aud1", Kind: content.KindAudio, Title: "Morning tape", MediaURL: "tape.mp3", Duration: 120},
		{ID: "note1", Kind: content.KindNote, Title: "Shopping list", Body: "tea, bread"},
		{ID: "vid1", Kind: content.KindVideo, Title: "Kite festival", MediaURL: "kites.mp4"},
		{ID: "quote1", Kind: content.KindQuote, Title: "On patience", Quote: "Wait.", Source: "Anon"},
	}
}

type fixture struct {
	state    *state.Mock
	audio    *player.Mock
	video    *player.Mock
	recorder *transport.Recorder
}

func newTestModel(t *testing.T) (Model, *fixture) {
	t.Helper()
	f := &fixture{
		state:    state.NewMock(),
		audio:    player.NewMock(),
		video:    player.NewMock(),
		recorder: transport.NewRecorder(),
	}
	m := New(Options{
		Loader: catalog.LoaderFunc(func(context.Context) ([]content.Item, error) {
			return testItems(), nil
		}),
		State:   f.state,
		Surface: f.recorder,
		Players: playback.Players{Audio: f.audio, Video: f.video},
	})
	m.now = func() time.Time { return testEpoch }
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, f
}

// loadedModel returns a model showing testItems after a successful fetch.
func loadedModel(t *testing.T) (Model, *fixture) {
	t.Helper()
	m, f := newTestModel(t)
	m = update(t, m, CatalogFetchedMsg{Seq: m.fetchSeq, Items: testItems()})
	return m, f
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestNew_Defaults(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, defaultSeekStep, m.SeekStep)
	assert.True(t, m.loading)
	assert.False(t, m.Machine.IsOpen())
	assert.NotNil(t, m.Init())
}

func TestCachedCatalog_ShownUntilFetch(t *testing.T) {
	m, _ := newTestModel(t)

	cached := testItems()[:2]
	m = update(t, m, CachedCatalogMsg{Items: cached, OK: true})
	assert.Equal(t, 2, m.Grid.Len())
	assert.True(t, m.loading, "fetch still in flight")

	m = update(t, m, CatalogFetchedMsg{Seq: m.fetchSeq, Items: testItems()})
	assert.Equal(t, 5, m.Grid.Len())
	assert.False(t, m.loading)
}

func TestCachedCatalog_MissIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, CachedCatalogMsg{})
	assert.Equal(t, 0, m.Grid.Len())
}

func TestCachedCatalog_LateResultIgnored(t *testing.T) {
	m, _ := loadedModel(t)

	m = update(t, m, CachedCatalogMsg{Items: testItems()[:1], OK: true})
	assert.Equal(t, 5, m.Grid.Len())
}

func TestCatalogFetched_WritesCache(t *testing.T) {
	m, f := newTestModel(t)

	next, cmd := m.Update(CatalogFetchedMsg{Seq: m.fetchSeq, Items: testItems()})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, 1, f.state.Writes())
	items, ok := f.state.ReadCached()
	assert.True(t, ok)
	assert.Len(t, items, 5)
	assert.Empty(t, next.(Model).ErrorMsg)
}

func TestCatalogFetched_StaleSeqIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	stale := m.fetchSeq

	m = update(t, m, keyRunes("r"))
	require.Equal(t, stale+1, m.fetchSeq)

	m = update(t, m, CatalogFetchedMsg{Seq: stale, Items: testItems()})
	assert.Equal(t, 0, m.Grid.Len())
	assert.True(t, m.loading)
}

func TestCatalogFetched_ErrorKeepsItems(t *testing.T) {
	m, f := newTestModel(t)
	m = update(t, m, CachedCatalogMsg{Items: testItems(), OK: true})

	m = update(t, m, CatalogFetchedMsg{Seq: m.fetchSeq, Err: errors.New("connection refused")})

	assert.Equal(t, 5, m.Grid.Len())
	assert.Contains(t, m.ErrorMsg, "refresh catalog")
	assert.Contains(t, m.ErrorMsg, "connection refused")
	assert.False(t, m.loading)
	assert.Equal(t, 0, f.state.Writes())
}

func TestCatalogFetched_ErrorWithNothingShown(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, CatalogFetchedMsg{Seq: m.fetchSeq, Err: errors.New("boom")})

	assert.Contains(t, m.ErrorMsg, "load catalog")
}

func TestRefresh_ClearsErrorOnSuccess(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, CatalogFetchedMsg{Seq: m.fetchSeq, Err: errors.New("boom")})
	require.NotEmpty(t, m.ErrorMsg)

	next, cmd := m.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	m = next.(Model)
	assert.True(t, m.loading)

	m = update(t, m, CatalogFetchedMsg{Seq: m.fetchSeq, Items: testItems()})
	assert.Empty(t, m.ErrorMsg)
	assert.Equal(t, 5, m.Grid.Len())
}

func TestFetchCmd_TagsSequence(t *testing.T) {
	loader := catalog.LoaderFunc(func(context.Context) ([]content.Item, error) {
		return testItems(), nil
	})

	msg := FetchCmd(loader, 7)()

	fetched, ok := msg.(CatalogFetchedMsg)
	require.True(t, ok)
	assert.Equal(t, 7, fetched.Seq)
	assert.Len(t, fetched.Items, 5)
}

func TestQuery_RestoredOnStartup(t *testing.T) {
	st := state.NewMock()
	st.SaveQuery("tape")

	m := New(Options{
		Loader: catalog.LoaderFunc(func(context.Context) ([]content.Item, error) { return nil, nil }),
		State:  st,
	})
	m = update(t, m, CatalogFetchedMsg{Seq: m.fetchSeq, Items: testItems()})

	assert.Equal(t, "tape", m.Catalog.Query())
	assert.Equal(t, "tape", m.Search.Value())
	assert.Equal(t, 1, m.Grid.Len())
}

func TestTick_SyncsPlayback(t *testing.T) {
	m, f := loadedModel(t)
	m.Grid.Select(1)
	m = update(t, m, keyEnter())
	require.True(t, m.Machine.Snapshot().Playable())

	f.audio.SetPosition(42 * time.Second)
	next, cmd := m.Update(TickMsg(testEpoch))
	m = next.(Model)

	assert.NotNil(t, cmd)
	assert.InDelta(t, 42.0, m.Machine.Snapshot().Active.Transport.Elapsed, 0.001)
}

func TestSignal_NavigatesAndFollowsGrid(t *testing.T) {
	m, _ := loadedModel(t)
	m.Grid.Select(1)
	m = update(t, m, keyEnter())

	m = update(t, m, transport.SignalMsg{
		Signal:     transport.Signal{Kind: transport.SignalNext},
		Generation: m.Bridge.Generation(),
	})

	assert.Equal(t, "note1", m.Machine.Snapshot().ItemID())
	assert.Equal(t, 2, m.Grid.Cursor())
}

func TestQuit_ShutsDown(t *testing.T) {
	m, f := loadedModel(t)
	m.Grid.Select(1)
	m = update(t, m, keyEnter())

	_, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, f.state.IsClosed())
	assert.True(t, f.recorder.Closed())
	assert.Equal(t, player.Stopped, f.audio.State())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func keyEsc() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

func keySpace() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}} }
