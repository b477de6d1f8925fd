package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/navigation"
)

type staticList []content.Item

func (l *staticList) Filtered() []content.Item { return *l }

var (
	videoA = content.Item{ID: "a", Kind: content.KindVideo, Title: "Clip A", Duration: 120}
	audioB = content.Item{ID: "b", Kind: content.KindAudio, Title: "Song B"}
	noteC  = content.Item{ID: "c", Kind: content.KindNote, Title: "Note C", Body: "text"}
	imageD = content.Item{ID: "d", Kind: content.KindImage, Title: "Pic D"}
	videoE = content.Item{ID: "e", Kind: content.KindVideo, Title: "Clip E", InitialTime: 30}
)

func newTestMachine() (*Machine, *staticList, *[]Event) {
	list := &staticList{videoA, audioB, noteC, imageD, videoE}
	m := New(list)
	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })
	return m, list, &events
}

func TestNew_IsClosed(t *testing.T) {
	m, _, _ := newTestMachine()
	assert.False(t, m.IsOpen())
	assert.Equal(t, Snapshot{}, m.Snapshot())
}

func TestOpen_PlayableStartsPlaying(t *testing.T) {
	m, _, events := newTestMachine()

	m.Open(videoA, 0)

	s := m.Snapshot()
	require.True(t, s.Open)
	assert.Equal(t, "a", s.Active.Item.ID)
	assert.Equal(t, FullScreen, s.Active.Mode)
	require.NotNil(t, s.Active.Transport)
	assert.Equal(t, Transport{Playing: true, Elapsed: 0, Duration: 120, DurationKnown: true}, *s.Active.Transport)
	require.Len(t, *events, 1)
	assert.Equal(t, EventItemChanged, (*events)[0].Kind)
	assert.False(t, (*events)[0].Previous.Open)
}

func TestOpen_UsesInitialTimeHint(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(videoE, 4)
	s := m.Snapshot()
	assert.Equal(t, 30.0, s.Active.Transport.Elapsed)
	assert.False(t, s.Active.Transport.DurationKnown)
}

func TestOpen_NonPlayableHasNoTransport(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(noteC, 2)
	s := m.Snapshot()
	assert.True(t, s.Open)
	assert.Nil(t, s.Active.Transport)
	assert.False(t, s.Playable())
}

func TestOpen_ReplacesAtomically(t *testing.T) {
	m, _, events := newTestMachine()
	m.Open(videoA, 0)
	m.Open(audioB, 1)

	s := m.Snapshot()
	assert.Equal(t, "b", s.ItemID())
	require.Len(t, *events, 2)
	ev := (*events)[1]
	assert.Equal(t, EventItemChanged, ev.Kind)
	assert.Equal(t, "a", ev.Previous.ItemID())
	assert.Equal(t, "b", ev.Current.ItemID())
}

func TestOpen_ReopenMinimizedRestoresWithoutRestart(t *testing.T) {
	m, _, events := newTestMachine()
	m.Open(videoA, 0)
	m.Minimize()
	m.ReportElapsed(12)

	m.Open(videoA, 0)

	s := m.Snapshot()
	assert.Equal(t, FullScreen, s.Active.Mode)
	assert.Equal(t, Transport{Playing: true, Elapsed: 12, Duration: 120, DurationKnown: true}, *s.Active.Transport)
	assert.Equal(t, EventModeChanged, (*events)[len(*events)-1].Kind)
}

func TestOpen_ReopenFullScreenRestarts(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(videoA, 0)
	m.ReportElapsed(40)

	m.Open(videoA, 0)

	assert.Equal(t, 0.0, m.Snapshot().Active.Transport.Elapsed)
}

func TestClose(t *testing.T) {
	m, _, events := newTestMachine()
	m.Open(audioB, 1)
	m.Close()

	assert.False(t, m.IsOpen())
	assert.Equal(t, EventClosed, (*events)[len(*events)-1].Kind)
	assert.Equal(t, "b", (*events)[len(*events)-1].Previous.ItemID())

	n := len(*events)
	m.Close()
	assert.Len(t, *events, n, "closing a closed machine emits nothing")
}

func TestMinimizeRestore_PreservesTransport(t *testing.T) {
	for _, playing := range []bool{true, false} {
		m, _, _ := newTestMachine()
		m.Open(videoA, 0)
		m.ReportElapsed(42.5)
		m.ReportPlayState(playing)
		before := *m.Snapshot().Active.Transport

		m.Minimize()
		assert.Equal(t, Minimized, m.Snapshot().Active.Mode)
		assert.Equal(t, before, *m.Snapshot().Active.Transport)

		m.Restore()
		assert.Equal(t, FullScreen, m.Snapshot().Active.Mode)
		assert.Equal(t, before, *m.Snapshot().Active.Transport)
	}
}

func TestMinimize_NonPlayableIsNoOp(t *testing.T) {
	m, _, events := newTestMachine()
	m.Open(noteC, 3)
	n := len(*events)

	m.Minimize()

	assert.Equal(t, FullScreen, m.Snapshot().Active.Mode)
	assert.Len(t, *events, n)
}

func TestMinimize_ClosedIsNoOp(t *testing.T) {
	m, _, events := newTestMachine()
	m.Minimize()
	m.Restore()
	assert.False(t, m.IsOpen())
	assert.Empty(t, *events)
}

func TestNavigate_ResetsTransport(t *testing.T) {
	m, list, _ := newTestMachine()
	*list = staticList{videoA, videoE}
	m.Open(videoA, 0)
	m.ReportElapsed(77)
	m.TogglePlay()
	m.Minimize()

	m.Navigate(navigation.Next)

	s := m.Snapshot()
	assert.Equal(t, "e", s.ItemID())
	assert.Equal(t, 1, s.Active.Position)
	assert.Equal(t, FullScreen, s.Active.Mode)
	assert.True(t, s.Active.Transport.Playing)
	assert.Equal(t, 0.0, s.Active.Transport.Elapsed, "navigation ignores the resume hint")
}

func TestNavigate_BoundsAreNoOps(t *testing.T) {
	m, _, events := newTestMachine()
	m.Open(videoA, 0)
	n := len(*events)

	m.Navigate(navigation.Prev)
	assert.Equal(t, "a", m.Snapshot().ItemID())
	assert.Len(t, *events, n)

	m.Open(videoE, 4)
	n = len(*events)
	m.Navigate(navigation.Next)
	assert.Equal(t, "e", m.Snapshot().ItemID())
	assert.Len(t, *events, n)
}

func TestNavigate_ToNonPlayableDropsTransport(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(audioB, 1)
	m.Navigate(navigation.Next)
	s := m.Snapshot()
	assert.Equal(t, "c", s.ItemID())
	assert.Nil(t, s.Active.Transport)
}

func TestNavigate_ClosedIsNoOp(t *testing.T) {
	m, _, events := newTestMachine()
	m.Navigate(navigation.Next)
	assert.False(t, m.IsOpen())
	assert.Empty(t, *events)
	assert.False(t, m.CanNavigate(navigation.Next))
}

func TestNavigate_OrphanedPositionAfterFilterChange(t *testing.T) {
	m, list, _ := newTestMachine()
	m.Open(videoE, 4)

	// The filtered list shrinks; the recorded position now points past the end.
	*list = staticList{audioB, noteC}
	assert.False(t, m.CanNavigate(navigation.Prev))
	m.Navigate(navigation.Prev)
	assert.Equal(t, "e", m.Snapshot().ItemID())
	assert.Equal(t, 4, m.Snapshot().Active.Position)

	// Position 1 now names a different item than the one open.
	m.Open(audioB, 1)
	*list = staticList{noteC, imageD, videoA}
	m.Navigate(navigation.Next)
	assert.Equal(t, "a", m.Snapshot().ItemID())
}

func TestCanNavigate(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(audioB, 1)
	assert.True(t, m.CanNavigate(navigation.Next))
	assert.True(t, m.CanNavigate(navigation.Prev))
	m.Open(videoA, 0)
	assert.False(t, m.CanNavigate(navigation.Prev))
}

func TestTogglePlay(t *testing.T) {
	m, _, events := newTestMachine()
	m.Open(audioB, 1)
	m.TogglePlay()
	assert.False(t, m.Snapshot().Active.Transport.Playing)
	m.TogglePlay()
	assert.True(t, m.Snapshot().Active.Transport.Playing)
	assert.Equal(t, EventTransportChanged, (*events)[len(*events)-1].Kind)

	m.Open(imageD, 3)
	n := len(*events)
	m.TogglePlay()
	assert.Len(t, *events, n)
}

func TestSeek(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{"inside range", 30, 30},
		{"clamped low", -5, 0},
		{"clamped high", 500, 120},
		{"exact end", 120, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestMachine()
			m.Open(videoA, 0)
			m.ReportElapsed(10)
			m.Seek(tt.target)
			assert.Equal(t, tt.want, m.Snapshot().Active.Transport.Elapsed)
		})
	}
}

func TestSeek_UnknownDurationIsNoOp(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(audioB, 1)
	m.Seek(30)
	assert.Equal(t, 0.0, m.Snapshot().Active.Transport.Elapsed)

	m.ReportDuration(200)
	m.Seek(30)
	assert.Equal(t, 30.0, m.Snapshot().Active.Transport.Elapsed)
}

func TestSeek_NonPlayableIsNoOp(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(noteC, 2)
	m.Seek(10)
	m.SeekBy(10)
	assert.Nil(t, m.Snapshot().Active.Transport)
}

func TestSeekBy(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(videoA, 0)
	m.ReportElapsed(100)
	m.SeekBy(30)
	assert.Equal(t, 120.0, m.Snapshot().Active.Transport.Elapsed)
	m.SeekBy(-5)
	assert.Equal(t, 115.0, m.Snapshot().Active.Transport.Elapsed)
}

func TestReportDuration(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(audioB, 1)

	m.ReportDuration(180)
	tr := m.Snapshot().Active.Transport
	assert.True(t, tr.DurationKnown)
	assert.Equal(t, 180.0, tr.Duration)

	m.ReportDuration(0)
	tr = m.Snapshot().Active.Transport
	assert.False(t, tr.DurationKnown)
}

func TestReports_LastWriteWins(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(videoA, 0)
	m.ReportElapsed(50)
	m.ReportElapsed(20)
	m.ReportPlayState(false)
	m.ReportPlayState(false)
	tr := m.Snapshot().Active.Transport
	assert.Equal(t, 20.0, tr.Elapsed)
	assert.False(t, tr.Playing)
}

func TestReports_IgnoredWhenNotPlayable(t *testing.T) {
	m, _, events := newTestMachine()
	m.ReportElapsed(5)
	m.Open(noteC, 2)
	n := len(*events)
	m.ReportElapsed(5)
	m.ReportDuration(5)
	m.ReportPlayState(true)
	assert.Len(t, *events, n)
}

func TestSnapshot_IsACopy(t *testing.T) {
	m, _, _ := newTestMachine()
	m.Open(videoA, 0)
	s := m.Snapshot()
	s.Active.Transport.Elapsed = 99
	assert.Equal(t, 0.0, m.Snapshot().Active.Transport.Elapsed)
}

func TestAtMostOneActiveItem(t *testing.T) {
	m, _, events := newTestMachine()
	for i, it := range []content.Item{videoA, audioB, noteC, imageD, videoE, videoA} {
		m.Open(it, i)
		assert.Equal(t, it.ID, m.Snapshot().ItemID())
	}
	for _, ev := range *events {
		// every event hands over from exactly one snapshot to exactly one snapshot
		if ev.Kind == EventItemChanged && ev.Previous.Open {
			assert.NotEqual(t, ev.Previous.ItemID(), "")
			assert.NotEqual(t, ev.Current.ItemID(), "")
		}
	}
}
