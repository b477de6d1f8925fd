package notify

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/viewer"
)

// NowPlaying announces playable items as they start and withdraws the
// notification when the viewer closes.
type NowPlaying struct {
	notifier Notifier
	timeout  int32
	log      *zap.Logger
	lastID   uint32
}

// Watch subscribes a NowPlaying to the machine. timeout is in milliseconds.
func Watch(m *viewer.Machine, n Notifier, timeout int32, log *zap.Logger) *NowPlaying {
	if log == nil {
		log = zap.NewNop()
	}
	np := &NowPlaying{notifier: n, timeout: timeout, log: log.Named("notify")}
	m.Subscribe(np.onEvent)
	return np
}

func (np *NowPlaying) onEvent(ev viewer.Event) {
	switch ev.Kind {
	case viewer.EventItemChanged:
		if ev.Current.Playable() {
			np.send(ev.Current.Active.Item)
			return
		}
		np.withdraw()
	case viewer.EventClosed:
		np.withdraw()
	}
}

func (np *NowPlaying) send(it content.Item) {
	if np.notifier == nil {
		return
	}
	id, err := np.notifier.Notify(Message(it, np.timeout, np.lastID))
	if err != nil {
		np.log.Debug("notification failed", zap.String("item", it.ID), zap.Error(err))
		return
	}
	np.lastID = id
}

func (np *NowPlaying) withdraw() {
	if np.notifier == nil || np.lastID == 0 {
		return
	}
	if err := np.notifier.Close(np.lastID); err != nil {
		np.log.Debug("close notification", zap.Error(err))
	}
	np.lastID = 0
}

// Message builds the now-playing notification for an item.
func Message(it content.Item, timeout int32, replaces uint32) Notification {
	title := strings.TrimSpace(it.Title)
	if title == "" {
		title = "Untitled " + it.Kind.String()
	}

	parts := []string{it.Kind.String()}
	if len(it.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(it.Tags, " #"))
	}

	return Notification{
		Title:      title,
		Body:       strings.Join(parts, " · "),
		Icon:       iconPath(it.Artwork()),
		Timeout:    timeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

// iconPath returns a local file for the icon. Notification servers do not
// fetch remote images.
func iconPath(locator string) string {
	if locator == "" || strings.Contains(locator, "://") {
		return ""
	}
	abs, err := filepath.Abs(locator)
	if err != nil {
		return ""
	}
	return abs
}
