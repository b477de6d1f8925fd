// Package notify sends desktop notifications for the item being played.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // local image path or icon name
	Timeout    int32  // ms; -1 lets the server decide, 0 never expires
	ReplacesID uint32 // id of a notification to update in place
	Urgency    Urgency
}

// Notifier delivers notifications. Implementations return id 0 when
// nothing was shown.
type Notifier interface {
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// nopNotifier is used where no notification server is reachable.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (nopNotifier) Close(uint32) error                  { return nil }
