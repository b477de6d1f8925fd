//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	appName    = "Gallery"
	desktopID  = "gallery"
)

// Bus talks to the session notification server.
type Bus struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without a session bus the returned
// notifier silently drops notifications.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // headless sessions have no bus
	}
	return &Bus{obj: conn.Object(busName, objectPath)}, nil
}

// Notify shows n and returns the id assigned by the server.
func (b *Bus) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopID),
	}

	var id uint32
	err := b.obj.Call(busName+".Notify", 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints, n.Timeout,
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}
	return id, nil
}

// Close withdraws a notification.
func (b *Bus) Close(id uint32) error {
	if call := b.obj.Call(busName+".CloseNotification", 0, id); call.Err != nil {
		return fmt.Errorf("close notification %d: %w", id, call.Err)
	}
	return nil
}
