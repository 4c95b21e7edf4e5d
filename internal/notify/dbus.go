package notify

import (
	"math"
	"runtime"

	"github.com/godbus/dbus/v5"
)

const (
	dbusBackendName = "Linux (D-Bus)"

	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notifyMethod         = "org.freedesktop.Notifications.Notify"

	// application name reported to the notification server
	appName = "toastr"
)

// dbusNotifier delivers notifications through the freedesktop.org
// notification service on the D-Bus session bus.
type dbusNotifier struct{}

func (d *dbusNotifier) Name() string {
	return dbusBackendName
}

// Available reports true only on a Linux host; the session bus is a
// Linux-desktop concept.
func (d *dbusNotifier) Available() bool {
	return runtime.GOOS == "linux"
}

func (d *dbusNotifier) Send(n Notification) error {
	if !d.Available() {
		return &UnsupportedPlatformError{
			Detail: "Linux notifications require a Linux host",
		}
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return &SendFailedError{Backend: dbusBackendName, Reason: err.Error()}
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyByte(n.Urgency)),
	}

	obj := conn.Object(notificationsService, notificationsPath)
	call := obj.Call(notifyMethod, 0,
		appName,              // app_name
		uint32(0),            // replaces_id
		n.Icon,               // app_icon
		n.Title,              // summary
		n.Message,            // body
		[]string{},           // actions
		hints,                // hints
		expireTimeout(n.Timeout),
	)
	if call.Err != nil {
		return &SendFailedError{Backend: dbusBackendName, Reason: call.Err.Error()}
	}
	return nil
}

// urgencyByte maps Urgency onto the freedesktop urgency hint scale
func urgencyByte(u Urgency) byte {
	switch u {
	case UrgencyLow:
		return 0
	case UrgencyCritical:
		return 2
	default:
		return 1
	}
}

// expireTimeout converts the millisecond timeout to the wire encoding.
// Zero maps to zero, which the notification spec defines as "never expire".
func expireTimeout(ms uint32) int32 {
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(ms)
}
