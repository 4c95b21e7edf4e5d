package notify

import (
	"fmt"

	"github.com/schoolboyqueue/toastr/internal/platform"
)

// Notifier is the capability each platform backend implements
type Notifier interface {
	// Send delivers the notification through the backend's native mechanism
	Send(n Notification) error

	// Available reports whether this backend is usable on the current host.
	// It is a pure predicate with no side effects.
	Available() bool

	// Name is a diagnostic label for the backend
	Name() string
}

// Select resolves the effective platform for n and returns the matching
// backend, verifying it is available. An explicit Backend override that the
// current host cannot serve is rejected here, cleanly, rather than failing
// deep inside a subprocess call.
func Select(n Notification) (Notifier, error) {
	resolved := platform.Detect()
	if n.Backend != nil {
		resolved = *n.Backend
	}

	notifier, err := notifierFor(resolved)
	if err != nil {
		return nil, err
	}
	if !notifier.Available() {
		return nil, &UnsupportedPlatformError{
			Detail: fmt.Sprintf("%s notifier is not available on this host", notifier.Name()),
		}
	}
	return notifier, nil
}

// notifierFor maps a platform to its backend without checking availability
func notifierFor(p platform.Platform) (Notifier, error) {
	switch p {
	case platform.Linux:
		return &dbusNotifier{}, nil
	case platform.WSL, platform.Windows:
		return &powershellNotifier{runner: execRunner{}}, nil
	case platform.MacOS:
		return &osascriptNotifier{runner: execRunner{}}, nil
	default:
		return nil, &UnsupportedPlatformError{
			Detail: "unknown platform, use --backend to choose one explicitly",
		}
	}
}
