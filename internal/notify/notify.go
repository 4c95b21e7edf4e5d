package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schoolboyqueue/toastr/internal/platform"
)

// Urgency is the priority hint passed to Linux-native notification delivery.
// Other backends ignore it.
type Urgency int

const (
	// UrgencyLow marks background information (completed jobs, status updates)
	UrgencyLow Urgency = iota
	// UrgencyNormal is the default urgency
	UrgencyNormal
	// UrgencyCritical marks notifications that should demand attention
	UrgencyCritical
)

// String returns the urgency name as used by CLI flags and config files
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// ParseUrgency converts a flag or config value to an Urgency.
// Valid inputs are "low", "normal", and "critical".
func ParseUrgency(s string) (Urgency, bool) {
	switch strings.ToLower(s) {
	case "low":
		return UrgencyLow, true
	case "normal":
		return UrgencyNormal, true
	case "critical":
		return UrgencyCritical, true
	default:
		return UrgencyNormal, false
	}
}

// Default field values filled in by Builder.Build.
const (
	DefaultTitle   = "Notification"
	DefaultTimeout = 5000
	DefaultIcon    = "dialog-information"
	DefaultSound   = "default"
)

// Notification is the content handed to a backend. It is a plain value:
// built once, owned by the send that carries it, never mutated.
type Notification struct {
	// Title is the notification headline
	Title string

	// Message is the body text
	Message string

	// Timeout is the display duration in milliseconds; 0 means never expire
	Timeout uint32

	// Icon is an icon name or path (Linux backend only)
	Icon string

	// Urgency is the priority hint (Linux backend only)
	Urgency Urgency

	// Subtitle is shown under the title (macOS backend only)
	Subtitle string

	// Sound is the notification sound name (macOS backend only)
	Sound string

	// Backend forces a specific platform's backend; nil means auto-detect
	Backend *platform.Platform
}

// Builder accumulates optional notification fields. Each setter updates
// exactly one field and returns the builder for chaining; Build fills every
// unset field with its documented default.
type Builder struct {
	title    *string
	message  *string
	timeout  *uint32
	icon     *string
	urgency  *Urgency
	subtitle *string
	sound    *string
	backend  *platform.Platform
	diag     io.Writer
}

// NewBuilder returns a builder with every field unset
func NewBuilder() *Builder {
	return &Builder{}
}

// Title sets the notification title
func (b *Builder) Title(title string) *Builder {
	b.title = &title
	return b
}

// Message sets the body text
func (b *Builder) Message(message string) *Builder {
	b.message = &message
	return b
}

// Timeout sets the display duration in milliseconds; 0 means never expire
func (b *Builder) Timeout(ms uint32) *Builder {
	b.timeout = &ms
	return b
}

// Icon sets the icon name or path (Linux only)
func (b *Builder) Icon(icon string) *Builder {
	b.icon = &icon
	return b
}

// Urgency sets the priority hint (Linux only)
func (b *Builder) Urgency(u Urgency) *Builder {
	b.urgency = &u
	return b
}

// Subtitle sets the subtitle (macOS only)
func (b *Builder) Subtitle(subtitle string) *Builder {
	b.subtitle = &subtitle
	return b
}

// Sound sets the notification sound name (macOS only)
func (b *Builder) Sound(sound string) *Builder {
	b.sound = &sound
	return b
}

// Backend forces a specific platform's backend instead of auto-detection
func (b *Builder) Backend(p platform.Platform) *Builder {
	b.backend = &p
	return b
}

// DiagnosticWriter redirects the one-line dispatch diagnostic emitted by
// Send. Defaults to stderr; io.Discard silences it.
func (b *Builder) DiagnosticWriter(w io.Writer) *Builder {
	b.diag = w
	return b
}

// Build materializes the Notification, filling unset fields with defaults.
// It is total: it never fails.
func (b *Builder) Build() Notification {
	n := Notification{
		Title:   DefaultTitle,
		Timeout: DefaultTimeout,
		Icon:    DefaultIcon,
		Urgency: UrgencyNormal,
		Sound:   DefaultSound,
		Backend: b.backend,
	}
	if b.title != nil {
		n.Title = *b.title
	}
	if b.message != nil {
		n.Message = *b.message
	}
	if b.timeout != nil {
		n.Timeout = *b.timeout
	}
	if b.icon != nil {
		n.Icon = *b.icon
	}
	if b.urgency != nil {
		n.Urgency = *b.urgency
	}
	if b.subtitle != nil {
		n.Subtitle = *b.subtitle
	}
	if b.sound != nil {
		n.Sound = *b.sound
	}
	return n
}

// Send builds the notification, selects a backend, and delivers it.
// Before the attempt it writes a single diagnostic line identifying the
// resolved platform and backend.
func (b *Builder) Send() error {
	n := b.Build()
	notifier, err := Select(n)
	if err != nil {
		return err
	}

	resolved := platform.Detect()
	if n.Backend != nil {
		resolved = *n.Backend
	}
	fmt.Fprintf(b.diagWriter(), "(Platform: %s, using %s backend)\n", resolved, notifier.Name())

	return notifier.Send(n)
}

func (b *Builder) diagWriter() io.Writer {
	if b.diag != nil {
		return b.diag
	}
	return os.Stderr
}
