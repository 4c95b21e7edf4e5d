package notify

import (
	"runtime"
	"strings"
)

const osascriptBackendName = "macOS (osascript)"

// osascriptNotifier delivers notifications to the macOS Notification Center
// by generating an AppleScript snippet and running it through osascript.
type osascriptNotifier struct {
	runner CommandRunner
}

func (m *osascriptNotifier) Name() string {
	return osascriptBackendName
}

func (m *osascriptNotifier) Available() bool {
	return runtime.GOOS == "darwin"
}

func (m *osascriptNotifier) Send(n Notification) error {
	if !m.Available() {
		return &UnsupportedPlatformError{
			Detail: "macOS notifications require a macOS host",
		}
	}
	return runScript(m.runner, osascriptBackendName, "osascript", "-e", buildAppleScript(n))
}

// buildAppleScript renders the display-notification command. Shape:
//
//	display notification "<msg>" with title "<title>" [subtitle "<sub>"] sound name "<sound>"
//
// The subtitle clause is omitted when empty; the sound clause is always
// present.
func buildAppleScript(n Notification) string {
	var b strings.Builder
	b.WriteString(`display notification "`)
	b.WriteString(escapeAppleScript(n.Message))
	b.WriteString(`" with title "`)
	b.WriteString(escapeAppleScript(n.Title))
	b.WriteString(`"`)

	if n.Subtitle != "" {
		b.WriteString(` subtitle "`)
		b.WriteString(escapeAppleScript(n.Subtitle))
		b.WriteString(`"`)
	}

	b.WriteString(` sound name "`)
	b.WriteString(escapeAppleScript(n.Sound))
	b.WriteString(`"`)
	return b.String()
}

// escapeAppleScript escapes a value for an AppleScript string literal.
// Backslashes must be doubled before quotes are escaped, or the backslashes
// introduced for the quotes would themselves be re-escaped.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
