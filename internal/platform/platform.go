// Package platform detects the runtime environment so the notification
// dispatcher can pick a backend. Detection distinguishes native Linux from
// WSL by probing the kernel version string, since both report GOOS "linux".
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Platform identifies the runtime environment a notification is delivered on.
type Platform int

const (
	// Unknown is any environment without a usable backend
	Unknown Platform = iota
	// Linux is a native Linux desktop (D-Bus notifications)
	Linux
	// WSL is a Linux userland hosted on Windows (notifies via powershell.exe)
	WSL
	// MacOS is Darwin (notifies via osascript)
	MacOS
	// Windows is native Windows (notifies via PowerShell)
	Windows
)

// String returns the human-readable platform name
func (p Platform) String() string {
	switch p {
	case Linux:
		return "Linux"
	case WSL:
		return "WSL (Windows Subsystem for Linux)"
	case MacOS:
		return "macOS"
	case Windows:
		return "Windows"
	default:
		return "Unknown"
	}
}

// IsWindowsLike reports whether notifications are delivered through the
// Windows host. True for WSL as well, which shells out to powershell.exe.
func (p Platform) IsWindowsLike() bool {
	return p == WSL || p == Windows
}

// IsUnixLike reports whether the platform delivers through a Unix-native
// mechanism (D-Bus or osascript).
func (p Platform) IsUnixLike() bool {
	return p == Linux || p == MacOS
}

// Parse converts a backend flag value to a Platform.
// Valid inputs are "linux", "windows", and "macos".
func Parse(s string) (Platform, bool) {
	switch strings.ToLower(s) {
	case "linux":
		return Linux, true
	case "windows":
		return Windows, true
	case "macos":
		return MacOS, true
	default:
		return Unknown, false
	}
}

// procVersionPath is the kernel version pseudo-file used for WSL detection.
// WSL kernels identify themselves there, e.g.
// "Linux version 5.15.167.4-microsoft-standard-WSL2 ...".
const procVersionPath = "/proc/version"

// Detect returns the current platform. It is total: detection failures
// degrade to the most likely answer instead of returning an error.
func Detect() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	case "linux":
		if isWSL(procVersionPath) {
			return WSL
		}
		return Linux
	default:
		return Unknown
	}
}

// isWSL reports whether the kernel version file identifies a WSL kernel.
// An unreadable file means plain Linux.
func isWSL(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	lower := strings.ToLower(string(data))
	return strings.Contains(lower, "microsoft") || strings.Contains(lower, "wsl")
}
