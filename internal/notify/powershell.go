package notify

import (
	"fmt"
	"runtime"
	"strings"
)

const powershellBackendName = "Windows (PowerShell)"

// powershellNotifier shows a Windows balloon notification by generating a
// System.Windows.Forms.NotifyIcon script and running it through PowerShell.
// WSL resolves powershell.exe through the Windows host PATH, so the same
// backend serves both native Windows and WSL.
type powershellNotifier struct {
	runner CommandRunner
}

func (w *powershellNotifier) Name() string {
	return powershellBackendName
}

// Available is true on Windows and on Linux, where a WSL environment can
// shell out to the Windows host. A native-Linux host without WSL passes this
// check and fails at send time instead; distinguishing the two would require
// probing for powershell.exe, which dispatch deliberately avoids.
func (w *powershellNotifier) Available() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "linux"
}

func (w *powershellNotifier) Send(n Notification) error {
	if !w.Available() {
		return &UnsupportedPlatformError{
			Detail: "Windows notifications require a Windows or WSL host",
		}
	}
	return runScript(w.runner, powershellBackendName,
		"powershell.exe", "-NoProfile", "-NonInteractive", "-Command", buildBalloonScript(n))
}

// buildBalloonScript renders the NotifyIcon balloon sequence: create the
// icon, set title/text, show the balloon for the notification's timeout,
// sleep briefly so the tip registers, then dispose the icon.
func buildBalloonScript(n Notification) string {
	return fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
$balloon = New-Object System.Windows.Forms.NotifyIcon
$balloon.Icon = [System.Drawing.SystemIcons]::Information
$balloon.BalloonTipTitle = '%s'
$balloon.BalloonTipText = '%s'
$balloon.Visible = $true
$balloon.ShowBalloonTip(%d)
Start-Sleep -Milliseconds 100
$balloon.Dispose()
`, escapePowerShell(n.Title), escapePowerShell(n.Message), n.Timeout)
}

// escapePowerShell escapes a value for a single-quoted PowerShell string
// literal, where the only special character is the quote itself, doubled.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
