// Package notify delivers desktop notifications across Linux, macOS, and
// Windows/WSL by routing each notification to the native mechanism for the
// resolved platform.
//
// # Backends
//
//   - Linux: D-Bus call to org.freedesktop.Notifications
//   - macOS: generated AppleScript run through osascript
//   - Windows/WSL: generated balloon-tip script run through PowerShell
//
// Every backend compiles on every platform; Available reports at run time
// whether the backend is usable on the current host, and the dispatcher
// rejects unavailable backends before anything is spawned.
//
// # Usage
//
//	err := notify.NewBuilder().
//		Title("Build").
//		Message("tests passed").
//		Urgency(notify.UrgencyLow).
//		Send()
//
// A Notification is built once, owned by the send that carries it, and never
// mutated afterwards. There is no queueing, no retry, and no delivery
// confirmation; a send either reaches the OS mechanism or returns an error.
package notify
