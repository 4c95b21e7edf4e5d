package errors

import (
	"fmt"

	"github.com/schoolboyqueue/toastr/internal/notify"
)

// MissingMessage is returned when the required --message flag is absent
func MissingMessage() *CLIError {
	return NewArgumentErrorWithUsage(
		"a notification message is required",
		`toastr --message "text" [flags]`,
		"pass the body text with --message or -m",
	)
}

// InvalidUrgency is returned for an urgency value outside low/normal/critical
func InvalidUrgency(value string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid urgency %q", value),
		"use one of: low, normal, critical",
	)
}

// InvalidBackend is returned for a backend value outside linux/windows/macos
func InvalidBackend(value string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid backend %q", value),
		"use one of: linux, windows, macos",
	)
}

// ConfigLoadFailed is returned when the config hierarchy cannot be loaded
func ConfigLoadFailed(err error) *CLIError {
	return Wrap(err, Configuration,
		"check the JSON syntax of .toastr.json and ~/.config/toastr/config.json",
		"run with defaults by removing the broken file",
	)
}

// FromSendError classifies a notification send failure for the CLI,
// attaching remediation appropriate to the error kind.
func FromSendError(err error) *CLIError {
	if err == nil {
		return nil
	}

	switch {
	case notify.IsUnsupportedPlatform(err):
		return &CLIError{
			Category: Prerequisite,
			Message:  err.Error(),
			Remediation: []string{
				"force a backend with --backend linux|windows|macos",
				"the Linux and macOS backends only work on their own hosts; the Windows backend also works under WSL",
			},
		}
	case notify.IsCommandExecution(err):
		return &CLIError{
			Category: Prerequisite,
			Message:  err.Error(),
			Remediation: []string{
				"the platform's script interpreter (osascript or powershell.exe) must be on PATH",
			},
		}
	case notify.IsSendFailed(err):
		return &CLIError{Category: Runtime, Message: err.Error()}
	default:
		return Wrap(err, Runtime)
	}
}
