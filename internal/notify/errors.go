package notify

import (
	"errors"
	"fmt"
)

// SendFailedError reports that a backend's delivery mechanism ran but
// returned non-success. Reason carries the mechanism's own explanation,
// typically captured stderr.
type SendFailedError struct {
	Backend string
	Reason  string
}

func (e *SendFailedError) Error() string {
	return fmt.Sprintf("%s notification failed: %s", e.Backend, e.Reason)
}

// UnsupportedPlatformError reports that no usable backend exists for the
// resolved platform.
type UnsupportedPlatformError struct {
	Detail string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("Unsupported platform: %s", e.Detail)
}

// CommandExecutionError reports that the external interpreter process could
// not be started at all, as opposed to running and failing.
type CommandExecutionError struct {
	Err error
}

func (e *CommandExecutionError) Error() string {
	return fmt.Sprintf("Command execution error: %v", e.Err)
}

func (e *CommandExecutionError) Unwrap() error {
	return e.Err
}

// IsUnsupportedPlatform reports whether err is an UnsupportedPlatformError
// anywhere in its chain.
func IsUnsupportedPlatform(err error) bool {
	var target *UnsupportedPlatformError
	return errors.As(err, &target)
}

// IsSendFailed reports whether err is a SendFailedError anywhere in its chain.
func IsSendFailed(err error) bool {
	var target *SendFailedError
	return errors.As(err, &target)
}

// IsCommandExecution reports whether err is a CommandExecutionError anywhere
// in its chain.
func IsCommandExecution(err error) bool {
	var target *CommandExecutionError
	return errors.As(err, &target)
}
