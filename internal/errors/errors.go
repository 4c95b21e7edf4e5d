// Package errors provides categorized CLI errors with remediation steps and
// terminal-aware formatting for the toastr command line.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies a CLI failure for the error heading
type ErrorCategory int

const (
	// Argument covers invalid or missing command-line input
	Argument ErrorCategory = iota
	// Configuration covers unreadable or invalid config files
	Configuration
	// Prerequisite covers a missing backend or platform capability
	Prerequisite
	// Runtime covers failures while actually delivering a notification
	Runtime
)

// String returns the heading text for the category
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with optional usage and remediation hints
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
}

func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates an Argument-category error
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument-category error with a usage line
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration-category error
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite-category error
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime-category error
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap converts any error into a CLIError with the given category.
// Returns nil for a nil error.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation}
}

/// WrapWithMessage wraps err with an outer message, "outer: inner" style.
// Returns nil for a nil error.
func WrapWithMessage(err error, category ErrorCategory, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf("%s: %s", message, err.Error()),
	}
}

// IsCLIError reports whether err is a *CLIError
func IsCLIError(err error) bool {
	var target *CLIError
	return errors.As(err, &target)
}

// AsCLIError returns err as a *CLIError, or nil if it is not one
func AsCLIError(err error) *CLIError {
	var target *CLIError
	if errors.As(err, &target) {
		return target
	}
	return nil
}
