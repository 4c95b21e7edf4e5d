package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders an error for the terminal, with colors when the
// output supports them. Plain errors are rendered under a generic
// Runtime Error heading. Returns "" for nil.
func FormatError(e error) string {
	if e == nil {
		return ""
	}
	err := AsCLIError(e)
	if err == nil {
		err = &CLIError{Category: Runtime, Message: e.Error()}
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", red(err.Category.String()), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", dim("Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", yellow("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  • %s\n", step)
		}
	}

	return b.String()
}

// FormatErrorPlain renders an error without any ANSI escapes, for
// non-terminal output. Returns "" for nil.
func FormatErrorPlain(e error) string {
	if e == nil {
		return ""
	}
	err := AsCLIError(e)
	if err == nil {
		err = &CLIError{Category: Runtime, Message: e.Error()}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", err.Category.String(), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", err.Usage)
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}

// FormatSimpleError formats a plain error under a category heading.
// Returns "" for nil.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}

// PrintError writes the formatted error to stderr. No-op for nil.
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w. No-op for nil.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
