// Package term detects terminal capabilities for output decisions:
// whether to run the spinner, emit color, or stay silent.
package term

import (
	"os"

	"golang.org/x/term"
)

// Capabilities describes what the attached terminal supports.
type Capabilities struct {
	IsTTY         bool
	SupportsColor bool
	Width         int
}

// Detect inspects stdout and the environment and returns the terminal
// capabilities. Honors the NO_COLOR convention.
func Detect() Capabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	return Capabilities{
		IsTTY:         isTTY,
		SupportsColor: isTTY && !noColor,
		Width:         width,
	}
}

// IsCI checks for common CI environment variables.
// Returns true if any CI-related environment variable is set.
func IsCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"TF_BUILD",            // Azure DevOps
		"BITBUCKET_PIPELINES", // Bitbucket
		"CODEBUILD_BUILD_ID",  // AWS CodeBuild
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// Interactive checks if the session is interactive (has TTY).
// Checks stdout rather than stdin because CLI tools often have stdin
// piped while stdout remains connected to the terminal.
func Interactive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
