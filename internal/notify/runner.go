package notify

import (
	"bytes"
	"errors"
	"os/exec"
)

// CommandRunner spawns an external interpreter and waits for it to exit.
// The macOS and Windows backends generate script text and hand it to a
// runner; injecting a fake runner lets tests assert on the exact script
// without launching anything.
type CommandRunner interface {
	// Run executes name with args, returning captured stderr. A non-nil
	// error with an *exec.ExitError means the process ran and failed; any
	// other error means it could not be started.
	Run(name string, args ...string) (stderr string, err error)
}

// execRunner is the production CommandRunner backed by os/exec
type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// runScript runs an interpreter through r and maps the outcome onto the
// package error kinds: exit failure becomes SendFailed carrying stderr,
// spawn failure becomes CommandExecution.
func runScript(r CommandRunner, backend, name string, args ...string) error {
	stderr, err := r.Run(name, args...)
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &SendFailedError{Backend: backend, Reason: stderr}
	}
	return &CommandExecutionError{Err: err}
}
