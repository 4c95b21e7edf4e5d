package notify

import "errors"

// RecordingRunner is a CommandRunner that records every invocation and
// returns configured results, so tests can assert on generated script text
// without spawning an interpreter.
type RecordingRunner struct {
	// Calls holds one slice per invocation: the command name followed by args
	Calls [][]string

	// Stderr and Err are returned from every Run call
	Stderr string
	Err    error
}

// NewRecordingRunner returns a runner that records calls and succeeds
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{}
}

// WithError configures the runner to fail every Run with err
func (r *RecordingRunner) WithError(err error) *RecordingRunner {
	r.Err = err
	return r
}

// WithStderr configures the stderr text returned from every Run
func (r *RecordingRunner) WithStderr(stderr string) *RecordingRunner {
	r.Stderr = stderr
	return r
}

// Run records the invocation and returns the configured result
func (r *RecordingRunner) Run(name string, args ...string) (string, error) {
	call := append([]string{name}, args...)
	r.Calls = append(r.Calls, call)
	return r.Stderr, r.Err
}

// LastScript returns the final argument of the most recent call, which for
// both script backends is the generated script text.
func (r *RecordingRunner) LastScript() string {
	if len(r.Calls) == 0 {
		return ""
	}
	last := r.Calls[len(r.Calls)-1]
	if len(last) == 0 {
		return ""
	}
	return last[len(last)-1]
}

// ErrMockSpawn is a stand-in for a process that could not be started
var ErrMockSpawn = errors.New("mock spawn failure")
