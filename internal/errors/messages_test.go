package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/schoolboyqueue/toastr/internal/notify"
)

func TestMissingMessage(t *testing.T) {
	err := MissingMessage()

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Usage, "--message") {
		t.Errorf("Expected usage to mention --message, got %q", err.Usage)
	}
}

func TestInvalidUrgency(t *testing.T) {
	err := InvalidUrgency("loud")

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, `"loud"`) {
		t.Errorf("Expected bad value in message, got %q", err.Message)
	}
	if len(err.Remediation) == 0 || !strings.Contains(err.Remediation[0], "low, normal, critical") {
		t.Errorf("Expected valid values in remediation, got %v", err.Remediation)
	}
}

func TestInvalidBackend(t *testing.T) {
	err := InvalidBackend("beos")

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, `"beos"`) {
		t.Errorf("Expected bad value in message, got %q", err.Message)
	}
	if len(err.Remediation) == 0 || !strings.Contains(err.Remediation[0], "linux, windows, macos") {
		t.Errorf("Expected valid values in remediation, got %v", err.Remediation)
	}
}

func TestConfigLoadFailed(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if ConfigLoadFailed(nil) != nil {
			t.Error("Expected nil for nil input")
		}
	})

	t.Run("wraps with configuration category", func(t *testing.T) {
		t.Parallel()
		err := ConfigLoadFailed(errors.New("unexpected end of JSON input"))

		if err.Category != Configuration {
			t.Errorf("Expected Configuration category, got %v", err.Category)
		}
		if !strings.Contains(err.Message, "unexpected end of JSON input") {
			t.Errorf("Expected cause in message, got %q", err.Message)
		}
	})
}

func TestFromSendError(t *testing.T) {
	tests := map[string]struct {
		input           error
		expectedCat     ErrorCategory
		remediationHint string
	}{
		"unsupported platform": {
			input:           &notify.UnsupportedPlatformError{Detail: "FreeBSD"},
			expectedCat:     Prerequisite,
			remediationHint: "--backend",
		},
		"command execution": {
			input:           &notify.CommandExecutionError{Err: errors.New("exec: not found")},
			expectedCat:     Prerequisite,
			remediationHint: "PATH",
		},
		"send failed": {
			input:       &notify.SendFailedError{Backend: "Linux (D-Bus)", Reason: "no session bus"},
			expectedCat: Runtime,
		},
		"unclassified": {
			input:       errors.New("something odd"),
			expectedCat: Runtime,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := FromSendError(test.input)

			if result == nil {
				t.Fatal("Expected non-nil CLIError")
			}
			if result.Category != test.expectedCat {
				t.Errorf("Expected %v category, got %v", test.expectedCat, result.Category)
			}
			if !strings.Contains(result.Message, test.input.Error()) {
				t.Errorf("Expected cause in message, got %q", result.Message)
			}
			if test.remediationHint != "" {
				found := false
				for _, step := range result.Remediation {
					if strings.Contains(step, test.remediationHint) {
						found = true
					}
				}
				if !found {
					t.Errorf("Expected remediation mentioning %q, got %v", test.remediationHint, result.Remediation)
				}
			}
		})
	}

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if FromSendError(nil) != nil {
			t.Error("Expected nil for nil input")
		}
	})
}
