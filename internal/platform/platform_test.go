package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlatformString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		platform Platform
		expected string
	}{
		"Linux":   {platform: Linux, expected: "Linux"},
		"WSL":     {platform: WSL, expected: "WSL (Windows Subsystem for Linux)"},
		"MacOS":   {platform: MacOS, expected: "macOS"},
		"Windows": {platform: Windows, expected: "Windows"},
		"Unknown": {platform: Unknown, expected: "Unknown"},
		"out of range": {
			platform: Platform(99),
			expected: "Unknown",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.platform.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestIsWindowsLike(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		platform Platform
		expected bool
	}{
		"Windows is windows-like": {platform: Windows, expected: true},
		"WSL is windows-like":     {platform: WSL, expected: true},
		"Linux is not":            {platform: Linux, expected: false},
		"MacOS is not":            {platform: MacOS, expected: false},
		"Unknown is not":          {platform: Unknown, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.platform.IsWindowsLike(); got != tt.expected {
				t.Errorf("IsWindowsLike() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestIsUnixLike(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		platform Platform
		expected bool
	}{
		"Linux is unix-like": {platform: Linux, expected: true},
		"MacOS is unix-like": {platform: MacOS, expected: true},
		"Windows is not":     {platform: Windows, expected: false},
		"WSL is not":         {platform: WSL, expected: false},
		"Unknown is not":     {platform: Unknown, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.platform.IsUnixLike(); got != tt.expected {
				t.Errorf("IsUnixLike() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input    string
		expected Platform
		ok       bool
	}{
		"linux":      {input: "linux", expected: Linux, ok: true},
		"windows":    {input: "windows", expected: Windows, ok: true},
		"macos":      {input: "macos", expected: MacOS, ok: true},
		"upper case": {input: "MACOS", expected: MacOS, ok: true},
		"wsl is not selectable": {
			input:    "wsl",
			expected: Unknown,
			ok:       false,
		},
		"empty":   {input: "", expected: Unknown, ok: false},
		"garbage": {input: "freebsd", expected: Unknown, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("Parse(%q) = (%v, %v), expected (%v, %v)",
					tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestDetectReturnsDefinedPlatform(t *testing.T) {
	t.Parallel()
	p := Detect()

	switch p {
	case Linux, WSL, MacOS, Windows, Unknown:
		// one of the five defined values
	default:
		t.Errorf("Detect() returned undefined platform %d", p)
	}
}

func TestIsWSL(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	writeVersion := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write version file: %v", err)
		}
		return path
	}

	tests := map[string]struct {
		content  string
		expected bool
	}{
		"WSL2 kernel": {
			content:  "Linux version 5.15.167.4-microsoft-standard-WSL2 (root@...) ...",
			expected: true,
		},
		"uppercase Microsoft": {
			content:  "Linux version 4.4.0-19041-Microsoft (Microsoft@Microsoft.com)",
			expected: true,
		},
		"plain wsl marker": {
			content:  "Linux version 6.6.0 something-wsl",
			expected: true,
		},
		"native kernel": {
			content:  "Linux version 6.8.0-47-generic (buildd@lcy02) (gcc ...)",
			expected: false,
		},
		"empty file": {
			content:  "",
			expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeVersion(t, name, tt.content)
			if got := isWSL(path); got != tt.expected {
				t.Errorf("isWSL(%q) = %v, expected %v", tt.content, got, tt.expected)
			}
		})
	}

	t.Run("missing file degrades to false", func(t *testing.T) {
		if isWSL(filepath.Join(tmpDir, "does-not-exist")) {
			t.Error("expected false for unreadable file")
		}
	})
}
