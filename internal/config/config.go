// Package config loads the toastr configuration hierarchy.
//
// Priority: Environment variables > Local config > Global config > Defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LocalConfigName is the per-directory config file looked up when no
// explicit --config path is given.
const LocalConfigName = ".toastr.json"

// Configuration holds the persistent defaults for toastr. Every field
// maps to a CLI flag; flags passed on the command line win over all of
// these.
type Configuration struct {
	Title    string `koanf:"title" validate:"required"`
	Timeout  int    `koanf:"timeout" validate:"min=0,max=2147483647"`
	Icon     string `koanf:"icon"`
	Urgency  string `koanf:"urgency" validate:"oneof=low normal critical"`
	Subtitle string `koanf:"subtitle"`
	Sound    string `koanf:"sound"`
	Backend  string `koanf:"backend" validate:"omitempty,oneof=linux windows macos"`
	Quiet    bool   `koanf:"quiet"`
}

// Load loads configuration from global, local, and environment sources.
// localConfigPath overrides the .toastr.json lookup in the working
// directory; pass "" for the default behavior. Missing files are not an
// error, unreadable or invalid ones are.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	if globalPath := globalConfigPath(); globalPath != "" && fileExists(globalPath) {
		if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	// Load local config if it exists
	if localConfigPath == "" {
		localConfigPath = LocalConfigName
	}
	if fileExists(localConfigPath) {
		if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("TOASTR_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// globalConfigPath returns ~/.config/toastr/config.json, honoring
// XDG_CONFIG_HOME when set. Returns "" when no home can be resolved.
func globalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "toastr", "config.json")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "toastr", "config.json")
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// envTransform converts environment variable names to config keys
// Example: TOASTR_TIMEOUT -> timeout
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "TOASTR_"))
}
