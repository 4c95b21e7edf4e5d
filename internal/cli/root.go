// Package cli provides the Cobra-based command line interface for
// toastr. The root command sends a notification; version is the only
// subcommand.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/toastr/internal/config"
	"github.com/schoolboyqueue/toastr/internal/errors"
	"github.com/schoolboyqueue/toastr/internal/notify"
	"github.com/schoolboyqueue/toastr/internal/platform"
	"github.com/schoolboyqueue/toastr/internal/term"
)

var rootCmd = &cobra.Command{
	Use:   "toastr",
	Short: "Send desktop toast notifications",
	Long: `toastr sends desktop notifications on Linux, macOS, Windows, and WSL.

The backend is picked automatically from the running platform: D-Bus on
Linux, osascript on macOS, and a PowerShell balloon tip on Windows and
WSL. Use --backend to force one.`,
	Example: `  # Minimal notification
  toastr --message "Build finished"

  # Full control
  toastr -t "Deploy" -m "v2.1 is live" -u critical -T 10000

  # Force the Windows backend from inside WSL
  toastr -m "Hello from WSL" --backend windows`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSend,
}

func init() {
	registerSendFlags(rootCmd)
}

func registerSendFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("title", "t", "Notification", "Notification title")
	flags.StringP("message", "m", "", "Notification body text (required)")
	flags.IntP("timeout", "T", 5000, "Display duration in milliseconds, 0 = never expire")
	flags.StringP("icon", "i", "dialog-information", "Icon name or path (Linux only)")
	flags.StringP("urgency", "u", "normal", "Urgency level: low, normal, critical (Linux only)")
	flags.StringP("subtitle", "s", "", "Subtitle text (macOS only)")
	flags.String("sound", "default", "Sound name (macOS only)")
	flags.String("backend", "", "Force a backend: linux, windows, macos")
	flags.StringP("config", "c", "", "Path to a config file (default .toastr.json)")
	flags.BoolP("quiet", "q", false, "Suppress diagnostic and success output")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runSend(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.ConfigLoadFailed(err)
	}

	builder, quiet, err := assemble(cmd, cfg)
	if err != nil {
		return err
	}

	caps := term.Detect()
	if quiet {
		builder.DiagnosticWriter(io.Discard)
	}

	var spin *spinner.Spinner
	if caps.IsTTY && !term.IsCI() && !quiet {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Writer = os.Stderr
		spin.Suffix = " Sending notification..."
		spin.Start()
	}

	sendErr := builder.Send()

	if spin != nil {
		spin.Stop()
	}

	if sendErr != nil {
		return errors.FromSendError(sendErr)
	}

	if !quiet {
		check := "✓"
		if caps.SupportsColor {
			check = color.New(color.FgGreen).Sprint("✓")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Toast notification sent successfully\n", check)
	}
	return nil
}

// assemble merges config values with command line flags and returns a
// ready builder. Flags that were explicitly set win over config values.
func assemble(cmd *cobra.Command, cfg *config.Configuration) (*notify.Builder, bool, error) {
	flags := cmd.Flags()

	message, _ := flags.GetString("message")
	if message == "" {
		return nil, false, errors.MissingMessage()
	}

	title := cfg.Title
	if flags.Changed("title") {
		title, _ = flags.GetString("title")
	}

	timeout := cfg.Timeout
	if flags.Changed("timeout") {
		timeout, _ = flags.GetInt("timeout")
	}
	if timeout < 0 {
		return nil, false, errors.NewArgumentError(
			fmt.Sprintf("invalid timeout %d", timeout),
			"the timeout is in milliseconds and cannot be negative",
		)
	}

	icon := cfg.Icon
	if flags.Changed("icon") {
		icon, _ = flags.GetString("icon")
	}

	urgencyName := cfg.Urgency
	if flags.Changed("urgency") {
		urgencyName, _ = flags.GetString("urgency")
	}
	urgency, ok := notify.ParseUrgency(urgencyName)
	if !ok {
		return nil, false, errors.InvalidUrgency(urgencyName)
	}

	subtitle := cfg.Subtitle
	if flags.Changed("subtitle") {
		subtitle, _ = flags.GetString("subtitle")
	}

	sound := cfg.Sound
	if flags.Changed("sound") {
		sound, _ = flags.GetString("sound")
	}

	backendName := cfg.Backend
	if flags.Changed("backend") {
		backendName, _ = flags.GetString("backend")
	}

	quiet, _ := flags.GetBool("quiet")
	if !flags.Changed("quiet") {
		quiet = cfg.Quiet
	}

	builder := notify.NewBuilder().
		Title(title).
		Message(message).
		Timeout(uint32(timeout)).
		Icon(icon).
		Urgency(urgency).
		Subtitle(subtitle).
		Sound(sound)

	if backendName != "" {
		backend, ok := platform.Parse(backendName)
		if !ok {
			return nil, false, errors.InvalidBackend(backendName)
		}
		builder.Backend(backend)
	}

	return builder, quiet, nil
}
