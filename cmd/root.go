// Package cmd provides the CLI for the countdown application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/adapters/notification"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// startupPadding is added to the requested duration so the first frame
// shows the value the user asked for rather than one second less.
const startupPadding = time.Second

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "countdown <duration>",
	Short: "Countdown - a full-screen terminal countdown timer",
	Long: `Countdown shows the time remaining, centered in the terminal, and rings
the terminal bell when it runs out.

The duration is a combination of days, hours, minutes and seconds:
"1d", "1h", "1m", "1s". Examples: "3d4h", "1m30s", "10d3h21m10s".

Press space to pause or resume, Esc or Ctrl-C to quit.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCountdown,
}

// Main runs the root command and returns the process exit code.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits the process.
func Execute() {
	os.Exit(Main())
}

func init() {
	defaults := config.DefaultConfig()

	rootCmd.Flags().BoolP("no-bell", "n", defaults.NoBell, "Do not ring the terminal bell when the countdown ends")
	rootCmd.Flags().Bool("notify", defaults.Notify, "Also send a desktop notification when the countdown ends")
	rootCmd.Flags().String("banner", defaults.Banner, "Text style: plain, block or figlet")
	rootCmd.Flags().String("paused-color", defaults.PausedColor, "Color of the countdown while paused (ANSI index or #RRGGBB)")
	rootCmd.Flags().Duration("frame", defaults.FrameInterval, "Time between redraws")
	rootCmd.Flags().String("log-file", defaults.LogFile, "Write debug logs to this file")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("countdown {{.Version}}\n")
}

// runCountdown parses the duration, runs the countdown and rings the alert
// once the terminal has been restored.
func runCountdown(cmd *cobra.Command, args []string) error {
	d, err := domain.ParseDuration(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := setupSignalHandler()

	finished, err := runSession(ctx, cfg, d+startupPadding, logger)
	if err != nil {
		logger.Error("countdown failed", "error", err)
		return err
	}
	if !finished {
		return nil
	}

	notifier := notification.New(cmd.OutOrStdout(), !cfg.NoBell, cfg.Notify, logger)
	return notifier.Complete(domain.FormatDuration(d))
}

// setupSignalHandler sets up a context that cancels on termination signals.
// Raw mode turns Ctrl-C into a key press, so SIGINT only arrives from kill.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
