package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xvierd/countdown-cli/internal/adapters/banner"
	"github.com/xvierd/countdown-cli/internal/adapters/terminal"
	"github.com/xvierd/countdown-cli/internal/adapters/tui"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// runSession takes over the terminal and runs a countdown of total length.
// The terminal is restored before returning, including when the loop panics.
func runSession(ctx context.Context, cfg *config.Config, total time.Duration, logger *slog.Logger) (bool, error) {
	session, err := terminal.Open(os.Stdin, os.Stdout, cfg.PausedColor)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("failed to restore terminal", "error", err)
		}
	}()

	countdown := domain.NewCountdown(total, time.Now())

	runner := tui.NewRunner(countdown, session.Screen(), session.Keyboard())
	runner.SetLogger(logger)
	runner.SetFrameInterval(cfg.FrameInterval)
	runner.SetBanner(newBanner(cfg.Banner, logger))

	return runner.Run(ctx)
}

// newBanner returns the banner for kind, or nil for plain text. A missing
// figlet binary degrades to plain text.
func newBanner(kind string, logger *slog.Logger) ports.Banner {
	switch kind {
	case config.BannerBlock:
		return banner.NewBlock()
	case config.BannerFiglet:
		f, err := banner.NewFiglet()
		if err != nil {
			logger.Warn("figlet unavailable, using plain text", "error", err)
			return nil
		}
		return f
	default:
		return nil
	}
}

// newLogger returns a debug logger writing to path, or a discarding logger
// when path is empty. The terminal belongs to the countdown while it runs,
// so logs never go to stdout or stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
