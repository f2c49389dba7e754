package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/plexsphere/samplerun/internal/metrics"
	"github.com/plexsphere/samplerun/internal/sampling"
)

func runSample(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("samplerun: %w", err)
	}

	logger := setupLogger(cfg.LogLevel, cmd.ErrOrStderr())

	runner := sampling.NewRunner(*cfg, logger)
	runner.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	inv, err := runner.Plan()
	if err != nil {
		return fmt.Errorf("samplerun: %w", err)
	}

	res, runErr := runner.Run(cmd.Context(), inv)

	if cfg.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(metrics.RunInfo{
			Host:      inv.Host,
			Sampler:   cfg.Sampler,
			Interval:  cfg.Interval,
			Duration:  cfg.Duration,
			ExitCode:  ExitCode(runErr),
			Elapsed:   res.Duration,
			StartedAt: inv.StartedAt,
		})
		if err := rec.WriteFile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write run metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	return runErr
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
