// Package cmd implements the samplerun CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/plexsphere/samplerun/internal/sampling"
)

var (
	cfgFile     string
	logLevel    string
	metricsFile string
)

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("samplerun version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

var rootCmd = &cobra.Command{
	Use:   "samplerun",
	Short: "samplerun launches the Yokogawa metrics sampler",
	Long: "samplerun runs sample_metrics.py against the samplers.yokogawa sampler,\n" +
		"sampling every 2 seconds for 60 seconds into a CSV file named after the\n" +
		"host and the start time. The exit status of the sampler is passed through.",
	Args:          cobra.NoArgs,
	RunE:          runSample,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error; overrides config)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write run metrics in Prometheus textfile format (overrides config)")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("samplerun version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	report(rootCmd.ErrOrStderr(), err)
	return ExitCode(err)
}

// ExitCode maps a command error to a process exit code. The sampler's own
// exit status is passed through unchanged.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *sampling.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var launchErr *sampling.LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Code()
	}
	return 1
}

// report prints errors that originate in samplerun itself. A propagated
// exit status prints nothing and launch failures are already logged.
func report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var exitErr *sampling.ExitError
	var launchErr *sampling.LaunchError
	if errors.As(err, &exitErr) || errors.As(err, &launchErr) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// loadConfig reads the config file, if any, and applies CLI flag overrides.
func loadConfig() (*sampling.Config, error) {
	cfg, err := sampling.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

