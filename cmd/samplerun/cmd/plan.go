package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/plexsphere/samplerun/internal/sampling"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the sampler command line without running it",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(configCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("samplerun plan: %w", err)
	}
	runner := sampling.NewRunner(*cfg, setupLogger(cfg.LogLevel, io.Discard))
	inv, err := runner.Plan()
	if err != nil {
		return fmt.Errorf("samplerun plan: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), inv.CommandLine())
	return nil
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("samplerun config: %w", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("samplerun config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
