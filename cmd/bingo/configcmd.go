package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/goal-bingo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.bingo/config.yaml or pass it with --config to change the defaults.

Example:
  bingo config > ~/.bingo/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
