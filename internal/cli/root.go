package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carboncalc CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup
// for testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "carboncalc",
		Short:         "Carbon credit calculator",
		Long:          "carboncalc: estimate monthly CO2e emissions and the carbon credits needed to offset them",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, lookupEnv); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file whose sections override the user configuration")
	cmd.AddCommand(NewCalculateCmd(), NewFactorsCmd(), NewTUICmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Emissions of two bus trips of 100 km with 4 passengers
  carboncalc calculate --sector transportation --vehicle-type bus \
    --distance 100 --trips 2 --passengers 4

  # Same, as JSON
  carboncalc calculate --input activity.yaml --output json

  # Export the PDF and text reports in Portuguese
  carboncalc calculate --sector energy --electricity-source coal \
    --energy-amount 1000 --lang pt --report-format pdf,txt --report-dir ./reports

  # Show the emission factors
  carboncalc factors

  # Interactive calculator
  carboncalc tui

  # Initialize configuration
  carboncalc config init`

// loadConfig builds the effective configuration: user file, then the
// --config overlay, then environment overrides.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) error {
	cfg := config.Default()
	if err := cfg.Load(); err != nil {
		cmd.PrintErrf("Warning: ignoring configuration file: %v\n", err)
		cfg = config.Default()
	}

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
			return fmt.Errorf("loading --config: %w", err)
		}
	}

	cfg.ApplyEnv(lookupEnv)
	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
