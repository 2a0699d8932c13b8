package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/tui"
)

// errConfigExists is returned by config init when the file exists and the
// user did not agree to replace it.
var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// isInteractive reports whether config init may prompt. Tests replace it.
//
//nolint:gochecknoglobals // Test seam.
var isInteractive = tui.IsTTY

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.carboncalc/config.yaml (or $CARBONCALC_HOME/config.yaml) with
default values. An existing file is only replaced with --force or after
confirming the prompt in an interactive terminal.`,
		Example: `  # Create configuration
  carboncalc config init

  # Create configuration, overwriting existing
  carboncalc config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	cfg := config.Default()
	path := cfg.ConfigPath()

	if !force {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if !isInteractive() {
				return errConfigExists
			}
			if !ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path).Accepted {
				return errConfigExists
			}
		case !os.IsNotExist(err):
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	return nil
}
