package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
)

// loadFileConfig reads the config file alone, without environment or
// --config overrides, so that set never persists transient values.
func loadFileConfig() (*config.Config, error) {
	cfg := config.Default()
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a configuration key",
		Long: `Prints the value of one dotted key, such as output.language, after the
config file, --config and environment overrides have been applied.`,
		Example: `  carboncalc config get output.language
  carboncalc config get report.formats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration key in the config file",
		Long: `Sets one dotted key in the config file. List values such as
report.formats are comma separated. The file is left untouched when the new
value is invalid.`,
		Example: `  carboncalc config set output.language pt
  carboncalc config set report.formats pdf,txt
  carboncalc config set output.dark_mode true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFileConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			logger.Debug().Str("key", args[0]).Str("value", args[1]).Msg("configuration updated")
			cmd.Printf("Set %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := config.GetGlobalConfig().List()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Key", "Value"})
			for _, k := range config.Keys() {
				t.AppendRow(table.Row{k, values[k]})
			}
			t.Render()
			return nil
		},
	}
}
