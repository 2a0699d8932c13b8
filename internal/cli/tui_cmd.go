package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/logging"
	"github.com/rshade/carboncalc/internal/report"
	"github.com/rshade/carboncalc/internal/tui"
)

// errNotATerminal is returned when the interactive UI cannot start.
var errNotATerminal = errors.New("tui requires an interactive terminal; use 'carboncalc calculate' instead")

// NewTUICmd creates the tui command, which runs the interactive calculator.
func NewTUICmd() *cobra.Command {
	var (
		dark bool
		lang string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive calculator",
		Long: `Runs the full-screen calculator with Home, About and Calculator pages.

Keys: tab/shift+tab switch pages, d toggles dark mode, l toggles the
language, q quits. On the calculator, ↑/↓ move between fields, ←/→ change
a selection, Enter calculates and p downloads the PDF report.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			tr, err := resolveTranslator(lang, cfg)
			if err != nil {
				return err
			}
			formats, err := report.ParseFormats(cfg.Report.Formats)
			if err != nil {
				return err
			}
			if !tui.IsTTY() {
				return errNotATerminal
			}
			if !cmd.Flags().Changed("dark") {
				dark = cfg.Output.DarkMode
			}

			// The screen belongs to the UI, so logs go to a file.
			logResult := tuiLogger(cfg.Logging)
			defer func() { _ = logResult.Close() }()
			ctx := logResult.Logger.WithContext(cmd.Context())

			app := tui.NewAppModel(ctx, tui.AppConfig{
				DarkMode: dark,
				Calculator: tui.CalculatorConfig{
					Translator:    tr,
					ReportDir:     cfg.Report.Dir,
					ReportFormats: formats,
				},
			})

			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "start in dark mode (default from config)")
	cmd.Flags().StringVar(&lang, "lang", "", "language: en, pt (default from config)")
	return cmd
}

// tuiLogger opens the file logger for the interactive session. When no
// file can be opened, logging is disabled rather than drawn over the UI.
func tuiLogger(cfg config.LoggingConfig) logging.LogPathResult {
	cfg.Output = logging.OutputFile
	result := logging.NewLoggerWithPath(cfg.ToLoggingConfig())
	if !result.UsingFile {
		result.Logger = zerolog.Nop()
	}
	return result
}
