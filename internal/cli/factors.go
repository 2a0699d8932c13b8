package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/internal/i18n"
)

// NewFactorsCmd creates the factors command, which prints the emission
// factor table.
func NewFactorsCmd() *cobra.Command {
	var output, lang string

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Show the emission factors used by calculate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if output == "" {
				output = cfg.Output.DefaultFormat
			}
			tr, err := resolveTranslator(lang, cfg)
			if err != nil {
				return err
			}
			rows := emissions.NewCalculator().Factors().Rows()
			return renderFactors(cmd.OutOrStdout(), output, rows, tr)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format: table, json, ndjson (default from config)")
	cmd.Flags().StringVar(&lang, "lang", "", "language: en, pt (default from config)")
	return cmd
}

func renderFactors(w io.Writer, format string, rows []emissions.FactorRow, tr *i18n.Translator) error {
	switch format {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case outputFormatNDJSON:
		enc := json.NewEncoder(w)
		for _, r := range rows {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case outputFormatTable:
		renderFactorsTable(w, rows, tr)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderFactorsTable(w io.Writer, rows []emissions.FactorRow, tr *i18n.Translator) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 4, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{
		tr.Field(emissions.FieldSector), "Type", "Unit", "kg CO2e",
	})
	for _, r := range rows {
		t.AppendRow(table.Row{
			tr.Option(string(r.Sector)),
			tr.Option(r.Subtype),
			r.Unit,
			strconv.FormatFloat(r.KgCO2e, 'f', -1, 64),
		})
	}
	t.Render()
}
