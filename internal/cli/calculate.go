package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/internal/i18n"
	"github.com/rshade/carboncalc/internal/logging"
	"github.com/rshade/carboncalc/internal/report"
	"github.com/rshade/carboncalc/internal/tui"
)

const (
	outputFormatTable  = config.FormatTable
	outputFormatJSON   = config.FormatJSON
	outputFormatNDJSON = config.FormatNDJSON

	chartWidth = 80
)

// CalculateParams holds the parameters for the calculate command.
// Exported for testing.
type CalculateParams struct {
	Input         emissions.CalculationInput
	InputFile     string
	Output        string
	Lang          string
	ReportDir     string
	ReportFormats []string
	Chart         bool
}

// inputFlags maps each input field to its flag name and help text.
//
//nolint:gochecknoglobals // Static flag table.
var inputFlags = []struct {
	field string
	flag  string
	usage string
}{
	{emissions.FieldSector, "sector", "sector: transportation, energy, industrial, waste"},
	{emissions.FieldVehicleType, "vehicle-type", "vehicle: car, airplane, bus, train, bicycle"},
	{emissions.FieldFuelType, "fuel-type", "car fuel: gasoline, diesel, electric"},
	{emissions.FieldFuelConsumption, "fuel-consumption", "fuel used per trip in litres"},
	{emissions.FieldDistance, "distance", "distance per trip in km"},
	{emissions.FieldTrips, "trips", "number of trips"},
	{emissions.FieldPassengers, "passengers", "number of passengers"},
	{emissions.FieldElectricitySource, "electricity-source", "energy source: coal, naturalGas, renewable"},
	{emissions.FieldEnergyAmount, "energy-amount", "energy consumed in kWh"},
	{emissions.FieldIndustryType, "industry-type", "industry: cement, steel"},
	{emissions.FieldIndustrialAmount, "industrial-amount", "production in tonnes"},
	{emissions.FieldWasteAmount, "waste-amount", "waste in kg"},
}

// NewCalculateCmd creates the calculate command.
func NewCalculateCmd() *cobra.Command {
	var params CalculateParams
	values := make(map[string]*string, len(inputFlags))

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate monthly emissions and suggested carbon credits",
		Long: `Calculates the CO2e emissions of one activity and the carbon credits needed
to offset them. One credit offsets 1000 kg CO2e; credits are sold whole.

Only the fields the chosen sector needs are read:
  transportation  --vehicle-type plus
                    bus/train/airplane: --distance --trips --passengers
                    car: --fuel-type --fuel-consumption --trips
                    bicycle: --fuel-consumption --trips
  energy          --electricity-source --energy-amount
  industrial      --industry-type --industrial-amount
  waste           --waste-amount

Field values may also come from a YAML or JSON file (--input); flags win.`,
		Example: `  carboncalc calculate --sector waste --waste-amount 5000
  carboncalc calculate --sector transportation --vehicle-type car \
    --fuel-type diesel --fuel-consumption 40 --trips 4 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range inputFlags {
				if cmd.Flags().Changed(f.flag) {
					params.Input.Set(f.field, *values[f.field])
				}
			}
			return executeCalculate(cmd, params)
		},
	}

	for _, f := range inputFlags {
		values[f.field] = cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().StringVar(&params.InputFile, "input", "", "YAML or JSON file with input fields")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format: table, json, ndjson (default from config)")
	cmd.Flags().StringVar(&params.Lang, "lang", "", "language: en, pt (default from config)")
	cmd.Flags().StringVar(&params.ReportDir, "report-dir", "", "write carbon-credit-report files into this directory")
	cmd.Flags().StringSliceVar(&params.ReportFormats, "report-format", nil, "report formats to write: pdf, txt")
	cmd.Flags().BoolVar(&params.Chart, "chart", false, "draw the emissions/credits chart (table output)")

	return cmd
}

// executeCalculate runs one calculation and renders it.
func executeCalculate(cmd *cobra.Command, params CalculateParams) error {
	cfg := config.GetGlobalConfig()
	ctx := cmd.Context()

	output := params.Output
	if output == "" {
		output = cfg.Output.DefaultFormat
	}
	if !isValidOutputFormat(output) {
		return fmt.Errorf("unsupported output format: %s", output)
	}

	tr, err := resolveTranslator(params.Lang, cfg)
	if err != nil {
		return err
	}

	in, err := resolveInput(params)
	if err != nil {
		return err
	}
	in = emissions.Relevant(in)

	result, err := emissions.Calculate(ctx, in)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Str("sector", in.Sector).
			Err(err).
			Msg("calculation rejected")
		return invalidInput(err)
	}
	if err = renderCalculation(cmd.OutOrStdout(), output, result, in, tr, params.Chart); err != nil {
		return err
	}

	if params.ReportDir == "" && len(params.ReportFormats) == 0 {
		return nil
	}
	return exportReport(cmd, result, in, tr, params, cfg)
}

// resolveTranslator picks --lang, falling back to the configured language.
// Unsupported languages are an error rather than a silent switch to English.
func resolveTranslator(lang string, cfg *config.Config) (*i18n.Translator, error) {
	if lang == "" {
		lang = cfg.Output.Language
	}
	if _, ok := i18n.ParseLang(lang); !ok {
		return nil, fmt.Errorf("unsupported language %q (want en or pt)", lang)
	}
	return i18n.New(lang), nil
}

func isValidOutputFormat(f string) bool {
	switch f {
	case outputFormatTable, outputFormatJSON, outputFormatNDJSON:
		return true
	default:
		return false
	}
}

// resolveInput merges the --input file under the flag values.
func resolveInput(params CalculateParams) (emissions.CalculationInput, error) {
	if params.InputFile == "" {
		return params.Input, nil
	}

	in, err := loadInputFile(params.InputFile)
	if err != nil {
		return emissions.CalculationInput{}, err
	}
	for _, f := range params.Input.Fields() {
		if f.Value != "" {
			in.Set(f.Name, f.Value)
		}
	}
	return in, nil
}

// loadInputFile reads a CalculationInput from YAML (JSON is valid YAML).
// Numbers in the file are accepted as well as strings.
func loadInputFile(path string) (emissions.CalculationInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return emissions.CalculationInput{}, fmt.Errorf("reading input file: %w", err)
	}

	var raw map[string]yaml.Node
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return emissions.CalculationInput{}, fmt.Errorf("parsing input file %s: %w", path, err)
	}

	var in emissions.CalculationInput
	for name, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return emissions.CalculationInput{}, fmt.Errorf("input field %q must be a scalar", name)
		}
		if !in.Set(name, node.Value) {
			return emissions.CalculationInput{}, fmt.Errorf("unknown input field %q", name)
		}
	}
	return in, nil
}

// calculationOutput is the JSON shape of a calculation.
type calculationOutput struct {
	Result        emissions.Result           `json:"result"`
	Input         emissions.CalculationInput `json:"input"`
	Equivalencies []equivalencyOutput        `json:"equivalencies,omitempty"`
	Notice        string                     `json:"notice,omitempty"`
}

type equivalencyOutput struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

func newCalculationOutput(
	result emissions.Result,
	in emissions.CalculationInput,
	tr *i18n.Translator,
) calculationOutput {
	out := calculationOutput{Result: result, Input: in}
	for _, e := range result.Equivalencies() {
		out.Equivalencies = append(out.Equivalencies, equivalencyOutput{Kind: e.Kind.String(), Value: e.Value})
	}
	if !result.EnoughForCredit() {
		out.Notice = tr.T(i18n.MsgNotEnough)
	}
	return out
}

func renderCalculation(
	w io.Writer,
	format string,
	result emissions.Result,
	in emissions.CalculationInput,
	tr *i18n.Translator,
	chart bool,
) error {
	switch format {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newCalculationOutput(result, in, tr))
	case outputFormatNDJSON:
		return json.NewEncoder(w).Encode(newCalculationOutput(result, in, tr))
	default:
		return renderCalculationTable(w, result, in, tr, chart)
	}
}

func renderCalculationTable(
	w io.Writer,
	result emissions.Result,
	in emissions.CalculationInput,
	tr *i18n.Translator,
	chart bool,
) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(tr.T(i18n.MsgResults))
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	t.AppendRow(table.Row{tr.Field(emissions.FieldSector), tr.Option(string(result.Sector))})
	t.AppendRow(table.Row{tr.T(i18n.MsgMonthlyEmissions), tr.Number(result.EmissionsKg(), 2) + " kg CO2"})
	t.AppendRow(table.Row{tr.T(i18n.MsgSuggestedCredits), tr.WholeNumber(result.WholeCredits())})
	t.AppendSeparator()
	for _, f := range in.Fields() {
		if f.Value == "" || f.Name == emissions.FieldSector {
			continue
		}
		t.AppendRow(table.Row{tr.Field(f.Name), tr.Option(f.Value)})
	}
	t.Render()

	theme := outputTheme(w)
	if !result.EnoughForCredit() {
		fmt.Fprintln(w, theme.Notice.Render(tr.T(i18n.MsgNotEnough)))
	}
	if eq := tui.RenderEquivalencies(result, tr, theme); eq != "" {
		fmt.Fprintln(w, eq)
	}
	if chart {
		fmt.Fprintln(w)
		fmt.Fprintln(w, tui.RenderChart(report.NewChart(result, tr), tr, theme, chartWidth))
	}
	return nil
}

// outputTheme styles text only when writing straight to a terminal.
func outputTheme(w io.Writer) tui.Theme {
	if f, ok := w.(*os.File); !ok || f != os.Stdout {
		return tui.Theme{}
	}
	if tui.DetectOutputMode(false, false, false) == tui.OutputModePlain {
		return tui.Theme{}
	}
	return tui.ThemeFor(config.GetGlobalConfig().Output.DarkMode)
}

func exportReport(
	cmd *cobra.Command,
	result emissions.Result,
	in emissions.CalculationInput,
	tr *i18n.Translator,
	params CalculateParams,
	cfg *config.Config,
) error {
	dir := params.ReportDir
	if dir == "" {
		dir = cfg.Report.Dir
	}
	names := params.ReportFormats
	if len(names) == 0 {
		names = cfg.Report.Formats
	}
	formats, err := report.ParseFormats(names)
	if err != nil {
		return err
	}

	rep := report.New(result, in, report.Options{Translator: tr})
	paths, err := rep.Export(cmd.Context(), dir, formats)
	if err != nil {
		return fmt.Errorf("exporting report: %w", err)
	}
	// Status goes to stderr so structured stdout stays parseable.
	cmd.PrintErrln(tr.T(i18n.MsgReportSaved, strings.Join(paths, ", ")))
	return nil
}
