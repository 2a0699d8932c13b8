package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/cli"
	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/emissions"
)

type calculationJSON struct {
	Result struct {
		Sector       string  `json:"sector"`
		EmissionsKg  float64 `json:"emissions_kg"`
		Credits      float64 `json:"credits"`
		WholeCredits int64   `json:"whole_credits"`
	} `json:"result"`
	Input         emissions.CalculationInput `json:"input"`
	Equivalencies []struct {
		Kind  string  `json:"kind"`
		Value float64 `json:"value"`
	} `json:"equivalencies"`
	Notice string `json:"notice"`
}

func TestCalculate_Table(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "waste below one credit",
			args: []string{"--sector", "waste", "--waste-amount", "5000"},
			want: []string{
				"Waste", "500.00 kg CO2", "Waste Amount (kg)", "5000",
				"There was not enough emission to buy 1 carbon credit.",
			},
		},
		{
			name:    "steel",
			args:    []string{"--sector", "industrial", "--industry-type", "steel", "--industrial-amount", "10000"},
			want:    []string{"18,000.00 kg CO2", "Steel", "Production Amount (tonnes)"},
			notWant: []string{"There was not enough emission"},
		},
		{
			name: "portuguese",
			args: []string{
				"--sector", "energy", "--electricity-source", "naturalGas",
				"--energy-amount", "10000", "--lang", "pt",
			},
			want: []string{"Emissões Mensais", "4.500,00 kg CO2", "Gás Natural", "Energia"},
		},
		{
			name: "chart",
			args: []string{"--sector", "waste", "--waste-amount", "20000", "--chart"},
			want: []string{"Emissions and Credits Overview", "█"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			stdout, _, err := runCLI(t, append([]string{"calculate"}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, stdout, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, stdout, w)
			}
		})
	}
}

func TestCalculate_JSON(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := runCLI(t, "calculate", "--output", "json",
		"--sector", "energy", "--electricity-source", "coal", "--energy-amount", "1000",
		"--vehicle-type", "bus")
	require.NoError(t, err)

	var out calculationJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "energy", out.Result.Sector)
	assert.InDelta(t, 937.0, out.Result.EmissionsKg, 1e-9)
	assert.InDelta(t, 0.937, out.Result.Credits, 1e-9)
	assert.Equal(t, int64(0), out.Result.WholeCredits)
	assert.Equal(t, "There was not enough emission to buy 1 carbon credit.", out.Notice)
	assert.Empty(t, out.Input.VehicleType, "fields of other sectors are dropped")
	assert.Equal(t, "1000", out.Input.EnergyAmount)
	require.Len(t, out.Equivalencies, 3)
	assert.Equal(t, "MilesDriven", out.Equivalencies[0].Kind)
}

func TestCalculate_NDJSON(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := runCLI(t, "calculate", "--output", "ndjson",
		"--sector", "transportation", "--vehicle-type", "car",
		"--fuel-type", "diesel", "--fuel-consumption", "100", "--trips", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 1)
	var out calculationJSON
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &out))
	assert.InDelta(t, 1340.0, out.Result.EmissionsKg, 1e-9)
	assert.Equal(t, int64(1), out.Result.WholeCredits)
	assert.Empty(t, out.Notice)
}

func TestCalculate_InputFile(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, "steel.yaml")
	require.NoError(t, os.WriteFile(yamlFile,
		[]byte("sector: industrial\nindustryType: steel\nindustrialAmount: 10000\n"), 0o600))

	stdout, _, err := runCLI(t, "calculate", "--input", yamlFile, "--output", "json")
	require.NoError(t, err)
	var out calculationJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, int64(18), out.Result.WholeCredits)

	t.Run("flags override the file", func(t *testing.T) {
		stdout, _, err := runCLI(t, "calculate", "--input", yamlFile, "--output", "json",
			"--industrial-amount", "20000")
		require.NoError(t, err)
		var out calculationJSON
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, int64(36), out.Result.WholeCredits)
	})

	t.Run("json file", func(t *testing.T) {
		jsonFile := filepath.Join(dir, "waste.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"sector": "waste", "wasteAmount": "12000"}`), 0o600))
		stdout, _, err := runCLI(t, "calculate", "--input", jsonFile, "--output", "json")
		require.NoError(t, err)
		var out calculationJSON
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, int64(1), out.Result.WholeCredits)
	})

	t.Run("unknown field", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("sector: waste\ncolour: green\n"), 0o600))
		_, _, err := runCLI(t, "calculate", "--input", bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown input field "colour"`)
		assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runCLI(t, "calculate", "--input", filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no sector", args: nil, wantErr: emissions.ErrInvalidSector},
		{name: "unknown sector", args: []string{"--sector", "mining"}, wantErr: emissions.ErrInvalidSector},
		{name: "missing amount", args: []string{"--sector", "waste"}, wantErr: emissions.ErrMissingField},
		{
			name:    "negative amount",
			args:    []string{"--sector", "waste", "--waste-amount", "-5"},
			wantErr: emissions.ErrMissingField,
		},
		{
			name:    "not a number",
			args:    []string{"--sector", "energy", "--electricity-source", "coal", "--energy-amount", "lots"},
			wantErr: emissions.ErrMissingField,
		},
		{
			name:    "unknown source",
			args:    []string{"--sector", "energy", "--electricity-source", "wind", "--energy-amount", "10"},
			wantErr: emissions.ErrUnknownFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			stdout, _, err := runCLI(t, append([]string{"calculate"}, tt.args...)...)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, cli.ExitInvalidInput, cli.ExitCode(err))
			assert.Empty(t, stdout)
		})
	}
}

func TestCalculate_RejectedInputIsLogged(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvLogLevel, "warn")
	dir := t.TempDir()
	logFile := filepath.Join(dir, "carboncalc.log")
	overlay := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte(
		"logging:\n  level: warn\n  format: json\n  output: file\n  file: "+logFile+"\n"), 0o600))

	_, _, err := runCLI(t, "--config", overlay, "calculate", "--sector", "waste", "--waste-amount", "-5")
	require.ErrorIs(t, err, emissions.ErrMissingField)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"calculation rejected"`)
	assert.Contains(t, string(data), `"sector":"waste"`)
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestCalculate_BadFlags(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "calculate", "--sector", "waste", "--waste-amount", "1", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	_, _, err = runCLI(t, "calculate", "--sector", "waste", "--waste-amount", "1", "--lang", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestCalculate_ReportExport(t *testing.T) {
	setupCLITest(t)
	dir := filepath.Join(t.TempDir(), "reports")

	_, stderr, err := runCLI(t, "calculate",
		"--sector", "waste", "--waste-amount", "15000",
		"--report-dir", dir, "--report-format", "pdf,txt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Report saved to")

	pdf, err := os.ReadFile(filepath.Join(dir, "carbon-credit-report.pdf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"))

	txt, err := os.ReadFile(filepath.Join(dir, "carbon-credit-report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(txt), "Carbon Credit Calculator Report")
	assert.Contains(t, string(txt), "Suggested Carbon Credits: 1")

	_, _, err = runCLI(t, "calculate", "--sector", "waste", "--waste-amount", "1",
		"--report-dir", dir, "--report-format", "docx")
	require.Error(t, err)
}
