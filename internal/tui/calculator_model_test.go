package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/internal/i18n"
	"github.com/rshade/carboncalc/internal/report"
)

func newTestCalculator(t *testing.T, lang string) *CalculatorModel {
	t.Helper()
	return NewCalculatorModel(context.Background(), CalculatorConfig{
		Translator:    i18n.New(lang),
		Theme:         LightTheme(),
		ReportDir:     t.TempDir(),
		ReportFormats: []report.Format{report.FormatText},
	})
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd (expanding batches) and feeds every message of the given
// kinds back into the model.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(t, m, c)
		}
	case calculatedMsg, exportedMsg:
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

func TestNewCalculatorModel(t *testing.T) {
	m := newTestCalculator(t, "en")

	assert.Equal(t, emissions.FieldSector, m.FocusedField())
	assert.Equal(t, []string{"sector"}, m.visibleFields())
	assert.Nil(t, m.Init())
	_, ok := m.Result()
	assert.False(t, ok)
}

func TestCalculatorModel_CycleSector(t *testing.T) {
	m := newTestCalculator(t, "en")

	m.Update(key(tea.KeyRight))
	assert.Equal(t, "transportation", m.Input().Sector)

	m.Update(key(tea.KeyRight))
	assert.Equal(t, "energy", m.Input().Sector)
	assert.Equal(t, []string{"sector", "electricitySource", "energyAmount"}, m.visibleFields())

	m.Update(key(tea.KeyLeft))
	m.Update(key(tea.KeyLeft))
	assert.Equal(t, "waste", m.Input().Sector, "cycling wraps around")
}

func TestCalculatorModel_CycleFromUnsetGoesToLast(t *testing.T) {
	m := newTestCalculator(t, "en")
	m.Update(key(tea.KeyLeft))
	assert.Equal(t, "waste", m.Input().Sector)
}

func TestCalculatorModel_FocusMovement(t *testing.T) {
	m := newTestCalculator(t, "en")
	m.SetValue(emissions.FieldSector, "waste")

	m.Update(key(tea.KeyUp))
	assert.Equal(t, "sector", m.FocusedField(), "cannot move above the first field")

	m.Update(key(tea.KeyDown))
	assert.Equal(t, "wasteAmount", m.FocusedField())

	m.Update(key(tea.KeyDown))
	assert.Equal(t, "wasteAmount", m.FocusedField(), "cannot move past the last field")
}

func TestCalculatorModel_NumericInputFiltersRunes(t *testing.T) {
	m := newTestCalculator(t, "en")
	m.SetValue(emissions.FieldSector, "waste")
	m.Update(key(tea.KeyDown))

	for _, r := range []string{"1", "x", "5", "0", ".", "5"} {
		m.Update(runes(r))
	}
	assert.Equal(t, "150.5", m.Input().WasteAmount)

	m.Update(key(tea.KeyBackspace))
	assert.Equal(t, "150.", m.Input().WasteAmount)
}

func TestCalculatorModel_FocusClampsWhenFieldsShrink(t *testing.T) {
	m := newTestCalculator(t, "en")
	m.SetValue(emissions.FieldSector, "transportation")
	m.SetValue(emissions.FieldVehicleType, "bus")
	m.focus = 4 // passengers

	m.SetValue(emissions.FieldSector, "waste")
	assert.Equal(t, "wasteAmount", m.FocusedField())
}

func TestCalculatorModel_Calculate(t *testing.T) {
	m := newTestCalculator(t, "en")
	m.SetValue(emissions.FieldSector, "energy")
	m.SetValue(emissions.FieldElectricitySource, "coal")
	m.SetValue(emissions.FieldEnergyAmount, "1000")

	_, cmd := m.Update(key(tea.KeyEnter))
	assert.True(t, m.calculating)
	assert.Contains(t, m.View(), "Calculating...")

	drain(t, m, cmd)

	assert.False(t, m.calculating)
	require.NoError(t, m.Err())
	result, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "937", result.Emissions.String())
	assert.True(t, result.WholeCredits().IsZero())

	view := m.View()
	assert.Contains(t, view, "937.00 kg CO2")
	assert.Contains(t, view, "There was not enough emission to buy 1 carbon credit.")
	assert.Contains(t, view, "Emissions and Credits Overview")
}

func TestCalculatorModel_CalculateIgnoresStaleFields(t *testing.T) {
	m := newTestCalculator(t, "en")
	m.SetValue(emissions.FieldSector, "waste")
	m.SetValue(emissions.FieldWasteAmount, "10")
	m.SetValue(emissions.FieldSector, "industrial")
	m.SetValue(emissions.FieldIndustryType, "steel")
	m.SetValue(emissions.FieldIndustrialAmount, "10")

	_, cmd := m.Update(key(tea.KeyEnter))
	drain(t, m, cmd)

	require.NoError(t, m.Err())
	assert.Empty(t, m.resultInput.WasteAmount)
	assert.Equal(t, "steel", m.resultInput.IndustryType)
}

func TestCalculatorModel_CalculateErrorKeepsPreviousResult(t *testing.T) {
	m := newTestCalculator(t, "pt")
	m.SetValue(emissions.FieldSector, "waste")
	m.SetValue(emissions.FieldWasteAmount, "5000")

	_, cmd := m.Update(key(tea.KeyEnter))
	drain(t, m, cmd)
	first, ok := m.Result()
	require.True(t, ok)

	m.SetValue(emissions.FieldWasteAmount, "abc")
	_, cmd = m.Update(key(tea.KeyEnter))
	drain(t, m, cmd)

	require.Error(t, m.Err())
	assert.ErrorIs(t, m.Err(), emissions.ErrMissingField)
	second, ok := m.Result()
	require.True(t, ok)
	assert.True(t, first.Emissions.Equal(second.Emissions))
	assert.Contains(t, m.View(), "não é um número")
}

func TestCalculatorModel_NoSector(t *testing.T) {
	m := newTestCalculator(t, "en")

	_, cmd := m.Update(key(tea.KeyEnter))
	drain(t, m, cmd)

	assert.ErrorIs(t, m.Err(), emissions.ErrInvalidSector)
	assert.Contains(t, m.View(), "Sector not selected")
}

func TestCalculatorModel_ExportRequiresResult(t *testing.T) {
	m := newTestCalculator(t, "en")

	_, cmd := m.Update(runes("p"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Calculate emissions before downloading the report.", m.Status())
}

func TestCalculatorModel_Export(t *testing.T) {
	m := newTestCalculator(t, "en")
	m.SetValue(emissions.FieldSector, "waste")
	m.SetValue(emissions.FieldWasteAmount, "15000")

	_, cmd := m.Update(key(tea.KeyEnter))
	drain(t, m, cmd)

	_, cmd = m.Update(runes("p"))
	require.NotNil(t, cmd)
	drain(t, m, cmd)

	require.NoError(t, m.Err())
	path := filepath.Join(m.reportDir, "carbon-credit-report.txt")
	assert.Equal(t, "Report saved to "+path, m.Status())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Suggested Carbon Credits: 1")
	assert.Contains(t, string(data), "Waste Amount (kg): 15000")
}

func TestCalculatorModel_SetTranslator(t *testing.T) {
	m := newTestCalculator(t, "en")
	assert.Contains(t, m.View(), "Sector")

	m.SetTranslator(i18n.New("pt"))
	view := m.View()
	assert.Contains(t, view, "Setor")
	assert.Contains(t, view, "Não selecionado")
}
