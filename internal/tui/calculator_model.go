package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/internal/i18n"
	"github.com/rshade/carboncalc/internal/logging"
	"github.com/rshade/carboncalc/internal/report"
)

const (
	numericRunes     = "0123456789.-"
	numberCharLimit  = 16
	numberInputWidth = 18
	calcDefaultWidth = 80
	formLabelWidth   = 28
	focusMarker      = "› "
	noFocusMarker    = "  "
	choicePrevMarker = "‹ "
	choiceNextMarker = " ›"
	defaultReportDir = "."
)

// calculatedMsg carries a finished calculation back to the model.
type calculatedMsg struct {
	input  emissions.CalculationInput
	result emissions.Result
	err    error
}

// exportedMsg carries the outcome of a report export.
type exportedMsg struct {
	paths []string
	err   error
}

// CalculatorConfig configures a CalculatorModel.
type CalculatorConfig struct {
	Calculator    *emissions.Calculator
	Translator    *i18n.Translator
	Theme         Theme
	ReportDir     string
	ReportFormats []report.Format
}

// CalculatorModel is the emissions form: choice fields cycle through their
// options, numeric fields are text inputs, and only the fields the chosen
// sector needs are shown.
type CalculatorModel struct {
	ctx   context.Context
	calc  *emissions.Calculator
	tr    *i18n.Translator
	theme Theme

	input   emissions.CalculationInput
	numbers map[string]*textinput.Model
	focus   int

	spinner     spinner.Model
	calculating bool

	result      *emissions.Result
	resultInput emissions.CalculationInput
	err         error
	status      string

	reportDir     string
	reportFormats []report.Format

	width int
}

// choiceOptions lists the selectable values of each enumerated field.
func choiceOptions(field string) []string {
	switch field {
	case emissions.FieldSector:
		return toStrings(emissions.Sectors())
	case emissions.FieldVehicleType:
		return toStrings(emissions.VehicleTypes())
	case emissions.FieldFuelType:
		return toStrings(emissions.FuelTypes())
	case emissions.FieldElectricitySource:
		return toStrings(emissions.EnergySources())
	case emissions.FieldIndustryType:
		return toStrings(emissions.IndustryTypes())
	default:
		return nil
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func isChoice(field string) bool {
	return choiceOptions(field) != nil
}

// NewCalculatorModel builds an empty form.
func NewCalculatorModel(ctx context.Context, cfg CalculatorConfig) *CalculatorModel {
	calc := cfg.Calculator
	if calc == nil {
		calc = emissions.NewCalculator()
	}
	tr := cfg.Translator
	if tr == nil {
		tr = i18n.New(string(i18n.English))
	}
	dir := cfg.ReportDir
	if dir == "" {
		dir = defaultReportDir
	}

	m := &CalculatorModel{
		ctx:           ctx,
		calc:          calc,
		tr:            tr,
		theme:         cfg.Theme,
		numbers:       make(map[string]*textinput.Model),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		reportDir:     dir,
		reportFormats: cfg.ReportFormats,
		width:         calcDefaultWidth,
	}

	for _, f := range m.input.Fields() {
		if isChoice(f.Name) {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = numberCharLimit
		ti.Width = numberInputWidth
		ti.Placeholder = "0"
		m.numbers[f.Name] = &ti
	}
	return m
}

// SetTranslator switches the form language.
func (m *CalculatorModel) SetTranslator(tr *i18n.Translator) { m.tr = tr }

// SetTheme switches the form styles.
func (m *CalculatorModel) SetTheme(t Theme) { m.theme = t }

// SetValue assigns a field directly, as if the user had entered it.
func (m *CalculatorModel) SetValue(field, value string) bool {
	if ti, ok := m.numbers[field]; ok {
		ti.SetValue(value)
	}
	ok := m.input.Set(field, value)
	m.clampFocus()
	return ok
}

// Input returns the current form contents.
func (m *CalculatorModel) Input() emissions.CalculationInput {
	m.syncNumbers()
	return m.input
}

// Result returns the last successful result, if any.
func (m *CalculatorModel) Result() (emissions.Result, bool) {
	if m.result == nil {
		return emissions.Result{}, false
	}
	return *m.result, true
}

// Err returns the error of the last calculation or export.
func (m *CalculatorModel) Err() error { return m.err }

// Status returns the last status message.
func (m *CalculatorModel) Status() string { return m.status }

// FocusedField returns the name of the focused field.
func (m *CalculatorModel) FocusedField() string {
	visible := m.visibleFields()
	return visible[m.focus]
}

func (m *CalculatorModel) visibleFields() []string {
	return emissions.RequiredFields(m.input)
}

func (m *CalculatorModel) clampFocus() {
	if n := len(m.visibleFields()); m.focus >= n {
		m.focus = n - 1
	}
}

func (m *CalculatorModel) syncNumbers() {
	for name, ti := range m.numbers {
		m.input.Set(name, ti.Value())
	}
}

// Init implements tea.Model.
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case calculatedMsg:
		return m.handleCalculated(msg)

	case exportedMsg:
		return m.handleExported(msg)

	case spinner.TickMsg:
		if !m.calculating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg processes form keys.
//
//nolint:exhaustive // Only keys the form reacts to.
func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		return m, m.moveFocus(-1)
	case tea.KeyDown:
		return m, m.moveFocus(1)
	case tea.KeyLeft:
		if m.cycleChoice(-1) {
			return m, nil
		}
	case tea.KeyRight:
		if m.cycleChoice(1) {
			return m, nil
		}
	case tea.KeyEnter:
		return m, m.startCalculation()
	case tea.KeyRunes:
		if string(msg.Runes) == "p" {
			return m, m.startExport()
		}
		if !onlyNumeric(msg.Runes) {
			return m, nil
		}
	}

	field := m.FocusedField()
	ti, ok := m.numbers[field]
	if !ok {
		return m, nil
	}
	if !ti.Focused() {
		ti.Focus()
	}
	updated, cmd := ti.Update(msg)
	*ti = updated
	m.input.Set(field, ti.Value())
	return m, cmd
}

func onlyNumeric(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune(numericRunes, r) {
			return false
		}
	}
	return true
}

func (m *CalculatorModel) moveFocus(delta int) tea.Cmd {
	visible := m.visibleFields()
	next := m.focus + delta
	if next < 0 || next >= len(visible) {
		return nil
	}
	if ti, ok := m.numbers[visible[m.focus]]; ok {
		ti.Blur()
	}
	m.focus = next
	if ti, ok := m.numbers[visible[next]]; ok {
		return ti.Focus()
	}
	return nil
}

// cycleChoice steps the focused choice field through its options. An
// unset field starts at the first (or last) option.
func (m *CalculatorModel) cycleChoice(delta int) bool {
	field := m.FocusedField()
	options := choiceOptions(field)
	if options == nil {
		return false
	}

	current := fieldValue(m.input, field)
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(options) - 1
	default:
		idx = (idx + delta + len(options)) % len(options)
	}

	m.input.Set(field, options[idx])
	m.clampFocus()
	return true
}

func fieldValue(in emissions.CalculationInput, name string) string {
	for _, f := range in.Fields() {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func (m *CalculatorModel) startCalculation() tea.Cmd {
	if m.calculating {
		return nil
	}
	m.syncNumbers()
	m.calculating = true
	m.status = ""

	ctx := m.ctx
	calc := m.calc
	in := emissions.Relevant(m.input)

	calculate := func() tea.Msg {
		result, err := calc.Calculate(ctx, in)
		return calculatedMsg{input: in, result: result, err: err}
	}
	return tea.Batch(m.spinner.Tick, calculate)
}

func (m *CalculatorModel) handleCalculated(msg calculatedMsg) (tea.Model, tea.Cmd) {
	m.calculating = false
	if msg.err != nil {
		// The previous result stays on screen.
		m.err = msg.err
		logging.FromContext(m.ctx).Warn().
			Str("component", "tui").
			Err(msg.err).
			Msg("calculation rejected")
		return m, nil
	}

	result := msg.result
	m.result = &result
	m.resultInput = msg.input
	m.err = nil
	return m, nil
}

func (m *CalculatorModel) startExport() tea.Cmd {
	if m.result == nil {
		m.status = m.tr.T(i18n.MsgNothingToExport)
		return nil
	}

	ctx := m.ctx
	rep := report.New(*m.result, m.resultInput, report.Options{Translator: m.tr})
	dir := m.reportDir
	formats := m.reportFormats

	return func() tea.Msg {
		paths, err := rep.Export(ctx, dir, formats)
		return exportedMsg{paths: paths, err: err}
	}
}

func (m *CalculatorModel) handleExported(msg exportedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		logging.FromContext(m.ctx).Error().
			Str("component", "tui").
			Err(msg.err).
			Msg("report export failed")
		return m, nil
	}
	m.err = nil
	m.status = m.tr.T(i18n.MsgReportSaved, strings.Join(msg.paths, ", "))
	return m, nil
}

// View implements tea.Model.
func (m *CalculatorModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.MsgCalculate)))
	b.WriteString("\n\n")

	for i, field := range m.visibleFields() {
		b.WriteString(m.renderField(field, i == m.focus))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	b.WriteString("\n")

	if m.calculating {
		b.WriteString("\n" + m.spinner.View() + " " + m.theme.Muted.Render(m.tr.T(i18n.MsgCalculating)) + "\n")
	}
	if m.err != nil {
		for _, line := range DescribeError(m.err, m.tr) {
			b.WriteString("\n" + m.theme.Error.Render(m.tr.T(i18n.MsgError)+": "+line))
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.theme.Success.Render(m.status) + "\n")
	}
	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(RenderResult(*m.result, m.tr, m.theme, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *CalculatorModel) renderField(field string, focused bool) string {
	marker := noFocusMarker
	if focused {
		marker = focusMarker
	}
	label := m.theme.Label.Width(formLabelWidth).Render(m.tr.Field(field))

	var value string
	if isChoice(field) {
		current := fieldValue(m.input, field)
		shown := m.tr.T(i18n.MsgNotSelected)
		if current != "" {
			shown = m.tr.Option(current)
		}
		value = choicePrevMarker + shown + choiceNextMarker
	} else {
		value = m.numbers[field].View()
	}

	if focused {
		value = m.theme.Focused.Render(value)
	}
	return marker + label + value
}

func (m *CalculatorModel) renderHelp() string {
	shortcuts := []string{
		"↑/↓: " + m.tr.T(i18n.MsgNavigate),
		"←/→: " + m.tr.T(i18n.MsgChange),
		"Enter: " + m.tr.T(i18n.MsgCalculate),
		"p: " + m.tr.T(i18n.MsgDownloadPDF),
	}
	return m.theme.Muted.Render(strings.Join(shortcuts, " | "))
}
