package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/internal/i18n"
	"github.com/rshade/carboncalc/internal/report"
)

const (
	chartLabelWidth = 26
	minChartWidth   = 10
	chartPadding    = 46
	barGlyph        = "█"
)

// RenderResult renders the results panel: emissions, whole credits, the
// notice below one credit, equivalencies and the chart.
func RenderResult(r emissions.Result, tr *i18n.Translator, theme Theme, width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(tr.T(i18n.MsgResults)))
	b.WriteString("\n\n")
	b.WriteString(renderKV(theme, tr.T(i18n.MsgMonthlyCarbon), tr.Number(r.EmissionsKg(), 2)+" kg CO2"))
	b.WriteString("\n")
	b.WriteString(renderKV(theme, tr.T(i18n.MsgSuggestedCredits), tr.WholeNumber(r.WholeCredits())))
	b.WriteString("\n")

	if !r.EnoughForCredit() {
		b.WriteString(theme.Notice.Render(tr.T(i18n.MsgNotEnough)))
		b.WriteString("\n")
	}

	if eq := RenderEquivalencies(r, tr, theme); eq != "" {
		b.WriteString("\n")
		b.WriteString(eq)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderChart(report.NewChart(r, tr), tr, theme, width))

	return theme.Panel.Render(b.String())
}

// RenderEquivalencies renders the relatable comparisons, or "" when the
// result is too small to have any.
func RenderEquivalencies(r emissions.Result, tr *i18n.Translator, theme Theme) string {
	eqs := r.Equivalencies()
	if len(eqs) == 0 {
		return ""
	}

	values := make(map[emissions.EquivalencyKind]float64, len(eqs))
	for _, e := range eqs {
		values[e.Kind] = e.Value
	}

	lines := []string{
		tr.T(i18n.MsgEquivalent,
			tr.Number(values[emissions.EquivalencyMilesDriven], 0),
			tr.Number(values[emissions.EquivalencySmartphonesCharged], 0)),
		tr.T(i18n.MsgTrees, tr.Number(values[emissions.EquivalencyTreeSeedlings], 1)),
	}
	return theme.Muted.Render(strings.Join(lines, "\n"))
}

// RenderChart draws the chart as horizontal bars scaled to width.
func RenderChart(c report.Chart, tr *i18n.Translator, theme Theme, width int) string {
	barWidth := max(width-chartPadding, minChartWidth)
	lengths := c.Scale(barWidth)

	var b strings.Builder
	b.WriteString(theme.Label.Bold(true).Render(c.Title))
	b.WriteString("\n")
	for i, bar := range c.Bars {
		label := lipgloss.NewStyle().Width(chartLabelWidth).Render(bar.Label)
		fill := lipgloss.NewStyle().
			Foreground(lipgloss.Color(bar.Color.Hex())).
			Render(strings.Repeat(barGlyph, lengths[i]))
		fmt.Fprintf(&b, "%s %s %s\n", label, fill, theme.Label.Render(tr.Number(bar.Value, 3)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// DescribeError turns a calculation error into user-facing lines in the
// translator's language. Joined field errors yield one line each.
func DescribeError(err error, tr *i18n.Translator) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, DescribeError(e, tr)...)
		}
		return lines
	}

	var fe *emissions.FieldError
	switch {
	case errors.As(err, &fe):
		line := tr.Field(fe.Field) + " " + tr.T(fe.Reason)
		if fe.Value != "" {
			line += fmt.Sprintf(" (%q)", fe.Value)
		}
		return []string{line}
	case errors.Is(err, emissions.ErrInvalidSector):
		return []string{tr.T(i18n.MsgSectorNotChosen)}
	default:
		return []string{err.Error()}
	}
}

func renderKV(theme Theme, label, value string) string {
	return theme.Label.Render(label+":") + " " + theme.Value.Render(value)
}
