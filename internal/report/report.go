// Package report turns a calculation result and the input that produced it
// into a human-readable document (plain text or PDF) and a two-bar chart.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/internal/i18n"
)

// Format is an export file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

// baseFileName is the name every export shares; the extension varies.
const baseFileName = "carbon-credit-report"

// FileName returns the file name used when exporting in f.
func (f Format) FileName() string {
	return baseFileName + "." + string(f)
}

// ParseFormats validates a list of format names, dropping duplicates.
func ParseFormats(names []string) ([]Format, error) {
	seen := make(map[Format]bool, len(names))
	formats := make([]Format, 0, len(names))
	for _, name := range names {
		f := Format(strings.ToLower(strings.TrimSpace(name)))
		switch f {
		case FormatPDF, FormatText:
		case "text":
			f = FormatText
		default:
			return nil, fmt.Errorf("unsupported report format %q (want pdf or txt)", name)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// Line is one "label: value" entry of the input echo.
type Line struct {
	Label string
	Value string
}

// String renders the line as shown in the document.
func (l Line) String() string {
	return l.Label + ": " + l.Value
}

// Report is a localised, ready-to-render document.
type Report struct {
	ID           ulid.ULID
	Title        string
	Date         time.Time
	DateText     string
	Emissions    string // "Monthly Emissions: 937.00 kg CO2"
	Credits      string // "Suggested Carbon Credits: 0"
	Notice       string // set when less than one whole credit
	InputHeading string
	IDLabel      string
	Lines        []Line
	Chart        Chart
	Result       emissions.Result
}

// Options controls report construction.
type Options struct {
	Translator *i18n.Translator
	Now        func() time.Time
	Entropy    io.Reader
}

// New builds a Report for result and the input that produced it.
// Only non-empty input fields are echoed; enumerated values are shown with
// their translated labels.
func New(result emissions.Result, input emissions.CalculationInput, opts Options) *Report {
	tr := opts.Translator
	if tr == nil {
		tr = i18n.New(string(i18n.English))
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	entropy := opts.Entropy
	if entropy == nil {
		entropy = ulid.DefaultEntropy()
	}

	date := now()
	r := &Report{
		ID:           ulid.MustNew(ulid.Timestamp(date), entropy),
		Title:        tr.T(i18n.MsgReportTitle),
		Date:         date,
		DateText:     tr.T(i18n.MsgDate) + ": " + tr.Date(date),
		Emissions:    fmt.Sprintf("%s: %s kg CO2", tr.T(i18n.MsgMonthlyEmissions), result.Emissions.StringFixed(2)),
		Credits:      fmt.Sprintf("%s: %s", tr.T(i18n.MsgSuggestedCredits), result.WholeCredits().String()),
		InputHeading: tr.T(i18n.MsgInputData) + ":",
		IDLabel:      tr.T(i18n.MsgReportID),
		Chart:        NewChart(result, tr),
		Result:       result,
	}
	if !result.EnoughForCredit() {
		r.Notice = tr.T(i18n.MsgNotEnough)
	}

	for _, f := range input.Fields() {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}
		r.Lines = append(r.Lines, Line{Label: tr.Field(f.Name), Value: tr.Option(value)})
	}
	return r
}

// WriteText writes the plain-text layout: title, date, emissions, credits,
// the optional notice, then the input echo.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(r.Title + "\n")
	sb.WriteString(strings.Repeat("=", len([]rune(r.Title))) + "\n")
	sb.WriteString(r.DateText + "\n")
	sb.WriteString(r.Emissions + "\n")
	sb.WriteString(r.Credits + "\n")
	if r.Notice != "" {
		sb.WriteString(r.Notice + "\n")
	}
	sb.WriteString("\n" + r.InputHeading + "\n")
	for _, l := range r.Lines {
		sb.WriteString("  " + l.String() + "\n")
	}
	sb.WriteString("\n" + r.IDLabel + ": " + r.ID.String() + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatPDF:
		return r.WritePDF(w)
	case FormatText:
		return r.WriteText(w)
	default:
		return fmt.Errorf("unsupported report format %q", f)
	}
}
