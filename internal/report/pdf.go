package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Page layout in millimetres on A4 portrait.
const (
	pdfMargin       = 20.0
	pdfTitleY       = 20.0
	pdfDateY        = 30.0
	pdfEmissionsY   = 40.0
	pdfCreditsY     = 50.0
	pdfNoticeY      = 57.0
	pdfInputY       = 65.0
	pdfInputStartY  = 75.0
	pdfLineHeight   = 10.0
	pdfChartGap     = 10.0
	pdfChartWidth   = 120.0
	pdfBarHeight    = 8.0
	pdfBarSpacing   = 14.0
	pdfTitleSize    = 16.0
	pdfBodySize     = 12.0
	pdfNoticeSize   = 10.0
	pdfChartLabelDX = 4.0
)

// WritePDF renders the report as a single A4 page: heading block, input
// echo and a horizontal bar chart of emissions versus credits.
func (r *Report) WritePDF(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	pdf.SetCreator("carboncalc", true)
	pdf.SetCreationDate(r.Date)
	pdf.SetKeywords(r.ID.String(), true)
	pdf.AddPage()

	// Core fonts are cp1252; translate so Portuguese accents survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.Text(pdfMargin, pdfTitleY, tr(r.Title))

	pdf.SetFont("Helvetica", "", pdfBodySize)
	pdf.Text(pdfMargin, pdfDateY, tr(r.DateText))
	pdf.Text(pdfMargin, pdfEmissionsY, tr(r.Emissions))
	pdf.Text(pdfMargin, pdfCreditsY, tr(r.Credits))

	if r.Notice != "" {
		pdf.SetFont("Helvetica", "I", pdfNoticeSize)
		pdf.Text(pdfMargin, pdfNoticeY, tr(r.Notice))
		pdf.SetFont("Helvetica", "", pdfBodySize)
	}

	pdf.Text(pdfMargin, pdfInputY, tr(r.InputHeading))
	y := pdfInputStartY
	for _, line := range r.Lines {
		pdf.Text(pdfMargin, y, tr(line.String()))
		y += pdfLineHeight
	}

	drawChart(pdf, tr, r.Chart, y+pdfChartGap)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func drawChart(pdf *fpdf.Fpdf, tr func(string) string, chart Chart, top float64) {
	pdf.SetFont("Helvetica", "B", pdfBodySize)
	pdf.Text(pdfMargin, top, tr(chart.Title))
	pdf.SetFont("Helvetica", "", pdfNoticeSize)

	lengths := chart.Scale(int(pdfChartWidth))
	y := top + pdfChartGap/2
	for i, bar := range chart.Bars {
		pdf.Text(pdfMargin, y+pdfBarHeight-2, tr(bar.Label))
		y += pdfBarHeight

		pdf.SetFillColor(bar.Color.R, bar.Color.G, bar.Color.B)
		if lengths[i] > 0 {
			pdf.Rect(pdfMargin, y, float64(lengths[i]), pdfBarHeight, "F")
		}
		pdf.Text(pdfMargin+float64(lengths[i])+pdfChartLabelDX, y+pdfBarHeight-2,
			fmt.Sprintf("%.3f", bar.Value))
		y += pdfBarSpacing
	}
}
