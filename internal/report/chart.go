package report

import (
	"fmt"
	"math"

	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/internal/i18n"
)

// RGB is a bar colour.
type RGB struct {
	R, G, B int
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Bar colours for the emissions and credits series.
//
//nolint:gochecknoglobals // Fixed palette.
var (
	EmissionsColor = RGB{75, 192, 192}
	CreditsColor   = RGB{255, 206, 86}
)

// Bar is one category of the chart.
type Bar struct {
	Label string
	Value float64
	Color RGB
}

// Chart is the two-category overview of emissions versus credits.
type Chart struct {
	Title  string
	Legend string
	Bars   []Bar
}

// NewChart builds the emissions/credits chart. Credits are plotted
// untruncated, as stored.
func NewChart(result emissions.Result, tr *i18n.Translator) Chart {
	return Chart{
		Title:  tr.T(i18n.MsgChartTitle),
		Legend: tr.T(i18n.MsgValues),
		Bars: []Bar{
			{Label: tr.T(i18n.MsgMonthlyEmissions), Value: result.EmissionsKg(), Color: EmissionsColor},
			{Label: tr.T(i18n.MsgSuggestedCredits), Value: result.CreditsTonnes(), Color: CreditsColor},
		},
	}
}

// Max returns the largest bar value, or 0 for an empty chart.
func (c Chart) Max() float64 {
	highest := 0.0
	for _, b := range c.Bars {
		highest = math.Max(highest, b.Value)
	}
	return highest
}

// Scale returns bar lengths proportional to their values, with the largest
// bar spanning width. Any positive value gets at least one unit so it
// stays visible.
func (c Chart) Scale(width int) []int {
	lengths := make([]int, len(c.Bars))
	highest := c.Max()
	if highest <= 0 || width <= 0 {
		return lengths
	}
	for i, b := range c.Bars {
		if b.Value <= 0 {
			continue
		}
		n := int(math.Round(b.Value / highest * float64(width)))
		lengths[i] = max(n, 1)
	}
	return lengths
}
