package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// RateBar displays a ratio in [0, 1] as a bar colored by how good it is.
type RateBar struct {
	Label string
	Rate  float64
	Width int
}

// NewRateBar creates a new rate bar.
func NewRateBar(label string, rate float64, width int) RateBar {
	return RateBar{
		Label: label,
		Rate:  rate,
		Width: width,
	}
}

// Percent formats a rate as a whole percentage, e.g. 0.8 -> "80%".
func Percent(rate float64) string {
	return fmt.Sprintf("%d%%", int(rate*100+0.5))
}

func rateColor(rate float64) color.Color {
	switch {
	case rate >= 0.8:
		return theme.Success
	case rate >= 0.5:
		return theme.Accent
	default:
		return theme.Error
	}
}

// View renders the bar.
func (p RateBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // "  100%"

	barWidth := max(p.Width-labelWidth-percentWidth, 4)

	filled := min(max(int(float64(barWidth)*p.Rate), 0), barWidth)
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(rateColor(p.Rate)).
		Render(strings.Repeat(" ", filled))

	result += theme.ProgressEmpty.
		Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + Percent(p.Rate))

	return result
}
