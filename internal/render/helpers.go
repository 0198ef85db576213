package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/OogleOG/MEUI/internal/theme"
)

// Helpers is the bundle of drawing and formatting primitives handed to
// custom info-view callbacks. Everything here is stateless: pure functions
// over the palette and their arguments.
type Helpers struct {
	palette theme.Palette
}

// NewHelpers builds a helper bundle styled from a palette.
func NewHelpers(palette theme.Palette) *Helpers {
	return &Helpers{palette: palette}
}

// Palette returns the palette the bundle was built from.
func (h *Helpers) Palette() theme.Palette {
	return h.palette
}

// Label renders plain body text.
func (h *Helpers) Label(text string) string {
	return lipgloss.NewStyle().Foreground(h.palette.Light.ToLipgloss()).Render(text)
}

// SectionHeader renders a bold group title.
func (h *Helpers) SectionHeader(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(h.palette.Bright.ToLipgloss()).
		Render(text)
}

// Flavor renders dim secondary text.
func (h *Helpers) Flavor(text string) string {
	return lipgloss.NewStyle().
		Italic(true).
		Foreground(h.palette.Medium.ToLipgloss()).
		Render(text)
}

// Row renders a two-column label/value table row.
func (h *Helpers) Row(label, value string) string {
	left := lipgloss.NewStyle().
		Foreground(h.palette.Medium.ToLipgloss()).
		Width(18).
		Render(label)
	right := lipgloss.NewStyle().Foreground(h.palette.Glow.ToLipgloss()).Render(value)
	return left + right
}

// ProgressBar renders a fixed-width bar filled to current/max.
func (h *Helpers) ProgressBar(current, max, width int) string {
	if width <= 0 {
		width = 20
	}
	if max <= 0 {
		max = 1
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	filled := current * width / max
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(h.palette.Bright.ToLipgloss()).Render(bar)
}

// Button renders a bordered action label, highlighted when focused.
func (h *Helpers) Button(label string, focused bool) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.palette.Medium.ToLipgloss()).
		Foreground(h.palette.Light.ToLipgloss())
	if focused {
		style = style.
			Bold(true).
			BorderForeground(h.palette.Glow.ToLipgloss()).
			Foreground(h.palette.Glow.ToLipgloss())
	}
	return style.Render(label)
}

// FormatNumber abbreviates large counts: 950, 1.2K, 3.4M.
func (h *Helpers) FormatNumber(n int) string {
	switch {
	case n >= 1_000_000 || n <= -1_000_000:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/1_000_000), ".0") + "M"
	case n >= 1_000 || n <= -1_000:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/1_000), ".0") + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatDuration renders a duration as hh:mm:ss.
func (h *Helpers) FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// PerHour extrapolates a count over an elapsed duration to an hourly rate.
func (h *Helpers) PerHour(count int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(count) / elapsed.Hours()
}
