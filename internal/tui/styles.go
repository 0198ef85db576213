package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/OogleOG/MEUI/internal/theme"
)

// styles holds the lipgloss styles derived from a window palette. Built
// once per model; palettes are immutable so styles never change after.
type styles struct {
	title     lipgloss.Style
	tabActive lipgloss.Style
	tabIdle   lipgloss.Style

	section   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	desc      lipgloss.Style
	selected  lipgloss.Style
	separator lipgloss.Style

	warning lipgloss.Style
	err     lipgloss.Style
	footer  lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Glow.ToLipgloss()).
			PaddingLeft(1).
			PaddingRight(1),

		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Glow.ToLipgloss()).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Bright.ToLipgloss()).
			Padding(0, 1),

		tabIdle: lipgloss.NewStyle().
			Foreground(p.Medium.ToLipgloss()).
			Padding(0, 1),

		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Bright.ToLipgloss()).
			MarginTop(1),

		label: lipgloss.NewStyle().
			Foreground(p.Light.ToLipgloss()),

		value: lipgloss.NewStyle().
			Foreground(p.Glow.ToLipgloss()),

		desc: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Medium.ToLipgloss()),

		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Glow.ToLipgloss()).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Bright.ToLipgloss()).
			PaddingLeft(1),

		separator: lipgloss.NewStyle().
			Foreground(p.Dark.ToLipgloss()),

		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")),

		err: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),

		footer: lipgloss.NewStyle().
			Foreground(p.Medium.ToLipgloss()).
			MarginTop(1),
	}
}
