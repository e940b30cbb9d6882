package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Package-level styles instance (nil until initialized)
var appStyles *Styles

// Styles holds the picker styles using terminal default colors
type Styles struct {
	Subtle color.Color

	BorderStyle      lipgloss.Style
	SelectedStyle    lipgloss.Style
	SearchInputStyle lipgloss.Style
	FooterStyle      lipgloss.Style
	SubtleStyle      lipgloss.Style
	ErrorStyle       lipgloss.Style
}

// newStyles builds a Styles instance on NoColor so the terminal theme
// provides the palette.
func newStyles() *Styles {
	noColor := lipgloss.NoColor{}

	return &Styles{
		Subtle: noColor,

		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(noColor),

		SelectedStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SearchInputStyle: lipgloss.NewStyle().
			Foreground(noColor),

		FooterStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),

		SubtleStyle: lipgloss.NewStyle().
			Foreground(noColor),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),
	}
}

// getStyles returns the current styles instance, with fallback for startup
func getStyles() *Styles {
	if appStyles == nil {
		return newStyles()
	}
	return appStyles
}
