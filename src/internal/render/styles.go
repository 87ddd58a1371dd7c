// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import "github.com/charmbracelet/lipgloss"

// Default theme colors.
var (
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky blue
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Theme bundles the styles used by the text renderers. Styles degrade to
// plain text automatically when the destination is not a color terminal.
type Theme struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Good  lipgloss.Style
	Bad   lipgloss.Style
	Muted lipgloss.Style
}

// NewTheme returns the default theme.
func NewTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Label: lipgloss.NewStyle().Foreground(colorMuted),
		Good:  lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Bad:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// PlainTheme returns a theme with no styling, for non-terminal output.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{Title: plain, Label: plain, Good: plain, Bad: plain, Muted: plain}
}

// WithColors overrides the accent colors, keeping the style shapes. Empty
// values keep the defaults.
func (t Theme) WithColors(primary, success, errColor string) Theme {
	if primary != "" {
		t.Title = t.Title.Foreground(lipgloss.Color(primary))
	}
	if success != "" {
		t.Good = t.Good.Foreground(lipgloss.Color(success))
	}
	if errColor != "" {
		t.Bad = t.Bad.Foreground(lipgloss.Color(errColor))
	}
	return t
}
