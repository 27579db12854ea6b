// Lipgloss styles for block-level CLI output (banners and result framing).

package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the result presenter.
type Styles struct {
	// Header frames the operation banner above a result.
	Header lipgloss.Style
	// Result renders the computed value.
	Result lipgloss.Style
	// Label renders field labels in detail output.
	Label lipgloss.Style
	// Failure frames error banners.
	Failure lipgloss.Style
}

// NewStyles builds the style set matching the currently active theme.
// With the "none" theme every style renders as plain text.
func NewStyles() Styles {
	if GetCurrentTheme().Name == "none" {
		plain := lipgloss.NewStyle()
		return Styles{Header: plain, Result: plain, Label: plain, Failure: plain}
	}
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1),
		Result: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Failure: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}
