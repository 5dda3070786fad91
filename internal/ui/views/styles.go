package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Mode        lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Dropdown    lipgloss.Style
	Suggestion  lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	Match       lipgloss.Style
	Error       lipgloss.Style
	City        lipgloss.Style
	Temperature lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Mode: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")),
		Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Underline(true), // cyan
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),     // red
		City:        lipgloss.NewStyle().Bold(true),
		Temperature: lipgloss.NewStyle().Bold(true),
	}
}

// TextColor returns the foreground for text drawn on a gradient
func TextColor(dark bool) lipgloss.Color {
	if dark {
		return lipgloss.Color("#f9fafb")
	}
	return lipgloss.Color("#1f2937")
}
