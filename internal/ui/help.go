package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %-10s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("weathergrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(line("type", "Edit the city name, suggestions follow"))
	help.WriteString(line("↑/↓", "Move through suggestions"))
	help.WriteString(line("enter", "Look up the city or the highlighted suggestion"))
	help.WriteString(line("esc", "Close suggestions, press again to leave search"))
	help.WriteString(line("click", "Pick a suggestion; click elsewhere to close them"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Normal"))
	help.WriteString("\n")
	help.WriteString(line("/, i", "Focus the search box"))
	help.WriteString(line("r", "Refresh the displayed city"))
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q", "Quit"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("ctrl+c", "Quit from any mode"))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Set api_key in the config file or WEATHERGRIP_API_KEY"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open help pager: %w", err)
	}

	// Don't write the content back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
