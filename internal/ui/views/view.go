package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weathergrip/internal/domain"
)

const (
	// padding applied by Styles.Main
	originX = 2
	originY = 1

	maxWidgetWidth = 48
	minWidgetWidth = 20
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	InputView    string // rendered text input
	Focused      bool
	Query        string
	Suggestions  []string // empty when the panel is closed
	Highlight    int
	ErrorMessage string

	Loading     bool
	SpinnerView string

	Snapshot  *domain.WeatherSnapshot
	AnimFrame int

	Mode          string
	StatusMessage string
	HelpView      string
}

// Frame is one rendered screen plus the regions used for pointer hit-testing
type Frame struct {
	Content     string
	Search      domain.Region // input, dropdown and error banner
	Input       domain.Region
	Suggestions []domain.Region
}

// SuggestionAt returns the index of the suggestion row containing (x, y)
func (f Frame) SuggestionAt(x, y int) (int, bool) {
	for i, r := range f.Suggestions {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	search  *SearchRenderer
	weather *WeatherRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		search:  NewSearchRenderer(styles),
		weather: NewWeatherRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) Frame {
	var frame Frame
	width := widgetWidth(state.Width)
	row := originY

	title := r.renderTitle(state, width+2)
	blocks := []string{title, ""}
	row += lipgloss.Height(title) + 1

	search, layout := r.search.Render(state, width, originX, row)
	frame.Input = layout.Input
	frame.Suggestions = layout.Suggestions
	frame.Search = domain.Region{X: originX, Y: row, Width: layout.Width, Height: layout.Height}
	blocks = append(blocks, search, "")

	blocks = append(blocks, r.weather.Render(state.Snapshot, width+2, state.AnimFrame), "")
	blocks = append(blocks, r.renderFooter(state))

	frame.Content = r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return frame
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("weathergrip")
	if !state.Loading {
		return logo
	}

	right := r.styles.Dim.Render(strings.TrimSpace(state.SpinnerView + " Loading"))
	gap := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return logo + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	status := r.styles.Mode.Render("-- " + strings.ToUpper(state.Mode) + " --")
	if state.StatusMessage != "" {
		status += "  " + r.styles.Status.Render(state.StatusMessage)
	}
	lines = append(lines, status)
	if state.HelpView != "" {
		lines = append(lines, r.styles.Help.Render(state.HelpView))
	}
	return strings.Join(lines, "\n")
}

func widgetWidth(termWidth int) int {
	w := termWidth - 2*originX - 2
	if w > maxWidgetWidth {
		w = maxWidgetWidth
	}
	if w < minWidgetWidth {
		w = minWidgetWidth
	}
	return w
}
