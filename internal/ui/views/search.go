package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"weathergrip/internal/domain"
)

// SearchLayout records where the search widget was drawn, relative to the
// origin passed to Render
type SearchLayout struct {
	Input       domain.Region
	Suggestions []domain.Region
	Height      int
	Width       int
}

// SearchRenderer draws the input box and the suggestion dropdown
type SearchRenderer struct {
	styles *Styles
}

// NewSearchRenderer creates a new search renderer
func NewSearchRenderer(styles *Styles) *SearchRenderer {
	return &SearchRenderer{styles: styles}
}

// Render draws the widget with its top-left corner at (x, y)
func (s *SearchRenderer) Render(state ViewState, width, x, y int) (string, SearchLayout) {
	var layout SearchLayout

	inputStyle := s.styles.Input
	if state.Focused {
		inputStyle = s.styles.InputFocus
	}
	input := inputStyle.Width(width).Render(state.InputView)
	layout.Input = domain.Region{X: x, Y: y, Width: lipgloss.Width(input), Height: lipgloss.Height(input)}

	blocks := []string{input}
	if len(state.Suggestions) > 0 {
		rows := make([]string, 0, len(state.Suggestions))
		top := y + layout.Input.Height + 1 // dropdown border
		for i, city := range state.Suggestions {
			rows = append(rows, s.renderSuggestion(city, state.Query, width, i == state.Highlight))
			layout.Suggestions = append(layout.Suggestions, domain.Region{X: x + 1, Y: top + i, Width: width, Height: 1})
		}
		blocks = append(blocks, s.styles.Dropdown.Render(strings.Join(rows, "\n")))
	}

	if state.ErrorMessage != "" {
		blocks = append(blocks, s.styles.Error.Width(width+2).Render(state.ErrorMessage))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	layout.Width = lipgloss.Width(content)
	layout.Height = lipgloss.Height(content)
	return content, layout
}

func (s *SearchRenderer) renderSuggestion(city, query string, width int, highlighted bool) string {
	normal := s.styles.Suggestion
	match := s.styles.Match
	if highlighted {
		normal = s.styles.Highlight.Inherit(s.styles.HighlightBg)
		match = match.Inherit(s.styles.HighlightBg)
	}

	marker := "  "
	if highlighted {
		marker = "› "
	}
	line := normal.Render(marker) + highlightMatch(city, strings.TrimSpace(query), match, normal)

	if pad := width - lipgloss.Width(line); pad > 0 {
		line += normal.Render(strings.Repeat(" ", pad))
	}
	return line
}

// highlightMatch highlights the first case-insensitive occurrence of query.
// Windows are taken on rune boundaries of text since case folding can change
// a rune's byte length.
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	start, end, ok := findFold(text, query)
	if !ok {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:start]
	match := text[start:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// findFold returns the byte range in text of the first window that equals
// query under simple case folding
func findFold(text, query string) (int, int, bool) {
	n := utf8.RuneCountInString(query)
	if n == 0 {
		return 0, 0, false
	}

	var starts []int
	for i := range text {
		starts = append(starts, i)
	}
	starts = append(starts, len(text))

	for i := 0; i+n < len(starts); i++ {
		from, to := starts[i], starts[i+n]
		if strings.EqualFold(text[from:to], query) {
			return from, to, true
		}
	}
	return 0, 0, false
}
