package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/ui/input/types"
)

// SearchMode edits the city name and drives the suggestion panel
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

// Enter focuses the input and opens the suggestion panel
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	return []types.Action{types.FocusSearchAction{}}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true

	case "esc":
		if ctx.PanelOpen() {
			return []types.Action{types.DismissSuggestionsAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		if ctx.HasHighlight() {
			return []types.Action{types.SelectHighlightedAction{}}, true
		}
		return []types.Action{types.SubmitTextAction{Text: m.value()}}, true

	case "up", "ctrl+p":
		return []types.Action{types.MoveHighlightAction{Delta: -1}}, true

	case "down", "ctrl+n":
		return []types.Action{types.MoveHighlightAction{Delta: 1}}, true

	default:
		// Let the handler pass the key to the text input
		return nil, false
	}
}
