package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/ui/input/types"
)

// NormalMode is active while the search box is not focused
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEnter:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "r":
		if ctx.HasSnapshot() {
			return []types.Action{types.RefreshAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
