package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weathergrip/internal/ui/input/types"
)

type fakeContext struct {
	panelOpen, highlight, snapshot bool
}

func (c fakeContext) PanelOpen() bool    { return c.panelOpen }
func (c fakeContext) HasHighlight() bool { return c.highlight }
func (c fakeContext) HasSnapshot() bool  { return c.snapshot }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingEmitsUpdateText(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	actions, _ := h.HandleKey(runes("l"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "l"}, actions[0])

	actions, _ = h.HandleKey(runes("o"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "lo"}}, actions)
}

func TestCursorMovementDoesNotEmitUpdate(t *testing.T) {
	h := New()
	h.SetText("Rome")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, fakeContext{})
	assert.Empty(t, actions)
}

func TestEnterSubmitsOrSelects(t *testing.T) {
	h := New()
	h.SetText("Paris")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "Paris"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{panelOpen: true, highlight: true})
	assert.Equal(t, []types.Action{types.SelectHighlightedAction{}}, actions)
}

func TestArrowsMoveHighlight(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, fakeContext{})
	assert.Equal(t, []types.Action{types.MoveHighlightAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, fakeContext{})
	assert.Equal(t, []types.Action{types.MoveHighlightAction{Delta: -1}}, actions)
}

func TestEscDismissesThenLeavesSearch(t *testing.T) {
	h := New()
	h.SetText("lon")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{panelOpen: true})
	assert.Equal(t, []types.Action{types.DismissSuggestionsAction{}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())

	_, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.False(t, h.TextInput().Focused())
	assert.Equal(t, "lon", h.TextInput().Value())
}

func TestNormalModeKeys(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeNormal, fakeContext{})

	actions, _ := h.HandleKey(runes("r"), fakeContext{})
	assert.Empty(t, actions, "refresh needs a snapshot")

	actions, _ = h.HandleKey(runes("r"), fakeContext{snapshot: true})
	assert.Equal(t, []types.Action{types.RefreshAction{}}, actions)

	actions, _ = h.HandleKey(runes("?"), fakeContext{})
	assert.Equal(t, []types.Action{types.ToggleHelpAction{}}, actions)

	actions, _ = h.HandleKey(runes("q"), fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	actions, _ = h.HandleKey(runes("x"), fakeContext{})
	assert.Empty(t, actions)
	assert.Empty(t, h.TextInput().Value(), "normal mode keys never reach the input")
}

func TestSlashReturnsToSearchKeepingText(t *testing.T) {
	h := New()
	h.SetText("Berlin")
	h.ChangeMode(types.ModeNormal, fakeContext{})

	actions, cmd := h.HandleKey(runes("/"), fakeContext{})
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, []types.Action{types.FocusSearchAction{}}, actions)
	assert.NotNil(t, cmd)
	assert.True(t, h.TextInput().Focused())
	assert.Equal(t, "Berlin", h.TextInput().Value())
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	h.ChangeMode(types.ModeNormal, fakeContext{})
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
}

func TestModeNameFollowsMode(t *testing.T) {
	h := New()
	assert.Equal(t, "search", h.ModeName())

	h.ChangeMode(types.ModeNormal, fakeContext{})
	assert.Equal(t, "normal", h.ModeName())
	assert.Equal(t, types.ModeNormal.String(), h.ModeName())
}
