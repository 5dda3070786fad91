package input

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/ui/input/modes"
	"weathergrip/internal/ui/input/types"
)

// Placeholder is shown in the empty search box
const Placeholder = "Enter City Name"

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

// New creates a handler starting in search mode with a focused input
func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "› "
	ti.CharLimit = 85
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

// HandleKey routes a key to the current mode. Keys a text mode does not
// consume are passed to the text input; an UpdateTextAction is emitted only
// when the text actually changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

// ChangeMode switches mode and returns the enter/exit actions
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	log.Printf("input: mode %s -> %s", h.ModeName(), h.modes[mode].Name())
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName is the current mode's display name, as shown in the footer
func (h *Handler) ModeName() string {
	return h.modes[h.currentMode].Name()
}

// TextInput returns the search input
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetText replaces the input text, e.g. when a suggestion is picked
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
