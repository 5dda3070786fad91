package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"weathergrip/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Enter focuses the input; the text is kept so the search can be refined
func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) value() string {
	if m.textInput == nil {
		return ""
	}
	return m.textInput.Value()
}
