package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"weathergrip/internal/ui/input/types"
)

// InputTransformer turns the input handler's state into view fields
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeSearch,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetInputText returns the rendered text input. Outside search mode the
// query is still shown, unfocused.
func (it *InputTransformer) GetInputText() string {
	return it.textInput.View()
}

// IsFocused reports whether the search box has the keyboard
func (it *InputTransformer) IsFocused() bool {
	return it.mode == types.ModeSearch
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	return it.mode.String()
}
