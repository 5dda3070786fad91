package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"weathergrip/internal/config"
	"weathergrip/internal/ui/input/types"
	"weathergrip/internal/ui/state"
	"weathergrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          spinner.Model
	animFrame        int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it summarises
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSpinner sets the loading spinner
func (vm *ViewModel) SetSpinner(s spinner.Model) {
	vm.spinner = s
}

// SetAnimFrame sets the icon animation frame
func (vm *ViewModel) SetAnimFrame(frame int) {
	vm.animFrame = frame
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		InputView:     vm.inputTransformer.GetInputText(),
		Focused:       vm.inputTransformer.IsFocused(),
		Query:         vm.state.Search.Query,
		Suggestions:   vm.state.VisibleSuggestions(),
		Highlight:     vm.state.Search.Highlight,
		ErrorMessage:  vm.state.ErrorMessage(),
		Loading:       vm.state.IsLoading(),
		Snapshot:      vm.state.Displayed,
		Mode:          vm.inputTransformer.GetInputModeString(),
		StatusMessage: vm.state.StatusMessage,
	}
	if vs.Loading {
		vs.SpinnerView = vm.spinner.View()
	}
	if vm.config == nil || vm.config.UI.Animations {
		vs.AnimFrame = vm.animFrame
	}
	if vm.keys != nil {
		vs.HelpView = vm.help.View(vm.keys)
	}
	return vs
}
