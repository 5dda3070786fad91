package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/config"
	"weathergrip/internal/domain"
	"weathergrip/internal/eventbus"
	"weathergrip/internal/ui/controller"
	"weathergrip/internal/ui/input"
	inputtypes "weathergrip/internal/ui/input/types"
	"weathergrip/internal/ui/pointer"
	"weathergrip/internal/ui/state"
	"weathergrip/internal/ui/viewmodels"
	"weathergrip/internal/ui/views"
	"weathergrip/internal/weather"
)

const animInterval = 600 * time.Millisecond

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	spinner     spinner.Model
	spinning    bool
	animFrame   int
	animGen     int
	inPagerMode bool // tracks if we're currently in pager mode
	initialCity string

	// Handlers
	controller   *controller.Controller
	hub          *pointer.Hub
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpOps      *HelpOps

	// last rendered frame, used for pointer hit-testing
	frame views.Frame

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(ctx context.Context, cfg *config.Config, fetcher weather.Fetcher, bus eventbus.EventBus) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()

	m := &Model{
		config:       cfg,
		state:        appState,
		help:         help.New(),
		keys:         DefaultKeyMap(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		hub:          pointer.NewHub(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}

	m.controller = controller.New(ctx, appState, fetcher, bus, m.hub, m.searchRegion)

	m.viewModel = viewmodels.NewViewModel(appState, cfg, *m.inputHandler.TextInput())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetInitialCity looks up city as soon as the program starts
func (m *Model) SetInitialCity(city string) {
	m.initialCity = city
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Close releases the controller's subscriptions
func (m *Model) Close() {
	m.controller.Close()
}

// searchRegion reports the search widget bounds from the last frame
func (m *Model) searchRegion() (domain.Region, bool) {
	if m.frame.Search.Width == 0 {
		return domain.Region{}, false
	}
	return m.frame.Search, true
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.config.UI.Animations {
		cmds = append(cmds, animTick(m.animGen))
	}
	if m.initialCity != "" {
		city := m.initialCity
		cmds = append(cmds, func() tea.Msg { return startupQueryMsg{city: city} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Blink and other input messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(mode)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.viewModel.SetSpinner(m.spinner)
	m.viewModel.SetAnimFrame(m.animFrame)
	m.viewModel.SetHelp(m.help, m.keys.ForMode(mode))

	m.frame = m.renderer.Render(m.viewModel.BuildViewState())
	return m.frame.Content
}

// processAction executes an input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %s", action.Type())
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.controller.SetQuery(a.Text)

	case inputtypes.SubmitTextAction:
		return m.startRequest(m.controller.Submit(a.Text))

	case inputtypes.SelectHighlightedAction:
		if city, ok := m.state.HighlightedSuggestion(); ok {
			m.inputHandler.SetText(city)
			cmd, _ := m.controller.SubmitHighlighted()
			return m.startRequest(cmd)
		}

	case inputtypes.MoveHighlightAction:
		m.controller.MoveHighlight(a.Delta)

	case inputtypes.DismissSuggestionsAction:
		m.controller.DismissSuggestions()

	case inputtypes.FocusSearchAction:
		m.controller.FocusSearch()

	case inputtypes.RefreshAction:
		return m.startRequest(m.controller.Refresh())

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(NewHelpRenderer().RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.controller.Close()
		return tea.Quit
	}

	return nil
}

// handleMouse dispatches a press to the pointer hub, then checks whether it
// landed on a suggestion row or the input
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	m.hub.Press(msg.X, msg.Y)

	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if idx, ok := m.frame.SuggestionAt(msg.X, msg.Y); ok {
		visible := m.state.VisibleSuggestions()
		if idx < len(visible) {
			city := visible[idx]
			m.inputHandler.SetText(city)
			return m.startRequest(m.controller.SelectSuggestion(city))
		}
		return nil
	}

	if m.frame.Input.Contains(msg.X, msg.Y) {
		var cmds []tea.Cmd
		if m.inputHandler.CurrentMode() != inputtypes.ModeSearch {
			cmds = append(cmds, textinput.Blink)
		}
		for _, action := range m.inputHandler.ChangeMode(inputtypes.ModeSearch, &input.ModelContext{State: m.state}) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.controller.FocusSearch()
		return tea.Batch(cmds...)
	}

	return nil
}

// startRequest starts the spinner alongside a lookup command
func (m *Model) startRequest(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	if m.spinning {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case controller.ResultMsg:
		m.controller.Apply(msg)
		return m, nil

	case startupQueryMsg:
		m.inputHandler.SetText(msg.city)
		return m, m.startRequest(m.controller.SelectSuggestion(msg.city))

	case spinner.TickMsg:
		if !m.state.IsLoading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case animTickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode || msg.gen != m.animGen {
			return m, nil
		}
		m.animFrame++
		return m, animTick(m.animGen)

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.config.UI.Animations {
			m.animGen++
			return m, animTick(m.animGen)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	default:
		return m, nil
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: errNoProgram}
		}

		// Send pause message to stop the animation loop
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func animTick(gen int) tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg {
		return animTickMsg{gen: gen}
	})
}
