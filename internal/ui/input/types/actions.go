package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Suggestion panel actions
type FocusSearchAction struct{}

func (a FocusSearchAction) Type() string { return "focus_search" }

type MoveHighlightAction struct {
	Delta int
}

func (a MoveHighlightAction) Type() string { return "move_highlight" }

type SelectHighlightedAction struct{}

func (a SelectHighlightedAction) Type() string { return "select_highlighted" }

type DismissSuggestionsAction struct{}

func (a DismissSuggestionsAction) Type() string { return "dismiss_suggestions" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
