package input

import (
	"weathergrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// PanelOpen reports whether suggestions are showing
func (c *ModelContext) PanelOpen() bool {
	return len(c.State.VisibleSuggestions()) > 0
}

// HasHighlight reports whether a suggestion is highlighted
func (c *ModelContext) HasHighlight() bool {
	_, ok := c.State.HighlightedSuggestion()
	return ok
}

// HasSnapshot reports whether weather is on screen
func (c *ModelContext) HasSnapshot() bool {
	return c.State.Displayed != nil
}
