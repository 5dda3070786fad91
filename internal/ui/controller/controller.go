// Package controller owns the search text, suggestion panel and request
// state, and turns user intents into weather lookups.
package controller

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/domain"
	"weathergrip/internal/eventbus"
	"weathergrip/internal/ui/logic"
	"weathergrip/internal/ui/pointer"
	"weathergrip/internal/ui/state"
	"weathergrip/internal/weather"
)

// ResultMsg carries the outcome of one lookup back to the update loop
type ResultMsg struct {
	RequestID uint64
	City      string
	Snapshot  domain.WeatherSnapshot
	Err       error
}

// Controller is the query controller. All methods must be called from the
// Bubble Tea update loop.
type Controller struct {
	ctx     context.Context
	state   *state.AppState
	filter  *logic.SuggestionFilter
	fetcher weather.Fetcher
	bus     eventbus.EventBus // optional

	hub     *pointer.Hub
	region  pointer.RegionFunc
	release func() // click-away subscription, held while the panel is open

	lastRequestID uint64
	now           func() time.Time
}

// New creates a controller. bus and hub may be nil.
func New(ctx context.Context, appState *state.AppState, fetcher weather.Fetcher, bus eventbus.EventBus, hub *pointer.Hub, region pointer.RegionFunc) *Controller {
	if region == nil {
		region = func() (domain.Region, bool) { return domain.Region{}, false }
	}
	return &Controller{
		ctx:     ctx,
		state:   appState,
		filter:  logic.NewSuggestionFilter(logic.PopularCities),
		fetcher: fetcher,
		bus:     bus,
		hub:     hub,
		region:  region,
		now:     time.Now,
	}
}

// State returns the state the controller mutates
func (c *Controller) State() *state.AppState {
	return c.state
}

// SetQuery replaces the query, opens the panel and recomputes suggestions
func (c *Controller) SetQuery(text string) {
	c.state.Search.Query = text
	c.state.Search.Suggestions = c.filter.Suggest(text)
	c.state.Search.Highlight = -1
	c.openPanel()
}

// FocusSearch opens the suggestion panel for the current query
func (c *Controller) FocusSearch() {
	c.openPanel()
}

// Submit validates the city name and returns the command performing the
// lookup. A blank name fails immediately and returns nil.
func (c *Controller) Submit(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" {
		c.state.SetFailed(weather.UserMessage(weather.ErrEmptyQuery))
		return nil
	}

	c.state.SetLoading()
	c.DismissSuggestions()

	c.lastRequestID++
	id := c.lastRequestID
	c.publish(domain.WeatherRequestedEvent{RequestID: id, City: text, At: c.now()})
	log.Printf("controller: request %d for %q", id, text)

	ctx, fetcher := c.ctx, c.fetcher
	return func() tea.Msg {
		snap, err := fetcher.Current(ctx, text)
		return ResultMsg{RequestID: id, City: text, Snapshot: snap, Err: err}
	}
}

// SelectSuggestion puts the city in the search box and submits it
func (c *Controller) SelectSuggestion(city string) tea.Cmd {
	c.SetQuery(city)
	return c.Submit(city)
}

// SubmitHighlighted selects the highlighted suggestion if there is one
func (c *Controller) SubmitHighlighted() (tea.Cmd, bool) {
	city, ok := c.state.HighlightedSuggestion()
	if !ok {
		return nil, false
	}
	return c.SelectSuggestion(city), true
}

// Refresh looks up the displayed city again
func (c *Controller) Refresh() tea.Cmd {
	if c.state.Displayed == nil {
		return nil
	}
	return c.Submit(c.state.Displayed.CityName)
}

// Apply records a finished lookup. Results are applied in completion order,
// so the last one to finish wins even if it was issued first.
func (c *Controller) Apply(msg ResultMsg) {
	completed := domain.WeatherCompletedEvent{RequestID: msg.RequestID, City: msg.City, At: c.now()}

	if msg.Err != nil {
		message := weather.UserMessage(msg.Err)
		log.Printf("controller: request %d for %q failed: %v", msg.RequestID, msg.City, msg.Err)
		c.state.SetFailed(message)
		completed.Status = domain.StatusFailed
		completed.Message = message
	} else {
		c.state.SetSuccess(msg.Snapshot)
		c.state.StatusMessage = fmt.Sprintf("Updated %s at %s", msg.Snapshot.CityName, completed.At.Format("15:04:05"))
		c.DismissSuggestions()
		completed.Status = domain.StatusSuccess
	}

	c.publish(completed)
}

// MoveHighlight moves the keyboard highlight; it opens a closed panel instead
func (c *Controller) MoveHighlight(delta int) {
	if !c.state.Search.PanelOpen {
		c.openPanel()
		return
	}
	c.state.Search.Highlight = logic.MoveHighlight(c.state.Search.Highlight, delta, len(c.state.VisibleSuggestions()))
}

// DismissSuggestions closes the panel without touching query or request state
func (c *Controller) DismissSuggestions() {
	c.state.Search.PanelOpen = false
	c.state.Search.Highlight = -1
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// Close releases the click-away subscription
func (c *Controller) Close() {
	c.DismissSuggestions()
}

func (c *Controller) openPanel() {
	c.state.Search.PanelOpen = true
	if c.release == nil && c.hub != nil {
		c.release = c.hub.Subscribe(c.region, c.DismissSuggestions)
	}
}

func (c *Controller) publish(event domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
