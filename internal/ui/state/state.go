package state

import (
	"weathergrip/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	Search  domain.SearchState
	Request domain.RequestState

	// Displayed is the last successful snapshot. It stays visible when a
	// later request fails, alongside the error banner.
	Displayed *domain.WeatherSnapshot

	// UI state
	StatusMessage string // footer note, e.g. time of the last successful lookup
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Search: domain.SearchState{
			Suggestions: []string{},
			Highlight:   -1,
		},
		Request: domain.RequestState{Status: domain.StatusIdle},
	}
}

// Request operations

// SetLoading marks a request as started and clears any previous error
func (s *AppState) SetLoading() {
	s.Request = domain.RequestState{Status: domain.StatusLoading, Snapshot: s.Request.Snapshot}
}

// SetSuccess records a completed lookup
func (s *AppState) SetSuccess(snap domain.WeatherSnapshot) {
	s.Request = domain.RequestState{Status: domain.StatusSuccess, Snapshot: &snap}
	s.Displayed = &snap
}

// SetFailed records a failed lookup; the displayed snapshot is kept
func (s *AppState) SetFailed(message string) {
	s.Request = domain.RequestState{Status: domain.StatusFailed, Message: message}
}

// IsLoading reports whether the request state is Loading
func (s *AppState) IsLoading() bool {
	return s.Request.Status == domain.StatusLoading
}

// ErrorMessage returns the error banner text, empty unless Failed
func (s *AppState) ErrorMessage() string {
	if s.Request.Status != domain.StatusFailed {
		return ""
	}
	return s.Request.Message
}

// Search operations

// VisibleSuggestions returns the suggestions shown in the panel, nil when closed
func (s *AppState) VisibleSuggestions() []string {
	if !s.Search.PanelOpen || len(s.Search.Suggestions) == 0 {
		return nil
	}
	return s.Search.Suggestions
}

// HighlightedSuggestion returns the highlighted visible suggestion, if any
func (s *AppState) HighlightedSuggestion() (string, bool) {
	visible := s.VisibleSuggestions()
	if s.Search.Highlight < 0 || s.Search.Highlight >= len(visible) {
		return "", false
	}
	return visible[s.Search.Highlight], true
}
