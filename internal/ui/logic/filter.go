package logic

import (
	"strings"
)

// PopularCities is the fixed list suggestions are drawn from, in display order
var PopularCities = []string{
	"London", "New York", "Tokyo", "Paris", "Dubai",
	"Singapore", "Barcelona", "Rome", "Sydney", "Hong Kong",
	"Mumbai", "Toronto", "Berlin", "Madrid", "Amsterdam",
}

// SuggestionFilter filters a fixed list of city names by substring
type SuggestionFilter struct {
	cities []string
}

// NewSuggestionFilter creates a filter over the given cities
func NewSuggestionFilter(cities []string) *SuggestionFilter {
	return &SuggestionFilter{
		cities: cities,
	}
}

// Suggest returns the cities whose lowercase name contains the lowercase query.
// A blank query yields no suggestions. Order follows the city list.
func (sf *SuggestionFilter) Suggest(query string) []string {
	if strings.TrimSpace(query) == "" {
		return []string{}
	}

	q := strings.ToLower(query)
	matches := make([]string, 0, len(sf.cities))
	for _, city := range sf.cities {
		if strings.Contains(strings.ToLower(city), q) {
			matches = append(matches, city)
		}
	}
	return matches
}

// MoveHighlight moves a highlight index by delta within count items.
// Moving up from the first item clears the highlight (-1); moving down
// from no highlight selects the first item.
func MoveHighlight(current, delta, count int) int {
	if count == 0 {
		return -1
	}
	next := current + delta
	if next < -1 {
		next = -1
	}
	if next >= count {
		next = count - 1
	}
	return next
}
