package domain

// WeatherSnapshot is the immutable result of a successful weather lookup
type WeatherSnapshot struct {
	CityName             string
	TemperatureCelsius   float64
	HumidityPercent      int
	WindSpeed            float64 // as reported by the provider (m/s with metric units)
	ConditionCode        int
	ConditionDescription string
}

// RequestStatus is the tag of the request state
type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s RequestStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RequestState reflects the most recently completed request, or Loading while
// a request started after the last completion is pending
type RequestState struct {
	Status   RequestStatus
	Snapshot *WeatherSnapshot // set when Status is StatusSuccess
	Message  string           // set when Status is StatusFailed
}

// SearchState holds the search text and the suggestion panel
type SearchState struct {
	Query       string
	Suggestions []string
	PanelOpen   bool
	Highlight   int // highlighted suggestion index, -1 for none
}

// Region is a rectangular area of the terminal in cell coordinates
type Region struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
