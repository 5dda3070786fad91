// Package weather is the client for the OpenWeatherMap current weather API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strings"

	"weathergrip/internal/domain"
)

// DefaultEndpoint is the OpenWeatherMap current weather endpoint
const DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// User facing messages
const (
	EmptyQueryMessage      = "Please enter a city name"
	UnexpectedErrorMessage = "An unexpected error occurred"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 1 << 20

// ErrEmptyQuery is returned when the city name is blank
var ErrEmptyQuery = errors.New("empty city name")

var errNoConditions = errors.New("response has no weather conditions")

// RequestError describes a failed lookup. Message is the provider's own
// message when the response carried one.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("weather request failed (status %d): %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("weather request failed: %v", e.Err)
	default:
		return fmt.Sprintf("weather request failed with status %d", e.StatusCode)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text shown to the user for a lookup error
func UserMessage(err error) string {
	if errors.Is(err, ErrEmptyQuery) {
		return EmptyQueryMessage
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return UnexpectedErrorMessage
}

// Fetcher looks up current conditions for a city
type Fetcher interface {
	Current(ctx context.Context, city string) (domain.WeatherSnapshot, error)
}

// Client fetches current weather over HTTP
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client. An empty endpoint uses DefaultEndpoint and a nil
// httpClient uses http.DefaultClient.
func NewClient(endpoint, apiKey string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// currentResponse is the subset of the provider response that is used
type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Current issues one GET for the city in metric units
func (c *Client) Current(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	if strings.TrimSpace(city) == "" {
		return domain.WeatherSnapshot{}, ErrEmptyQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(city), nil)
	if err != nil {
		return domain.WeatherSnapshot{}, &RequestError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return domain.WeatherSnapshot{}, &RequestError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			log.Printf("weather: undecodable error body for %q (status %d): %v", city, resp.StatusCode, err)
		}
		return domain.WeatherSnapshot{}, &RequestError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	var data currentResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return domain.WeatherSnapshot{}, &RequestError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if len(data.Weather) == 0 {
		return domain.WeatherSnapshot{}, &RequestError{StatusCode: resp.StatusCode, Err: errNoConditions}
	}

	return domain.WeatherSnapshot{
		CityName:             data.Name,
		TemperatureCelsius:   data.Main.Temp,
		HumidityPercent:      int(math.Round(data.Main.Humidity)),
		WindSpeed:            data.Wind.Speed,
		ConditionCode:        data.Weather[0].ID,
		ConditionDescription: data.Weather[0].Description,
	}, nil
}

func (c *Client) requestURL(city string) string {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + q.Encode()
}
