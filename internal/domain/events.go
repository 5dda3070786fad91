package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventWeatherRequested EventType = "WeatherRequested"
	EventWeatherCompleted EventType = "WeatherCompleted"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WeatherRequestedEvent is emitted when a lookup is sent to the provider
type WeatherRequestedEvent struct {
	RequestID uint64
	City      string
	At        time.Time
}

func (e WeatherRequestedEvent) Type() EventType { return EventWeatherRequested }

// WeatherCompletedEvent is emitted when a lookup finishes, successfully or not
type WeatherCompletedEvent struct {
	RequestID uint64
	City      string
	Status    RequestStatus
	Message   string
	At        time.Time
}

func (e WeatherCompletedEvent) Type() EventType { return EventWeatherCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
