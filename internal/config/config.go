package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"weathergrip/internal/eventbus"
	"weathergrip/internal/weather"
)

// EnvPrefix prefixes environment overrides, e.g. WEATHERGRIP_API_KEY
const EnvPrefix = "WEATHERGRIP"

// Config represents the application configuration
type Config struct {
	Version  int          `toml:"version" mapstructure:"version"`
	APIKey   string       `toml:"api_key" mapstructure:"api_key"`
	Endpoint string       `toml:"endpoint" mapstructure:"endpoint"`
	HTTP     HTTPSettings `toml:"http" mapstructure:"http"`
	UI       UISettings   `toml:"ui" mapstructure:"ui"`
	Log      LogSettings  `toml:"log" mapstructure:"log"`
}

// HTTPSettings configures the provider client
type HTTPSettings struct {
	// Timeout of 0 leaves the transport default in place
	Timeout time.Duration `toml:"timeout" mapstructure:"timeout"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Animations bool `toml:"animations" mapstructure:"animations"`
	Mouse      bool `toml:"mouse" mapstructure:"mouse"`
}

// LogSettings configures the rotating log file
type LogSettings struct {
	File       string `toml:"file" mapstructure:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" mapstructure:"max_age_days"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "weathergrip", "config.toml")
}

// NewConfigService creates a config service for the given file; an empty
// path uses DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back to
// defaults plus environment overrides when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := load(cs.filePath, true)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Endpoint: cfg.Endpoint,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, false)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds an API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func load(path string, allowMissing bool) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.Is(err, os.ErrNotExist), errors.As(err, &notFound):
			if !allowMissing {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = weather.DefaultEndpoint
	}

	return &cfg, nil
}

// newViper returns a viper instance with defaults and environment overrides
func newViper() *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("version", def.Version)
	v.SetDefault("api_key", def.APIKey)
	v.SetDefault("endpoint", def.Endpoint)
	v.SetDefault("http.timeout", def.HTTP.Timeout)
	v.SetDefault("ui.animations", def.UI.Animations)
	v.SetDefault("ui.mouse", def.UI.Mouse)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		APIKey:   "",
		Endpoint: weather.DefaultEndpoint,
		UI: UISettings{
			Animations: true,
			Mouse:      true,
		},
		Log: LogSettings{
			File:       "weathergrip.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
