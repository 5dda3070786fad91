package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/natefinch/lumberjack"

	"weathergrip/internal/config"
	"weathergrip/internal/eventbus"
	"weathergrip/internal/journal"
	"weathergrip/internal/ui"
	"weathergrip/internal/weather"
)

// journalTTL bounds how long an unanswered request is remembered
const journalTTL = 2 * time.Minute

func main() {
	var configPath, apiKey string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&apiKey, "key", "", "OpenWeatherMap API key, overrides the config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: weathergrip [-config path] [-key apikey] [city]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	city := strings.TrimSpace(strings.Join(flag.Args(), " "))

	// Set up logging; the TUI owns stdout. Start on the default log file so
	// events from config loading are kept, then switch if the config says so.
	logger := newLogger(config.DefaultConfig().Log)
	log.SetOutput(logger)
	defer func() { _ = logger.Close() }()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	j := journal.New(bus, journalTTL)
	defer j.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc, bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if cfg.Log != config.DefaultConfig().Log {
		_ = logger.Close()
		logger = newLogger(cfg.Log)
		log.SetOutput(logger)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	client := weather.NewClient(cfg.Endpoint, cfg.APIKey, &http.Client{Timeout: cfg.HTTP.Timeout})

	uiModel := ui.NewModel(ctx, cfg, client, bus)
	if city != "" {
		uiModel.SetInitialCity(city)
	}
	defer uiModel.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	if os.Getenv("WEATHERGRIP_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults first if
// there is none yet
func loadOrCreateConfig(configSvc config.ConfigService, bus eventbus.EventBus) (*config.Config, error) {
	if _, err := os.Stat(configSvc.Path()); errors.Is(err, fs.ErrNotExist) {
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			// Not fatal: run on defaults
			bus.Publish(eventbus.ErrorEvent{Message: "write default config", Err: err})
		}
	}
	return configSvc.Load()
}

func newLogger(settings config.LogSettings) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   settings.File,
		MaxSize:    settings.MaxSizeMB,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAgeDays,
	}
}
