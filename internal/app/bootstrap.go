package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"empctl/internal/config"
	"empctl/internal/tui/design"
	"empctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs empctl
type Application struct {
	config   *Config
	services *Services
	out      io.Writer
}

// NewApplication loads and validates configuration, sets up logging and
// builds the API client.
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag; the config level is applied once loaded.
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stderr)

	var empctlCfg config.EmpctlConfig
	var err error

	if cfg.ConfigPath != "" {
		empctlCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load empctl configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load empctl configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		empctlCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load empctl configuration")
			return nil, fmt.Errorf("failed to load empctl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.applyFlags(&empctlCfg)
	if err := empctlCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.EmpctlConfig = &empctlCfg

	level, _ := logging.ParseLevel(empctlCfg.Logging.Level)
	if level != appLogLevel {
		logging.InitForCLI(level, os.Stderr)
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
		out:      os.Stdout,
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runCLIMode prints the directory and exits
func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.config, a.services, a.out)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	design.Initialize(string(a.config.EmpctlConfig.UI.Theme))
	return runTUIMode(ctx, a.config, a.services)
}
