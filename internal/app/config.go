package app

import (
	"empctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces the user and project config files when set.
	ConfigPath string

	// APIURL overrides api.baseURL from the config files and environment.
	APIURL string

	// Loaded directory configuration
	EmpctlConfig *config.EmpctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath, apiURL string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
		APIURL:     apiURL,
	}
}

// applyFlags lays the command line overrides over the loaded configuration.
func (c *Config) applyFlags(cfg *config.EmpctlConfig) {
	if c.APIURL != "" {
		cfg.API.BaseURL = c.APIURL
	}
	if c.Debug {
		cfg.Logging.Level = "debug"
	}
}
