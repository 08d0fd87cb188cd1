package config

import (
	"time"
)

// EmpctlConfig is the top-level configuration structure for empctl.
type EmpctlConfig struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Update  UpdateConfig  `yaml:"update"`
}

// APIConfig points the client at the employee directory service.
type APIConfig struct {
	BaseURL               string        `yaml:"baseURL,omitempty" env:"API_URL"`                             // e.g. "http://localhost:5000"
	Timeout               time.Duration `yaml:"timeout,omitempty" env:"API_TIMEOUT"`                         // per request
	BulkDeleteConcurrency int           `yaml:"bulkDeleteConcurrency,omitempty" env:"BULK_DELETE_CONCURRENCY"` // parallel DELETE calls
	UserAgent             string        `yaml:"userAgent,omitempty" env:"USER_AGENT"`
}

// Theme selects the lipgloss background assumption.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeAuto  Theme = "auto"
)

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	Theme         Theme         `yaml:"theme,omitempty" env:"THEME"`
	StatusTimeout time.Duration `yaml:"statusTimeout,omitempty" env:"STATUS_TIMEOUT"` // how long status bar messages stay
}

// LoggingConfig holds the default log level ("debug", "info", "warn", "error").
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" env:"LOG_LEVEL"`
}

// UpdateConfig controls the self-update command.
type UpdateConfig struct {
	Repository string `yaml:"repository,omitempty" env:"UPDATE_REPOSITORY"` // "owner/name" on GitHub
}
