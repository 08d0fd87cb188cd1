package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"empctl/pkg/logging"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/empctl"
	projectConfigDir = ".empctl"
	configFileName   = "config.yaml"
	envPrefix        = "EMPCTL_"
	subsystem        = "Config"
)

// dotenvFiles are loaded, when present, before environment overrides are read.
var dotenvFiles = []string{".env", ".env.local"}

// LoadConfig loads the empctl configuration by layering default, user, project
// and environment settings.
func LoadConfig() (EmpctlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn(subsystem, "Could not determine user config path: %v", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return EmpctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn(subsystem, "Could not determine project config path: %v", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return EmpctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	// 4. .env files and EMPCTL_* variables
	if config, err = applyEnvironment(config); err != nil {
		return EmpctlConfig{}, err
	}

	return config, nil
}

// LoadConfigFromPath loads defaults, then the single file at path, then the
// environment. Unlike LoadConfig, a missing file is an error.
func LoadConfigFromPath(path string) (EmpctlConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return EmpctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), fileConfig)
	return applyEnvironment(config)
}

func overlayFile(base EmpctlConfig, path string) (EmpctlConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return EmpctlConfig{}, err
	}
	logging.Debug(subsystem, "Merged configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an EmpctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (EmpctlConfig, error) {
	var config EmpctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return EmpctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return EmpctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay EmpctlConfig) EmpctlConfig {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Timeout != 0 {
		merged.API.Timeout = overlay.API.Timeout
	}
	if overlay.API.BulkDeleteConcurrency != 0 {
		merged.API.BulkDeleteConcurrency = overlay.API.BulkDeleteConcurrency
	}
	if overlay.API.UserAgent != "" {
		merged.API.UserAgent = overlay.API.UserAgent
	}

	if overlay.UI.Theme != "" {
		merged.UI.Theme = overlay.UI.Theme
	}
	if overlay.UI.StatusTimeout != 0 {
		merged.UI.StatusTimeout = overlay.UI.StatusTimeout
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}

// loadDotenv loads whichever of dotenvFiles exist. Variables already set in the
// process environment win.
func loadDotenv() error {
	existing := make([]string, 0, len(dotenvFiles))
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func applyEnvironment(base EmpctlConfig) (EmpctlConfig, error) {
	if err := loadDotenv(); err != nil {
		return EmpctlConfig{}, fmt.Errorf("error loading .env files: %w", err)
	}

	var fromEnv EmpctlConfig
	if err := env.ParseWithOptions(&fromEnv, env.Options{Prefix: envPrefix}); err != nil {
		return EmpctlConfig{}, fmt.Errorf("error parsing %s environment variables: %w", envPrefix, err)
	}
	return mergeConfigs(base, fromEnv), nil
}

// Validate reports the first invalid setting.
func (c EmpctlConfig) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.baseURL %q must be an absolute http(s) URL", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.BulkDeleteConcurrency <= 0 {
		return fmt.Errorf("api.bulkDeleteConcurrency must be positive, got %d", c.API.BulkDeleteConcurrency)
	}
	switch c.UI.Theme {
	case ThemeDark, ThemeLight, ThemeAuto:
	default:
		return fmt.Errorf("ui.theme must be one of dark, light, auto; got %q", c.UI.Theme)
	}
	if c.UI.StatusTimeout <= 0 {
		return fmt.Errorf("ui.statusTimeout must be positive, got %s", c.UI.StatusTimeout)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Update.Repository != "" && strings.Count(c.Update.Repository, "/") != 1 {
		return fmt.Errorf("update.repository %q must look like owner/name", c.Update.Repository)
	}
	return nil
}
