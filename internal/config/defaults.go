package config

import "time"

const (
	DefaultBaseURL               = "http://localhost:5000"
	DefaultTimeout               = 10 * time.Second
	DefaultBulkDeleteConcurrency = 4
	DefaultStatusTimeout         = 3 * time.Second
	DefaultLogLevel              = "info"
	DefaultUpdateRepository      = "empctl/empctl"
)

// GetDefaultConfig returns the configuration used when no file or
// environment override is present.
func GetDefaultConfig() EmpctlConfig {
	return EmpctlConfig{
		API: APIConfig{
			BaseURL:               DefaultBaseURL,
			Timeout:               DefaultTimeout,
			BulkDeleteConcurrency: DefaultBulkDeleteConcurrency,
			UserAgent:             "empctl",
		},
		UI: UIConfig{
			Theme:         ThemeDark,
			StatusTimeout: DefaultStatusTimeout,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Update: UpdateConfig{
			Repository: DefaultUpdateRepository,
		},
	}
}
