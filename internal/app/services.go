package app

import (
	"fmt"

	"empctl/internal/api"
)

// Services holds the clients the modes run against.
type Services struct {
	API api.EmployeeAPI
	// BaseURL is the normalized API root the client talks to.
	BaseURL string
}

// InitializeServices builds the directory API client from the loaded configuration.
func InitializeServices(cfg *Config) (*Services, error) {
	apiCfg := cfg.EmpctlConfig.API
	client, err := api.NewHTTPClient(api.Options{
		BaseURL:   apiCfg.BaseURL,
		Timeout:   apiCfg.Timeout,
		UserAgent: apiCfg.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return &Services{API: client, BaseURL: client.BaseURL()}, nil
}
