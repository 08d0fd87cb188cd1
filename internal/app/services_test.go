package app

import (
	"strings"
	"testing"

	"empctl/internal/api"
	"empctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		expectError bool
	}{
		{name: "default base url", baseURL: config.DefaultBaseURL},
		{name: "https with path", baseURL: "https://directory.example.com/v1/"},
		{name: "empty base url", baseURL: "", expectError: true},
		{name: "unsupported scheme", baseURL: "ftp://directory.example.com", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			empctlCfg := config.GetDefaultConfig()
			empctlCfg.API.BaseURL = tt.baseURL
			cfg := &Config{EmpctlConfig: &empctlCfg}

			services, err := InitializeServices(cfg)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, services)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, services)

			_, ok := services.API.(*api.HTTPClient)
			require.True(t, ok, "expected the HTTP client, got %T", services.API)
			assert.Equal(t, strings.TrimRight(tt.baseURL, "/"), services.BaseURL)
		})
	}
}
