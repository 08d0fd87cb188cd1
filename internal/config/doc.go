// Package config provides configuration management for empctl.
//
// Configuration is layered. Later sources override earlier ones field by
// field; a zero value never clears a setting from a lower layer.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - Points at a backend on http://localhost:5000
//
//  2. User Configuration (~/.config/empctl/config.yaml)
//     - Personal preferences shared by every checkout
//
//  3. Project Configuration (./.empctl/config.yaml)
//     - Settings committed alongside a project
//
//  4. Environment
//     - .env and .env.local in the working directory, when present
//     - EMPCTL_* variables, e.g. EMPCTL_API_URL or EMPCTL_LOG_LEVEL
//
// # Configuration Structure
//
//	api:
//	  baseURL: "http://localhost:5000"
//	  timeout: 10s
//	  bulkDeleteConcurrency: 4
//	ui:
//	  theme: dark          # dark, light or auto
//	  statusTimeout: 3s
//	logging:
//	  level: info
//	update:
//	  repository: empctl/empctl
//
// LoadConfigFromPath replaces layers 2 and 3 with a single explicit file and
// is what the --config flag uses.
package config
