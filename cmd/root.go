package cmd

import (
	"context"
	"fmt"
	"os"

	"empctl/internal/app"

	"github.com/spf13/cobra"
)

var (
	// noTUI prints the directory as a table instead of starting the TUI.
	noTUI bool
	// debug enables verbose logging across the application.
	debug bool
	// configPath replaces the user and project config files.
	configPath string
	// apiURL overrides the configured directory API base URL.
	apiURL string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "empctl",
	Short: "Browse and maintain the employee directory from your terminal",
	Long: `empctl is a terminal front-end for the employee directory REST API.

1. Interactive TUI Mode (default):
   - Lists every employee with multi-select and bulk delete.
   - Adds employees through a validated form.
   - Shows a single employee and edits it in place or in the form.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Fetches the directory once and prints it as a table, then exits.

Configuration:
  empctl layers ~/.config/empctl/config.yaml, ./.empctl/config.yaml, .env files
  and EMPCTL_* environment variables. --config replaces the two config files.`,
	Args: cobra.NoArgs,
	RunE: runRoot,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreachable API, invalid configuration)
	SilenceUsage: true,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(noTUI, debug, configPath, apiURL)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "empctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Print the employee directory as a table and exit")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file to use instead of the user and project files")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Employee directory API base URL (overrides config)")
}
