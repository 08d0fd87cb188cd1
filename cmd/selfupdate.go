package cmd

import (
	"context"
	"fmt"
	"runtime"

	"empctl/internal/config"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the release repository used when the config does not name one.
const githubRepoSlug = config.DefaultUpdateRepository

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update empctl to the latest version",
		Long: `Checks for the latest release of empctl on GitHub and
updates the current binary if a newer version is found.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

// releaseRepository returns the configured update repository, falling back
// to githubRepoSlug when the config cannot be read or leaves it empty.
func releaseRepository() string {
	var (
		cfg config.EmpctlConfig
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfigFromPath(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil || cfg.Update.Repository == "" {
		return githubRepoSlug
	}
	return cfg.Update.Repository
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return fmt.Errorf("failed to create GitHub source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	repo := releaseRepository()
	fmt.Printf("Checking %s for updates (current version %s)...\n", repo, currentVersion)
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found in %s", runtime.GOOS, runtime.GOARCH, repo)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Printf("Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	fmt.Printf("Updating to version %s...\n", latest.Version())
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}
	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
