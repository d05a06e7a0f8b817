package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/app"
	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/config"
	"github.com/justelson/devscope/internal/registry"
	"github.com/justelson/devscope/internal/scan"
	"github.com/justelson/devscope/internal/settings"
)

var rootCmd = &cobra.Command{
	Use:   "devscope",
	Short: "devscope – workstation developer-tool scanner",
	Long:  "devscope scans your workstation for installed developer tools (languages, package managers, AI coding agents), inspects Git repositories, and serves results over a local API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI dashboard
		sc, err := newScanner()
		if err != nil {
			return err
		}
		return app.Start(sc)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newScanner wires the catalog, user settings, and the persistent cache into
// one scanner. A cache path failure is the one error worth surfacing: without
// a config dir there is nowhere to persist anything.
func newScanner() (*scan.Scanner, error) {
	if err := registry.Validate(registry.Tools); err != nil {
		return nil, fmt.Errorf("built-in tool catalog invalid: %w", err)
	}
	path, err := config.CacheFile()
	if err != nil {
		return nil, err
	}
	sc := scan.New(cache.New(path), registry.Tools)
	sc.Concurrency = loadSettings().Concurrency
	return sc, nil
}

// loadSettings returns user settings, falling back to defaults when the file
// is unreadable; scanning still works without preferences.
func loadSettings() settings.Settings {
	prefs, err := settings.Load()
	if err != nil {
		return settings.Default()
	}
	return prefs
}

// cacheMaxAge converts the configured staleness window.
func cacheMaxAge(prefs settings.Settings) time.Duration {
	return time.Duration(prefs.CacheMaxAgeMinutes) * time.Minute
}
