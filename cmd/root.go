package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrxiaozhuox/karaty/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "karaty",
	Short: "Remote-content static site generator",
	Long: `Karaty builds and serves a static website from page content kept in a
git-hosted repository. Markdown pages render as centered prose, JSON pages
render as card grids, and per-page template tables in karaty.yml select the
renderer variant and typographic styling.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "karaty.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}
