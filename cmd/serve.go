package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrxiaozhuox/karaty/internal/site"
	"github.com/mrxiaozhuox/karaty/internal/source"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site directly from the remote content source",
	Long: `Loads all pages into memory and serves the rendered site over HTTP.
POST /api/reload re-fetches the content source; connected /ws websocket
clients are notified when the reload completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")

		srv := site.NewServer(cfg, source.NewFetcher())
		if err := srv.Start(context.Background(), port, open); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the local server")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}
