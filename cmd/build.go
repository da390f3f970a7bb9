package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrxiaozhuox/karaty/internal/progress"
	"github.com/mrxiaozhuox/karaty/internal/site"
	"github.com/mrxiaozhuox/karaty/internal/source"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch remote page content and generate the static site",
	Long:  `Loads every page under the content source's pages folder, resolves each page's template, and writes the rendered HTML site to the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Int("concurrency", 0, "max parallel page fetches (overrides config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency > 0 {
		cfg.MaxConcurrency = concurrency
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Loading pages from %s source...\n", cfg.DataSource.Mode)
	}

	reporter := progress.NewReporter()

	generator := site.NewGenerator(cfg, source.NewFetcher(), outputDir)
	count, err := generator.Generate(ctx, progress.Callback(reporter))
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	if count == 0 {
		fmt.Println("No pages loaded from the content source; wrote an empty site.")
	}
	fmt.Printf("Static site generated: %s (%d pages, %s)\n", outputDir, count, time.Since(start).Round(time.Millisecond))
	return nil
}
