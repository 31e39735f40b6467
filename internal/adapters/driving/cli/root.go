// Package cli implements the resrank command line with cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resrank/internal/adapters/driven/config/file"
	"github.com/custodia-labs/resrank/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resrank/internal/core/ports/driving"
	"github.com/custodia-labs/resrank/internal/core/services"
	"github.com/custodia-labs/resrank/internal/extractors"
	"github.com/custodia-labs/resrank/internal/logger"
)

// annotationNoServices marks commands that run without the ranking services.
const annotationNoServices = "resrank/no-services"

var (
	version = "dev"

	rankingService  driving.RankingService
	settingsService driving.SettingsService

	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "resrank",
	Short: "Rank resumes against a job description",
	Long: `resrank scores resumes (PDF, DOCX or plain text) against a job description
using TF-IDF cosine similarity and lists them best match first.

Examples:
  resrank rank --jd job.txt resumes/
  resrank rank --query "senior go engineer" alice.pdf bob.docx --top 5
  resrank highlight --jd job.txt alice.pdf`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.resrank)")
}

// Execute runs the root command. Command output goes to stdout.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services the commands use.
func SetServices(ranking driving.RankingService, settings driving.SettingsService) {
	rankingService = ranking
	settingsService = settings
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if cmd.Annotations[annotationNoServices] == "true" || rankingService != nil {
		return nil
	}
	return initServices(configDir)
}

// initServices wires the file-backed settings and the cached extractor
// registry into the ranking service.
func initServices(dir string) error {
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
		dir = d
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Debug("config: %s", store.Path())

	settings := services.NewSettingsService(store)
	registry := extractors.NewCachingRegistry(extractors.DefaultRegistry(), memory.NewExtractionCache())
	SetServices(services.NewRankingService(registry, services.WithSettings(settings)), settings)
	return nil
}
