package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resrank/internal/connectors/filesystem"
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/logger"
	"github.com/custodia-labs/resrank/internal/report"
)

const defaultWatchDebounce = 500 * time.Millisecond

var (
	watchQuery    queryFlags
	watchDebounce time.Duration
	watchCSV      string
)

var watchCmd = &cobra.Command{
	Use:   "watch [folder]",
	Short: "Re-rank a folder whenever its resumes change",
	Long: `Ranks the resumes in a folder, then watches it and prints a fresh ranking
each time a resume is added, changed or removed. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchQuery.register(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", defaultWatchDebounce, "quiet period before re-ranking")
	watchCmd.Flags().StringVar(&watchCSV, "csv", "", "rewrite this CSV file after every ranking")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if rankingService == nil {
		return errRankingNotConfigured
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	query, err := watchQuery.load(ctx)
	if err != nil {
		return err
	}
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	opts := settings.Options()
	folder := args[0]

	rerank := func() error {
		result, err := rankPaths(ctx, query, []string{folder}, opts)
		if err != nil {
			return err
		}
		if watchCSV != "" {
			if err := report.SaveCSV(watchCSV, result); err != nil {
				return fmt.Errorf("failed to save CSV: %w", err)
			}
		}
		cmd.Printf("\n--- %s ---\n", time.Now().Format(time.TimeOnly))
		writeRanking(cmd.OutOrStdout(), result)
		return nil
	}

	if err := rerank(); err != nil {
		return err
	}

	watcher := filesystem.NewWatcher(folder)
	defer watcher.Close()
	changes, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", folder, err)
	}

	cmd.Printf("\nWatching %s for changes...\n", folder)
	return watchLoop(ctx, changes, watchDebounce, rerank)
}

// watchLoop calls rerank once changes have been quiet for delay. It returns
// nil when ctx is cancelled or changes is closed.
func watchLoop(ctx context.Context, changes <-chan domain.CandidateChange, delay time.Duration, rerank func() error) error {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				if fire != nil {
					return rerank()
				}
				return nil
			}
			logger.Debug("%s %s", change.Type, change.Path)
			fire = time.After(delay)
		case <-fire:
			fire = nil
			if err := rerank(); err != nil {
				logger.Warn("re-rank failed: %v", err)
			}
		}
	}
}
