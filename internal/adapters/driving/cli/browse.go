package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resrank/internal/adapters/driving/tui"
	"github.com/custodia-labs/resrank/internal/connectors/filesystem"
)

var browseQuery queryFlags

var browseCmd = &cobra.Command{
	Use:   "browse [paths...]",
	Short: "Browse a ranking in the interactive terminal UI",
	Long: `Ranks the resumes and opens an interactive view of the result. Select a
candidate to read its text with the job description keywords highlighted.

Controls:
  ↑/k, ↓/j - Navigate candidates
  Enter    - Preview candidate
  r        - Re-rank
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseQuery.register(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) (err error) {
	if rankingService == nil {
		return errRankingNotConfigured
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	ctx := cmd.Context()
	query, err := browseQuery.load(ctx)
	if err != nil {
		return err
	}
	candidates, err := filesystem.Load(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	settings, err := currentSettings()
	if err != nil {
		return err
	}

	ports := &tui.Ports{Ranking: rankingService, Settings: settingsService}
	app, err := tui.NewApp(ports, tui.Request{
		Query:      query,
		Candidates: candidates,
		Options:    settings.Options(),
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
