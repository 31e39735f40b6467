package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resrank/internal/connectors/filesystem"
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/report"
)

var (
	rankQuery    queryFlags
	rankMinScore float64
	rankTop      int
	rankKeywords int
	rankParallel bool
	rankJSON     bool
	rankCSV      string
)

var rankCmd = &cobra.Command{
	Use:   "rank [paths...]",
	Short: "Rank resumes against a job description",
	Long: `Scores each resume by TF-IDF cosine similarity to the job description and
lists them best match first. Folders are searched recursively for .pdf,
.docx and .txt files. Files that cannot be read are listed as excluded.

Flags left unset fall back to the configured settings (see "resrank settings").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRank,
}

func init() {
	rankQuery.register(rankCmd)
	rankCmd.Flags().Float64Var(&rankMinScore, "min-score", 0, "drop candidates scoring below this percentage (0-100)")
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 0, "show only the best N candidates (0 shows all)")
	rankCmd.Flags().IntVarP(&rankKeywords, "keywords", "k", 0, "number of job description keywords to show")
	rankCmd.Flags().BoolVar(&rankParallel, "parallel", false, "extract documents concurrently")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "output results as JSON")
	rankCmd.Flags().StringVar(&rankCSV, "csv", "", "also save the ranking to this CSV file")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	if rankingService == nil {
		return errRankingNotConfigured
	}

	ctx := cmd.Context()
	query, err := rankQuery.load(ctx)
	if err != nil {
		return err
	}

	opts, err := rankOptions(cmd)
	if err != nil {
		return err
	}

	result, err := rankPaths(ctx, query, args, opts)
	if err != nil {
		return err
	}

	if rankCSV != "" {
		if err := report.SaveCSV(rankCSV, result); err != nil {
			return fmt.Errorf("failed to save CSV: %w", err)
		}
	}

	if rankJSON {
		return report.WriteJSON(cmd.OutOrStdout(), result)
	}
	writeRanking(cmd.OutOrStdout(), result)
	if rankCSV != "" {
		cmd.Printf("Saved to %s\n", rankCSV)
	}
	return nil
}

// rankOptions starts from the configured settings and applies any flags the
// user set explicitly.
func rankOptions(cmd *cobra.Command) (domain.RankOptions, error) {
	settings, err := currentSettings()
	if err != nil {
		return domain.RankOptions{}, err
	}
	opts := settings.Options()

	flags := cmd.Flags()
	if flags.Changed("min-score") {
		opts.MinScore = rankMinScore
	}
	if flags.Changed("top") {
		opts.TopN = rankTop
	}
	if flags.Changed("keywords") {
		opts.KeywordCount = rankKeywords
	}
	if flags.Changed("parallel") {
		opts.Parallel = rankParallel
	}
	return opts, nil
}

// rankPaths loads the candidates under paths and ranks them.
func rankPaths(ctx context.Context, query string, paths []string, opts domain.RankOptions) (*domain.RankingResult, error) {
	candidates, err := filesystem.Load(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	result, err := rankingService.Rank(ctx, query, candidates, opts)
	if err != nil {
		return nil, fmt.Errorf("ranking failed: %w", err)
	}
	return result, nil
}

// writeRanking prints a human-readable ranking.
func writeRanking(w io.Writer, result *domain.RankingResult) {
	if len(result.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords: %s\n\n", strings.Join(domain.Terms(result.Keywords), ", "))
	}

	if len(result.Candidates) == 0 {
		fmt.Fprintln(w, "No matching candidates.")
	} else {
		fmt.Fprintf(w, "Ranking (%d of %d candidates):\n\n", len(result.Candidates), result.Total)
		for i, c := range result.Candidates {
			fmt.Fprintf(w, "  [%d] %-40s %8s\n", i+1, c.CandidateID, report.FormatPercent(c.Score))
		}
	}

	if len(result.Degraded) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Decoded with fallback encoding:")
		for _, id := range result.Degraded {
			fmt.Fprintf(w, "  - %s\n", id)
		}
	}

	if len(result.Excluded) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Excluded:")
		for _, e := range result.Excluded {
			fmt.Fprintf(w, "  - %s: %s\n", e.CandidateID, e.Message())
		}
	}
}
