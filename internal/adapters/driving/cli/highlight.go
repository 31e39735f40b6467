package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/resrank/internal/analysis/keywords"
	"github.com/custodia-labs/resrank/internal/core/domain"
)

const (
	ansiHighlight = "\x1b[1;33m"
	ansiReset     = "\x1b[0m"
)

var (
	highlightQuery    queryFlags
	highlightKeywords int
	highlightPlain    bool
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Print a resume with job description keywords highlighted",
	Long: `Extracts the resume text and marks every occurrence of the job description
keywords. On a terminal matches are coloured; otherwise the configured
highlight markers (default **) are used.`,
	Args: cobra.ExactArgs(1),
	RunE: runHighlight,
}

func init() {
	highlightQuery.register(highlightCmd)
	highlightCmd.Flags().IntVarP(&highlightKeywords, "keywords", "k", 0, "number of keywords to highlight (default from settings)")
	highlightCmd.Flags().BoolVar(&highlightPlain, "plain", false, "use text markers even on a terminal")
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	if rankingService == nil {
		return errRankingNotConfigured
	}

	ctx := cmd.Context()
	terms, err := queryKeywords(cmd, &highlightQuery, highlightKeywords)
	if err != nil {
		return err
	}

	candidate, err := loadCandidate(ctx, args[0])
	if err != nil {
		return err
	}

	var text string
	if !highlightPlain && isTerminal(cmd.OutOrStdout()) {
		extraction, err := rankingService.Extract(ctx, candidate)
		if err != nil {
			return err
		}
		text = keywords.HighlightFunc(extraction.Text, terms, func(s string) string {
			return ansiHighlight + s + ansiReset
		})
	} else {
		text, err = rankingService.Highlight(ctx, candidate, terms)
		if err != nil {
			return err
		}
	}

	cmd.Println(text)
	return nil
}

// queryKeywords loads the job description from q and extracts its keywords.
// count overrides the configured keyword count when the flag was set.
func queryKeywords(cmd *cobra.Command, q *queryFlags, count int) ([]string, error) {
	query, err := q.load(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("keywords") {
		settings, err := currentSettings()
		if err != nil {
			return nil, err
		}
		count = settings.KeywordCount
	}
	kws, err := rankingService.Keywords(cmd.Context(), query, count)
	if err != nil {
		return nil, err
	}
	return domain.Terms(kws), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
