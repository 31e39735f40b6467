package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/resrank/internal/analysis/keywords"
)

var (
	previewQuery    queryFlags
	previewKeywords int
	previewSnippets int
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Print the text extracted from a resume",
	Long: `Prints the plain text resrank extracts from a resume. With --jd or --query
only short excerpts around keyword matches are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewQuery.register(previewCmd)
	previewCmd.Flags().IntVarP(&previewKeywords, "keywords", "k", 0, "number of keywords to look for (default from settings)")
	previewCmd.Flags().IntVar(&previewSnippets, "snippets", 3, "number of excerpts to show")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if rankingService == nil {
		return errRankingNotConfigured
	}

	ctx := cmd.Context()
	candidate, err := loadCandidate(ctx, args[0])
	if err != nil {
		return err
	}
	extraction, err := rankingService.Extract(ctx, candidate)
	if err != nil {
		return err
	}

	if previewQuery.jdPath == "" && previewQuery.text == "" {
		cmd.Println(extraction.Text)
		if extraction.Degraded {
			cmd.PrintErrln("warning: decoded with fallback encoding")
		}
		return nil
	}

	terms, err := queryKeywords(cmd, &previewQuery, previewKeywords)
	if err != nil {
		return err
	}
	snippets := keywords.Snippets(extraction.Text, terms, previewSnippets, 0)
	if len(snippets) == 0 {
		cmd.Println("No keyword matches.")
		return nil
	}
	for _, s := range snippets {
		cmd.Printf("  %s\n", s)
	}
	return nil
}
