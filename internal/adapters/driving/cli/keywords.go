package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	keywordsQuery queryFlags
	keywordsCount int
	keywordsJSON  bool
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract keywords from a job description",
	Long: `Lists the most salient terms of a job description, weighted by TF-IDF
across its sentences.`,
	Args: cobra.NoArgs,
	RunE: runKeywords,
}

func init() {
	keywordsQuery.register(keywordsCmd)
	keywordsCmd.Flags().IntVarP(&keywordsCount, "keywords", "k", 0, "maximum number of keywords (default from settings)")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "output keywords as JSON")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	if rankingService == nil {
		return errRankingNotConfigured
	}

	ctx := cmd.Context()
	query, err := keywordsQuery.load(ctx)
	if err != nil {
		return err
	}

	topK := keywordsCount
	if !cmd.Flags().Changed("keywords") {
		settings, err := currentSettings()
		if err != nil {
			return err
		}
		topK = settings.KeywordCount
	}

	kws, err := rankingService.Keywords(ctx, query, topK)
	if err != nil {
		return fmt.Errorf("keyword extraction failed: %w", err)
	}

	if keywordsJSON {
		data, err := json.MarshalIndent(kws, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal keywords: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(kws) == 0 {
		cmd.Println("No keywords found.")
		return nil
	}
	for i, k := range kws {
		cmd.Printf("  %2d. %-30s %.4f\n", i+1, k.Term, k.Weight)
	}
	return nil
}
