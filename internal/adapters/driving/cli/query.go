package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resrank/internal/connectors/filesystem"
	"github.com/custodia-labs/resrank/internal/core/domain"
)

var (
	errRankingNotConfigured  = errors.New("ranking service not configured")
	errSettingsNotConfigured = errors.New("settings service not configured")
)

// queryFlags holds the job description flags shared by several commands.
type queryFlags struct {
	jdPath string
	text   string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.jdPath, "jd", "", "job description file (.txt, .pdf or .docx)")
	cmd.Flags().StringVarP(&q.text, "query", "q", "", "job description text")
}

func (q *queryFlags) reset() {
	q.jdPath, q.text = "", ""
}

// load returns the job description, preferring inline text over the file.
func (q *queryFlags) load(ctx context.Context) (string, error) {
	if strings.TrimSpace(q.text) != "" {
		return q.text, nil
	}
	if q.jdPath == "" {
		return "", fmt.Errorf("%w: --jd or --query is required", domain.ErrInvalidInput)
	}
	return filesystem.ReadQuery(ctx, q.jdPath, rankingService)
}

// currentSettings returns configured settings, or defaults when no settings
// service is wired.
func currentSettings() (domain.RankSettings, error) {
	if settingsService == nil {
		return domain.DefaultRankSettings(), nil
	}
	s, err := settingsService.Get()
	if err != nil {
		return domain.RankSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return *s, nil
}

// loadCandidate reads a single candidate file.
func loadCandidate(ctx context.Context, path string) (domain.Candidate, error) {
	loaded, err := filesystem.Load(ctx, []string{path})
	if err != nil {
		return domain.Candidate{}, err
	}
	if len(loaded) == 0 {
		return domain.Candidate{}, fmt.Errorf("%w: no supported documents in %s", domain.ErrInvalidInput, path)
	}
	return loaded[0], nil
}
