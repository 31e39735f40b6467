package driving

import (
	"context"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// RankingService ranks candidates against a query and renders previews.
type RankingService interface {
	// Rank scores candidates against query. Per-candidate failures are
	// reported in the result's Excluded list and never abort the request.
	Rank(ctx context.Context, query string, candidates []domain.Candidate, opts domain.RankOptions) (*domain.RankingResult, error)

	// Keywords extracts up to topK salient terms from query.
	Keywords(ctx context.Context, query string, topK int) ([]domain.Keyword, error)

	// Extract returns the text of a single candidate, using the cache.
	Extract(ctx context.Context, candidate domain.Candidate) (*domain.Extraction, error)

	// Highlight extracts candidate text and marks the given keywords in it.
	Highlight(ctx context.Context, candidate domain.Candidate, keywords []string) (string, error)
}
