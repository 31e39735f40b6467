package services

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/resrank/internal/analysis/keywords"
	"github.com/custodia-labs/resrank/internal/analysis/rank"
	"github.com/custodia-labs/resrank/internal/analysis/tfidf"
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
	"github.com/custodia-labs/resrank/internal/core/ports/driving"
	"github.com/custodia-labs/resrank/internal/logger"
	"github.com/custodia-labs/resrank/internal/metrics"
)

// Ensure RankingService implements the interface.
var _ driving.RankingService = (*RankingService)(nil)

// RankingService orchestrates extraction, vectorisation, scoring and
// keyword extraction for one request at a time. It keeps no state between
// requests beyond what the extractor registry caches.
type RankingService struct {
	extractors driven.ExtractorRegistry
	settings   driving.SettingsService
	workers    int
}

// RankingOption configures a RankingService.
type RankingOption func(*RankingService)

// WithSettings reads vectoriser and highlight configuration from settings.
func WithSettings(settings driving.SettingsService) RankingOption {
	return func(s *RankingService) {
		s.settings = settings
	}
}

// WithWorkers bounds parallel extraction. Non-positive values use NumCPU.
func WithWorkers(n int) RankingOption {
	return func(s *RankingService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewRankingService creates a ranking service over extractors.
func NewRankingService(extractors driven.ExtractorRegistry, opts ...RankingOption) *RankingService {
	s := &RankingService{
		extractors: extractors,
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// extracted is the extraction outcome for one candidate.
type extracted struct {
	extraction *domain.Extraction
	err        error
}

// Rank scores candidates against query.
func (s *RankingService) Rank(
	ctx context.Context,
	query string,
	candidates []domain.Candidate,
	opts domain.RankOptions,
) (*domain.RankingResult, error) {
	start := time.Now()
	if err := validateRequest(candidates, opts); err != nil {
		return nil, err
	}

	result := &domain.RankingResult{
		ID:         uuid.NewString(),
		Query:      query,
		Candidates: []domain.ScoredCandidate{},
		Total:      len(candidates),
	}
	log := logger.L().With(zap.String("ranking", result.ID))

	logger.Section("Extraction")
	outcomes, err := s.extractAll(ctx, candidates, opts.Parallel)
	if err != nil {
		metrics.RankingsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	docs := make([]string, 0, len(candidates))
	positions := make([]int, 0, len(candidates))
	for i, c := range candidates {
		text, ok := s.classify(result, c, outcomes[i])
		if !ok {
			continue
		}
		docs = append(docs, text)
		positions = append(positions, i)
	}
	log.Debug("extraction complete",
		zap.Int("retained", len(docs)),
		zap.Int("excluded", len(result.Excluded)),
		zap.Int("degraded", len(result.Degraded)))

	logger.Section("Scoring")
	settings := s.currentSettings()
	vectorizer := tfidf.NewVectorizer(
		tfidf.WithNgramRange(1, settings.NgramMax),
		tfidf.WithMaxFeatures(settings.MaxFeatures),
	)
	scores := vectorizer.Scores(query, docs)
	if scores == nil && len(docs) > 0 {
		logger.Warn("No terms left after stop-word filtering, %d candidate(s) unscored", len(docs))
		for _, pos := range positions {
			result.Excluded = append(result.Excluded, domain.Exclusion{
				CandidateID: candidates[pos].ID, Reason: domain.ExclusionNoTerms, Err: domain.ErrNoTerms,
			})
		}
	}

	scored := make([]domain.ScoredCandidate, len(scores))
	for j, score := range scores {
		pos := positions[j]
		scored[j] = domain.ScoredCandidate{
			CandidateID: candidates[pos].ID,
			Score:       score,
			Position:    pos,
		}
		log.Debug("scored", zap.String("candidate", candidates[pos].ID), zap.Float64("score", score))
	}
	result.Candidates = rank.Rank(scored, opts.MinScore, opts.TopN)

	if opts.KeywordCount > 0 {
		result.Keywords = keywords.NewExtractor(settings.KeywordMaxFeatures).Extract(query, opts.KeywordCount)
	}

	status := "ok"
	if result.IsEmpty() {
		status = "empty"
	}
	metrics.RankingsTotal.WithLabelValues(status).Inc()
	metrics.RankingDuration.Observe(time.Since(start).Seconds())
	logger.Info("Ranked %d of %d candidates in %s", len(result.Candidates), result.Total, time.Since(start).Round(time.Millisecond))
	return result, nil
}

// validateRequest rejects option values outside their ranges and duplicate
// candidate IDs.
func validateRequest(candidates []domain.Candidate, opts domain.RankOptions) error {
	if opts.MinScore < 0 || opts.MinScore > 100 {
		return fmt.Errorf("%w: min score %.2f outside 0-100", domain.ErrInvalidInput, opts.MinScore)
	}
	if opts.KeywordCount < 0 {
		return fmt.Errorf("%w: keyword count must not be negative", domain.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c.ID == "" {
			return fmt.Errorf("%w: candidate ID is required", domain.ErrInvalidInput)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate candidate %q", domain.ErrInvalidInput, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// classify records exclusions and degradations for one candidate and
// returns its text when it can be scored.
func (s *RankingService) classify(result *domain.RankingResult, c domain.Candidate, out extracted) (string, bool) {
	format := c.Format.String()
	switch {
	case errors.Is(out.err, domain.ErrUnsupportedFormat):
		metrics.ExtractionsTotal.WithLabelValues(format, "unsupported").Inc()
		logger.Warn("Skipping %s: unsupported format", c.ID)
		result.Excluded = append(result.Excluded, domain.Exclusion{
			CandidateID: c.ID, Reason: domain.ExclusionUnsupportedFormat, Err: out.err,
		})
		return "", false
	case out.err != nil:
		metrics.ExtractionsTotal.WithLabelValues(format, "error").Inc()
		logger.Warn("Skipping %s: %v", c.ID, out.err)
		result.Excluded = append(result.Excluded, domain.Exclusion{
			CandidateID: c.ID, Reason: domain.ExclusionExtractionFailed, Err: out.err,
		})
		return "", false
	case strings.TrimSpace(out.extraction.Text) == "":
		metrics.ExtractionsTotal.WithLabelValues(format, "empty").Inc()
		logger.Warn("Skipping %s: no text extracted", c.ID)
		result.Excluded = append(result.Excluded, domain.Exclusion{
			CandidateID: c.ID, Reason: domain.ExclusionExtractionEmpty, Err: domain.ErrExtractionEmpty,
		})
		return "", false
	}

	if out.extraction.Degraded {
		metrics.ExtractionsTotal.WithLabelValues(format, "degraded").Inc()
		logger.Debug("%s: %v", c.ID, domain.ErrDecodeFallback)
		result.Degraded = append(result.Degraded, c.ID)
	} else {
		metrics.ExtractionsTotal.WithLabelValues(format, "ok").Inc()
	}
	return out.extraction.Text, true
}

// extractAll extracts every candidate. Results are indexed by candidate
// position regardless of completion order. Only context cancellation
// aborts; per-candidate errors are returned in the outcomes.
func (s *RankingService) extractAll(ctx context.Context, candidates []domain.Candidate, parallel bool) ([]extracted, error) {
	outcomes := make([]extracted, len(candidates))

	if !parallel || len(candidates) < 2 {
		for i, c := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			outcomes[i] = s.extractOne(ctx, c)
		}
		return outcomes, nil
	}

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i, c := range candidates {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, c domain.Candidate) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = s.extractOne(ctx, c)
		}(i, c)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (s *RankingService) extractOne(ctx context.Context, c domain.Candidate) extracted {
	extraction, err := s.Extract(ctx, c)
	if err == nil {
		logger.Debug("Extracted %s (%s, %d chars)", c.ID, c.Format, len(extraction.Text))
	}
	return extracted{extraction: extraction, err: err}
}

// Keywords extracts up to topK salient terms from query.
func (s *RankingService) Keywords(_ context.Context, query string, topK int) ([]domain.Keyword, error) {
	if topK < 0 {
		return nil, fmt.Errorf("%w: keyword count must not be negative", domain.ErrInvalidInput)
	}
	settings := s.currentSettings()
	return keywords.NewExtractor(settings.KeywordMaxFeatures).Extract(query, topK), nil
}

// Extract returns the text of a single candidate.
func (s *RankingService) Extract(ctx context.Context, candidate domain.Candidate) (*domain.Extraction, error) {
	if !candidate.Format.IsSupported() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, candidate.ID)
	}
	extraction, err := s.extractors.Extract(ctx, candidate.Content, candidate.Format)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", candidate.ID, err)
	}
	return extraction, nil
}

// Highlight extracts candidate text and wraps keyword occurrences with the
// configured markers.
func (s *RankingService) Highlight(ctx context.Context, candidate domain.Candidate, kws []string) (string, error) {
	extraction, err := s.Extract(ctx, candidate)
	if err != nil {
		return "", err
	}
	settings := s.currentSettings()
	marker := keywords.Marker{Open: settings.HighlightOpen, Close: settings.HighlightClose}
	return keywords.Highlight(extraction.Text, kws, marker), nil
}

// currentSettings returns configured settings, or defaults when there is
// no settings service or it fails.
func (s *RankingService) currentSettings() domain.RankSettings {
	if s.settings == nil {
		return domain.DefaultRankSettings()
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultRankSettings()
	}
	return *settings
}
