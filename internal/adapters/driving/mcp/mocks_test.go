package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// mockRankingService is a mock implementation of driving.RankingService.
type mockRankingService struct {
	result    *domain.RankingResult
	keywords  []domain.Keyword
	err       error
	extractFn func(domain.Candidate) (*domain.Extraction, error)

	lastQuery      string
	lastCandidates []domain.Candidate
	lastOpts       domain.RankOptions
	lastKeywords   []string
	lastTopK       int
}

func (m *mockRankingService) Rank(
	_ context.Context,
	query string,
	candidates []domain.Candidate,
	opts domain.RankOptions,
) (*domain.RankingResult, error) {
	m.lastQuery = query
	m.lastCandidates = candidates
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.RankingResult{ID: "result-1", Query: query, Candidates: []domain.ScoredCandidate{}}, nil
}

func (m *mockRankingService) Keywords(_ context.Context, _ string, topK int) ([]domain.Keyword, error) {
	m.lastTopK = topK
	if m.err != nil {
		return nil, m.err
	}
	if len(m.keywords) > topK {
		return m.keywords[:topK], nil
	}
	return m.keywords, nil
}

func (m *mockRankingService) Extract(_ context.Context, c domain.Candidate) (*domain.Extraction, error) {
	if m.extractFn != nil {
		return m.extractFn(c)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Extraction{Text: string(c.Content)}, nil
}

func (m *mockRankingService) Highlight(_ context.Context, c domain.Candidate, keywords []string) (string, error) {
	m.lastKeywords = keywords
	if m.err != nil {
		return "", m.err
	}
	text := string(c.Content)
	for _, k := range keywords {
		text = strings.ReplaceAll(text, k, "**"+k+"**")
	}
	return text, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.RankSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.RankSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings != nil {
		return m.settings, nil
	}
	s := domain.DefaultRankSettings()
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.RankSettings) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.RankSettings { return domain.DefaultRankSettings() }
