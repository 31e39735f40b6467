package tui

import (
	"context"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// mockRankingService is a mock implementation of driving.RankingService.
type mockRankingService struct {
	result *domain.RankingResult
	err    error

	rankCalls int
	lastOpts  domain.RankOptions
}

func (m *mockRankingService) Rank(
	_ context.Context,
	_ string,
	_ []domain.Candidate,
	opts domain.RankOptions,
) (*domain.RankingResult, error) {
	m.rankCalls++
	m.lastOpts = opts
	return m.result, m.err
}

func (m *mockRankingService) Keywords(_ context.Context, _ string, _ int) ([]domain.Keyword, error) {
	return nil, m.err
}

func (m *mockRankingService) Extract(_ context.Context, c domain.Candidate) (*domain.Extraction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Extraction{Text: string(c.Content)}, nil
}

func (m *mockRankingService) Highlight(_ context.Context, c domain.Candidate, _ []string) (string, error) {
	return string(c.Content), m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.RankSettings
}

func (m *mockSettingsService) Get() (*domain.RankSettings, error) { return &m.settings, nil }

func (m *mockSettingsService) Save(_ *domain.RankSettings) error { return nil }

func (m *mockSettingsService) Set(_, _ string) error { return nil }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.RankSettings { return domain.DefaultRankSettings() }
