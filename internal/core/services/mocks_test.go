package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/resrank/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
)

// failingConfigStore rejects every write.
type failingConfigStore struct {
	*memory.ConfigStore
	err error
}

func (s *failingConfigStore) Set(_ string, _ any) error {
	return s.err
}

// mockRegistry implements driven.ExtractorRegistry with canned results per
// candidate content.
type mockRegistry struct {
	mu      sync.Mutex
	results map[string]*domain.Extraction
	errs    map[string]error
	calls   int
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{
		results: make(map[string]*domain.Extraction),
		errs:    make(map[string]error),
	}
}

func (r *mockRegistry) text(content, text string) *mockRegistry {
	r.results[content] = &domain.Extraction{Text: text}
	return r
}

func (r *mockRegistry) Extract(ctx context.Context, content []byte, format domain.Format) (*domain.Extraction, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !format.IsSupported() {
		return nil, domain.ErrUnsupportedFormat
	}
	if err := r.errs[string(content)]; err != nil {
		return nil, err
	}
	if result, ok := r.results[string(content)]; ok {
		return result, nil
	}
	return &domain.Extraction{Text: string(content)}, nil
}

func (r *mockRegistry) Register(_ driven.Extractor) {}

func (r *mockRegistry) Formats() []domain.Format {
	return []domain.Format{domain.FormatPDF, domain.FormatDOCX, domain.FormatText}
}
