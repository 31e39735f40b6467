package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
)

// Ensure CandidateStore implements the interface.
var _ driven.CandidateStore = (*CandidateStore)(nil)

// CandidateStore is an in-memory implementation of driven.CandidateStore.
// Each caller session owns its own store.
type CandidateStore struct {
	mu         sync.RWMutex
	order      []string
	candidates map[string]domain.Candidate
}

// NewCandidateStore creates a new in-memory candidate store.
func NewCandidateStore() *CandidateStore {
	return &CandidateStore{
		candidates: make(map[string]domain.Candidate),
	}
}

// Put adds or replaces a candidate.
func (s *CandidateStore) Put(_ context.Context, candidate domain.Candidate) error {
	if candidate.ID == "" {
		return fmt.Errorf("%w: candidate ID is required", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[candidate.ID]; !ok {
		s.order = append(s.order, candidate.ID)
	}
	s.candidates[candidate.ID] = candidate
	return nil
}

// Get retrieves a candidate by ID.
func (s *CandidateStore) Get(_ context.Context, id string) (*domain.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.candidates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// Remove discards a candidate.
func (s *CandidateStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.candidates, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all candidates in insertion order.
func (s *CandidateStore) List(_ context.Context) ([]domain.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Candidate, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.candidates[id])
	}
	return result, nil
}

// Len returns the number of candidates.
func (s *CandidateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates)
}
