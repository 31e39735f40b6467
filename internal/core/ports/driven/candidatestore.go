package driven

import (
	"context"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// CandidateStore holds uploaded candidates for one caller session.
// It replaces any process-wide upload state: the caller owns the store and
// passes its contents into each ranking call.
type CandidateStore interface {
	// Put adds or replaces a candidate. Replacing keeps the original
	// insertion position.
	Put(ctx context.Context, candidate domain.Candidate) error

	// Get retrieves a candidate by ID.
	Get(ctx context.Context, id string) (*domain.Candidate, error)

	// Remove discards a candidate.
	Remove(ctx context.Context, id string) error

	// List returns all candidates in insertion order.
	List(ctx context.Context) ([]domain.Candidate, error)

	// Len returns the number of candidates.
	Len() int
}
