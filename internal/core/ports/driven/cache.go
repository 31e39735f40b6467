package driven

import "github.com/custodia-labs/resrank/internal/core/domain"

// ExtractionCache memoises extraction results by content.
// Keys combine the format and the content hash, so stale entries cannot
// occur: different bytes always hash differently.
type ExtractionCache interface {
	// Get returns the cached extraction for key.
	Get(key string) (*domain.Extraction, bool)

	// Put stores an extraction under key.
	Put(key string, extraction *domain.Extraction)

	// Len returns the number of cached entries.
	Len() int
}
