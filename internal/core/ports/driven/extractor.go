package driven

import (
	"context"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// Extractor converts raw document bytes into plain text.
// Implementations must be pure: the same bytes always yield the same text,
// and nothing is written to persistent storage.
type Extractor interface {
	// Format returns the document format this extractor handles.
	Format() domain.Format

	// Extract returns the text of content.
	// An empty Text is not an error; image-only documents degrade to it.
	Extract(ctx context.Context, content []byte) (*domain.Extraction, error)
}

// ExtractorRegistry dispatches extraction by format.
type ExtractorRegistry interface {
	// Extract uses the extractor registered for format.
	// Returns domain.ErrUnsupportedFormat when none is registered.
	Extract(ctx context.Context, content []byte, format domain.Format) (*domain.Extraction, error)

	// Register adds or replaces the extractor for its format.
	Register(extractor Extractor)

	// Formats returns the registered formats in ascending order.
	Formats() []domain.Format
}
