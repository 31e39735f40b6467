package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Extraction Errors.

	// ErrUnsupportedFormat indicates the document format is not recognised.
	// Only .pdf, .docx and .txt documents can be ranked.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtractionEmpty indicates a document produced no text.
	// The candidate is excluded from scoring but stays in the caller's store.
	ErrExtractionEmpty = errors.New("extraction produced no text")

	// ErrDecodeFallback indicates text decoding degraded but succeeded.
	// It is informational and never aborts a ranking.
	ErrDecodeFallback = errors.New("text decoded with fallback encoding")

	// Ranking Errors.

	// ErrNoTerms indicates the corpus had no terms after stop-word filtering.
	ErrNoTerms = errors.New("no terms left after stop-word filtering")

	// ErrNoCandidates indicates no candidate survived extraction.
	// Ranking returns an empty list; callers use this to explain why.
	ErrNoCandidates = errors.New("no candidates to rank")
)
