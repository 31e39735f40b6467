package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Candidate is a document supplied for ranking.
// ID is unique within a request; uploads use the filename.
type Candidate struct {
	// ID is the unique candidate name.
	ID string

	// Content is the raw document bytes.
	Content []byte

	// Format is the declared encoding of Content.
	Format Format
}

// NewCandidate creates a candidate whose format is detected from its name.
func NewCandidate(name string, content []byte) Candidate {
	return Candidate{
		ID:      name,
		Content: content,
		Format:  DetectFormat(name),
	}
}

// ContentHash returns the hex SHA-256 digest of the raw bytes.
func (c Candidate) ContentHash() string {
	return ContentHash(c.Content)
}

// ContentHash returns the hex SHA-256 digest of b.
func ContentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Extraction is the plain text recovered from a candidate.
type Extraction struct {
	// Text is the extracted plain text. It may be empty.
	Text string

	// Pages is the number of pages read, for paged formats.
	Pages int

	// Degraded is true when decoding fell back to a permissive encoding.
	Degraded bool
}
