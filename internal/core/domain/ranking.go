package domain

// ScoredCandidate is a candidate with its similarity to the query.
type ScoredCandidate struct {
	// CandidateID is the candidate's unique name.
	CandidateID string `json:"candidate"`

	// Score is the cosine similarity in [0,1].
	Score float64 `json:"score"`

	// Position is the candidate's index in the caller's input order.
	// It breaks ties between equal scores.
	Position int `json:"-"`
}

// Percent returns the score on a 0-100 scale.
func (s ScoredCandidate) Percent() float64 {
	return s.Score * 100
}

// ExclusionReason explains why a candidate was left out of scoring.
type ExclusionReason string

// Exclusion reasons.
const (
	// ExclusionUnsupportedFormat means the file extension is not recognised.
	ExclusionUnsupportedFormat ExclusionReason = "unsupported_format"

	// ExclusionExtractionFailed means the extractor returned an error.
	ExclusionExtractionFailed ExclusionReason = "extraction_failed"

	// ExclusionExtractionEmpty means the document produced no text.
	ExclusionExtractionEmpty ExclusionReason = "extraction_empty"

	// ExclusionNoTerms means neither the query nor any document had a
	// term left after stop-word filtering, so nothing could be scored.
	ExclusionNoTerms ExclusionReason = "no_terms"
)

// Exclusion records a candidate that was not scored.
type Exclusion struct {
	// CandidateID is the excluded candidate's name.
	CandidateID string `json:"candidate"`

	// Reason classifies the exclusion.
	Reason ExclusionReason `json:"reason"`

	// Err is the underlying error.
	Err error `json:"-"`
}

// Message returns a human-readable description of the exclusion.
func (e Exclusion) Message() string {
	if e.Err != nil {
		return string(e.Reason) + ": " + e.Err.Error()
	}
	return string(e.Reason)
}

// RankOptions configures a ranking request.
type RankOptions struct {
	// MinScore drops candidates scoring below this percentage (0-100).
	// The bound is inclusive; zero disables the filter.
	MinScore float64

	// TopN truncates the ranking after filtering. Zero or less keeps all.
	TopN int

	// KeywordCount is the number of query keywords to extract.
	// Zero skips keyword extraction.
	KeywordCount int

	// Parallel extracts candidates concurrently.
	Parallel bool
}

// RankingResult is the outcome of one ranking request.
type RankingResult struct {
	// ID identifies the request in logs and exports.
	ID string `json:"id"`

	// Query is the reference text candidates were ranked against.
	Query string `json:"query"`

	// Candidates is the ranking, best first.
	Candidates []ScoredCandidate `json:"candidates"`

	// Excluded lists candidates left out of scoring.
	Excluded []Exclusion `json:"excluded,omitempty"`

	// Degraded lists candidates whose text was decoded with a fallback.
	Degraded []string `json:"degraded,omitempty"`

	// Keywords are the salient query terms.
	Keywords []Keyword `json:"keywords,omitempty"`

	// Total is the number of candidates supplied.
	Total int `json:"total"`
}

// IsEmpty returns true when no candidate was ranked.
func (r *RankingResult) IsEmpty() bool {
	return len(r.Candidates) == 0
}

// NothingSupplied returns true when the caller provided no candidates at all.
// It separates "no input yet" from "nothing extractable".
func (r *RankingResult) NothingSupplied() bool {
	return r.Total == 0
}
