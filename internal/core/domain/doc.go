// Package domain defines the core business entities for resrank.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Candidate: A document (resume) supplied for ranking
//   - Extraction: Plain text recovered from a candidate's bytes
//   - ScoredCandidate: A candidate with its similarity to the query
//   - RankingResult: The outcome of one ranking request
//   - Keyword: A salient term extracted from the query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
