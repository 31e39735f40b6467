// Package rank orders scored candidates and applies threshold and top-N
// filtering.
package rank

import (
	"sort"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// Rank sorts candidates by score descending, drops those below minScore
// (a percentage, inclusive bound) and keeps the first topN.
// Equal scores keep input Position order, then candidate ID.
// The input slice is not modified.
func Rank(scored []domain.ScoredCandidate, minScore float64, topN int) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, 0, len(scored))
	for _, c := range scored {
		if minScore > 0 && c.Score < minScore/100 {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CandidateID < out[j].CandidateID
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
