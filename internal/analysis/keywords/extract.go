// Package keywords extracts salient terms from a query and marks their
// occurrences in candidate text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/resrank/internal/analysis/tfidf"
	"github.com/custodia-labs/resrank/internal/core/domain"
)

// DefaultMaxFeatures caps the keyword vocabulary.
const DefaultMaxFeatures = 100

// minTermRunes excludes short terms such as "go" or "ml" from keyword output.
const minTermRunes = 3

var segmentSplitter = regexp.MustCompile(`[.!?;:\r\n•·]+`)

// Extractor ranks query terms by aggregate TF-IDF weight across the query's
// sentences and lines.
type Extractor struct {
	maxFeatures int
}

// NewExtractor creates an extractor with the given vocabulary cap.
// A non-positive cap uses DefaultMaxFeatures.
func NewExtractor(maxFeatures int) *Extractor {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Extractor{maxFeatures: maxFeatures}
}

// Segments splits text on sentence and line delimiters, dropping blanks.
func Segments(text string) []string {
	parts := segmentSplitter.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Extract returns up to topK keywords of query, heaviest first.
// Ties are ordered by term. Empty input yields an empty slice.
func (e *Extractor) Extract(query string, topK int) []domain.Keyword {
	segments := Segments(query)
	if len(segments) == 0 || topK <= 0 {
		return []domain.Keyword{}
	}

	v := tfidf.NewVectorizer(
		tfidf.WithNgramRange(1, 2),
		tfidf.WithMaxFeatures(e.maxFeatures),
	)
	vocab, vectors := v.FitTransform(segments)
	if vocab.Len() == 0 {
		return []domain.Keyword{}
	}

	weights := make([]float64, vocab.Len())
	for _, vec := range vectors {
		for i, idx := range vec.Indices {
			weights[idx] += vec.Values[i]
		}
	}

	keywords := make([]domain.Keyword, 0, vocab.Len())
	for idx, w := range weights {
		term := vocab.Term(idx)
		if utf8.RuneCountInString(term) < minTermRunes {
			continue
		}
		keywords = append(keywords, domain.Keyword{Term: term, Weight: w})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Weight != keywords[j].Weight {
			return keywords[i].Weight > keywords[j].Weight
		}
		return keywords[i].Term < keywords[j].Term
	})

	if len(keywords) > topK {
		keywords = keywords[:topK]
	}
	return keywords
}

// Extract is a convenience wrapper using the default vocabulary cap.
func Extract(query string, topK int) []domain.Keyword {
	return NewExtractor(DefaultMaxFeatures).Extract(query, topK)
}
