package tfidf

import (
	"math"
	"sort"

	"github.com/custodia-labs/resrank/internal/analysis/text"
)

// Vocabulary is the ordered term set of one corpus with its IDF weights.
type Vocabulary struct {
	terms []string
	index map[string]int
	idf   []float64
	docs  int
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns the terms in index order.
func (v *Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Term returns the term at index i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Index returns the position of term, if present.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// IDF returns the inverse document frequency of term, if present.
func (v *Vocabulary) IDF(term string) (float64, bool) {
	i, ok := v.index[term]
	if !ok {
		return 0, false
	}
	return v.idf[i], true
}

// Docs returns the number of corpus members the vocabulary was fitted on.
func (v *Vocabulary) Docs() int {
	return v.docs
}

// Vectorizer fits a vocabulary over a corpus and turns texts into
// L2-normalised TF-IDF vectors.
type Vectorizer struct {
	tokenizer   *text.Tokenizer
	ngramMin    int
	ngramMax    int
	maxFeatures int
}

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithTokenizer sets the tokenizer.
func WithTokenizer(t *text.Tokenizer) Option {
	return func(v *Vectorizer) {
		if t != nil {
			v.tokenizer = t
		}
	}
}

// WithNgramRange sets the n-gram range, e.g. (1, 2) for unigrams and bigrams.
func WithNgramRange(minN, maxN int) Option {
	return func(v *Vectorizer) {
		if minN >= 1 && maxN >= minN {
			v.ngramMin = minN
			v.ngramMax = maxN
		}
	}
}

// WithMaxFeatures keeps only the n most frequent corpus terms. Zero keeps all.
func WithMaxFeatures(n int) Option {
	return func(v *Vectorizer) {
		if n >= 0 {
			v.maxFeatures = n
		}
	}
}

// NewVectorizer creates a unigram vectorizer with English stop words.
func NewVectorizer(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		tokenizer: text.NewTokenizer(),
		ngramMin:  1,
		ngramMax:  1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// IDF is the smoothed inverse document frequency
// ln((1+n)/(1+df)) + 1. It is strictly decreasing in df, and a term present
// in every document still keeps a positive weight.
func IDF(n, df int) float64 {
	return math.Log(float64(1+n)/float64(1+df)) + 1
}

// FitTransform builds a vocabulary over corpus and returns one normalised
// vector per corpus member, in corpus order.
func (v *Vectorizer) FitTransform(corpus []string) (*Vocabulary, []Vector) {
	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	total := make(map[string]int)

	for i, doc := range corpus {
		c := make(map[string]int)
		for _, term := range v.tokenizer.Terms(doc, v.ngramMin, v.ngramMax) {
			c[term]++
		}
		for term, n := range c {
			df[term]++
			total[term] += n
		}
		counts[i] = c
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if total[terms[i]] != total[terms[j]] {
				return total[terms[i]] > total[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	vocab := &Vocabulary{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		docs:  len(corpus),
	}
	for i, term := range terms {
		vocab.index[term] = i
		vocab.idf[i] = IDF(len(corpus), df[term])
	}

	vectors := make([]Vector, len(corpus))
	for i, c := range counts {
		vectors[i] = vocab.weigh(c)
	}
	return vocab, vectors
}

// weigh converts raw term counts into a normalised TF-IDF vector.
func (v *Vocabulary) weigh(counts map[string]int) Vector {
	var vec Vector
	for term := range counts {
		idx, ok := v.index[term]
		if !ok {
			continue
		}
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)
	vec.Values = make([]float64, len(vec.Indices))
	for i, idx := range vec.Indices {
		vec.Values[i] = float64(counts[v.terms[idx]]) * v.idf[idx]
	}
	return vec.Normalize()
}

// Build fits a vocabulary over [query] ++ docs and returns the query vector
// and one vector per document. ok is false when docs is empty or the corpus
// has no vocabulary terms; callers treat that as an empty ranking.
func (v *Vectorizer) Build(query string, docs []string) (q Vector, d []Vector, ok bool) {
	if len(docs) == 0 {
		return Vector{}, nil, false
	}
	corpus := make([]string, 0, len(docs)+1)
	corpus = append(corpus, query)
	corpus = append(corpus, docs...)

	vocab, vectors := v.FitTransform(corpus)
	if vocab.Len() == 0 {
		return Vector{}, nil, false
	}
	return vectors[0], vectors[1:], true
}

// Scores returns the cosine similarity of the query to each document.
// The slice is empty when Build reports no usable corpus.
func (v *Vectorizer) Scores(query string, docs []string) []float64 {
	q, d, ok := v.Build(query, docs)
	if !ok {
		return nil
	}
	scores := make([]float64, len(d))
	for i := range d {
		scores[i] = Cosine(q, d[i])
	}
	return scores
}
