// Package text provides tokenisation and stop-word filtering.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMinRunes is the shortest token kept, matching the usual
// "two or more word characters" token rule.
const DefaultMinRunes = 2

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+[+#]*`)

// Tokenizer splits text into lower-cased terms with stop words removed.
type Tokenizer struct {
	stopwords map[string]struct{}
	minRunes  int
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithStopwords replaces the stop-word set. A nil set disables filtering.
func WithStopwords(words map[string]struct{}) Option {
	return func(t *Tokenizer) {
		t.stopwords = words
	}
}

// WithMinRunes sets the minimum token length in runes.
func WithMinRunes(n int) Option {
	return func(t *Tokenizer) {
		if n > 0 {
			t.minRunes = n
		}
	}
}

// NewTokenizer creates a tokenizer using English stop words by default.
func NewTokenizer(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		stopwords: EnglishStopwords(),
		minRunes:  DefaultMinRunes,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokens returns the terms of s in order of appearance.
func (t *Tokenizer) Tokens(s string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(s), -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) < t.minRunes {
			continue
		}
		if t.IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Terms returns the n-grams of s for n in [minN, maxN].
// N-grams are built over the stop-word-filtered token sequence.
func (t *Tokenizer) Terms(s string, minN, maxN int) []string {
	return NGrams(t.Tokens(s), minN, maxN)
}

// IsStopword reports whether tok is filtered.
func (t *Tokenizer) IsStopword(tok string) bool {
	if t.stopwords == nil {
		return false
	}
	_, ok := t.stopwords[tok]
	return ok
}

// NGrams joins consecutive tokens with a single space.
// Unigrams come first, then bigrams, and so on.
func NGrams(tokens []string, minN, maxN int) []string {
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}
	if minN == 1 && maxN == 1 {
		return tokens
	}
	var out []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
