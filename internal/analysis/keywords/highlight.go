package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker wraps a matched keyword.
type Marker struct {
	Open  string
	Close string
}

// DefaultMarker renders matches in Markdown bold.
var DefaultMarker = Marker{Open: "**", Close: "**"}

// Wrap returns s surrounded by the marker.
func (m Marker) Wrap(s string) string {
	return m.Open + s + m.Close
}

// Span is a whole-word keyword occurrence in a text, as byte offsets.
type Span struct {
	Start   int
	End     int
	Keyword string
}

// Matcher finds whole-word, case-insensitive keyword occurrences.
// Longer keywords are tried first at each position, so "management" wins
// over "manage" and no occurrence is wrapped twice.
type Matcher struct {
	keywords []string
}

// NewMatcher builds a matcher over the given keywords. Blank and duplicate
// keywords (ignoring case) are dropped.
func NewMatcher(keywords []string) *Matcher {
	seen := make(map[string]struct{}, len(keywords))
	kws := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		kws = append(kws, k)
	}
	sort.Slice(kws, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(kws[i]), utf8.RuneCountInString(kws[j])
		if li != lj {
			return li > lj
		}
		return kws[i] < kws[j]
	})
	return &Matcher{keywords: kws}
}

// Empty returns true when there is nothing to match.
func (m *Matcher) Empty() bool {
	return len(m.keywords) == 0
}

// Find returns the non-overlapping occurrences in text, left to right.
func (m *Matcher) Find(text string) []Span {
	if m.Empty() || text == "" {
		return nil
	}
	var spans []Span
	prev := rune(-1)
	for i := 0; i < len(text); {
		if !isWordRune(prev) {
			if kw, end, ok := m.matchAt(text, i); ok {
				spans = append(spans, Span{Start: i, End: end, Keyword: kw})
				prev, _ = utf8.DecodeLastRuneInString(text[:end])
				i = end
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		prev = r
		i += size
	}
	return spans
}

func (m *Matcher) matchAt(text string, i int) (string, int, bool) {
	for _, kw := range m.keywords {
		end, ok := foldPrefix(text, i, kw)
		if !ok {
			continue
		}
		if end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			if isWordRune(next) {
				continue
			}
		}
		return kw, end, true
	}
	return "", 0, false
}

// foldPrefix reports whether text at offset i starts with kw under simple
// case folding and returns the end offset of the match. Runes are compared
// one at a time, so case variants with a different UTF-8 width still match
// (KELVIN SIGN against "k").
func foldPrefix(text string, i int, kw string) (int, bool) {
	for _, want := range kw {
		if i >= len(text) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != want && !foldEqual(r, want) {
			return 0, false
		}
		i += size
	}
	return i, true
}

func foldEqual(a, b rune) bool {
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// HighlightFunc rewrites every keyword occurrence in text with wrap.
// The original casing of the text is passed to wrap.
func HighlightFunc(text string, keywords []string, wrap func(string) string) string {
	spans := NewMatcher(keywords).Find(text)
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])
		b.WriteString(wrap(text[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Highlight wraps every keyword occurrence in text with marker.
// Empty text or keywords return text unchanged.
func Highlight(text string, keywords []string, marker Marker) string {
	return HighlightFunc(text, keywords, marker.Wrap)
}
