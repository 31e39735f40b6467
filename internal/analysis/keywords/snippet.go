package keywords

import (
	"strings"
	"unicode/utf8"
)

// Snippets returns up to n excerpts of text centred on keyword occurrences.
// Each excerpt spans roughly radius bytes on either side of its match and
// excerpts never overlap. Whitespace is collapsed.
func Snippets(text string, keywords []string, n, radius int) []string {
	if n <= 0 {
		return nil
	}
	if radius <= 0 {
		radius = 60
	}
	var out []string
	covered := 0
	for _, s := range NewMatcher(keywords).Find(text) {
		if s.Start < covered {
			continue
		}
		start := runeStart(text, max(covered, s.Start-radius))
		end := runeEnd(text, min(len(text), s.End+radius))

		snippet := strings.Join(strings.Fields(text[start:end]), " ")
		if start > 0 {
			snippet = "..." + snippet
		}
		if end < len(text) {
			snippet += "..."
		}
		out = append(out, snippet)
		covered = end
		if len(out) == n {
			break
		}
	}
	return out
}

// runeStart moves i back to the start of the rune containing it.
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// runeEnd moves i forward to the next rune boundary.
func runeEnd(s string, i int) int {
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}
