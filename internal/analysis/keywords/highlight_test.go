package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight_CaseInsensitiveWholeWord(t *testing.T) {
	got := Highlight("Project Management and management skills", []string{"management"}, DefaultMarker)

	assert.Equal(t, "Project **Management** and **management** skills", got)
	assert.Equal(t, 2, strings.Count(got, "**")/2)
}

func TestHighlight_CaseVariantsOfDifferentWidth(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keyword  string
		expected string
	}{
		{"kelvin sign", "\u212Aotlin developer", "kotlin", "**\u212Aotlin** developer"},
		{"long s", "Ba\u017Fh scripting", "bash", "**Ba\u017Fh** scripting"},
		{"plain ascii", "KOTLIN developer", "kotlin", "**KOTLIN** developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Highlight(tt.text, []string{tt.keyword}, DefaultMarker))
		})
	}
}

func TestHighlight_NoPartialWordMatches(t *testing.T) {
	got := Highlight("managements and management", []string{"management"}, DefaultMarker)
	assert.Equal(t, "managements and **management**", got)

	got = Highlight("submanagement", []string{"management"}, DefaultMarker)
	assert.Equal(t, "submanagement", got)
}

func TestHighlight_LongerKeywordsFirst(t *testing.T) {
	got := Highlight("manage management", []string{"manage", "management"}, DefaultMarker)
	assert.Equal(t, "**manage** **management**", got)

	got = Highlight("Project management lead", []string{"management", "project management"}, DefaultMarker)
	assert.Equal(t, "**Project management** lead", got)
}

func TestHighlight_Unchanged(t *testing.T) {
	assert.Equal(t, "", Highlight("", []string{"go"}, DefaultMarker))
	assert.Equal(t, "some text", Highlight("some text", nil, DefaultMarker))
	assert.Equal(t, "some text", Highlight("some text", []string{"  "}, DefaultMarker))
	assert.Equal(t, "some text", Highlight("some text", []string{"python"}, DefaultMarker))
}

func TestHighlight_CustomMarker(t *testing.T) {
	got := Highlight("Go and C++ developer", []string{"c++", "developer"}, Marker{Open: "<mark>", Close: "</mark>"})
	assert.Equal(t, "Go and <mark>C++</mark> <mark>developer</mark>", got)
}

func TestHighlight_Unicode(t *testing.T) {
	got := Highlight("Ingeniería de datos en Málaga", []string{"málaga", "datos"}, DefaultMarker)
	assert.Equal(t, "Ingeniería de **datos** en **Málaga**", got)
}

func TestHighlightFunc_PreservesCasing(t *testing.T) {
	var seen []string
	HighlightFunc("PYTHON and Python", []string{"python"}, func(s string) string {
		seen = append(seen, s)
		return s
	})
	assert.Equal(t, []string{"PYTHON", "Python"}, seen)
}

func TestMatcher_Find(t *testing.T) {
	m := NewMatcher([]string{"Go", "go", "", "kubernetes"})
	require.False(t, m.Empty())

	spans := m.Find("go, Kubernetes; going")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 2, Keyword: "go"}, spans[0])
	assert.Equal(t, Span{Start: 4, End: 14, Keyword: "kubernetes"}, spans[1])

	assert.True(t, NewMatcher(nil).Empty())
	assert.Nil(t, NewMatcher(nil).Find("go"))
}
