package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippets(t *testing.T) {
	text := strings.Repeat("filler ", 20) + "Python developer" + strings.Repeat(" filler", 20)

	got := Snippets(text, []string{"python"}, 3, 20)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Python developer")
	assert.True(t, strings.HasPrefix(got[0], "..."))
	assert.True(t, strings.HasSuffix(got[0], "..."))
}

func TestSnippets_Limits(t *testing.T) {
	text := "go here. " + strings.Repeat("x ", 100) + "go there. " + strings.Repeat("y ", 100) + "go again."

	assert.Len(t, Snippets(text, []string{"go"}, 2, 10), 2)
	assert.Len(t, Snippets(text, []string{"go"}, 10, 10), 3)
	assert.Nil(t, Snippets(text, []string{"go"}, 0, 10))
	assert.Empty(t, Snippets(text, []string{"rust"}, 3, 10))
}

func TestSnippets_CollapsesWhitespace(t *testing.T) {
	got := Snippets("Senior\n\n  Python\tdeveloper", []string{"python"}, 1, 100)
	require.Len(t, got, 1)
	assert.Equal(t, "Senior Python developer", got[0])
}
