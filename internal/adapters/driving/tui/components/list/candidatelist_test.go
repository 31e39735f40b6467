package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

func testCandidates() []domain.ScoredCandidate {
	return []domain.ScoredCandidate{
		{CandidateID: "alice.pdf", Score: 0.8},
		{CandidateID: "bob.docx", Score: 0.3},
		{CandidateID: "carol.txt", Score: 0.1},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCandidateList_Empty(t *testing.T) {
	l := NewCandidateList(nil, nil)

	assert.Nil(t, l.SelectedCandidate())
	assert.Contains(t, l.View(), "No matching candidates")
}

func TestCandidateList_Navigation(t *testing.T) {
	l := NewCandidateList(nil, nil)
	l.SetCandidates(testCandidates())

	tests := []struct {
		name string
		msg  tea.Msg
		want int
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"j", keyMsg("j"), 2},
		{"stops at bottom", keyMsg("j"), 2},
		{"k", keyMsg("k"), 1},
		{"top", keyMsg("g"), 0},
		{"stops at top", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"bottom", keyMsg("G"), 2},
		{"ignores other messages", tea.WindowSizeMsg{}, 2},
	}

	for _, tt := range tests {
		l, _ = l.Update(tt.msg)
		assert.Equal(t, tt.want, l.Selected(), tt.name)
	}
}

func TestCandidateList_View(t *testing.T) {
	l := NewCandidateList(nil, nil)
	l.SetDimensions(80, 10)
	l.SetCandidates(testCandidates())

	view := l.View()
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "alice.pdf")
	assert.Contains(t, view, "80.00%")
	assert.Contains(t, view, "3. carol.txt")
}

func TestCandidateList_ScrollsToSelection(t *testing.T) {
	l := NewCandidateList(nil, nil)
	l.SetDimensions(80, 1)
	l.SetCandidates(testCandidates())
	l.MoveDown()
	l.MoveDown()

	view := l.View()
	assert.NotContains(t, view, "alice.pdf")
	assert.Contains(t, view, "carol.txt")

	selected := l.SelectedCandidate()
	require.NotNil(t, selected)
	assert.Equal(t, "carol.txt", selected.CandidateID)
}
