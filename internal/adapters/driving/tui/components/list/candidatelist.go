// Package list provides the ranked candidate list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/report"
)

// CandidateList displays ranked candidates in a navigable list.
type CandidateList struct {
	candidates []domain.ScoredCandidate
	selected   int
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	width      int
	height     int
}

// NewCandidateList creates a new candidate list component.
func NewCandidateList(s *styles.Styles, km *keymap.KeyMap) *CandidateList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &CandidateList{
		styles: s,
		keymap: km,
		width:  80,
		height: 10,
	}
}

// Update handles list navigation keys.
func (l *CandidateList) Update(msg tea.Msg) (*CandidateList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch k := keyMsg.String(); {
	case keymap.Matches(k, l.keymap.Up):
		l.MoveUp()
	case keymap.Matches(k, l.keymap.Down):
		l.MoveDown()
	case keymap.Matches(k, l.keymap.Top):
		l.selected = 0
	case keymap.Matches(k, l.keymap.Bottom):
		l.selected = max(0, len(l.candidates)-1)
	}
	return l, nil
}

// View renders the visible window of the list around the selection.
func (l *CandidateList) View() string {
	if len(l.candidates) == 0 {
		return l.styles.Muted.Render("No matching candidates")
	}

	visible := max(1, l.height)
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.candidates))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (l *CandidateList) renderRow(i int) string {
	c := l.candidates[i]

	nameWidth := max(10, l.width-20)
	name := c.CandidateID
	if len(name) > nameWidth {
		name = "..." + name[len(name)-nameWidth+3:]
	}
	score := fmt.Sprintf("%8s", report.FormatPercent(c.Score))

	if i == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("> %3d. %-*s %s", i+1, nameWidth, name, score))
	}
	return l.styles.Normal.Render(fmt.Sprintf("  %3d. %-*s ", i+1, nameWidth, name)) +
		l.styles.Score(c.Score).Render(score)
}

// SetCandidates replaces the list contents and resets the selection.
func (l *CandidateList) SetCandidates(candidates []domain.ScoredCandidate) {
	l.candidates = candidates
	l.selected = 0
}

// Selected returns the index of the selected candidate.
func (l *CandidateList) Selected() int {
	return l.selected
}

// SelectedCandidate returns the selected candidate, or nil when empty.
func (l *CandidateList) SelectedCandidate() *domain.ScoredCandidate {
	if l.selected < 0 || l.selected >= len(l.candidates) {
		return nil
	}
	return &l.candidates[l.selected]
}

// MoveUp moves the selection up.
func (l *CandidateList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down.
func (l *CandidateList) MoveDown() {
	if l.selected < len(l.candidates)-1 {
		l.selected++
	}
}

// SetDimensions sets the width and the number of visible rows.
func (l *CandidateList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of candidates.
func (l *CandidateList) Count() int {
	return len(l.candidates)
}
