// Package ranking provides the ranked candidate list view for the TUI.
package ranking

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resrank/internal/core/domain"
)

// reservedLines is the space taken by the header, exclusions and help.
const reservedLines = 8

// View shows a ranking result.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	list   *list.CandidateList

	result  *domain.RankingResult
	err     error
	loading bool
	width   int
	height  int
}

// NewView creates a new ranking view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		list:    list.NewCandidateList(s, km),
		loading: true,
		width:   80,
		height:  24,
	}
}

// SetLoading marks a ranking as in progress.
func (v *View) SetLoading() {
	v.loading = true
	v.err = nil
}

// Update handles messages for the ranking view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.RankingCompleted:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.result = msg.Result
		v.list.SetCandidates(msg.Result.Candidates)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch k := msg.String(); {
	case keymap.Matches(k, v.keymap.Select):
		selected := v.list.SelectedCandidate()
		if selected == nil || v.loading {
			return v, nil
		}
		c := *selected
		return v, func() tea.Msg {
			return messages.CandidateSelected{CandidateID: c.CandidateID, Score: c.Score}
		}
	case keymap.Matches(k, v.keymap.Rerank):
		if v.loading {
			return v, nil
		}
		return v, func() tea.Msg { return messages.RankRequested{} }
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the ranking view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Candidate Ranking"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 10), 60)))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Ranking candidates..."))
		b.WriteString("\n")
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
		return b.String()
	}

	if len(v.result.Keywords) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Keywords: "))
		b.WriteString(v.styles.Muted.Render(strings.Join(domain.Terms(v.result.Keywords), ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.list.View())
	b.WriteString("\n")

	if len(v.result.Excluded) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Excluded (%d):", len(v.result.Excluded))))
		b.WriteString("\n")
		for _, e := range v.result.Excluded {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %s: %s", e.CandidateID, e.Reason)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	rows := height - reservedLines
	if v.result != nil {
		rows -= len(v.result.Excluded)
	}
	v.list.SetDimensions(width, max(1, rows))
}

// Result returns the last ranking, or nil.
func (v *View) Result() *domain.RankingResult {
	return v.result
}

// Selected returns the selected list index.
func (v *View) Selected() int {
	return v.list.Selected()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
