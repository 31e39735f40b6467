// Package preview provides the candidate text view for the TUI.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resrank/internal/analysis/keywords"
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/report"
)

// headerLines is the space taken by the title, separator and footer.
const headerLines = 5

// View shows a candidate's extracted text with keywords highlighted.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	candidateID string
	score       float64
	keywords    []string
	extraction  *domain.Extraction
	err         error
	loading     bool
	width       int
	height      int
}

// NewView creates a new preview view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80, 24-headerLines),
		width:    80,
		height:   24,
	}
}

// SetCandidate resets the view for a newly selected candidate.
func (v *View) SetCandidate(id string, score float64, kws []string) {
	v.candidateID = id
	v.score = score
	v.keywords = kws
	v.extraction = nil
	v.err = nil
	v.loading = true
	v.viewport.SetContent("")
	v.viewport.GotoTop()
}

// Update handles messages for the preview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.PreviewLoaded:
		if msg.CandidateID != v.candidateID {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.extraction = msg.Extraction
		v.render()
		return v, nil

	case tea.KeyMsg:
		switch k := msg.String(); {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewRanking}
			}
		case keymap.Matches(k, v.keymap.Top):
			v.viewport.GotoTop()
			return v, nil
		case keymap.Matches(k, v.keymap.Bottom):
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// render wraps the text to the view width and highlights keywords.
func (v *View) render() {
	if v.extraction == nil {
		return
	}
	text := keywords.HighlightFunc(v.extraction.Text, v.keywords, func(s string) string {
		return v.styles.Keyword.Render(s)
	})
	v.viewport.SetContent(lipgloss.NewStyle().Width(max(v.width-2, 20)).Render(text))
}

// View renders the preview view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.candidateID))
	b.WriteString("  ")
	b.WriteString(v.styles.Score(v.score).Render(report.FormatPercent(v.score)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 10), 60)))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading text..."))
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		return b.String()
	case v.extraction == nil || v.extraction.Text == "":
		b.WriteString(v.styles.Muted.Render("(No text)"))
		return b.String()
	}

	b.WriteString(v.viewport.View())
	b.WriteString("\n")

	footer := fmt.Sprintf("  [%3.f%%]", v.viewport.ScrollPercent()*100)
	if v.extraction.Pages > 0 {
		footer += fmt.Sprintf("  %d page(s)", v.extraction.Pages)
	}
	b.WriteString(v.styles.Muted.Render(footer))
	if v.extraction.Degraded {
		b.WriteString(v.styles.Warning.Render("  decoded with fallback encoding"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(1, height-headerLines)
	v.render()
}

// CandidateID returns the candidate being shown.
func (v *View) CandidateID() string {
	return v.candidateID
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
