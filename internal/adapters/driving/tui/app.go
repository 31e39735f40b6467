package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/resrank/internal/adapters/driving/tui/views/ranking"
	"github.com/custodia-labs/resrank/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports   *Ports
	request Request
	ctx     context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	rankingView *ranking.View
	previewView *preview.View
	statusBar   *status.Bar

	// candidates indexes the request by candidate ID for previews.
	candidates map[string]domain.Candidate

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application that ranks req with the given ports.
func NewApp(ports *Ports, req Request) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	if req.Options.KeywordCount == 0 {
		req.Options.KeywordCount = defaultKeywordCount(ports)
	}

	candidates := make(map[string]domain.Candidate, len(req.Candidates))
	for _, c := range req.Candidates {
		candidates[c.ID] = c
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetState(status.StateRanking)

	return &App{
		ports:       ports,
		request:     req,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		rankingView: ranking.NewView(s, km),
		previewView: preview.NewView(s, km),
		statusBar:   bar,
		candidates:  candidates,
		currentView: messages.ViewRanking,
	}, nil
}

// defaultKeywordCount returns the configured keyword count, falling back to
// the built-in default. The browser always highlights keywords.
func defaultKeywordCount(ports *Ports) int {
	if ports.Settings != nil {
		if s, err := ports.Settings.Get(); err == nil && s.KeywordCount > 0 {
			return s.KeywordCount
		}
	}
	return domain.DefaultRankSettings().KeywordCount
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("resrank"),
		a.rank(),
	)
}

// rank returns a command that runs the ranking.
func (a *App) rank() tea.Cmd {
	ctx, req, svc := a.ctx, a.request, a.ports.Ranking
	return func() tea.Msg {
		result, err := svc.Rank(ctx, req.Query, req.Candidates, req.Options)
		return messages.RankingCompleted{Result: result, Err: err}
	}
}

// loadPreview returns a command that extracts the text of one candidate.
func (a *App) loadPreview(id string) tea.Cmd {
	candidate, ok := a.candidates[id]
	if !ok {
		return func() tea.Msg {
			return messages.PreviewLoaded{CandidateID: id, Err: fmt.Errorf("%w: %s", domain.ErrNotFound, id)}
		}
	}
	ctx, svc := a.ctx, a.ports.Ranking
	return func() tea.Msg {
		extraction, err := svc.Extract(ctx, candidate)
		return messages.PreviewLoaded{CandidateID: id, Extraction: extraction, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Leave one line for the status bar
		a.rankingView.SetDimensions(msg.Width, msg.Height-1)
		a.previewView.SetDimensions(msg.Width, msg.Height-1)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.RankRequested:
		a.rankingView.SetLoading()
		a.statusBar.SetState(status.StateRanking)
		return a, a.rank()

	case messages.RankingCompleted:
		a.rankingView, cmd = a.rankingView.Update(msg)
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, cmd
		}
		a.err = nil
		a.statusBar.SetCounts(len(msg.Result.Candidates), len(msg.Result.Excluded))
		a.statusBar.SetState(status.StateResults)
		// Rows available to the list depend on the exclusion count
		a.rankingView.SetDimensions(a.width, a.height-1)
		return a, cmd

	case messages.CandidateSelected:
		a.currentView = messages.ViewPreview
		a.previewView.SetCandidate(msg.CandidateID, msg.Score, a.keywordTerms())
		a.statusBar.SetMessage(msg.CandidateID)
		a.statusBar.SetState(status.StatePreview)
		return a, a.loadPreview(msg.CandidateID)

	case messages.PreviewLoaded:
		a.previewView, cmd = a.previewView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewRanking {
			a.statusBar.SetState(status.StateResults)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewPreview {
		a.previewView, cmd = a.previewView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()
	if k == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewRanking:
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		}
		a.rankingView, cmd = a.rankingView.Update(msg)
		return a, cmd

	case messages.ViewPreview:
		if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
		a.previewView, cmd = a.previewView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
			a.currentView = messages.ViewRanking
			return a, nil
		}
		if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetMessage(err.Error())
	a.statusBar.SetState(status.StateError)
}

// keywordTerms returns the keywords of the current ranking.
func (a *App) keywordTerms() []string {
	if result := a.rankingView.Result(); result != nil {
		return domain.Terms(result.Keywords)
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewPreview:
		body = a.previewView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.rankingView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Ranking:
  j/k, ↑/↓    Navigate candidates
  g/G         First / last candidate
  enter       Preview with keywords highlighted
  r           Re-rank
  q           Quit

Preview:
  j/k, ↑/↓    Scroll
  PgUp/PgDn   Page
  g/G         Top / bottom
  esc         Back to ranking

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the last ranking, or nil.
func (a *App) Result() *domain.RankingResult {
	return a.rankingView.Result()
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}
