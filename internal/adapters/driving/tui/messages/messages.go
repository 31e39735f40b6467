// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/resrank/internal/core/domain"
)

// RankRequested asks the app to (re)run the ranking.
type RankRequested struct{}

// RankingCompleted carries a ranking back to the model.
type RankingCompleted struct {
	Result *domain.RankingResult
	Err    error
}

// CandidateSelected is sent when a ranked candidate is opened.
type CandidateSelected struct {
	CandidateID string
	Score       float64
}

// PreviewLoaded carries the extracted text of a candidate.
type PreviewLoaded struct {
	CandidateID string
	Extraction  *domain.Extraction
	Err         error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewRanking lists ranked candidates.
	ViewRanking ViewType = iota
	// ViewPreview shows one candidate's text with keywords highlighted.
	ViewPreview
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewRanking:
		return "ranking"
	case ViewPreview:
		return "preview"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
