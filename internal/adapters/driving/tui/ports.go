// Package tui provides an interactive terminal browser for ranking results.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI uses.
type Ports struct {
	// Ranking scores candidates and extracts their text.
	Ranking driving.RankingService

	// Settings supplies highlight markers and keyword counts. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Ranking == nil {
		return ErrMissingRankingService
	}
	return nil
}

// Request is the ranking the browser shows.
type Request struct {
	Query      string
	Candidates []domain.Candidate
	Options    domain.RankOptions
}

// Validate checks the request has something to rank.
func (r Request) Validate() error {
	if len(r.Candidates) == 0 {
		return ErrNoCandidates
	}
	return nil
}
