package mcp

import (
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
	"github.com/custodia-labs/resrank/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ranking scores candidates and renders previews.
	Ranking driving.RankingService

	// Settings supplies defaults for omitted tool arguments. Optional.
	Settings driving.SettingsService

	// Candidates holds documents uploaded during the session. Optional;
	// without it the upload tools report ErrNoCandidateStore.
	Candidates driven.CandidateStore
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Ranking == nil {
		return ErrMissingRankingService
	}
	return nil
}
