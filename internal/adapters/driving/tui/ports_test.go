package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{name: "nil ports", ports: nil, wantErr: ErrMissingRankingService},
		{name: "missing ranking", ports: &Ports{}, wantErr: ErrMissingRankingService},
		{name: "ranking only", ports: &Ports{Ranking: &mockRankingService{}}},
		{name: "with settings", ports: &Ports{Ranking: &mockRankingService{}, Settings: &mockSettingsService{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, Request{Query: "go"}.Validate(), ErrNoCandidates)

	req := Request{Query: "go", Candidates: []domain.Candidate{domain.NewCandidate("a.txt", []byte("go"))}}
	assert.NoError(t, req.Validate())
}
