package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

func TestExtractCandidateName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid candidate URI", uri: "resrank://candidates/jane.pdf", expected: "jane.pdf"},
		{name: "invalid prefix", uri: "file://candidates/jane.pdf", expected: ""},
		{name: "list URI", uri: "resrank://candidates", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCandidateName(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCandidatesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("no store returns empty list", func(t *testing.T) {
		server, _ := newTestServer(t, &mockRankingService{}, false)

		result, err := server.handleCandidatesResource(ctx, makeReadResourceRequest("resrank://candidates"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("lists uploads", func(t *testing.T) {
		server, store := newTestServer(t, &mockRankingService{}, true)
		require.NoError(t, store.Put(ctx, domain.NewCandidate("jane.pdf", []byte("abc"))))

		result, err := server.handleCandidatesResource(ctx, makeReadResourceRequest("resrank://candidates"))
		require.NoError(t, err)

		var infos []map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 1)
		assert.Equal(t, "jane.pdf", infos[0]["name"])
		assert.Equal(t, "pdf", infos[0]["format"])
		assert.Equal(t, float64(3), infos[0]["size"])
	})
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns configured settings", func(t *testing.T) {
		settings := domain.DefaultRankSettings()
		settings.TopN = 5
		ports := &Ports{Ranking: &mockRankingService{}, Settings: &mockSettingsService{settings: &settings}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("resrank://settings"))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		assert.Equal(t, float64(5), got[domain.SettingTopN])
		assert.Equal(t, "**", got[domain.SettingHighlightOpen])
	})

	t.Run("settings error", func(t *testing.T) {
		ports := &Ports{Ranking: &mockRankingService{}, Settings: &mockSettingsService{err: errors.New("boom")}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleSettingsResource(ctx, makeReadResourceRequest("resrank://settings"))
		assert.Error(t, err)
	})
}

func TestServer_handleCandidateTextResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns extracted text", func(t *testing.T) {
		server, store := newTestServer(t, &mockRankingService{}, true)
		require.NoError(t, store.Put(ctx, domain.NewCandidate("jane.txt", []byte("go developer"))))

		result, err := server.handleCandidateTextResource(ctx, makeReadResourceRequest("resrank://candidates/jane.txt"))
		require.NoError(t, err)
		assert.Equal(t, "go developer", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		server, _ := newTestServer(t, &mockRankingService{}, true)

		_, err := server.handleCandidateTextResource(ctx, makeReadResourceRequest("resrank://candidates/nobody.txt"))
		assert.Error(t, err)
	})

	t.Run("extraction error", func(t *testing.T) {
		server, store := newTestServer(t, &mockRankingService{err: domain.ErrExtractionEmpty}, true)
		require.NoError(t, store.Put(ctx, domain.NewCandidate("jane.txt", nil)))

		_, err := server.handleCandidateTextResource(ctx, makeReadResourceRequest("resrank://candidates/jane.txt"))
		assert.ErrorIs(t, err, domain.ErrExtractionEmpty)
	})
}
