package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// uriScheme is the custom URI scheme for resrank resources.
const uriScheme = "resrank://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "candidates",
		Name:        "candidates",
		Description: "Candidates uploaded in this session",
		MIMEType:    "application/json",
	}, s.handleCandidatesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current ranking settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "candidates/{name}",
		Name:        "candidate-text",
		Description: "Extracted text of an uploaded candidate",
		MIMEType:    "text/plain",
	}, s.handleCandidateTextResource)
}

// handleCandidatesResource lists uploaded candidates.
func (s *Server) handleCandidatesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type candidateInfo struct {
		Name   string `json:"name"`
		Format string `json:"format"`
		Size   int    `json:"size"`
	}

	infos := []candidateInfo{}
	if s.ports.Candidates != nil {
		list, err := s.ports.Candidates.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing candidates: %w", err)
		}
		for _, c := range list {
			infos = append(infos, candidateInfo{Name: c.ID, Format: c.Format.String(), Size: len(c.Content)})
		}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultRankSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		settings = *current
	}

	return jsonResource(req.Params.URI, map[string]any{
		domain.SettingMinScore:           settings.MinScore,
		domain.SettingTopN:               settings.TopN,
		domain.SettingParallel:           settings.Parallel,
		domain.SettingNgramMax:           settings.NgramMax,
		domain.SettingMaxFeatures:        settings.MaxFeatures,
		domain.SettingKeywordCount:       settings.KeywordCount,
		domain.SettingKeywordMaxFeatures: settings.KeywordMaxFeatures,
		domain.SettingHighlightOpen:      settings.HighlightOpen,
		domain.SettingHighlightClose:     settings.HighlightClose,
	})
}

// handleCandidateTextResource returns the extracted text of one upload.
func (s *Server) handleCandidateTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractCandidateName(req.Params.URI)
	if name == "" || s.ports.Candidates == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	candidate, err := s.ports.Candidates.Get(ctx, name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	extraction, err := s.ports.Ranking.Extract(ctx, *candidate)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", name, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     extraction.Text,
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCandidateName extracts the name from resrank://candidates/{name}.
func extractCandidateName(uri string) string {
	const prefix = uriScheme + "candidates/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
