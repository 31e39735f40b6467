package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/resrank/internal/analysis/keywords"
	"github.com/custodia-labs/resrank/internal/connectors/filesystem"
	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/report"
)

const (
	defaultKeywordCount = 10
	defaultSnippetCount = 3
	inlineCandidateName = "inline.txt"
)

// DocumentInput names one candidate: an uploaded name, a local path, or
// inline text.
type DocumentInput struct {
	Name string `json:"name,omitempty" jsonschema:"candidate name; selects an uploaded candidate unless text is given"`
	Path string `json:"path,omitempty" jsonschema:"local path of a .pdf, .docx or .txt file"`
	Text string `json:"text,omitempty" jsonschema:"inline plain-text document"`
}

// RankInput is the input schema for the rank_candidates tool.
type RankInput struct {
	Query      string          `json:"query,omitempty" jsonschema:"the job description text"`
	QueryPath  string          `json:"query_path,omitempty" jsonschema:"path of a file holding the job description"`
	Paths      []string        `json:"paths,omitempty" jsonschema:"files or folders of resumes to rank"`
	Documents  []DocumentInput `json:"documents,omitempty" jsonschema:"inline resumes to rank"`
	MinScore   *float64        `json:"min_score,omitempty" jsonschema:"drop candidates below this percentage (0-100)"`
	TopN       *int            `json:"top_n,omitempty" jsonschema:"keep only the best N candidates (0 keeps all)"`
	Keywords   *int            `json:"keywords,omitempty" jsonschema:"number of job description keywords to return"`
	Parallel   bool            `json:"parallel,omitempty" jsonschema:"extract documents concurrently"`
	UseUploads bool            `json:"use_uploads,omitempty" jsonschema:"include candidates uploaded with add_candidate"`
}

// RankOutput is the output schema for the rank_candidates tool.
type RankOutput struct {
	ID         string            `json:"id"`
	Candidates []RankedCandidate `json:"candidates"`
	Excluded   []ExcludedOutput  `json:"excluded,omitempty"`
	Degraded   []string          `json:"degraded,omitempty"`
	Keywords   []KeywordOutput   `json:"keywords,omitempty"`
	Total      int               `json:"total"`
}

// RankedCandidate is one row of the ranking.
type RankedCandidate struct {
	Rank      int     `json:"rank"`
	Candidate string  `json:"candidate"`
	Score     float64 `json:"score"`
	Percent   string  `json:"percent"`
}

// ExcludedOutput is a candidate that could not be scored.
type ExcludedOutput struct {
	Candidate string `json:"candidate"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
}

// KeywordOutput is one extracted keyword.
type KeywordOutput struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// KeywordsInput is the input schema for the extract_keywords tool.
type KeywordsInput struct {
	Query string `json:"query" jsonschema:"the job description text"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of keywords (default 10)"`
}

// KeywordsOutput is the output schema for the extract_keywords tool.
type KeywordsOutput struct {
	Keywords []KeywordOutput `json:"keywords"`
}

// HighlightInput is the input schema for the highlight_candidate and
// preview_candidate tools.
type HighlightInput struct {
	Name     string   `json:"name,omitempty" jsonschema:"name of an uploaded candidate"`
	Path     string   `json:"path,omitempty" jsonschema:"local path of a .pdf, .docx or .txt file"`
	Text     string   `json:"text,omitempty" jsonschema:"inline plain-text document"`
	Keywords []string `json:"keywords,omitempty" jsonschema:"terms to highlight; extracted from query when empty"`
	Query    string   `json:"query,omitempty" jsonschema:"job description used to extract keywords"`
	Snippets int      `json:"snippets,omitempty" jsonschema:"number of preview excerpts (preview only, default 3)"`
}

func (in HighlightInput) document() DocumentInput {
	return DocumentInput{Name: in.Name, Path: in.Path, Text: in.Text}
}

// HighlightOutput is the output schema for the highlight_candidate tool.
type HighlightOutput struct {
	Candidate string   `json:"candidate"`
	Keywords  []string `json:"keywords"`
	Text      string   `json:"text"`
}

// PreviewOutput is the output schema for the preview_candidate tool.
type PreviewOutput struct {
	Candidate string   `json:"candidate"`
	Keywords  []string `json:"keywords,omitempty"`
	Snippets  []string `json:"snippets,omitempty"`
	Pages     int      `json:"pages,omitempty"`
	Degraded  bool     `json:"degraded,omitempty"`
	Length    int      `json:"length"`
}

// UploadInput is the input schema for the add_candidate tool.
type UploadInput struct {
	Name   string `json:"name" jsonschema:"file name, e.g. jane.pdf; the extension selects the format"`
	Text   string `json:"text,omitempty" jsonschema:"plain-text content"`
	Base64 string `json:"base64,omitempty" jsonschema:"base64-encoded file content"`
}

// RemoveInput is the input schema for the remove_candidate tool.
type RemoveInput struct {
	Name string `json:"name" jsonschema:"name of the uploaded candidate"`
}

// UploadOutput reports the uploaded candidates after a change.
type UploadOutput struct {
	Candidates []string `json:"candidates"`
	Count      int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rank_candidates",
		Description: "Rank resumes against a job description by TF-IDF cosine similarity",
	}, s.handleRank)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_keywords",
		Description: "Extract the most salient terms of a job description",
	}, s.handleKeywords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "highlight_candidate",
		Description: "Return a resume's text with job description keywords highlighted",
	}, s.handleHighlight)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_candidate",
		Description: "Return short excerpts of a resume around keyword matches",
	}, s.handlePreview)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_candidate",
		Description: "Upload a resume for later ranking in this session",
	}, s.handleAddCandidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_candidate",
		Description: "Remove an uploaded resume",
	}, s.handleRemoveCandidate)
}

// handleRank handles the rank_candidates tool invocation.
func (s *Server) handleRank(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RankInput,
) (*mcp.CallToolResult, RankOutput, error) {
	query, err := s.resolveQuery(ctx, input.Query, input.QueryPath)
	if err != nil {
		return nil, RankOutput{}, err
	}

	candidates, err := s.collectCandidates(ctx, input)
	if err != nil {
		return nil, RankOutput{}, err
	}

	opts := s.defaultOptions()
	opts.Parallel = opts.Parallel || input.Parallel
	if input.MinScore != nil {
		opts.MinScore = *input.MinScore
	}
	if input.TopN != nil {
		opts.TopN = *input.TopN
	}
	if input.Keywords != nil {
		opts.KeywordCount = *input.Keywords
	}

	result, err := s.ports.Ranking.Rank(ctx, query, candidates, opts)
	if err != nil {
		return nil, RankOutput{}, err
	}

	output := RankOutput{
		ID:         result.ID,
		Candidates: make([]RankedCandidate, len(result.Candidates)),
		Degraded:   result.Degraded,
		Keywords:   keywordOutputs(result.Keywords),
		Total:      result.Total,
	}
	for i, c := range result.Candidates {
		output.Candidates[i] = RankedCandidate{
			Rank:      i + 1,
			Candidate: c.CandidateID,
			Score:     c.Score,
			Percent:   report.FormatPercent(c.Score),
		}
	}
	for _, e := range result.Excluded {
		output.Excluded = append(output.Excluded, ExcludedOutput{
			Candidate: e.CandidateID,
			Reason:    string(e.Reason),
			Message:   e.Message(),
		})
	}
	return nil, output, nil
}

// collectCandidates gathers inline documents, paths and, when asked for or
// when nothing else is given, uploads.
func (s *Server) collectCandidates(ctx context.Context, input RankInput) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for i, doc := range input.Documents {
		if doc.Name == "" && doc.Text != "" {
			doc.Name = fmt.Sprintf("document-%d.txt", i+1)
		}
		c, err := s.resolveCandidate(ctx, doc)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	if len(input.Paths) > 0 {
		loaded, err := filesystem.Load(ctx, input.Paths)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, loaded...)
	}

	if input.UseUploads || (len(input.Documents) == 0 && len(input.Paths) == 0) {
		if s.ports.Candidates != nil {
			uploaded, err := s.ports.Candidates.List(ctx)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, uploaded...)
		}
	}
	return candidates, nil
}

// handleKeywords handles the extract_keywords tool invocation.
func (s *Server) handleKeywords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input KeywordsInput,
) (*mcp.CallToolResult, KeywordsOutput, error) {
	topK := input.TopK
	if topK <= 0 {
		topK = defaultKeywordCount
	}
	kws, err := s.ports.Ranking.Keywords(ctx, input.Query, topK)
	if err != nil {
		return nil, KeywordsOutput{}, err
	}
	return nil, KeywordsOutput{Keywords: keywordOutputs(kws)}, nil
}

// handleHighlight handles the highlight_candidate tool invocation.
func (s *Server) handleHighlight(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HighlightInput,
) (*mcp.CallToolResult, HighlightOutput, error) {
	candidate, err := s.resolveCandidate(ctx, input.document())
	if err != nil {
		return nil, HighlightOutput{}, err
	}
	terms, err := s.keywordTerms(ctx, input)
	if err != nil {
		return nil, HighlightOutput{}, err
	}

	text, err := s.ports.Ranking.Highlight(ctx, candidate, terms)
	if err != nil {
		return nil, HighlightOutput{}, err
	}
	return nil, HighlightOutput{Candidate: candidate.ID, Keywords: terms, Text: text}, nil
}

// handlePreview handles the preview_candidate tool invocation.
func (s *Server) handlePreview(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HighlightInput,
) (*mcp.CallToolResult, PreviewOutput, error) {
	candidate, err := s.resolveCandidate(ctx, input.document())
	if err != nil {
		return nil, PreviewOutput{}, err
	}
	terms, err := s.keywordTerms(ctx, input)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	extraction, err := s.ports.Ranking.Extract(ctx, candidate)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	n := input.Snippets
	if n <= 0 {
		n = defaultSnippetCount
	}
	return nil, PreviewOutput{
		Candidate: candidate.ID,
		Keywords:  terms,
		Snippets:  keywords.Snippets(extraction.Text, terms, n, 0),
		Pages:     extraction.Pages,
		Degraded:  extraction.Degraded,
		Length:    len([]rune(extraction.Text)),
	}, nil
}

// handleAddCandidate handles the add_candidate tool invocation.
func (s *Server) handleAddCandidate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UploadInput,
) (*mcp.CallToolResult, UploadOutput, error) {
	if s.ports.Candidates == nil {
		return nil, UploadOutput{}, ErrNoCandidateStore
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, UploadOutput{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	content := []byte(input.Text)
	if input.Base64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(input.Base64)
		if err != nil {
			return nil, UploadOutput{}, fmt.Errorf("%w: base64: %v", domain.ErrInvalidInput, err)
		}
		content = decoded
	}

	if err := s.ports.Candidates.Put(ctx, domain.NewCandidate(input.Name, content)); err != nil {
		return nil, UploadOutput{}, err
	}
	return s.uploadOutput(ctx)
}

// handleRemoveCandidate handles the remove_candidate tool invocation.
func (s *Server) handleRemoveCandidate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveInput,
) (*mcp.CallToolResult, UploadOutput, error) {
	if s.ports.Candidates == nil {
		return nil, UploadOutput{}, ErrNoCandidateStore
	}
	if err := s.ports.Candidates.Remove(ctx, input.Name); err != nil {
		return nil, UploadOutput{}, fmt.Errorf("remove %s: %w", input.Name, err)
	}
	return s.uploadOutput(ctx)
}

func (s *Server) uploadOutput(ctx context.Context) (*mcp.CallToolResult, UploadOutput, error) {
	list, err := s.ports.Candidates.List(ctx)
	if err != nil {
		return nil, UploadOutput{}, err
	}
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.ID
	}
	return nil, UploadOutput{Candidates: names, Count: len(names)}, nil
}

// resolveCandidate turns a DocumentInput into a candidate. Inline text wins
// over a path, and a path over an upload name.
func (s *Server) resolveCandidate(ctx context.Context, doc DocumentInput) (domain.Candidate, error) {
	switch {
	case doc.Text != "":
		name := doc.Name
		if name == "" {
			name = inlineCandidateName
		}
		return domain.Candidate{ID: name, Content: []byte(doc.Text), Format: domain.FormatText}, nil
	case doc.Path != "":
		loaded, err := filesystem.Load(ctx, []string{doc.Path})
		if err != nil {
			return domain.Candidate{}, err
		}
		if len(loaded) == 0 {
			return domain.Candidate{}, fmt.Errorf("%w: no supported documents in %s", domain.ErrInvalidInput, doc.Path)
		}
		return loaded[0], nil
	case doc.Name != "":
		if s.ports.Candidates == nil {
			return domain.Candidate{}, ErrNoCandidateStore
		}
		c, err := s.ports.Candidates.Get(ctx, doc.Name)
		if err != nil {
			return domain.Candidate{}, fmt.Errorf("candidate %s: %w", doc.Name, err)
		}
		return *c, nil
	default:
		return domain.Candidate{}, ErrNoCandidateSource
	}
}

// keywordTerms returns the explicit keywords, or those extracted from the
// query.
func (s *Server) keywordTerms(ctx context.Context, input HighlightInput) ([]string, error) {
	if len(input.Keywords) > 0 || input.Query == "" {
		return input.Keywords, nil
	}
	kws, err := s.ports.Ranking.Keywords(ctx, input.Query, s.defaultOptions().KeywordCount)
	if err != nil {
		return nil, err
	}
	return domain.Terms(kws), nil
}

// defaultOptions returns configured rank options, or built-in defaults.
func (s *Server) defaultOptions() domain.RankOptions {
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil && settings != nil {
			return settings.Options()
		}
	}
	return domain.DefaultRankSettings().Options()
}

// resolveQuery returns query text, reading queryPath when query is empty.
func (s *Server) resolveQuery(ctx context.Context, query, queryPath string) (string, error) {
	if strings.TrimSpace(query) != "" {
		return query, nil
	}
	if queryPath == "" {
		return "", fmt.Errorf("%w: query or query_path is required", domain.ErrInvalidInput)
	}
	return filesystem.ReadQuery(ctx, queryPath, s.ports.Ranking)
}

func keywordOutputs(kws []domain.Keyword) []KeywordOutput {
	out := make([]KeywordOutput, len(kws))
	for i, k := range kws {
		out[i] = KeywordOutput{Term: k.Term, Weight: k.Weight}
	}
	return out
}
