// Package mcp provides an MCP (Model Context Protocol) server adapter for
// resrank. It lets AI assistants rank resumes, extract keywords and preview
// highlighted candidates.
package mcp

import "errors"

var (
	// ErrMissingRankingService is returned when the ranking service is not provided.
	ErrMissingRankingService = errors.New("mcp: ranking service is required")

	// ErrNoCandidateStore is returned by upload tools when no store is configured.
	ErrNoCandidateStore = errors.New("mcp: candidate uploads are not enabled")

	// ErrNoCandidateSource is returned when a tool call names no document.
	ErrNoCandidateSource = errors.New("mcp: one of name, path or text is required")
)
