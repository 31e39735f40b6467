package tui

import "errors"

// ErrMissingRankingService is returned when the ranking service is not provided.
var ErrMissingRankingService = errors.New("tui: ranking service is required")

// ErrNoCandidates is returned when the browser is started without candidates.
var ErrNoCandidates = errors.New("tui: no candidates to browse")
