// Package report writes ranking results as CSV or JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

// CSVHeader is the first row of a CSV export.
var CSVHeader = []string{"rank", "candidate", "score"}

// FormatPercent renders a [0,1] score as a percentage, e.g. "87.50%".
func FormatPercent(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}

// WriteCSV writes one row per ranked candidate with a 1-based rank.
func WriteCSV(w io.Writer, result *domain.RankingResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if result != nil {
		for i, c := range result.Candidates {
			row := []string{strconv.Itoa(i + 1), c.CandidateID, FormatPercent(c.Score)}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the CSV export to path, creating parent directories.
func SaveCSV(path string, result *domain.RankingResult) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, result)
}

// jsonResult is the JSON shape of a ranking: exclusions carry their error
// message and candidates carry their rank and percentage.
type jsonResult struct {
	ID         string           `json:"id"`
	Query      string           `json:"query"`
	Total      int              `json:"total"`
	Candidates []jsonCandidate  `json:"candidates"`
	Excluded   []jsonExclusion  `json:"excluded,omitempty"`
	Degraded   []string         `json:"degraded,omitempty"`
	Keywords   []domain.Keyword `json:"keywords,omitempty"`
}

type jsonCandidate struct {
	Rank      int     `json:"rank"`
	Candidate string  `json:"candidate"`
	Score     float64 `json:"score"`
	Percent   string  `json:"percent"`
}

type jsonExclusion struct {
	Candidate string `json:"candidate"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
}

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result *domain.RankingResult) error {
	if result == nil {
		return fmt.Errorf("%w: nil ranking result", domain.ErrInvalidInput)
	}
	out := jsonResult{
		ID:         result.ID,
		Query:      result.Query,
		Total:      result.Total,
		Candidates: make([]jsonCandidate, len(result.Candidates)),
		Degraded:   result.Degraded,
		Keywords:   result.Keywords,
	}
	for i, c := range result.Candidates {
		out.Candidates[i] = jsonCandidate{
			Rank:      i + 1,
			Candidate: c.CandidateID,
			Score:     c.Score,
			Percent:   FormatPercent(c.Score),
		}
	}
	for _, e := range result.Excluded {
		out.Excluded = append(out.Excluded, jsonExclusion{
			Candidate: e.CandidateID,
			Reason:    string(e.Reason),
			Message:   e.Message(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
