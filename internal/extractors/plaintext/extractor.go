package plaintext

import (
	"bytes"
	"context"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
	"github.com/custodia-labs/resrank/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatText
}

// Extract decodes content as UTF-8. Content that is not valid UTF-8 is
// decoded as Windows-1252 instead, which maps every byte, and the result is
// marked Degraded.
func (e *Extractor) Extract(_ context.Context, content []byte) (*domain.Extraction, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	if utf8.Valid(content) {
		return &domain.Extraction{Text: string(content)}, nil
	}

	logger.Debug("Text is not valid UTF-8, decoding as Windows-1252")
	text, err := charmap.Windows1252.NewDecoder().Bytes(content)
	if err != nil {
		// Windows-1252 decoding cannot fail; keep valid runes if it ever does
		return &domain.Extraction{Text: string(bytes.ToValidUTF8(content, []byte("�"))), Degraded: true}, nil
	}
	return &domain.Extraction{Text: string(text), Degraded: true}, nil
}
