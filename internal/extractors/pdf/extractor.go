package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
	"github.com/custodia-labs/resrank/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// document is the paged view of a PDF the extractor needs.
type document interface {
	NumPage() int
	PageText(num int) (string, error)
}

// openFunc parses PDF bytes into a document.
type openFunc func(content []byte) (document, error)

// Extractor handles PDF documents. It parses the in-memory buffer
// directly; nothing is written to disk.
type Extractor struct {
	open openFunc
}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{open: openReader}
}

// newWithOpener creates an extractor with a custom parser (for testing).
func newWithOpener(open openFunc) *Extractor {
	return &Extractor{open: open}
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatPDF
}

// Extract concatenates per-page text in page order. A page that yields no
// text, or fails to decode, contributes nothing: image-only PDFs degrade to
// empty output rather than an error.
func (e *Extractor) Extract(ctx context.Context, content []byte) (*domain.Extraction, error) {
	doc, err := e.open(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	pages := doc.NumPage()
	texts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := pageText(doc, i)
		if err != nil {
			logger.Debug("PDF page %d: %v (treated as empty)", i, err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}

	return &domain.Extraction{
		Text:  strings.Join(texts, "\n"),
		Pages: pages,
	}, nil
}

// pageText reads one page, converting parser panics into errors.
func pageText(doc document, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", num, r)
		}
	}()
	return doc.PageText(num)
}

// reader adapts pdf.Reader to document.
type reader struct {
	r *pdf.Reader
}

func (d reader) NumPage() int {
	return d.r.NumPage()
}

func (d reader) PageText(num int) (string, error) {
	p := d.r.Page(num)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

// openReader parses content with the PDF library, recovering from panics
// raised on malformed cross-reference tables.
func openReader(content []byte) (doc document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}
	return reader{r: r}, nil
}
