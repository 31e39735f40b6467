package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
)

// createTestDOCX creates a minimal valid DOCX file in memory.
func createTestDOCX(documentXML string) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	// Add [Content_Types].xml (required for valid DOCX)
	contentTypes, _ := w.Create("[Content_Types].xml")
	contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))

	// Add word/document.xml
	if documentXML != "" {
		doc, _ := w.Create("word/document.xml")
		doc.Write([]byte(documentXML))
	}

	w.Close()
	return buf.Bytes()
}

func wrapBody(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body + `</w:body>
</w:document>`
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.Equal(t, domain.FormatDOCX, extractor.Format())
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = (*Extractor)(nil)
}

func TestExtract_Paragraphs(t *testing.T) {
	content := createTestDOCX(wrapBody(`
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Senior </w:t></w:r><w:r><w:t>Python developer</w:t></w:r></w:p>
<w:p><w:r><w:t>Django</w:t></w:r></w:p>`))

	result, err := New().Extract(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Python developer\nDjango", result.Text)
	assert.False(t, result.Degraded)
}

func TestExtract_TablesTabsAndBreaks(t *testing.T) {
	content := createTestDOCX(wrapBody(`
<w:p><w:r><w:t>Skills</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Go</w:t><w:tab/><w:t>5 years</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>`))

	result, err := New().Extract(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "Skills\nGo\t5 years\nline one\nline two", result.Text)
}

func TestExtract_IgnoresDrawings(t *testing.T) {
	content := createTestDOCX(wrapBody(`
<w:p><w:r><w:drawing><wp:inline xmlns:wp="urn:wp"><wp:docPr name="photo.png"/></wp:inline></w:drawing></w:r></w:p>
<w:p><w:r><w:t>Profile</w:t></w:r></w:p>`))

	result, err := New().Extract(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "Profile", result.Text)
}

func TestExtract_MissingDocumentPart(t *testing.T) {
	result, err := New().Extract(context.Background(), createTestDOCX(""))
	require.NoError(t, err)
	assert.Empty(t, result.Text)
}

func TestExtract_InvalidZip(t *testing.T) {
	result, err := New().Extract(context.Background(), []byte("not a zip file"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestExtract_MalformedXML(t *testing.T) {
	result, err := New().Extract(context.Background(), createTestDOCX("<w:document><w:body><w:p>"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestExtract_Idempotent(t *testing.T) {
	content := createTestDOCX(wrapBody(`<w:p><w:r><w:t>Kubernetes operator</w:t></w:r></w:p>`))

	first, err := New().Extract(context.Background(), content)
	require.NoError(t, err)
	second, err := New().Extract(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
