package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"resume.pdf", FormatPDF},
		{"RESUME.PDF", FormatPDF},
		{"cv.docx", FormatDOCX},
		{"cv.DocX", FormatDOCX},
		{"notes.txt", FormatText},
		{"/path/to/notes.TXT", FormatText},
		{"legacy.doc", FormatUnknown},
		{"slides.pptx", FormatUnknown},
		{"README", FormatUnknown},
		{"archive.txt.gz", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectFormat(tc.filename))
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "pdf", FormatPDF.String())
	assert.Equal(t, "docx", FormatDOCX.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestFormat_IsSupported(t *testing.T) {
	assert.True(t, FormatPDF.IsSupported())
	assert.True(t, FormatDOCX.IsSupported())
	assert.True(t, FormatText.IsSupported())
	assert.False(t, FormatUnknown.IsSupported())
}

func TestSupportedExtensions(t *testing.T) {
	for _, ext := range SupportedExtensions() {
		assert.True(t, DetectFormat("file"+ext).IsSupported(), ext)
	}
}
