package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies how a candidate's bytes are encoded.
type Format int

const (
	// FormatUnknown is any format resrank cannot extract text from.
	FormatUnknown Format = iota

	// FormatPDF is a Portable Document Format file.
	FormatPDF

	// FormatDOCX is an Office Open XML word-processing document.
	FormatDOCX

	// FormatText is plain text.
	FormatText
)

// String returns the canonical lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// IsSupported returns true if text can be extracted from the format.
func (f Format) IsSupported() bool {
	return f == FormatPDF || f == FormatDOCX || f == FormatText
}

// DetectFormat maps a filename to a Format by its extension.
// Matching is case-insensitive; unrecognised extensions yield FormatUnknown.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".txt":
		return FormatText
	default:
		return FormatUnknown
	}
}

// SupportedExtensions returns the file extensions that DetectFormat recognises.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".txt"}
}
