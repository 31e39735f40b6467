package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrExtractionEmpty", ErrExtractionEmpty},
		{"ErrDecodeFallback", ErrDecodeFallback},
		{"ErrNoCandidates", ErrNoCandidates},
		{"ErrNoTerms", ErrNoTerms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrUnsupportedFormat_Wrapped(t *testing.T) {
	err := fmt.Errorf("extract resume.odt: %w", ErrUnsupportedFormat)

	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.False(t, errors.Is(err, ErrExtractionEmpty))
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestErrors_AreDistinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrAlreadyExists, ErrInvalidInput,
		ErrUnsupportedFormat, ErrExtractionEmpty, ErrDecodeFallback, ErrNoCandidates, ErrNoTerms,
	}
	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(all[i], all[j]), "%v should not match %v", all[i], all[j])
		}
	}
}
