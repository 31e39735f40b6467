package domain

import (
	"fmt"
	"strconv"
)

// Settings keys as stored in the configuration file.
const (
	SettingMinScore           = "ranking.min_score"
	SettingTopN               = "ranking.top_n"
	SettingParallel           = "ranking.parallel"
	SettingNgramMax           = "ranking.ngram_max"
	SettingMaxFeatures        = "ranking.max_features"
	SettingKeywordCount       = "keywords.count"
	SettingKeywordMaxFeatures = "keywords.max_features"
	SettingHighlightOpen      = "highlight.open"
	SettingHighlightClose     = "highlight.close"
)

// RankSettings holds user-configurable ranking behaviour.
type RankSettings struct {
	// MinScore is the default percentage threshold.
	MinScore float64

	// TopN is the default ranking length. Zero keeps all.
	TopN int

	// Parallel enables concurrent extraction.
	Parallel bool

	// NgramMax is the largest n-gram used for candidate vectors (1 or 2).
	NgramMax int

	// MaxFeatures caps the ranking vocabulary. Zero is unlimited.
	MaxFeatures int

	// KeywordCount is how many keywords to extract from the query.
	KeywordCount int

	// KeywordMaxFeatures caps the keyword vocabulary.
	KeywordMaxFeatures int

	// HighlightOpen and HighlightClose wrap matched keywords.
	HighlightOpen  string
	HighlightClose string
}

// DefaultRankSettings returns the settings used when nothing is configured.
func DefaultRankSettings() RankSettings {
	return RankSettings{
		MinScore:           0,
		TopN:               0,
		Parallel:           false,
		NgramMax:           1,
		MaxFeatures:        0,
		KeywordCount:       10,
		KeywordMaxFeatures: 100,
		HighlightOpen:      "**",
		HighlightClose:     "**",
	}
}

// Validate checks that settings are within their allowed ranges.
func (s RankSettings) Validate() error {
	if s.MinScore < 0 || s.MinScore > 100 {
		return fmt.Errorf("%w: min score %.2f outside 0-100", ErrInvalidInput, s.MinScore)
	}
	if s.TopN < 0 {
		return fmt.Errorf("%w: top n must not be negative", ErrInvalidInput)
	}
	if s.NgramMax < 1 || s.NgramMax > 2 {
		return fmt.Errorf("%w: ngram max must be 1 or 2", ErrInvalidInput)
	}
	if s.MaxFeatures < 0 || s.KeywordMaxFeatures < 0 {
		return fmt.Errorf("%w: max features must not be negative", ErrInvalidInput)
	}
	if s.KeywordCount < 0 {
		return fmt.Errorf("%w: keyword count must not be negative", ErrInvalidInput)
	}
	return nil
}

// Options returns the RankOptions these settings imply.
func (s RankSettings) Options() RankOptions {
	return RankOptions{
		MinScore:     s.MinScore,
		TopN:         s.TopN,
		KeywordCount: s.KeywordCount,
		Parallel:     s.Parallel,
	}
}

// Value returns the string form of the setting stored under key.
func (s RankSettings) Value(key string) (string, bool) {
	switch key {
	case SettingMinScore:
		return strconv.FormatFloat(s.MinScore, 'f', -1, 64), true
	case SettingTopN:
		return strconv.Itoa(s.TopN), true
	case SettingParallel:
		return strconv.FormatBool(s.Parallel), true
	case SettingNgramMax:
		return strconv.Itoa(s.NgramMax), true
	case SettingMaxFeatures:
		return strconv.Itoa(s.MaxFeatures), true
	case SettingKeywordCount:
		return strconv.Itoa(s.KeywordCount), true
	case SettingKeywordMaxFeatures:
		return strconv.Itoa(s.KeywordMaxFeatures), true
	case SettingHighlightOpen:
		return s.HighlightOpen, true
	case SettingHighlightClose:
		return s.HighlightClose, true
	default:
		return "", false
	}
}
