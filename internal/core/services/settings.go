package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
	"github.com/custodia-labs/resrank/internal/core/ports/driving"
	"github.com/custodia-labs/resrank/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// settingKeys lists the recognised keys in display order.
var settingKeys = []string{
	domain.SettingMinScore,
	domain.SettingTopN,
	domain.SettingParallel,
	domain.SettingNgramMax,
	domain.SettingMaxFeatures,
	domain.SettingKeywordCount,
	domain.SettingKeywordMaxFeatures,
	domain.SettingHighlightOpen,
	domain.SettingHighlightClose,
}

// SettingsService manages ranking settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset keys take their defaults, and so
// does a stored combination that fails validation.
func (s *SettingsService) Get() (*domain.RankSettings, error) {
	defaults := domain.DefaultRankSettings()

	settings := &domain.RankSettings{
		MinScore:           s.getFloat(domain.SettingMinScore, defaults.MinScore),
		TopN:               s.getInt(domain.SettingTopN, defaults.TopN),
		Parallel:           s.getBool(domain.SettingParallel, defaults.Parallel),
		NgramMax:           s.getInt(domain.SettingNgramMax, defaults.NgramMax),
		MaxFeatures:        s.getInt(domain.SettingMaxFeatures, defaults.MaxFeatures),
		KeywordCount:       s.getInt(domain.SettingKeywordCount, defaults.KeywordCount),
		KeywordMaxFeatures: s.getInt(domain.SettingKeywordMaxFeatures, defaults.KeywordMaxFeatures),
		HighlightOpen:      s.getString(domain.SettingHighlightOpen, defaults.HighlightOpen),
		HighlightClose:     s.getString(domain.SettingHighlightClose, defaults.HighlightClose),
	}

	if err := settings.Validate(); err != nil {
		logger.Warn("Stored settings are invalid, using defaults: %v", err)
		return &defaults, nil
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.RankSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are required", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{domain.SettingMinScore, settings.MinScore},
		{domain.SettingTopN, settings.TopN},
		{domain.SettingParallel, settings.Parallel},
		{domain.SettingNgramMax, settings.NgramMax},
		{domain.SettingMaxFeatures, settings.MaxFeatures},
		{domain.SettingKeywordCount, settings.KeywordCount},
		{domain.SettingKeywordMaxFeatures, settings.KeywordMaxFeatures},
		{domain.SettingHighlightOpen, settings.HighlightOpen},
		{domain.SettingHighlightClose, settings.HighlightClose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the resulting settings and persists
// the single key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	parsed, err := apply(settings, key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns all recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.RankSettings {
	return domain.DefaultRankSettings()
}

// apply sets the field for key on settings and returns the typed value.
func apply(settings *domain.RankSettings, key, value string) (any, error) {
	switch key {
	case domain.SettingMinScore:
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return nil, invalidValue(key, value)
		}
		settings.MinScore = f
		return f, nil
	case domain.SettingParallel:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalidValue(key, value)
		}
		settings.Parallel = b
		return b, nil
	case domain.SettingHighlightOpen:
		settings.HighlightOpen = value
		return value, nil
	case domain.SettingHighlightClose:
		settings.HighlightClose = value
		return value, nil
	}

	target := intField(settings, key)
	if target == nil {
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, invalidValue(key, value)
	}
	*target = n
	return n, nil
}

// intField returns a pointer to the integer field for key, or nil.
func intField(settings *domain.RankSettings, key string) *int {
	switch key {
	case domain.SettingTopN:
		return &settings.TopN
	case domain.SettingNgramMax:
		return &settings.NgramMax
	case domain.SettingMaxFeatures:
		return &settings.MaxFeatures
	case domain.SettingKeywordCount:
		return &settings.KeywordCount
	case domain.SettingKeywordMaxFeatures:
		return &settings.KeywordMaxFeatures
	default:
		return nil
	}
}

func invalidValue(key, value string) error {
	return fmt.Errorf("%w: %q is not a valid value for %s", domain.ErrInvalidInput, value, key)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
