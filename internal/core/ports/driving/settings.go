package driving

import "github.com/custodia-labs/resrank/internal/core/domain"

// SettingsService manages ranking settings.
type SettingsService interface {
	// Get retrieves current settings, filling defaults for unset keys.
	Get() (*domain.RankSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.RankSettings) error

	// Set updates a single setting from its string form.
	Set(key, value string) error

	// Keys returns all recognised setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.RankSettings
}
