package driving

import "github.com/andreamaggetto40/Patent2SDG/internal/core/domain"

// SettingsService manages extraction settings.
type SettingsService interface {
	// Get retrieves current settings, merging stored values over defaults.
	Get() (*domain.ExtractionSettings, error)

	// Save persists settings.
	Save(settings *domain.ExtractionSettings) error
}
