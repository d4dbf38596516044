package services

import (
	"fmt"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTriggerPhrase   = "extraction.trigger_phrase"
	keyWindowChars     = "extraction.window_chars"
	keyMaxWords        = "extraction.max_words"
	keyXMLMaxChars     = "extraction.xml_max_chars"
	keyMaxArchiveDepth = "intake.max_archive_depth"
)

// SettingsService manages extraction settings on top of a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or zero stored values fall back
// to the contractual defaults.
func (s *SettingsService) Get() (*domain.ExtractionSettings, error) {
	defaults := domain.DefaultExtractionSettings()

	settings := &domain.ExtractionSettings{
		TriggerPhrase:   s.getString(keyTriggerPhrase, defaults.TriggerPhrase),
		WindowChars:     s.getInt(keyWindowChars, defaults.WindowChars),
		MaxWords:        s.getInt(keyMaxWords, defaults.MaxWords),
		XMLMaxChars:     s.getInt(keyXMLMaxChars, defaults.XMLMaxChars),
		MaxArchiveDepth: s.getInt(keyMaxArchiveDepth, defaults.MaxArchiveDepth),
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.ExtractionSettings) error {
	if err := s.configStore.Set(keyTriggerPhrase, settings.TriggerPhrase); err != nil {
		return fmt.Errorf("save trigger phrase: %w", err)
	}
	if err := s.configStore.Set(keyWindowChars, settings.WindowChars); err != nil {
		return fmt.Errorf("save window chars: %w", err)
	}
	if err := s.configStore.Set(keyMaxWords, settings.MaxWords); err != nil {
		return fmt.Errorf("save max words: %w", err)
	}
	if err := s.configStore.Set(keyXMLMaxChars, settings.XMLMaxChars); err != nil {
		return fmt.Errorf("save xml max chars: %w", err)
	}
	if err := s.configStore.Set(keyMaxArchiveDepth, settings.MaxArchiveDepth); err != nil {
		return fmt.Errorf("save max archive depth: %w", err)
	}
	return nil
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}
