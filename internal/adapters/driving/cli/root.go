// Package cli implements the patent2sdg command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreamaggetto40/Patent2SDG/internal/adapters/driven/config/file"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driving"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/services"
	"github.com/andreamaggetto40/Patent2SDG/internal/extractors"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Persistent flags.
var (
	verboseFlag bool
	configDir   string
)

// Services wired at startup; tests inject mocks.
var (
	extractionService  driving.ExtractionService
	settingsService    driving.SettingsService
	extractionSettings domain.ExtractionSettings
)

var rootCmd = &cobra.Command{
	Use:   "patent2sdg",
	Short: "Extract plain text from patent documents",
	Long: `patent2sdg pulls best-effort plain text out of patent documents
(PDF, TXT, DOCX, EP XML, ZIP bundles) for downstream SDG classification.

Extraction is best-effort by design: a document that cannot be parsed
yields "no text could be extracted", never an error trace.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return setupServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.patent2sdg)")
}

// setupServices builds the real service graph unless a test already
// injected doubles.
func setupServices() error {
	if extractionService != nil && settingsService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService = services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	extractionSettings = *settings

	registry := extractors.DefaultRegistry(*settings)
	extractionService = services.NewExtractionService(registry)
	return nil
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
