// Package services implements the core use cases of the extraction tool:
// the ExtractionService (text-or-absence boundary, batch extraction) and
// the SettingsService (extraction tunables over a config store).
package services
