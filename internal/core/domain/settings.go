package domain

// ExtractionSettings holds the tunables of the extraction pipeline.
// The defaults are contractual: downstream SDG classification relies on the
// windowing heuristic keeping embedding input focused and bounded.
type ExtractionSettings struct {
	// TriggerPhrase marks the start of the substantive PDF description.
	// Matched case-insensitively against the whitespace-collapsed text.
	TriggerPhrase string

	// WindowChars is the number of characters kept from the trigger
	// phrase onward.
	WindowChars int

	// MaxWords caps the extracted text when the trigger phrase is absent,
	// and always caps fallback-engine output.
	MaxWords int

	// XMLMaxChars caps text gathered from EP XML patent files.
	XMLMaxChars int

	// MaxArchiveDepth bounds nested ZIP traversal during intake.
	MaxArchiveDepth int
}

// DefaultExtractionSettings returns the contractual defaults.
func DefaultExtractionSettings() ExtractionSettings {
	return ExtractionSettings{
		TriggerPhrase:   "field of the invention",
		WindowChars:     2500,
		MaxWords:        300,
		XMLMaxChars:     5000,
		MaxArchiveDepth: 5,
	}
}
