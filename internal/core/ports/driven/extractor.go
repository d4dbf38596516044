package driven

import (
	"context"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
)

// Extractor pulls plain text out of documents of specific MIME types.
// Each extractor wraps one parsing strategy (e.g., in-process PDF parsing,
// the pdftotext tool, OOXML unpacking).
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = tried first).
	// Primary parsers should return 50-89.
	// Fallback parsers should return 1-9.
	Priority() int

	// Extract returns the extracted text or an error. Errors never reach
	// the caller of the extraction service; they only move the registry
	// to the next strategy in the chain.
	Extract(ctx context.Context, doc *domain.UploadedDocument) (*ExtractResult, error)
}

// ExtractResult contains the output of one extraction strategy.
type ExtractResult struct {
	// Text is the extracted plain text.
	Text string

	// Engine names the parser that produced the text.
	Engine string
}

// ExtractorRegistry dispatches documents to extractors by declared MIME
// type. Candidates for a type are tried in priority order until one
// succeeds or the chain is exhausted.
type ExtractorRegistry interface {
	// Extract runs the strategy chain for the document's MIME type.
	Extract(ctx context.Context, doc *domain.UploadedDocument) (*ExtractResult, error)

	// Register adds an extractor to the registry.
	Register(extractor Extractor)

	// SupportedMIMETypes returns all MIME types that can be extracted.
	SupportedMIMETypes() []string
}
