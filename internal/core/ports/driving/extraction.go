package driving

import (
	"context"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
)

// ExtractionService is the public contract of the extraction core.
//
// The only failure signal is the boolean: any parser error, panic, or
// unsupported input degrades to ("", false). Callers must not assume
// anything about why extraction failed, and must present absence as
// "no text could be extracted" rather than an error.
type ExtractionService interface {
	// ExtractText returns the best-effort extracted text for one document.
	// Nil or empty documents return absence without being read.
	ExtractText(ctx context.Context, doc *domain.UploadedDocument) (string, bool)

	// ExtractBatch extracts many documents, keyed by document name.
	// Documents that yield no text are skipped, never aborting the batch.
	ExtractBatch(ctx context.Context, docs []*domain.UploadedDocument) map[string]string

	// SupportedMIMETypes returns the MIME types the core can extract.
	SupportedMIMETypes() []string
}
