package plaintext

import (
	"context"
	"strings"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents. Decoding is lenient: invalid
// UTF-8 byte sequences are dropped rather than failing the call.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMEText}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Only strategy for plain text
}

// Extract decodes the raw bytes as UTF-8, silently discarding malformed
// sequences.
func (e *Extractor) Extract(_ context.Context, doc *domain.UploadedDocument) (*driven.ExtractResult, error) {
	if doc.Empty() {
		return nil, domain.ErrInvalidInput
	}

	text := strings.ToValidUTF8(string(doc.Content), "")
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrNoText
	}

	return &driven.ExtractResult{Text: text, Engine: "utf8"}, nil
}
