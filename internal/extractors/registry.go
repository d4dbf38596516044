package extractors

import (
	"context"
	"sort"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps MIME types to priority-ordered extractor chains.
type Registry struct {
	byMIME map[string][]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		byMIME: make(map[string][]driven.Extractor),
	}
}

// Register adds an extractor to the chain of every MIME type it supports.
// Chains stay sorted by descending priority.
func (r *Registry) Register(extractor driven.Extractor) {
	for _, mimeType := range extractor.SupportedMIMETypes() {
		chain := append(r.byMIME[mimeType], extractor)
		sort.SliceStable(chain, func(i, j int) bool {
			return chain[i].Priority() > chain[j].Priority()
		})
		r.byMIME[mimeType] = chain
	}
}

// Extract runs the strategy chain for the document's declared MIME type.
// The first extractor to succeed wins; a failing extractor only moves the
// chain forward. With no chain for the type the result is
// domain.ErrUnsupportedType.
func (r *Registry) Extract(ctx context.Context, doc *domain.UploadedDocument) (*driven.ExtractResult, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}

	chain := r.byMIME[doc.MIMEType]
	if len(chain) == 0 {
		return nil, domain.ErrUnsupportedType
	}

	var lastErr error
	for _, extractor := range chain {
		result, err := extractor.Extract(ctx, doc)
		if err == nil && result != nil {
			return result, nil
		}
		logger.Debug("extractor failed for %s, trying next: %v", doc.Name, err)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = domain.ErrNoText
	}
	return nil, lastErr
}

// SupportedMIMETypes returns all MIME types with at least one extractor,
// sorted for stable output.
func (r *Registry) SupportedMIMETypes() []string {
	types := make([]string, 0, len(r.byMIME))
	for mimeType := range r.byMIME {
		types = append(types, mimeType)
	}
	sort.Strings(types)
	return types
}
