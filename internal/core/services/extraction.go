package services

import (
	"context"
	"strings"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driving"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is the public boundary of the extraction core. Every
// failure below it, including parser panics, is absorbed here and surfaces
// only as the absence signal.
type ExtractionService struct {
	registry driven.ExtractorRegistry
}

// NewExtractionService creates a new extraction service.
func NewExtractionService(registry driven.ExtractorRegistry) *ExtractionService {
	return &ExtractionService{registry: registry}
}

// ExtractText returns the best-effort extracted text for one document.
func (s *ExtractionService) ExtractText(ctx context.Context, doc *domain.UploadedDocument) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("extraction panicked, treating as no text: %v", r)
			text, ok = "", false
		}
	}()

	if doc.Empty() {
		return "", false
	}

	result, err := s.registry.Extract(ctx, doc)
	if err != nil {
		logger.Debug("no text for %s: %v", doc.Name, err)
		return "", false
	}

	trimmed := strings.TrimSpace(result.Text)
	if trimmed == "" {
		return "", false
	}

	logger.Debug("extracted %d characters from %s via %s", len(trimmed), doc.Name, result.Engine)
	return trimmed, true
}

// ExtractBatch extracts many documents, keyed by document name. Files that
// yield no text are logged and skipped; one bad file never aborts the batch.
func (s *ExtractionService) ExtractBatch(ctx context.Context, docs []*domain.UploadedDocument) map[string]string {
	texts := make(map[string]string, len(docs))
	for _, doc := range docs {
		text, ok := s.ExtractText(ctx, doc)
		if !ok {
			if doc != nil {
				logger.Warn("could not extract valid text from: %s", doc.Name)
			}
			continue
		}
		texts[doc.Name] = text
	}
	return texts
}

// SupportedMIMETypes returns the MIME types the core can extract.
func (s *ExtractionService) SupportedMIMETypes() []string {
	return s.registry.SupportedMIMETypes()
}
