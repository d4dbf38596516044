package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor is the primary PDF strategy: in-process parsing via
// ledongthuc/pdf (pure Go, no external tools). Its output goes through the
// windowing heuristic so downstream embedding input stays focused on the
// invention description rather than front-matter boilerplate.
type Extractor struct {
	settings domain.ExtractionSettings
}

// New creates the primary PDF extractor.
func New(settings domain.ExtractionSettings) *Extractor {
	return &Extractor{settings: settings}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMEPDF}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Primary strategy
}

// Extract parses the PDF page by page, joins page texts with spaces,
// collapses whitespace, and applies the windowing heuristic.
func (e *Extractor) Extract(_ context.Context, doc *domain.UploadedDocument) (result *driven.ExtractResult, err error) {
	if doc.Empty() {
		return nil, domain.ErrInvalidInput
	}

	// The parser panics on some malformed files; convert to an error so
	// the registry moves on to the fallback strategy.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", domain.ErrParseFailure, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc.Content), int64(len(doc.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, pageText(reader.Page(i)))
	}

	text := collapseWhitespace(strings.Join(pages, " "))
	if text == "" {
		return nil, domain.ErrNoText
	}

	text = window(text, e.settings.TriggerPhrase, e.settings.WindowChars, e.settings.MaxWords)
	return &driven.ExtractResult{Text: text, Engine: "ledongthuc/pdf"}, nil
}

// pageText extracts text from one page. Blank or unreadable pages
// contribute an empty string rather than failing the document.
func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
