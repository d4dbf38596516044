package extractors

import (
	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/extractors/docx"
	"github.com/andreamaggetto40/Patent2SDG/internal/extractors/epxml"
	"github.com/andreamaggetto40/Patent2SDG/internal/extractors/pdf"
	"github.com/andreamaggetto40/Patent2SDG/internal/extractors/plaintext"
)

// DefaultRegistry builds a registry with the standard extractor set:
// in-process PDF parsing with a pdftotext fallback, lenient plain text,
// OOXML word-processing documents, and EP XML patent files.
func DefaultRegistry(settings domain.ExtractionSettings) *Registry {
	registry := NewRegistry()
	registry.Register(pdf.New(settings))
	registry.Register(pdf.NewFallback(settings))
	registry.Register(plaintext.New())
	registry.Register(docx.New())
	registry.Register(epxml.New(settings))
	return registry
}
