package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles OOXML word-processing documents.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMEDocx}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Only strategy for DOCX
}

// Extract opens the document as a ZIP container and concatenates the text
// of every non-empty paragraph in word/document.xml, joined with spaces.
func (e *Extractor) Extract(_ context.Context, doc *domain.UploadedDocument) (*driven.ExtractResult, error) {
	if doc.Empty() {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(doc.Content), int64(len(doc.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}

	text, err := extractDocumentText(reader)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, domain.ErrNoText
	}

	return &driven.ExtractResult{Text: text, Engine: "ooxml"}, nil
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
		}

		return parseDocumentXML(content)
	}
	return "", fmt.Errorf("%w: missing word/document.xml", domain.ErrParseFailure)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML joins the non-empty paragraphs of the document with
// single spaces, preserving paragraph order. Whitespace-only paragraphs
// are dropped.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}

	var paragraphs []string
	for _, para := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, r := range para.Runs {
			for _, text := range r.Text {
				b.WriteString(text.Content)
			}
		}
		if trimmed := strings.TrimSpace(b.String()); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	return strings.Join(paragraphs, " "), nil
}
