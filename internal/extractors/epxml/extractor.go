package epxml

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
)

// sections are the EP XML elements carrying substantive patent text,
// gathered in this order.
var sections = []string{"abstract", "description", "claims"}

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles EPO XML patent publications. It gathers the character
// data of the first abstract, description, and claims elements and caps
// the joined text at XMLMaxChars characters.
type Extractor struct {
	settings domain.ExtractionSettings
}

// New creates a new EP XML extractor.
func New(settings domain.ExtractionSettings) *Extractor {
	return &Extractor{settings: settings}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{domain.MIMEXML, "text/xml"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Only strategy for EP XML
}

// Extract parses the XML and joins the section texts with spaces.
func (e *Extractor) Extract(_ context.Context, doc *domain.UploadedDocument) (*driven.ExtractResult, error) {
	if doc.Empty() {
		return nil, domain.ErrInvalidInput
	}

	texts, err := sectionTexts(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}

	var parts []string
	for _, section := range sections {
		if text := texts[section]; text != "" {
			parts = append(parts, text)
		}
	}

	content := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if content == "" {
		return nil, domain.ErrNoText
	}

	if runes := []rune(content); len(runes) > e.settings.XMLMaxChars {
		content = string(runes[:e.settings.XMLMaxChars])
	}

	return &driven.ExtractResult{Text: content, Engine: "epxml"}, nil
}

// sectionTexts walks the XML token stream and captures the character data
// inside the first occurrence of each section element.
func sectionTexts(content []byte) (map[string]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	builders := make(map[string]*strings.Builder)
	done := make(map[string]bool)
	var active string
	var depth int

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if active != "" {
				depth++
				continue
			}
			name := t.Name.Local
			if !done[name] && isSection(name) {
				active = name
				depth = 1
				builders[name] = &strings.Builder{}
			}
		case xml.EndElement:
			if active == "" {
				continue
			}
			depth--
			if depth == 0 {
				done[active] = true
				active = ""
			}
		case xml.CharData:
			if active != "" {
				builders[active].Write(t)
				builders[active].WriteByte(' ')
			}
		}
	}

	texts := make(map[string]string, len(builders))
	for name, b := range builders {
		texts[name] = strings.TrimSpace(b.String())
	}
	return texts, nil
}

func isSection(name string) bool {
	for _, s := range sections {
		if s == name {
			return true
		}
	}
	return false
}
