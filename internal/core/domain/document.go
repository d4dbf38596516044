package domain

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MIME types recognised by the extraction core.
const (
	MIMEPDF  = "application/pdf"
	MIMEText = "text/plain"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEXML  = "application/xml"
	MIMEZip  = "application/zip"
)

// UploadedDocument represents a single uploaded patent document before
// extraction. It is owned by the caller; extractors borrow it for the
// duration of one call and never mutate it.
type UploadedDocument struct {
	// ID is a unique identifier assigned at intake.
	ID string

	// Name is the original file name (used as the key in batch results).
	Name string

	// URI is the original location (file path, archive entry path, etc).
	URI string

	// MIMEType is the declared content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains intake-specific key-value pairs.
	Metadata map[string]any
}

// NewUploadedDocument creates a document with a fresh ID.
func NewUploadedDocument(name, mimeType string, content []byte) *UploadedDocument {
	return &UploadedDocument{
		ID:       uuid.New().String(),
		Name:     name,
		URI:      name,
		MIMEType: mimeType,
		Content:  content,
	}
}

// Empty reports whether the document is nil or carries no content.
// Empty documents short-circuit extraction to the absence signal.
func (d *UploadedDocument) Empty() bool {
	return d == nil || len(d.Content) == 0
}

// extensionMIMETypes maps lower-case file extensions to declared MIME types
// for intake paths (filesystem, archives) where no type is supplied.
var extensionMIMETypes = map[string]string{
	".pdf":  MIMEPDF,
	".txt":  MIMEText,
	".docx": MIMEDocx,
	".xml":  MIMEXML,
	".zip":  MIMEZip,
}

// MIMETypeByExtension resolves a declared MIME type from a file name.
// Returns empty string for unrecognised extensions.
func MIMETypeByExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return extensionMIMETypes[ext]
}
