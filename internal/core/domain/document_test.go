package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUploadedDocument(t *testing.T) {
	doc := NewUploadedDocument("patent.pdf", MIMEPDF, []byte("%PDF-1.4"))

	require.NotNil(t, doc)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "patent.pdf", doc.Name)
	assert.Equal(t, "patent.pdf", doc.URI)
	assert.Equal(t, MIMEPDF, doc.MIMEType)
	assert.Equal(t, []byte("%PDF-1.4"), doc.Content)
}

func TestNewUploadedDocument_UniqueIDs(t *testing.T) {
	a := NewUploadedDocument("a.txt", MIMEText, []byte("a"))
	b := NewUploadedDocument("b.txt", MIMEText, []byte("b"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUploadedDocument_Empty(t *testing.T) {
	tests := []struct {
		name     string
		doc      *UploadedDocument
		expected bool
	}{
		{
			name:     "nil document",
			doc:      nil,
			expected: true,
		},
		{
			name:     "no content",
			doc:      &UploadedDocument{Name: "empty.pdf", MIMEType: MIMEPDF},
			expected: true,
		},
		{
			name:     "with content",
			doc:      &UploadedDocument{Name: "doc.txt", MIMEType: MIMEText, Content: []byte("x")},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.doc.Empty())
		})
	}
}

func TestMIMETypeByExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"pdf", "patent.pdf", MIMEPDF},
		{"pdf upper case", "PATENT.PDF", MIMEPDF},
		{"txt", "notes.txt", MIMEText},
		{"docx", "claims.docx", MIMEDocx},
		{"xml", "EP1234567.xml", MIMEXML},
		{"zip", "bundle.zip", MIMEZip},
		{"unknown extension", "image.png", ""},
		{"no extension", "README", ""},
		{"nested path", "dir/inner/spec.pdf", MIMEPDF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MIMETypeByExtension(tc.filename))
		})
	}
}

func TestDefaultExtractionSettings(t *testing.T) {
	s := DefaultExtractionSettings()

	assert.Equal(t, "field of the invention", s.TriggerPhrase)
	assert.Equal(t, 2500, s.WindowChars)
	assert.Equal(t, 300, s.MaxWords)
	assert.Equal(t, 5000, s.XMLMaxChars)
	assert.Equal(t, 5, s.MaxArchiveDepth)
}
