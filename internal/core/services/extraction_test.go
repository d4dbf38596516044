package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driving"
)

// mockRegistry implements driven.ExtractorRegistry.
type mockRegistry struct {
	result *driven.ExtractResult
	err    error
	panics bool
	types  []string
}

func (r *mockRegistry) Register(_ driven.Extractor) {}

func (r *mockRegistry) SupportedMIMETypes() []string { return r.types }

func (r *mockRegistry) Extract(_ context.Context, _ *domain.UploadedDocument) (*driven.ExtractResult, error) {
	if r.panics {
		panic("parser blew up")
	}
	return r.result, r.err
}

func TestNewExtractionService(t *testing.T) {
	service := NewExtractionService(&mockRegistry{})
	require.NotNil(t, service)
}

func TestExtractText_Success(t *testing.T) {
	registry := &mockRegistry{result: &driven.ExtractResult{Text: "  extracted text  ", Engine: "stub"}}
	service := NewExtractionService(registry)

	doc := domain.NewUploadedDocument("a.pdf", domain.MIMEPDF, []byte("x"))
	text, ok := service.ExtractText(context.Background(), doc)

	assert.True(t, ok)
	assert.Equal(t, "extracted text", text)
}

func TestExtractText_NilDocument(t *testing.T) {
	service := NewExtractionService(&mockRegistry{result: &driven.ExtractResult{Text: "never"}})

	text, ok := service.ExtractText(context.Background(), nil)

	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestExtractText_EmptyDocument(t *testing.T) {
	service := NewExtractionService(&mockRegistry{result: &driven.ExtractResult{Text: "never"}})

	text, ok := service.ExtractText(context.Background(), &domain.UploadedDocument{MIMEType: domain.MIMEPDF})

	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestExtractText_RegistryError(t *testing.T) {
	service := NewExtractionService(&mockRegistry{err: errors.New("parse failure")})

	doc := domain.NewUploadedDocument("a.pdf", domain.MIMEPDF, []byte("x"))
	text, ok := service.ExtractText(context.Background(), doc)

	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	service := NewExtractionService(&mockRegistry{err: domain.ErrUnsupportedType})

	doc := domain.NewUploadedDocument("a.zip", domain.MIMEZip, []byte("PK"))
	text, ok := service.ExtractText(context.Background(), doc)

	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestExtractText_WhitespaceOnlyResult(t *testing.T) {
	service := NewExtractionService(&mockRegistry{result: &driven.ExtractResult{Text: " \n\t "}})

	doc := domain.NewUploadedDocument("a.txt", domain.MIMEText, []byte("x"))
	text, ok := service.ExtractText(context.Background(), doc)

	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestExtractText_AbsorbsPanic(t *testing.T) {
	service := NewExtractionService(&mockRegistry{panics: true})

	doc := domain.NewUploadedDocument("a.pdf", domain.MIMEPDF, []byte("x"))

	assert.NotPanics(t, func() {
		text, ok := service.ExtractText(context.Background(), doc)
		assert.False(t, ok)
		assert.Empty(t, text)
	})
}

func TestExtractBatch(t *testing.T) {
	registry := &mockRegistry{result: &driven.ExtractResult{Text: "text", Engine: "stub"}}
	service := NewExtractionService(registry)

	docs := []*domain.UploadedDocument{
		domain.NewUploadedDocument("one.pdf", domain.MIMEPDF, []byte("x")),
		domain.NewUploadedDocument("two.pdf", domain.MIMEPDF, []byte("y")),
		nil,
		{Name: "empty.pdf", MIMEType: domain.MIMEPDF},
	}

	texts := service.ExtractBatch(context.Background(), docs)

	assert.Len(t, texts, 2)
	assert.Equal(t, "text", texts["one.pdf"])
	assert.Equal(t, "text", texts["two.pdf"])
}

func TestExtractBatch_AllFail(t *testing.T) {
	service := NewExtractionService(&mockRegistry{err: errors.New("broken")})

	docs := []*domain.UploadedDocument{
		domain.NewUploadedDocument("one.pdf", domain.MIMEPDF, []byte("x")),
	}

	texts := service.ExtractBatch(context.Background(), docs)

	assert.Empty(t, texts)
}

func TestSupportedMIMETypes(t *testing.T) {
	registry := &mockRegistry{types: []string{domain.MIMEPDF, domain.MIMEText}}
	service := NewExtractionService(registry)

	assert.Equal(t, []string{domain.MIMEPDF, domain.MIMEText}, service.SupportedMIMETypes())
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driving.ExtractionService = (*ExtractionService)(nil)
}
