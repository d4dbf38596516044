package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/core/ports/driven"
)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner executes an external command and returns its stdout.
// Injectable so tests can run without poppler installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Ensure FallbackExtractor implements the interface.
var _ driven.Extractor = (*FallbackExtractor)(nil)

// FallbackExtractor is the secondary PDF strategy: rendering text with the
// poppler pdftotext tool. It is tried only after in-process parsing fails
// (corrupt file, unsupported encoding, password protection). Output is
// capped at the first MaxWords words; the trigger-phrase window never
// applies on this path.
type FallbackExtractor struct {
	settings domain.ExtractionSettings
	runner   CommandRunner
	check    func() error
}

// NewFallback creates the pdftotext fallback extractor.
func NewFallback(settings domain.ExtractionSettings) *FallbackExtractor {
	return &FallbackExtractor{settings: settings, runner: execRunner{}, check: CheckAvailable}
}

// NewFallbackWithRunner creates a fallback extractor with a custom runner.
// The pdftotext availability check is bypassed; the runner decides.
func NewFallbackWithRunner(settings domain.ExtractionSettings, runner CommandRunner) *FallbackExtractor {
	return &FallbackExtractor{settings: settings, runner: runner, check: func() error { return nil }}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *FallbackExtractor) SupportedMIMETypes() []string {
	return []string{domain.MIMEPDF}
}

// Priority returns the selection priority.
func (e *FallbackExtractor) Priority() int {
	return 5 // Fallback strategy
}

// Extract renders the PDF to text with pdftotext, joins pages with spaces,
// and keeps the first MaxWords words.
func (e *FallbackExtractor) Extract(ctx context.Context, doc *domain.UploadedDocument) (*driven.ExtractResult, error) {
	if doc.Empty() {
		return nil, domain.ErrInvalidInput
	}
	if err := e.check(); err != nil {
		return nil, err
	}

	// pdftotext reads from a file, so stage the content in a temp file.
	tmp, err := os.CreateTemp("", "patent2sdg-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("stage pdf: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(doc.Content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stage pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("stage pdf: %w", err)
	}

	// "-" writes the rendered text to stdout, pages separated by form feeds.
	output, err := e.runner.Run(ctx, "pdftotext", tmp.Name(), "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	pages := strings.Split(string(output), "\f")
	text := collapseWhitespace(strings.Join(pages, " "))
	if text == "" {
		return nil, domain.ErrNoText
	}

	text = firstWords(text, e.settings.MaxWords)
	return &driven.ExtractResult{Text: text, Engine: "pdftotext"}, nil
}

// CheckAvailable reports whether pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform hints for installing pdftotext.
func InstallInstructions() string {
	return `pdftotext is required for PDF fallback extraction.

Install it via:
  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils`
}
