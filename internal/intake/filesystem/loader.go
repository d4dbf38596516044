// Package filesystem loads local files into documents for extraction and
// provides a watch mode over a drop directory.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// Load reads a single file into a document, resolving the declared MIME
// type from the file extension. Unrecognised extensions still load; the
// extraction service reports absence for them.
func Load(path string) (*domain.UploadedDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := domain.NewUploadedDocument(filepath.Base(path), domain.MIMETypeByExtension(path), content)
	doc.URI = path
	return doc, nil
}

// LoadDir walks a directory recursively and loads every file with a
// recognised extension. Unreadable files are logged and skipped.
func LoadDir(root string) ([]*domain.UploadedDocument, error) {
	var docs []*domain.UploadedDocument

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if domain.MIMETypeByExtension(path) == "" {
			return nil
		}

		doc, err := Load(path)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return docs, nil
}
