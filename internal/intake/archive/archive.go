// Package archive unpacks ZIP uploads into individual documents before
// they reach the extraction core. The extractor itself never sees an
// archive: this is the upstream collaborator responsible for traversal,
// including nested ZIPs.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// maxEntryBytes caps a single decompressed entry. Larger entries are
// skipped rather than buffered into memory.
const maxEntryBytes = 100 << 20

// Unpack walks a ZIP archive and returns an UploadedDocument for every
// supported entry, recursing into nested ZIPs up to maxDepth levels.
// Corrupt or oversized entries are skipped; only an unreadable outer
// archive is an error.
func Unpack(content []byte, maxDepth int) ([]*domain.UploadedDocument, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}
	return unpack(reader, "", maxDepth)
}

func unpack(reader *zip.Reader, prefix string, depth int) ([]*domain.UploadedDocument, error) {
	if depth < 0 {
		return nil, domain.ErrArchiveTooDeep
	}

	var docs []*domain.UploadedDocument
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		name := path.Base(file.Name)
		if isManifest(name) {
			continue
		}

		mimeType := domain.MIMETypeByExtension(name)
		if mimeType == "" {
			continue
		}

		entryPath := path.Join(prefix, file.Name)

		if mimeType == domain.MIMEZip {
			nested, err := readEntry(file)
			if err != nil {
				logger.Warn("failed to read nested zip %s: %v", entryPath, err)
				continue
			}
			inner, err := zip.NewReader(bytes.NewReader(nested), int64(len(nested)))
			if err != nil {
				logger.Warn("failed to open nested zip %s: %v", entryPath, err)
				continue
			}
			innerDocs, err := unpack(inner, entryPath, depth-1)
			if err != nil {
				logger.Warn("skipping nested zip %s: %v", entryPath, err)
				continue
			}
			docs = append(docs, innerDocs...)
			continue
		}

		content, err := readEntry(file)
		if err != nil {
			logger.Warn("failed to read archive entry %s: %v", entryPath, err)
			continue
		}

		doc := domain.NewUploadedDocument(name, mimeType, content)
		doc.URI = entryPath
		docs = append(docs, doc)
	}

	return docs, nil
}

// readEntry decompresses one archive entry, bounded by maxEntryBytes.
func readEntry(file *zip.File) ([]byte, error) {
	if file.UncompressedSize64 > maxEntryBytes {
		return nil, fmt.Errorf("entry exceeds %d bytes", int64(maxEntryBytes))
	}

	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(io.LimitReader(rc, maxEntryBytes))
}

// isManifest reports whether the entry is an EPO bundle manifest, which
// carries no patent text.
func isManifest(name string) bool {
	return strings.EqualFold(name, "toc.xml")
}
