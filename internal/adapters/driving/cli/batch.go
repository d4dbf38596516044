package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/intake/archive"
	"github.com/andreamaggetto40/Patent2SDG/internal/intake/filesystem"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// batchOutDir is a flag for the batch command.
var batchOutDir string

var batchCmd = &cobra.Command{
	Use:   "batch [path]...",
	Short: "Extract text from many documents",
	Long: `Extract text from files, directories (recursive), and ZIP bundles
(including nested ZIPs). Results are printed per file, or written as
.txt files with --out-dir. Files that yield no text are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Write extracted text to <name>.txt files in this directory")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	var docs []*domain.UploadedDocument
	for _, path := range args {
		loaded, err := loadPath(path)
		if err != nil {
			return err
		}
		docs = append(docs, loaded...)
	}

	texts := extractionService.ExtractBatch(context.Background(), docs)

	if batchOutDir != "" {
		if err := writeResults(texts, batchOutDir); err != nil {
			return err
		}
	} else {
		printResults(cmd, texts)
	}

	cmd.Printf("Extracted text from %d of %d documents\n", len(texts), len(docs))
	return nil
}

// loadPath turns one CLI argument into documents: a directory loads
// recursively, a ZIP unpacks (nested archives included), anything else
// loads as a single file.
func loadPath(path string) ([]*domain.UploadedDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return filesystem.LoadDir(path)
	}

	if domain.MIMETypeByExtension(path) == domain.MIMEZip {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		docs, err := archive.Unpack(content, extractionSettings.MaxArchiveDepth)
		if err != nil {
			logger.Warn("could not process ZIP %s: %v", path, err)
			return nil, nil
		}
		return docs, nil
	}

	doc, err := filesystem.Load(path)
	if err != nil {
		return nil, err
	}
	return []*domain.UploadedDocument{doc}, nil
}

// writeResults writes one <name>.txt per extracted document.
func writeResults(texts map[string]string, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	for name, text := range texts {
		target := filepath.Join(outDir, name+".txt")
		if err := os.WriteFile(target, []byte(text), 0644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
	}
	return nil
}

// printResults prints extracted texts in stable name order.
func printResults(cmd *cobra.Command, texts map[string]string) {
	names := make([]string, 0, len(texts))
	for name := range texts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("== %s ==\n%s\n\n", name, strings.TrimSpace(texts[name]))
	}
}
