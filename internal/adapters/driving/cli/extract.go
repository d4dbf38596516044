package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/andreamaggetto40/Patent2SDG/internal/intake/filesystem"
)

// errNoText is the user-facing absence message. Callers never learn why
// extraction failed, only that it did.
var errNoText = errors.New("no text could be extracted")

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract text from a single document",
	Long: `Extract plain text from one PDF, TXT, DOCX, or EP XML file and print
it to stdout. For ZIP bundles use "patent2sdg batch".`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	doc, err := filesystem.Load(args[0])
	if err != nil {
		return err
	}

	text, ok := extractionService.ExtractText(context.Background(), doc)
	if !ok {
		return errNoText
	}

	cmd.Println(text)
	return nil
}
