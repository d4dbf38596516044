package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported document types",
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	cmd.Println("Supported MIME types:")
	for _, mimeType := range extractionService.SupportedMIMETypes() {
		cmd.Printf("  %s\n", mimeType)
	}
	cmd.Println("\nZIP bundles (including nested ZIPs) are unpacked by \"patent2sdg batch\".")
	return nil
}
