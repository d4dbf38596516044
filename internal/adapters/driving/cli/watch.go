package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/intake/filesystem"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// watchOutDir is a flag for the watch command.
var watchOutDir string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a drop directory and extract new files",
	Long: `Observe a directory and extract text from every supported file that
is created or modified in it, writing <name>.txt results to the output
directory. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutDir, "out-dir", "o", "", "Directory for extracted .txt files (required)")
	_ = watchCmd.MarkFlagRequired("out-dir")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	if err := os.MkdirAll(watchOutDir, 0755); err != nil {
		return err
	}

	watcher, err := filesystem.NewWatcher(args[0])
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", args[0])

	err = watcher.Run(ctx, func(doc *domain.UploadedDocument) {
		text, ok := extractionService.ExtractText(ctx, doc)
		if !ok {
			logger.Warn("could not extract valid text from: %s", doc.Name)
			return
		}

		target := filepath.Join(watchOutDir, doc.Name+".txt")
		if err := os.WriteFile(target, []byte(text), 0644); err != nil {
			logger.Warn("write %s: %v", target, err)
			return
		}
		cmd.Printf("extracted %s -> %s\n", doc.Name, target)
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
