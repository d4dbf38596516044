package filesystem

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/andreamaggetto40/Patent2SDG/internal/core/domain"
	"github.com/andreamaggetto40/Patent2SDG/internal/logger"
)

// Watcher observes a drop directory and hands newly written supported
// files to a handler. Events arrive from a single fsnotify channel, so
// handling is serialised.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
}

// NewWatcher creates a watcher over one directory (non-recursive).
func NewWatcher(dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{watcher: watcher, dir: dir}, nil
}

// Run blocks, invoking handle for each created or modified supported file,
// until the context is cancelled. Extraction is idempotent, so a file seen
// for both its create and write events is simply handled twice with the
// same outcome.
func (w *Watcher) Run(ctx context.Context, handle func(doc *domain.UploadedDocument)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if domain.MIMETypeByExtension(event.Name) == "" {
				continue
			}

			doc, err := Load(event.Name)
			if err != nil {
				logger.Warn("skipping %s: %v", event.Name, err)
				continue
			}
			handle(doc)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
