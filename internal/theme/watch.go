package theme

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors path and calls onChange with the reloaded theme each time
// the file is written or replaced. It runs until ctx is cancelled.
//
// The parent directory is watched rather than the file, so an editor's
// atomic save (write a temp file, rename it over path) keeps being seen
// after the original inode is gone.
//
// A reload that fails to parse or validate is logged and skipped; onChange is
// not called and the previous theme stays in effect.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(Theme)) error {
	if path == "" {
		return ErrNoPath
	}
	if logger == nil {
		logger = slog.Default()
	}

	target := filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	logger.Info("theme: watching for changes", slog.String("path", path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// A rename onto path arrives as Create on the directory.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			t, err := Load(target)
			if err != nil {
				logger.Error("theme: reload failed, keeping previous theme",
					slog.String("path", path), slog.Any("error", err))
				continue
			}

			logger.Info("theme: reloaded",
				slog.String("path", path),
				slog.String("accent_color", t.AccentColor))
			onChange(t)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("theme: watcher error", slog.Any("error", err))
		}
	}
}
