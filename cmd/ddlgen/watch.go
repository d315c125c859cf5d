package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet before it is regenerated.
// Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// watch generates every schema file once, then regenerates a file each
// time it changes until ctx is done. Generation errors are logged and do
// not stop the loop.
func watch(ctx context.Context, o options, logger *slog.Logger) error {
	opts, err := generatorOptions(o, logger)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	// Directories are watched rather than files so that rename-on-save
	// keeps being observed.
	files := make(map[string]string, len(o.SchemaFiles))
	dirs := make(map[string]bool)
	for _, path := range o.SchemaFiles {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		files[abs] = path
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}

	regenerate := func(path string) {
		if _, err := generateFile(ctx, path, false, opts, logger); err != nil {
			logger.Error("generation failed", "file", path, "error", err)
		}
	}
	for _, path := range o.SchemaFiles {
		regenerate(path)
	}
	logger.Info("watching", "files", len(files))

	pending := make(map[string]bool)
	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path, tracked := files[filepath.Clean(ev.Name)]
			if !tracked || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("change", "file", path, "op", ev.Op.String())
			pending[path] = true
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch", "error", err)
		case <-timer.C:
			for _, path := range o.SchemaFiles {
				if pending[path] {
					regenerate(path)
				}
			}
			clear(pending)
		}
	}
}
