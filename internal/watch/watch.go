// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last event before the
// callback runs.
const defaultDebounce = 250 * time.Millisecond

// Config holds the parameters for a [Watcher].
type Config struct {
	// Dirs are the directory trees to watch. Directories that do not
	// exist are skipped.
	Dirs []string

	// Debounce is the quiet period after the last event before OnChange
	// runs. Values of zero or less fall back to a default.
	Debounce time.Duration

	// OnChange runs after the debounce window closes. A failing run is
	// logged and does not stop the watcher.
	OnChange func(ctx context.Context) error

	// Logger receives watch progress. Defaults to [slog.Default].
	Logger *slog.Logger
}

func (cfg *Config) validate() error {
	if len(cfg.Dirs) == 0 {
		return ErrNoDirectories
	}

	if cfg.OnChange == nil {
		return ErrNoCallback
	}

	return nil
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}

	return slog.Default()
}

func (cfg *Config) debounce() time.Duration {
	if cfg.Debounce > 0 {
		return cfg.Debounce
	}

	return defaultDebounce
}

// Watcher invokes a callback when files under the watched directories
// change.
//
// Create instances with [New] and start them with [Watcher.Run].
type Watcher struct {
	cfg      Config
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New creates a new [Watcher] for the directories in cfg.
//
// All existing directories are registered recursively. Directories
// created while the watcher runs are picked up from their create
// events.
func New(cfg Config) (*Watcher, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	watcher := &Watcher{
		cfg:      cfg,
		logger:   cfg.logger(),
		fsw:      fsw,
		debounce: cfg.debounce(),
	}

	for _, dir := range cfg.Dirs {
		err = watcher.watchTree(dir)
		if err != nil {
			_ = fsw.Close()

			return nil, err
		}
	}

	return watcher, nil
}

// Run blocks processing events until ctx is canceled.
//
// It owns the underlying watcher and releases it on return. It returns
// nil after cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	// Stopped until the first event arrives.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			w.fire(ctx)
		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("%w: events", ErrChannelClosed)
			}

			if event.Op == fsnotify.Chmod {
				continue
			}

			if event.Has(fsnotify.Create) {
				w.watchCreated(event.Name)
			}

			w.logger.Debug("File event",
				slog.String("op", event.Op.String()),
				slog.String("path", event.Name),
			)

			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("%w: errors", ErrChannelClosed)
			}

			w.logger.Warn("Watch error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) fire(ctx context.Context) {
	w.logger.Info("Change detected")

	err := w.cfg.OnChange(ctx)
	if err != nil {
		w.logger.Error("Change callback failed", slog.Any("error", err))
	}
}

// watchTree registers dir and all directories below it. A dir that
// does not exist or is not a directory is skipped.
func (w *Watcher) watchTree(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		w.logger.Debug("Skipping unwatchable directory",
			slog.String("path", dir))

		return nil
	}

	walkFn := func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.IsDir() {
			return nil
		}

		err = w.fsw.Add(name)
		if err != nil {
			return fmt.Errorf("watch %s: %w", name, err)
		}

		w.logger.Debug("Watching directory", slog.String("path", name))

		return nil
	}

	err = filepath.WalkDir(dir, walkFn)
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}

	return nil
}

// watchCreated extends the watch to a created directory and anything
// already inside it.
func (w *Watcher) watchCreated(name string) {
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return
	}

	err = w.watchTree(name)
	if err != nil {
		w.logger.Warn("Watching created directory failed",
			slog.String("path", name),
			slog.Any("error", err),
		)
	}
}
