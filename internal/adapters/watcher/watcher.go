// Package watcher invalidates cached fix sets when snippet files change.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/fixit/internal/adapters/fs"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watcher observes the snippet directory and invalidates the keys whose files change.
type Watcher struct {
	dir    fs.SnippetDir
	cache  ports.FixCache
	logger ports.Logger
}

// New creates a Watcher for dir.
func New(dir fs.SnippetDir, cache ports.FixCache, logger ports.Logger) *Watcher {
	return &Watcher{dir: dir, cache: cache, logger: logger}
}

// Run watches until ctx is canceled. Watch errors after startup are logged, not returned.
// ready, when not nil, is closed once the directory is being watched.
func (w *Watcher) Run(ctx context.Context, ready chan<- struct{}) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(w.dir.Root()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", w.dir.Root())
	}
	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(zerr.Wrap(err, domain.ErrWatchFailed.Error()))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	key, ok := fs.FixKey(filepath.Base(event.Name))
	if !ok {
		return
	}

	w.cache.Invalidate(key)
	w.logger.Info(fmt.Sprintf("snippets of %s changed, cache invalidated", key))
}
