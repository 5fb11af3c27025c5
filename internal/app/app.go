// Package app implements the application layer for fixit.
package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Verifier is the verification engine as seen by the application.
type Verifier interface {
	ports.FixVerifier
	// Wait blocks until background solve and verdict notifications have finished.
	Wait()
}

// HTTPServer serves the snippet routes.
type HTTPServer interface {
	ListenAndServe(ctx context.Context, addr string) error
}

// SnippetWatcher invalidates cached fix sets when snippet files change.
type SnippetWatcher interface {
	Run(ctx context.Context, ready chan<- struct{}) error
}

// App represents the main application logic.
type App struct {
	config     *domain.Config
	verifier   Verifier
	scanner    ports.FixScanner
	cache      ports.FixCache
	progress   ports.ProgressStore
	translator ports.Translator
	server     HTTPServer
	watcher    SnippetWatcher
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	verifier Verifier,
	scanner ports.FixScanner,
	cache ports.FixCache,
	progress ports.ProgressStore,
	translator ports.Translator,
	server HTTPServer,
	watcher SnippetWatcher,
	log ports.Logger,
) *App {
	return &App{
		config:     cfg,
		verifier:   verifier,
		scanner:    scanner,
		cache:      cache,
		progress:   progress,
		translator: translator,
		server:     server,
		watcher:    watcher,
		logger:     log,
	}
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Fixes returns the candidate fixes of key.
func (a *App) Fixes(ctx context.Context, key string) (domain.FixSet, error) {
	return a.verifier.Fixes(ctx, key)
}

// Check verifies a 0-based selection and translates the explanation for locale.
// An empty locale selects the configured default. It returns once the verdict has been recorded.
func (a *App) Check(ctx context.Context, key string, selected int, locale string) (domain.Outcome, error) {
	outcome, err := a.verifier.Check(ctx, key, selected)
	a.verifier.Wait()
	if err != nil {
		return domain.Outcome{}, err
	}

	if outcome.HasExplanation {
		outcome.Explanation = a.translator.Translate(locale, outcome.Explanation)
	}
	return outcome, nil
}

// Accuracy returns the accuracy report over all recorded verdicts.
func (a *App) Accuracy(ctx context.Context) (domain.AccuracyReport, error) {
	return a.progress.Report(ctx)
}

// Index scans the whole snippet directory, primes the fix cache and returns the sets sorted by key.
func (a *App) Index(_ context.Context) ([]domain.FixSet, error) {
	sets, err := a.scanner.ScanAll()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to index snippets")
	}
	a.cache.Prime(sets)

	indexed := make([]domain.FixSet, 0, len(sets))
	for _, set := range sets {
		indexed = append(indexed, set)
	}
	slices.SortFunc(indexed, func(x, y domain.FixSet) int {
		return strings.Compare(x.Key, y.Key)
	})
	return indexed, nil
}

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	// Listen overrides the configured listen address when set.
	Listen string
	// Watch enables cache invalidation on snippet changes in addition to the configured setting.
	Watch bool
}

// Serve runs the HTTP server until ctx is canceled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	listen := opts.Listen
	if listen == "" {
		listen = a.config.Listen
	}

	if a.config.Preload {
		indexed, err := a.Index(ctx)
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("indexed %d challenges", len(indexed)))
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.Watch || a.config.Watch {
		g.Go(func() error {
			return a.watcher.Run(gctx, nil)
		})
	}
	g.Go(func() error {
		return a.server.ListenAndServe(gctx, listen)
	})

	err := g.Wait()
	a.verifier.Wait()
	return err
}

// Close releases the progress store.
func (a *App) Close() error {
	return a.progress.Close()
}
