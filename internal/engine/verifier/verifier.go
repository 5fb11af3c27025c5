// Package verifier implements the verdict evaluator for code-fix challenges.
package verifier

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
)

const (
	tracerName = "go.trai.ch/fixit/internal/engine/verifier"

	// DefaultNotifyTimeout bounds a single solve or verdict notification.
	DefaultNotifyTimeout = 5 * time.Second
)

// Verifier implements ports.FixVerifier.
type Verifier struct {
	cache    ports.FixCache
	resolver ports.ExplanationResolver
	solver   ports.ChallengeSolver
	recorder ports.AccuracyRecorder
	logger   ports.Logger

	tracer        trace.Tracer
	notifyTimeout time.Duration
	pending       sync.WaitGroup
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithNotifyTimeout sets the deadline of each solve or verdict notification.
func WithNotifyTimeout(d time.Duration) Option {
	return func(v *Verifier) {
		v.notifyTimeout = d
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(v *Verifier) {
		v.tracer = tp.Tracer(tracerName)
	}
}

// New creates a Verifier.
func New(
	cache ports.FixCache,
	resolver ports.ExplanationResolver,
	solver ports.ChallengeSolver,
	recorder ports.AccuracyRecorder,
	logger ports.Logger,
	opts ...Option,
) *Verifier {
	v := &Verifier{
		cache:         cache,
		resolver:      resolver,
		solver:        solver,
		recorder:      recorder,
		logger:        logger,
		tracer:        otel.Tracer(tracerName),
		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Fixes returns the candidate fixes of key.
func (v *Verifier) Fixes(ctx context.Context, key string) (domain.FixSet, error) {
	_, span := v.tracer.Start(ctx, "fixit.fixes", trace.WithAttributes(attribute.String("fixit.key", key)))
	defer span.End()

	set, err := v.load(key)
	if err != nil {
		recordError(span, err)
		return domain.FixSet{}, err
	}

	span.SetAttributes(attribute.Int("fixit.fix_count", set.Len()))
	return set, nil
}

// Check verifies the 0-based selection against the canonical fix of key.
// Solves and failed verdicts are reported in the background; see Wait.
func (v *Verifier) Check(ctx context.Context, key string, selected int) (domain.Outcome, error) {
	ctx, span := v.tracer.Start(ctx, "fixit.check", trace.WithAttributes(
		attribute.String("fixit.key", key),
		attribute.Int("fixit.selected", selected),
	))
	defer span.End()

	set, err := v.load(key)
	if err != nil {
		recordError(span, err)
		return domain.Outcome{}, err
	}

	explanation, found, err := v.resolver.Resolve(key, selected+1)
	if err != nil {
		recordError(span, err)
		return domain.Outcome{}, err
	}

	verdict := set.IsCorrect(selected)
	span.SetAttributes(attribute.Bool("fixit.verdict", verdict))

	v.notify(ctx, key, verdict)

	return domain.Outcome{
		Verdict:        verdict,
		Explanation:    explanation,
		HasExplanation: found,
	}, nil
}

// Wait blocks until all background notifications have finished.
func (v *Verifier) Wait() {
	v.pending.Wait()
}

func (v *Verifier) load(key string) (domain.FixSet, error) {
	if err := domain.ValidateKey(key); err != nil {
		return domain.FixSet{}, err
	}

	set, err := v.cache.GetOrLoad(key)
	if err != nil {
		return domain.FixSet{}, err
	}
	if set.Empty() {
		return domain.FixSet{}, domain.ErrNoFixesFound
	}
	return set, nil
}

// notify reports the verdict without holding up the caller.
// The notification outlives the caller's context but not the timeout.
func (v *Verifier) notify(ctx context.Context, key string, verdict bool) {
	ctx = context.WithoutCancel(ctx)

	v.pending.Go(func() {
		ctx, cancel := context.WithTimeout(ctx, v.notifyTimeout)
		defer cancel()

		var err error
		if verdict {
			err = v.solver.MarkSolved(ctx, key)
		} else {
			err = v.recorder.RecordVerdict(ctx, key, false)
		}
		if err != nil {
			v.logger.Error(err)
		}
	})
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
