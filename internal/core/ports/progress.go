package ports

import (
	"context"

	"go.trai.ch/fixit/internal/core/domain"
)

//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// ChallengeSolver receives the signal that a challenge has been solved.
type ChallengeSolver interface {
	// MarkSolved records key as solved. Calling it again for a solved key is a no-op.
	MarkSolved(ctx context.Context, key string) error
}

// AccuracyRecorder records the outcome of a single verification.
type AccuracyRecorder interface {
	RecordVerdict(ctx context.Context, key string, passed bool) error
}

// AccuracyReporter summarises recorded verdicts.
type AccuracyReporter interface {
	Report(ctx context.Context) (domain.AccuracyReport, error)
}

// ProgressStore persists solved challenges and verdicts.
type ProgressStore interface {
	ChallengeSolver
	AccuracyRecorder
	AccuracyReporter
	// Close releases the underlying database, if one was opened.
	Close() error
}
