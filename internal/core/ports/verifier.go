package ports

import (
	"context"

	"go.trai.ch/fixit/internal/core/domain"
)

// FixVerifier is the inbound contract of the verification engine.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type FixVerifier interface {
	// Fixes returns the candidate fixes for key, or domain.ErrNoFixesFound.
	Fixes(ctx context.Context, key string) (domain.FixSet, error)

	// Check verifies the 0-based selection against the canonical fix of key.
	Check(ctx context.Context, key string, selected int) (domain.Outcome, error)
}
