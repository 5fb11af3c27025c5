// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/fixit/internal/core/domain"

// FixScanner discovers the fix snippets of a challenge on disk.
//
//go:generate mockgen -source=fix_scanner.go -destination=mocks/mock_fix_scanner.go -package=mocks
type FixScanner interface {
	// Scan lists the snippet directory and builds the FixSet for key.
	// A key without snippets yields an empty FixSet and no error.
	Scan(key string) (domain.FixSet, error)

	// ScanAll builds the FixSet of every key in the snippet directory in a single pass.
	ScanAll() (map[string]domain.FixSet, error)
}
