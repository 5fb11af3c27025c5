package ports

import "go.trai.ch/fixit/internal/core/domain"

// FixCache memoizes scanned fix sets for the lifetime of the process.
//
//go:generate mockgen -source=fix_cache.go -destination=mocks/mock_fix_cache.go -package=mocks
type FixCache interface {
	// GetOrLoad returns the cached FixSet for key, scanning on the first request.
	// Concurrent first requests for the same key share one scan.
	GetOrLoad(key string) (domain.FixSet, error)

	// Prime publishes pre-built fix sets, typically from FixScanner.ScanAll.
	Prime(sets map[string]domain.FixSet)

	// Invalidate drops the cached FixSet for key so the next lookup rescans.
	Invalidate(key string)
}
