// Package cache memoizes fix sets in process memory.
package cache

import (
	"sync"

	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// FixCache implements ports.FixCache on top of a FixScanner.
// Entries live for the lifetime of the cache unless explicitly invalidated.
type FixCache struct {
	scanner ports.FixScanner

	mu   sync.RWMutex
	sets map[string]domain.FixSet
	// epochs counts invalidations per key so a scan that raced an Invalidate is not published.
	epochs map[string]uint64

	loadGroup singleflight.Group
}

// New creates an empty FixCache backed by scanner.
func New(scanner ports.FixScanner) *FixCache {
	return &FixCache{
		scanner: scanner,
		sets:    make(map[string]domain.FixSet),
		epochs:  make(map[string]uint64),
	}
}

// GetOrLoad returns the FixSet for key, scanning it on first use.
// Empty sets are cached like any other result; scan errors are not.
func (c *FixCache) GetOrLoad(key string) (domain.FixSet, error) {
	if set, ok := c.Get(key); ok {
		return set, nil
	}

	result, err, _ := c.loadGroup.Do(key, func() (any, error) {
		c.mu.RLock()
		set, ok := c.sets[key]
		epoch := c.epochs[key]
		c.mu.RUnlock()
		if ok {
			return set, nil
		}

		set, err := c.scanner.Scan(key)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.epochs[key] == epoch {
			c.sets[key] = set
		}
		c.mu.Unlock()
		return set, nil
	})
	if err != nil {
		return domain.FixSet{}, err
	}

	set, _ := result.(domain.FixSet)
	return set, nil
}

// Get returns the cached FixSet for key without scanning.
func (c *FixCache) Get(key string) (domain.FixSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.sets[key]
	return set, ok
}

// Prime publishes pre-built fix sets, replacing any cached entries for the same keys.
func (c *FixCache) Prime(sets map[string]domain.FixSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, set := range sets {
		c.sets[key] = set
	}
}

// Invalidate drops key so the next GetOrLoad rescans it.
func (c *FixCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.sets, key)
	c.epochs[key]++
	c.mu.Unlock()

	c.loadGroup.Forget(key)
}

// Len returns the number of cached keys.
func (c *FixCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sets)
}
