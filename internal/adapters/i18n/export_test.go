package i18n

// CachedCatalogs returns the number of catalogs held in memory.
func (c *Catalogs) CachedCatalogs() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.catalogs)
}
