// Package i18n translates user-facing text from locale catalogs on disk.
package i18n

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	validLocaleRegex = regexp.MustCompile("^[A-Za-z]{2,3}([-_][A-Za-z0-9]{1,8})*$")
	catalogExts      = []string{".json", ".yml", ".yaml"}
)

// Catalogs implements ports.Translator.
// A catalog is a flat map from source text to translated text stored as
// <dir>/<locale>.json or <dir>/<locale>.yml. The directory is listed once on
// first use; only catalogs found there are loaded and cached.
type Catalogs struct {
	dir           string
	defaultLocale string
	logger        ports.Logger
	available     func() map[string]string

	mu       sync.RWMutex
	catalogs map[string]map[string]string
}

// New creates Catalogs reading from dir. Requests without a locale use defaultLocale.
func New(dir, defaultLocale string, logger ports.Logger) *Catalogs {
	c := &Catalogs{
		dir:           dir,
		defaultLocale: defaultLocale,
		logger:        logger,
		catalogs:      make(map[string]map[string]string),
	}
	c.available = sync.OnceValue(c.listCatalogs)
	return c
}

// Translate returns the translation of text for locale.
// "de-DE" is looked up as de_DE first and then as de.
func (c *Catalogs) Translate(locale, text string) string {
	if locale == "" {
		locale = c.defaultLocale
	}
	if !validLocaleRegex.MatchString(locale) {
		return text
	}

	for _, candidate := range candidates(locale) {
		if translated, ok := c.catalog(candidate)[text]; ok && translated != "" {
			return translated
		}
	}
	return text
}

// candidates lists catalog names for locale, most specific first.
func candidates(locale string) []string {
	normalized := strings.ReplaceAll(locale, "-", "_")
	primary, _, found := strings.Cut(normalized, "_")
	if !found {
		return []string{normalized}
	}
	return []string{normalized, primary}
}

// catalog returns the cached catalog for name, loading it once.
// Names without a catalog file return nil and are not cached.
func (c *Catalogs) catalog(name string) map[string]string {
	path, ok := c.available()[name]
	if !ok {
		return nil
	}

	c.mu.RLock()
	entries, ok := c.catalogs[name]
	c.mu.RUnlock()
	if ok {
		return entries
	}

	entries, err := load(path)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("ignoring locale catalog %s: %v", name, err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.catalogs[name]; ok {
		return existing
	}
	c.catalogs[name] = entries
	return entries
}

// listCatalogs maps catalog names to their files in dir.
// When a name exists with several extensions the earliest in catalogExts wins.
func (c *Catalogs) listCatalogs() map[string]string {
	available := make(map[string]string)

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			c.logger.Warn(fmt.Sprintf("ignoring locale directory %s: %v", c.dir, err))
		}
		return available
	}

	rank := make(map[string]int)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		r := slices.Index(catalogExts, ext)
		if r < 0 {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if prev, ok := rank[name]; ok && prev <= r {
			continue
		}
		rank[name] = r
		available[name] = filepath.Join(c.dir, entry.Name())
	}
	return available
}

func load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from listing the locales directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLocaleReadFailed.Error()), "path", path)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLocaleReadFailed.Error()), "path", path)
	}
	return entries, nil
}
