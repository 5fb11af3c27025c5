// Package config provides the configuration loader for fixit.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// MemoryDatabase selects an in-process database that is discarded on exit.
const MemoryDatabase = ":memory:"

// DefaultLocalesDir is the locale catalog directory used when none is configured.
const DefaultLocalesDir = "i18n"

var validLocaleRegex = regexp.MustCompile("^[A-Za-z]{2,3}([-_][A-Za-z0-9]+)*$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers the configuration starting at cwd and returns it with absolute paths.
// FIXIT_CONFIG names the file explicitly. Without a file the defaults apply relative to cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	configPath, found, err := l.findConfiguration(absCwd)
	if err != nil {
		return nil, err
	}

	var fixfile Fixfile
	baseDir := absCwd
	if found {
		if err := readAndUnmarshalYAML(configPath, &fixfile); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		baseDir = filepath.Dir(configPath)
	} else {
		l.Logger.Info("no " + domain.ConfigFileName + " found, using defaults")
	}

	return buildConfig(baseDir, &fixfile)
}

// findConfiguration returns the config file named by FIXIT_CONFIG, or the nearest
// fixit.yaml in cwd or one of its parents.
func (l *Loader) findConfiguration(cwd string) (string, bool, error) {
	if explicit := os.Getenv(domain.ConfigEnvVar); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		if _, err := os.Stat(explicit); err != nil {
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", explicit)
		}
		return explicit, true, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, iofs.ErrNotExist) {
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func buildConfig(baseDir string, fixfile *Fixfile) (*domain.Config, error) {
	cfg := &domain.Config{
		SnippetDir:    resolvePath(baseDir, fixfile.SnippetDir, domain.DefaultSnippetDir),
		Database:      fixfile.Database,
		Listen:        fixfile.Listen,
		LocalesDir:    resolvePath(baseDir, fixfile.LocalesDir, DefaultLocalesDir),
		DefaultLocale: fixfile.DefaultLocale,
		Strict:        fixfile.Strict,
		Watch:         fixfile.Watch,
		Preload:       fixfile.Preload,
	}

	if cfg.Database != MemoryDatabase {
		cfg.Database = resolvePath(baseDir, cfg.Database, domain.DefaultDatabasePath())
	}
	if cfg.Listen == "" {
		cfg.Listen = domain.DefaultListenAddr
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = domain.DefaultLocale
	}
	if !validLocaleRegex.MatchString(cfg.DefaultLocale) {
		return nil, zerr.With(domain.ErrInvalidConfig, "default_locale", cfg.DefaultLocale)
	}

	return cfg, nil
}

// resolvePath anchors a configured path at baseDir, falling back to def when unset.
func resolvePath(baseDir, configured, def string) string {
	if configured == "" {
		configured = def
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(baseDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or named by the operator
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
