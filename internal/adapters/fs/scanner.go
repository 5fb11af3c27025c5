package fs

import (
	"errors"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scanner discovers the candidate fixes of code challenges in a SnippetDir.
type Scanner struct {
	dir    SnippetDir
	strict bool
	logger ports.Logger
}

// NewScanner creates a Scanner over dir.
// In strict mode a challenge with more than one marked fix is rejected;
// otherwise the marker encountered last wins.
func NewScanner(dir SnippetDir, strict bool, logger ports.Logger) *Scanner {
	return &Scanner{dir: dir, strict: strict, logger: logger}
}

// Scan returns the fix set for key. A key without any fix files yields an empty set.
// Files named <key>_* that do not follow the fix naming convention are skipped with a warning.
func (s *Scanner) Scan(key string) (domain.FixSet, error) {
	entries, err := s.entries()
	if err != nil {
		return domain.FixSet{}, err
	}

	b := newFixSetBuilder(key, s.strict)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file, ok := parseFixFileName(entry.Name())
		if !ok {
			s.warnSkipped(key, entry.Name())
			continue
		}
		if file.Key != key {
			continue
		}
		if err := s.add(b, entry.Name(), file); err != nil {
			return domain.FixSet{}, err
		}
	}

	return b.build()
}

// ScanAll returns the fix sets of every challenge found in the directory, keyed by challenge key.
// File names whose key is not a valid challenge key are ignored.
func (s *Scanner) ScanAll() (map[string]domain.FixSet, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	builders := make(map[string]*fixSetBuilder)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file, ok := parseFixFileName(entry.Name())
		if !ok || domain.ValidateKey(file.Key) != nil {
			continue
		}
		b, found := builders[file.Key]
		if !found {
			b = newFixSetBuilder(file.Key, s.strict)
			builders[file.Key] = b
		}
		if err := s.add(b, entry.Name(), file); err != nil {
			return nil, err
		}
	}

	sets := make(map[string]domain.FixSet, len(builders))
	for key, b := range builders {
		set, err := b.build()
		if err != nil {
			return nil, err
		}
		sets[key] = set
	}
	return sets, nil
}

// warnSkipped reports a file that carries the prefix of key but could not be decoded.
func (s *Scanner) warnSkipped(key, name string) {
	if !strings.HasPrefix(name, key+"_") || strings.HasSuffix(name, domain.InfoFileSuffix) {
		return
	}
	s.logger.Warn("skipping snippet file " + name + ": expected <key>_<ordinal>[_<marker>].<ext>")
}

// entries lists the directory in file name order.
func (s *Scanner) entries() ([]os.DirEntry, error) {
	entries, err := os.ReadDir(s.dir.Root())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnippetDirReadFailed.Error()), "dir", s.dir.Root())
	}
	return entries, nil
}

// add reads one fix file into b. Files that resolve outside the directory are skipped.
func (s *Scanner) add(b *fixSetBuilder, name string, file fixFile) error {
	path, err := s.dir.Resolve(name)
	if errors.Is(err, domain.ErrPathOutsideSnippetDir) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFixReadFailed.Error()), "file", name)
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is contained in the snippet directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFixReadFailed.Error()), "file", name)
	}

	return b.add(string(content), file)
}

// fixSetBuilder accumulates the fixes of one challenge in discovery order.
type fixSetBuilder struct {
	key     string
	strict  bool
	fixes   []string
	correct int
	marked  int
	digest  *xxhash.Digest
}

func newFixSetBuilder(key string, strict bool) *fixSetBuilder {
	return &fixSetBuilder{
		key:     key,
		strict:  strict,
		correct: domain.NoCorrectFix,
		digest:  xxhash.New(),
	}
}

func (b *fixSetBuilder) add(body string, file fixFile) error {
	b.fixes = append(b.fixes, body)
	_, _ = b.digest.WriteString(body)
	_, _ = b.digest.Write([]byte{0})

	if !file.Correct {
		return nil
	}
	b.marked++
	if b.strict && b.marked > 1 {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateCorrectFix, "scan fixes"), "key", b.key)
	}
	b.correct = file.Ordinal - 1
	return nil
}

func (b *fixSetBuilder) build() (domain.FixSet, error) {
	if len(b.fixes) == 0 {
		return domain.EmptyFixSet(b.key), nil
	}

	set := domain.FixSet{
		Key:          b.key,
		Fixes:        b.fixes,
		CorrectIndex: b.correct,
		Digest:       b.digest.Sum64(),
	}
	if !set.Valid() {
		err := zerr.With(zerr.Wrap(domain.ErrCorrectOrdinalOutOfRange, "scan fixes"), "key", b.key)
		return domain.FixSet{}, zerr.With(err, "ordinal", b.correct+1)
	}
	return set, nil
}
