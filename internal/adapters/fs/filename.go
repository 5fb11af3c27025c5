package fs

import (
	"strconv"
	"strings"

	"go.trai.ch/fixit/internal/core/domain"
)

// fixFile is a snippet file name decoded from <key>_<ordinal>[_<marker>].<ext>.
type fixFile struct {
	Key string
	// Ordinal is 1-based.
	Ordinal int
	// Correct is set when the name carries a marker segment such as "_correct".
	Correct bool
}

// parseFixFileName decodes a snippet file name.
// The name is read from the right so keys may themselves contain underscores.
// Info documents and names that do not follow the convention are rejected.
func parseFixFileName(name string) (fixFile, bool) {
	if strings.HasSuffix(name, domain.InfoFileSuffix) {
		return fixFile{}, false
	}

	stem, _, _ := strings.Cut(name, ".")
	parts := strings.Split(stem, "_")
	last := len(parts) - 1
	if last < 1 {
		return fixFile{}, false
	}

	if ordinal, ok := parseOrdinal(parts[last]); ok {
		return newFixFile(parts[:last], ordinal, false)
	}

	if last < 2 || parts[last] == "" {
		return fixFile{}, false
	}
	if ordinal, ok := parseOrdinal(parts[last-1]); ok {
		return newFixFile(parts[:last-1], ordinal, true)
	}

	return fixFile{}, false
}

func newFixFile(keyParts []string, ordinal int, correct bool) (fixFile, bool) {
	key := strings.Join(keyParts, "_")
	if key == "" {
		return fixFile{}, false
	}
	return fixFile{Key: key, Ordinal: ordinal, Correct: correct}, true
}

func parseOrdinal(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// FixKey returns the challenge key that a snippet file name belongs to.
func FixKey(name string) (string, bool) {
	file, ok := parseFixFileName(name)
	return file.Key, ok
}
