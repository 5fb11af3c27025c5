// Package explain resolves fix explanations from challenge info documents.
package explain

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	"go.trai.ch/fixit/internal/adapters/fs"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Resolver implements ports.ExplanationResolver over the snippet directory.
// Info documents are read on every call so edits show up without a restart.
type Resolver struct {
	dir    fs.SnippetDir
	logger ports.Logger
}

// NewResolver creates a Resolver reading info documents from dir.
func NewResolver(dir fs.SnippetDir, logger ports.Logger) *Resolver {
	return &Resolver{dir: dir, logger: logger}
}

// Resolve returns the explanation for the fix with the given 1-based ordinal.
func (r *Resolver) Resolve(key string, ordinal int) (string, bool, error) {
	info, found, err := r.Info(key)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidKey) {
			return "", false, err
		}
		r.logger.Warn(fmt.Sprintf("ignoring info document for %s: %v", key, err))
		return "", false, nil
	}
	if !found {
		return "", false, nil
	}

	text, ok := info.ExplanationFor(ordinal)
	return text, ok, nil
}

// Info loads and parses the info document of key.
// It reports found=false when the document does not exist.
func (r *Resolver) Info(key string) (domain.ChallengeInfo, bool, error) {
	path, err := r.dir.Resolve(domain.InfoFileName(key))
	if err != nil {
		if errors.Is(err, domain.ErrPathOutsideSnippetDir) {
			return domain.ChallengeInfo{}, false, domain.ErrInvalidKey
		}
		return domain.ChallengeInfo{}, false, zerr.Wrap(err, domain.ErrInfoReadFailed.Error())
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is contained in the snippet directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.ChallengeInfo{}, false, nil
		}
		return domain.ChallengeInfo{}, false, zerr.With(zerr.Wrap(err, domain.ErrInfoReadFailed.Error()), "key", key)
	}

	var doc InfoDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.ChallengeInfo{}, false, zerr.With(zerr.Wrap(err, domain.ErrInfoParseFailed.Error()), "key", key)
	}

	return doc.toDomain(), true, nil
}
