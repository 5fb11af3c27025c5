package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixit/internal/adapters/store"
	"go.trai.ch/fixit/internal/core/domain"
)

func newMemoryStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.MemoryPath)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_MarkSolved_Idempotent(t *testing.T) {
	s := newMemoryStore(t)
	ctx := t.Context()

	require.NoError(t, s.MarkSolved(ctx, "xss-1"))
	require.NoError(t, s.MarkSolved(ctx, "xss-1"))

	report, err := s.Report(ctx)
	require.NoError(t, err)

	require.Len(t, report.Challenges, 1)
	assert.Equal(t, domain.ChallengeAccuracy{Key: "xss-1", Attempts: 2, Passed: 2, Solved: true}, report.Challenges[0])
	assert.Equal(t, 1, report.Solved())
}

func TestStore_Report(t *testing.T) {
	s := newMemoryStore(t)
	ctx := t.Context()

	require.NoError(t, s.RecordVerdict(ctx, "xss-1", false))
	require.NoError(t, s.RecordVerdict(ctx, "xss-1", false))
	require.NoError(t, s.MarkSolved(ctx, "xss-1"))
	require.NoError(t, s.RecordVerdict(ctx, "sqli", false))

	report, err := s.Report(ctx)
	require.NoError(t, err)

	assert.Equal(t, []domain.ChallengeAccuracy{
		{Key: "sqli", Attempts: 1, Passed: 0, Solved: false},
		{Key: "xss-1", Attempts: 3, Passed: 1, Solved: true},
	}, report.Challenges)
	assert.Equal(t, 4, report.Attempts)
	assert.Equal(t, 1, report.Passed)
	assert.InDelta(t, 0.25, report.Ratio(), 1e-9)
}

func TestStore_Report_Empty(t *testing.T) {
	s := newMemoryStore(t)

	report, err := s.Report(t.Context())
	require.NoError(t, err)
	assert.Empty(t, report.Challenges)
	assert.Zero(t, report.Ratio())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fixit", "fixit.db")
	ctx := t.Context()

	first := store.New(path)
	require.NoError(t, first.MarkSolved(ctx, "xss-1"))
	require.NoError(t, first.Close())

	second := store.New(path)
	t.Cleanup(func() { _ = second.Close() })

	report, err := second.Report(ctx)
	require.NoError(t, err)
	require.Len(t, report.Challenges, 1)
	assert.True(t, report.Challenges[0].Solved)
}

func TestStore_LazyOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fixit.db")

	s := store.New(path)
	require.NoError(t, s.Close())

	assert.NoFileExists(t, path)
}

func TestStore_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	s := store.New(filepath.Join(blocker, "fixit.db"))
	err := s.RecordVerdict(t.Context(), "xss-1", false)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreOpenFailed.Error())
}
