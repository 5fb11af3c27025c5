package explain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixit/internal/adapters/explain"
	"go.trai.ch/fixit/internal/adapters/fs"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const xssInfo = `fixes:
  - id: 1
    explanation: "Escaping is still bypassed here."
  - id: 2
    explanation: "Sanitizing twice does not help."
  - id: 3
    explanation: "Binding the value as text removes the sink."
hints:
  - "Look at how the search query is rendered."
`

func newResolver(t *testing.T, files map[string]string) (*explain.Resolver, *mocks.MockLogger) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	snippets, err := fs.NewSnippetDir(dir)
	require.NoError(t, err)

	mockLogger := mocks.NewMockLogger(gomock.NewController(t))
	return explain.NewResolver(snippets, mockLogger), mockLogger
}

func TestResolver_Resolve(t *testing.T) {
	resolver, _ := newResolver(t, map[string]string{"xss-1.info.yml": xssInfo})

	text, ok, err := resolver.Resolve("xss-1", 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Binding the value as text removes the sink.", text)

	text, ok, err = resolver.Resolve("xss-1", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Escaping is still bypassed here.", text)
}

func TestResolver_Resolve_UnknownOrdinal(t *testing.T) {
	resolver, _ := newResolver(t, map[string]string{"xss-1.info.yml": xssInfo})

	_, ok, err := resolver.Resolve("xss-1", 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolver_Resolve_MissingDocument(t *testing.T) {
	resolver, _ := newResolver(t, nil)

	_, ok, err := resolver.Resolve("xss-1", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolver_Resolve_EmptyExplanationIsAbsent(t *testing.T) {
	resolver, _ := newResolver(t, map[string]string{
		"sqli.info.yml": "fixes:\n  - id: 1\n",
	})

	_, ok, err := resolver.Resolve("sqli", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolver_Resolve_MalformedDocumentWarns(t *testing.T) {
	resolver, mockLogger := newResolver(t, map[string]string{
		"xss-1.info.yml": "fixes: [unclosed",
	})
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	_, ok, err := resolver.Resolve("xss-1", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolver_Resolve_TraversalIsInvalidKey(t *testing.T) {
	resolver, _ := newResolver(t, nil)

	_, _, err := resolver.Resolve("../../etc/passwd", 1)
	require.ErrorIs(t, err, domain.ErrInvalidKey)
}

func TestResolver_Info(t *testing.T) {
	resolver, _ := newResolver(t, map[string]string{"xss-1.info.yml": xssInfo})

	info, found, err := resolver.Info("xss-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, info.Fixes, 3)
	assert.Equal(t, []string{"Look at how the search query is rendered."}, info.Hints)
}

func TestResolver_Info_ParseError(t *testing.T) {
	resolver, _ := newResolver(t, map[string]string{"bad.info.yml": "fixes: {"})

	_, _, err := resolver.Info("bad")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInfoParseFailed.Error())
}
