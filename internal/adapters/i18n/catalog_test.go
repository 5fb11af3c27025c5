package i18n_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixit/internal/adapters/i18n"
	"go.trai.ch/fixit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

func newCatalogs(t *testing.T, files map[string]string) (*i18n.Catalogs, *mocks.MockLogger) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	mockLogger := mocks.NewMockLogger(gomock.NewController(t))
	return i18n.New(dir, "en", mockLogger), mockLogger
}

func TestCatalogs_Translate(t *testing.T) {
	catalogs, _ := newCatalogs(t, map[string]string{
		"de_DE.json": `{"Correct fix": "Richtige Lösung"}`,
		"fr.yml":     "Correct fix: Bonne correction\n",
	})

	tests := []struct {
		name   string
		locale string
		text   string
		want   string
	}{
		{name: "exact json catalog", locale: "de_DE", text: "Correct fix", want: "Richtige Lösung"},
		{name: "hyphenated tag", locale: "de-DE", text: "Correct fix", want: "Richtige Lösung"},
		{name: "primary subtag fallback", locale: "fr-CA", text: "Correct fix", want: "Bonne correction"},
		{name: "yaml catalog", locale: "fr", text: "Correct fix", want: "Bonne correction"},
		{name: "unknown text", locale: "fr", text: "Something else", want: "Something else"},
		{name: "unknown locale", locale: "ja", text: "Correct fix", want: "Correct fix"},
		{name: "default locale", locale: "", text: "Correct fix", want: "Correct fix"},
		{name: "traversal locale", locale: "../de_DE", text: "Correct fix", want: "Correct fix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalogs.Translate(tt.locale, tt.text))
		})
	}
}

func TestCatalogs_Translate_MalformedCatalogWarnsOnce(t *testing.T) {
	catalogs, mockLogger := newCatalogs(t, map[string]string{
		"es.json": `{"Correct fix": [`,
	})
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	assert.Equal(t, "Correct fix", catalogs.Translate("es", "Correct fix"))
	assert.Equal(t, "Correct fix", catalogs.Translate("es", "Correct fix"))
}

func TestCatalogs_Translate_UnknownLocalesAreNotCached(t *testing.T) {
	catalogs, _ := newCatalogs(t, map[string]string{
		"en.yml": "Correct fix: Correct fix\n",
		"de.yml": "Correct fix: Richtige Lösung\n",
	})

	for i := range 5000 {
		tags, _, err := language.ParseAcceptLanguage(fmt.Sprintf("en-x-p%06d", i))
		require.NoError(t, err)
		require.NotEmpty(t, tags)
		catalogs.Translate(tags[0].String(), "Correct fix")
	}
	assert.Equal(t, "Richtige Lösung", catalogs.Translate("de-AT", "Correct fix"))

	assert.LessOrEqual(t, catalogs.CachedCatalogs(), 2)
}

func TestCatalogs_Translate_CatalogsAddedLaterAreIgnored(t *testing.T) {
	dir := t.TempDir()
	catalogs := i18n.New(dir, "en", mocks.NewMockLogger(gomock.NewController(t)))

	assert.Equal(t, "Correct fix", catalogs.Translate("it", "Correct fix"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "it.yml"), []byte("Correct fix: Correzione giusta\n"), 0o600))
	assert.Equal(t, "Correct fix", catalogs.Translate("it", "Correct fix"))
	assert.Zero(t, catalogs.CachedCatalogs())
}

func TestCatalogs_Translate_MissingDirectory(t *testing.T) {
	catalogs := i18n.New(filepath.Join(t.TempDir(), "missing"), "en", mocks.NewMockLogger(gomock.NewController(t)))

	assert.Equal(t, "Correct fix", catalogs.Translate("de", "Correct fix"))
	assert.Zero(t, catalogs.CachedCatalogs())
}
