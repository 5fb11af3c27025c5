package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProject(t *testing.T, config string, fixes map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "fixit.yaml"), []byte(config), 0o600))

	snippets := filepath.Join(tmpDir, "snippets")
	require.NoError(t, os.MkdirAll(snippets, 0o750))
	for name, content := range fixes {
		require.NoError(t, os.WriteFile(filepath.Join(snippets, name), []byte(content), 0o600))
	}

	t.Chdir(tmpDir)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FIXIT_CONFIG", "")

	// Graft caches node outputs process-wide; each run must resolve its own config.
	graft.ResetDefaultCache()
	t.Cleanup(graft.ResetDefaultCache)

	return tmpDir
}

const memoryConfig = `snippetDir: snippets
database: ":memory:"
`

func TestRun(t *testing.T) {
	fixes := map[string]string{
		"xss_1.js":         "escape(input)\n",
		"xss_2_correct.js": "sanitize(input)\n",
	}

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		stdout       string
	}{
		{
			name:         "Fixes lists snippets",
			args:         []string{"fixes", "xss"},
			expectedExit: 0,
			stdout:       "sanitize(input)",
		},
		{
			name:         "Correct selection",
			args:         []string{"check", "xss", "1"},
			expectedExit: 0,
			stdout:       "correct",
		},
		{
			name:         "Incorrect selection",
			args:         []string{"check", "xss", "0"},
			expectedExit: 1,
			stdout:       "incorrect",
		},
		{
			name:         "Unknown key",
			args:         []string{"fixes", "sqli"},
			expectedExit: 1,
		},
		{
			name:         "Invalid key",
			args:         []string{"fixes", ".."},
			expectedExit: 1,
		},
		{
			name:         "Version",
			args:         []string{"version"},
			expectedExit: 0,
			stdout:       "fixit version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t, memoryConfig, fixes)

			var stdout, stderr bytes.Buffer
			exitCode := run(t.Context(), tt.args, &stdout, &stderr)

			assert.Equal(t, tt.expectedExit, exitCode, "stderr: %s", stderr.String())
			assert.Contains(t, stdout.String(), tt.stdout)
		})
	}
}

func TestRun_ErrorIsLogged(t *testing.T) {
	setupProject(t, memoryConfig, nil)

	var stdout, stderr bytes.Buffer
	exitCode := run(t.Context(), []string{"fixes", "sqli"}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "no fixes found for the snippet")
}

func TestRun_ConfigError(t *testing.T) {
	setupProject(t, "snippetDir: [unclosed\n", nil)

	var stdout, stderr bytes.Buffer
	exitCode := run(t.Context(), []string{"version"}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error:")
}

func TestRun_StoreInitError(t *testing.T) {
	tmpDir := setupProject(t, "snippetDir: snippets\n", map[string]string{
		"xss_1_correct.js": "sanitize(input)\n",
	})

	// Create .fixit as a file (not a directory) to cause store init to fail
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".fixit"), []byte("not a directory"), 0o600))

	var stdout, stderr bytes.Buffer
	exitCode := run(t.Context(), []string{"accuracy"}, &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "failed to open progress store")
}
