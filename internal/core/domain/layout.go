package domain

import "path/filepath"

const (
	// FixitDirName is the name of the internal state directory.
	FixitDirName = ".fixit"

	// DatabaseFileName is the name of the progress database inside the state directory.
	DatabaseFileName = "fixit.db"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "fixit.yaml"

	// ConfigEnvVar names an explicit config file, bypassing discovery.
	ConfigEnvVar = "FIXIT_CONFIG"

	// DefaultSnippetDir is the snippet directory used when none is configured.
	DefaultSnippetDir = "data/static/codefixes"

	// DefaultListenAddr is the address the HTTP server binds to when none is configured.
	DefaultListenAddr = ":3000"

	// DefaultLocale is the locale used when a request does not name one.
	DefaultLocale = "en"

	// InfoFileSuffix is appended to a challenge key to name its info document.
	InfoFileSuffix = ".info.yml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDatabasePath returns the default path for the progress database.
// It joins .fixit and fixit.db.
func DefaultDatabasePath() string {
	return filepath.Join(FixitDirName, DatabaseFileName)
}

// InfoFileName returns the name of the info document for a challenge key.
func InfoFileName(key string) string {
	return key + InfoFileSuffix
}
