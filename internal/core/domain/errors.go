package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidKey is returned when a challenge key is not a single safe path segment.
	ErrInvalidKey = zerr.New("invalid code challenge key")

	// ErrNoFixesFound is returned when no fix snippets exist for a challenge key.
	ErrNoFixesFound = zerr.New("no fixes found for the snippet")

	// ErrIncorrectFix is returned by the CLI when the checked fix is not the correct one.
	// The verdict has already been printed, so it is not reported again.
	ErrIncorrectFix = zerr.New("selected fix is incorrect")

	// ErrPathOutsideSnippetDir is returned when a resolved path escapes the snippet directory.
	ErrPathOutsideSnippetDir = zerr.New("path is outside the snippet directory")

	// ErrSnippetDirReadFailed is returned when the snippet directory cannot be listed.
	ErrSnippetDirReadFailed = zerr.New("failed to read snippet directory")

	// ErrSnippetDirResolveFailed is returned when the snippet directory cannot be canonicalized.
	ErrSnippetDirResolveFailed = zerr.New("failed to resolve snippet directory")

	// ErrFixReadFailed is returned when a fix snippet cannot be read.
	ErrFixReadFailed = zerr.New("failed to read fix snippet")

	// ErrDuplicateCorrectFix is returned in strict mode when more than one fix is marked correct.
	ErrDuplicateCorrectFix = zerr.New("more than one fix is marked correct")

	// ErrCorrectOrdinalOutOfRange is returned when the fix marked correct does not address a discovered fix.
	ErrCorrectOrdinalOutOfRange = zerr.New("correct fix ordinal does not match any discovered fix")

	// ErrInfoReadFailed is returned when a challenge info document cannot be read.
	ErrInfoReadFailed = zerr.New("failed to read challenge info")

	// ErrInfoParseFailed is returned when a challenge info document is malformed.
	ErrInfoParseFailed = zerr.New("failed to parse challenge info")

	// ErrStoreOpenFailed is returned when the progress database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open progress store")

	// ErrStoreWriteFailed is returned when a verdict or solve cannot be persisted.
	ErrStoreWriteFailed = zerr.New("failed to write to progress store")

	// ErrStoreReadFailed is returned when the accuracy report cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read from progress store")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds an unusable value.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrLocaleReadFailed is returned when a locale catalog cannot be read.
	ErrLocaleReadFailed = zerr.New("failed to read locale catalog")

	// ErrWatchFailed is returned when the snippet directory cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch snippet directory")

	// ErrServerFailed is returned when the HTTP server stops unexpectedly.
	ErrServerFailed = zerr.New("http server failed")
)
