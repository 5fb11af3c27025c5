package domain

// Config is the resolved runtime configuration.
// Paths are absolute once the config loader has returned it.
type Config struct {
	SnippetDir    string
	Database      string
	Listen        string
	LocalesDir    string
	DefaultLocale string
	// Strict turns a second correct marker for one key into a scan error.
	Strict bool
	// Watch invalidates cached fix sets when snippet files change.
	Watch bool
	// Preload indexes the whole snippet directory before serving.
	Preload bool
}
