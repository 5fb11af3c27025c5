package config

// Fixfile represents the structure of the fixit.yaml configuration file.
type Fixfile struct {
	SnippetDir    string `yaml:"snippetDir"`
	Database      string `yaml:"database"`
	Listen        string `yaml:"listen"`
	LocalesDir    string `yaml:"localesDir"`
	DefaultLocale string `yaml:"defaultLocale"`
	Strict        bool   `yaml:"strict"`
	Watch         bool   `yaml:"watch"`
	Preload       bool   `yaml:"preload"`
}
