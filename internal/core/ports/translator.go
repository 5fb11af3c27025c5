package ports

// Translator localizes user-facing text.
//
//go:generate mockgen -source=translator.go -destination=mocks/mock_translator.go -package=mocks
type Translator interface {
	// Translate returns text in the given locale, or text unchanged when no translation exists.
	Translate(locale, text string) string
}
