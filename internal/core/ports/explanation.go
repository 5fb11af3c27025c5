package ports

// ExplanationResolver looks up the explanation text of a fix.
//
//go:generate mockgen -source=explanation.go -destination=mocks/mock_explanation.go -package=mocks
type ExplanationResolver interface {
	// Resolve returns the raw explanation for the fix with the given 1-based ordinal.
	// A missing or malformed info document yields no explanation and no error.
	// It only fails when the info document path would leave the snippet directory.
	Resolve(key string, ordinal int) (string, bool, error)
}
