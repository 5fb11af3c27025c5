package domain

// FixInfo describes one fix in a challenge info document.
type FixInfo struct {
	// ID is the 1-based ordinal from the snippet file name.
	ID          int
	Explanation string
}

// ChallengeInfo is the parsed form of a <key>.info.yml document.
type ChallengeInfo struct {
	Fixes []FixInfo
	Hints []string
}

// ExplanationFor returns the explanation of the first fix with the given ordinal.
// A descriptor without explanation text counts as absent, even when a later duplicate has one.
func (c ChallengeInfo) ExplanationFor(ordinal int) (string, bool) {
	for _, fix := range c.Fixes {
		if fix.ID == ordinal {
			return fix.Explanation, fix.Explanation != ""
		}
	}
	return "", false
}
