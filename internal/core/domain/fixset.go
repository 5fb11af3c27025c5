package domain

// NoCorrectFix marks a FixSet in which no snippet is flagged as the correct one.
const NoCorrectFix = -1

// FixSet holds the candidate fixes of one challenge in presentation order.
// A FixSet is immutable once it has been published to the fix cache.
type FixSet struct {
	Key string
	// Fixes are the snippet bodies, indexed by discovery order.
	Fixes []string
	// CorrectIndex is the 0-based index of the canonical fix, or NoCorrectFix.
	CorrectIndex int
	// Digest fingerprints Fixes so that two scans can be compared cheaply.
	Digest uint64
}

// EmptyFixSet returns the valid, empty result for a key without snippets.
func EmptyFixSet(key string) FixSet {
	return FixSet{Key: key, CorrectIndex: NoCorrectFix}
}

// Empty reports whether the set holds no fixes.
func (f FixSet) Empty() bool {
	return len(f.Fixes) == 0
}

// Len returns the number of fixes in the set.
func (f FixSet) Len() int {
	return len(f.Fixes)
}

// HasCorrect reports whether one of the fixes is marked correct.
func (f FixSet) HasCorrect() bool {
	return f.CorrectIndex != NoCorrectFix
}

// IsCorrect reports whether the 0-based selection is the canonical fix.
// A set without a correct fix never accepts a selection, including NoCorrectFix itself.
func (f FixSet) IsCorrect(selected int) bool {
	return f.HasCorrect() && selected == f.CorrectIndex
}

// Valid reports whether CorrectIndex is NoCorrectFix or addresses one of the fixes.
func (f FixSet) Valid() bool {
	return f.CorrectIndex == NoCorrectFix || (f.CorrectIndex >= 0 && f.CorrectIndex < len(f.Fixes))
}

// Outcome is the result of verifying one selection.
type Outcome struct {
	Verdict bool
	// Explanation is raw, untranslated text. It is only meaningful when HasExplanation is set.
	Explanation    string
	HasExplanation bool
}
