package domain

// ChallengeAccuracy aggregates the recorded verdicts of one challenge.
type ChallengeAccuracy struct {
	Key      string
	Attempts int
	Passed   int
	Solved   bool
}

// AccuracyReport aggregates recorded verdicts across all challenges.
type AccuracyReport struct {
	Challenges []ChallengeAccuracy
	Attempts   int
	Passed     int
}

// Ratio returns the share of passing verdicts, or 0 when nothing was recorded.
func (r AccuracyReport) Ratio() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Attempts)
}

// Solved returns the number of challenges that have been solved at least once.
func (r AccuracyReport) Solved() int {
	n := 0
	for _, c := range r.Challenges {
		if c.Solved {
			n++
		}
	}
	return n
}
