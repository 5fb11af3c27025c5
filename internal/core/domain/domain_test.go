package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixit/internal/core/domain"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "simple", key: "xss-1"},
		{name: "camel case", key: "dbSchemaChallenge"},
		{name: "underscore", key: "restful_xss"},
		{name: "empty", key: "", wantErr: true},
		{name: "traversal", key: "../../etc/passwd", wantErr: true},
		{name: "dot", key: "a.b", wantErr: true},
		{name: "slash", key: "a/b", wantErr: true},
		{name: "backslash", key: `a\b`, wantErr: true},
		{name: "space", key: "a b", wantErr: true},
		{name: "nul", key: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateKey(tt.key)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidKey)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFixSet_IsCorrect(t *testing.T) {
	set := domain.FixSet{Key: "xss-1", Fixes: []string{"a", "b", "c"}, CorrectIndex: 1}

	for i := -1; i <= 4; i++ {
		assert.Equal(t, i == 1, set.IsCorrect(i), "selection %d", i)
	}
}

func TestFixSet_NoCorrectNeverMatches(t *testing.T) {
	set := domain.FixSet{Key: "xss-1", Fixes: []string{"a", "b"}, CorrectIndex: domain.NoCorrectFix}

	assert.False(t, set.HasCorrect())
	assert.False(t, set.IsCorrect(domain.NoCorrectFix))
	assert.False(t, set.IsCorrect(0))
	assert.False(t, set.IsCorrect(1))
}

func TestFixSet_Valid(t *testing.T) {
	tests := []struct {
		name string
		set  domain.FixSet
		want bool
	}{
		{name: "empty", set: domain.EmptyFixSet("k"), want: true},
		{name: "no correct", set: domain.FixSet{Fixes: []string{"a"}, CorrectIndex: domain.NoCorrectFix}, want: true},
		{name: "in range", set: domain.FixSet{Fixes: []string{"a", "b"}, CorrectIndex: 1}, want: true},
		{name: "past end", set: domain.FixSet{Fixes: []string{"a", "b"}, CorrectIndex: 2}, want: false},
		{name: "negative", set: domain.FixSet{Fixes: []string{"a"}, CorrectIndex: -2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Valid())
		})
	}
}

func TestEmptyFixSet(t *testing.T) {
	set := domain.EmptyFixSet("missing")

	assert.Equal(t, "missing", set.Key)
	assert.True(t, set.Empty())
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, domain.NoCorrectFix, set.CorrectIndex)
}

func TestChallengeInfo_ExplanationFor(t *testing.T) {
	info := domain.ChallengeInfo{
		Fixes: []domain.FixInfo{
			{ID: 1, Explanation: "because X"},
			{ID: 2},
			{ID: 3, Explanation: "because Z"},
		},
	}

	got, ok := info.ExplanationFor(1)
	assert.True(t, ok)
	assert.Equal(t, "because X", got)

	_, ok = info.ExplanationFor(2)
	assert.False(t, ok, "descriptor without text is absent")

	_, ok = info.ExplanationFor(6)
	assert.False(t, ok)

	_, ok = domain.ChallengeInfo{}.ExplanationFor(1)
	assert.False(t, ok)
}

func TestChallengeInfo_ExplanationFor_FirstDescriptorWins(t *testing.T) {
	info := domain.ChallengeInfo{
		Fixes: []domain.FixInfo{
			{ID: 1, Explanation: "first"},
			{ID: 1, Explanation: "second"},
			{ID: 2},
			{ID: 2, Explanation: "shadowed"},
		},
	}

	got, ok := info.ExplanationFor(1)
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	got, ok = info.ExplanationFor(2)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestAccuracyReport(t *testing.T) {
	assert.Zero(t, domain.AccuracyReport{}.Ratio())

	report := domain.AccuracyReport{
		Challenges: []domain.ChallengeAccuracy{
			{Key: "a", Attempts: 3, Passed: 1, Solved: true},
			{Key: "b", Attempts: 1, Passed: 0},
		},
		Attempts: 4,
		Passed:   1,
	}

	assert.InDelta(t, 0.25, report.Ratio(), 1e-9)
	assert.Equal(t, 1, report.Solved())
}

func TestInfoFileName(t *testing.T) {
	assert.Equal(t, "xss-1.info.yml", domain.InfoFileName("xss-1"))
}
