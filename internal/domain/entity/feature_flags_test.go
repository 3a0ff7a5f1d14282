package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureFlags_ToggleDoesNotMutateOriginal(t *testing.T) {
	base := DefaultFeatureFlags()
	next := base.Toggle(FeatureGroupLMS, "quizzes")

	assert.False(t, base.Enabled(FeatureGroupLMS, "quizzes"))
	assert.True(t, next.Enabled(FeatureGroupLMS, "quizzes"))
}

func TestFeatureFlags_Diff(t *testing.T) {
	base := DefaultFeatureFlags()
	next := base.
		Toggle(FeatureGroupLMS, "quizzes").
		Toggle(FeatureGroupMarketplace, "reviews").
		Toggle(FeatureGroupMarketplace, "reviews").
		Toggle(FeatureGroupProducts, "fonts")

	changes := base.Diff(next)
	require.Len(t, changes, 2)
	assert.Equal(t, FeatureChange{Group: FeatureGroupLMS, Key: "quizzes", From: false, To: true}, changes[0])
	assert.Equal(t, FeatureChange{Group: FeatureGroupProducts, Key: "fonts", From: true, To: false}, changes[1])
	assert.False(t, base.Equal(next))
	assert.True(t, base.Equal(base.Clone()))
}

func TestFeatureFlags_DiffTreatsMissingAsDisabled(t *testing.T) {
	a := FeatureFlags{"lms": {"quizzes": false}}
	b := FeatureFlags{}

	assert.Empty(t, a.Diff(b))
	assert.Len(t, b.Diff(FeatureFlags{"lms": {"quizzes": true}}), 1)
}
