package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAreNamesSimilarReflexive(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{1,30}`).Draw(rt, "name")
		require.True(rt, AreNamesSimilar(name, name))
	})
}

func TestAreNamesSimilarPrefixNoSpaceEquality(t *testing.T) {
	t.Parallel()
	assert.True(t, AreNamesSimilar("Overcooked 2", "Overcooked2"))
}

func TestAreNamesSimilarInitialSequence(t *testing.T) {
	t.Parallel()
	opts := SimilarityOptions{TitleSigWords: []string{"Metro", "Exodus"}}
	assert.True(t, AreNamesSimilar("Metro Exodus", "ME", opts))
}

func TestAreNamesSimilarUnrelated(t *testing.T) {
	t.Parallel()
	assert.False(t, AreNamesSimilar("Halo", "Call of Duty"))
}

func TestMatchesInitialSequence(t *testing.T) {
	t.Parallel()
	assert.True(t, MatchesInitialSequence("ME", []string{"Metro", "Exodus"}))
	assert.False(t, MatchesInitialSequence("MX", []string{"Metro", "Exodus"}))
}
