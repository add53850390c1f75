package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCleanForComparison(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"symbols stripped", "Pokémon™ Scarlet®", "pokemon scarlet"},
		{"separators become spaces", "Half-Life_2", "half life 2"},
		{"colon stripped", "Mass Effect: Legendary", "mass effect legendary"},
		{"collapses whitespace", "Too   Many   Spaces", "too many spaces"},
		{"roman numerals lowercased", "Final Fantasy VII", "final fantasy vii"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CleanForComparison(tc.in))
		})
	}
}

func TestCleanForComparisonIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z0-9 _:™®©-]{0,40}`).Draw(rt, "name")
		once := CleanForComparison(name)
		twice := CleanForComparison(once)
		require.Equal(rt, once, twice)
	})
}
