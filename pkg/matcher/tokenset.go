package matcher

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// uniqueSortedWords tokenizes s (already cleaned/lowercased) into a
// deduplicated, alphabetically sorted word list.
func uniqueSortedWords(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func setIntersection(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, w := range b {
		bSet[w] = struct{}{}
	}
	var out []string
	for _, w := range a {
		if _, ok := bSet[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

func setDifference(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, w := range b {
		bSet[w] = struct{}{}
	}
	var out []string
	for _, w := range a {
		if _, ok := bSet[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// ratio computes a Levenshtein-distance-based similarity between 0 and 100,
// the same "percent similarity" contract fuzzywuzzy-style ratio functions
// expose, backed by go-edlib's edit-distance implementation.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 100
	}
	dist := edlib.LevenshteinDistance(a, b)
	similarity := 1.0 - float64(dist)/float64(maxLen)
	if similarity < 0 {
		similarity = 0
	}
	return int(similarity*100 + 0.5)
}

// TokenSetRatio implements the standard token-set ratio: both inputs are
// reduced to sorted, deduplicated bag-of-words strings; the intersection is
// combined with each side's unique remainder, and the best pairwise ratio
// among the three canonical permutations wins. Word-order and duplicate
// words do not affect the result, satisfying
// TokenSetRatio("hello world", "world hello") == 100.
func TokenSetRatio(a, b string) int {
	wordsA := uniqueSortedWords(CleanForComparison(a))
	wordsB := uniqueSortedWords(CleanForComparison(b))

	intersection := setIntersection(wordsA, wordsB)
	onlyA := setDifference(wordsA, intersection)
	onlyB := setDifference(wordsB, intersection)

	sorted := strings.Join(intersection, " ")
	combinedA := strings.TrimSpace(strings.Join([]string{sorted, strings.Join(onlyA, " ")}, " "))
	combinedB := strings.TrimSpace(strings.Join([]string{sorted, strings.Join(onlyB, " ")}, " "))

	best := ratio(sorted, combinedA)
	if r := ratio(sorted, combinedB); r > best {
		best = r
	}
	if r := ratio(combinedA, combinedB); r > best {
		best = r
	}
	return best
}
