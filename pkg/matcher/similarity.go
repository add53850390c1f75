package matcher

import "strings"

// SimilarityOptions configures AreNamesSimilar. Zero value applies the §4.A
// defaults (min_common_words=2, fuzzy_threshold=88).
type SimilarityOptions struct {
	MinCommonWords int
	FuzzyThreshold int
	TitleSigWords  []string
}

func defaultSimilarityOptions() SimilarityOptions {
	return SimilarityOptions{MinCommonWords: 2, FuzzyThreshold: 88}
}

// MatchesInitialSequence reports whether folder is the exact uppercase
// concatenation of the first characters of words.
func MatchesInitialSequence(folder string, words []string) bool {
	if folder == "" || len(words) == 0 {
		return false
	}
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			return false
		}
		b.WriteRune(rune(strings.ToUpper(w)[0]))
	}
	return strings.ToUpper(folder) == b.String()
}

// AreNamesSimilar decides whether a and b plausibly name the same game, per
// §4.A: a short-circuit OR over shared-significant-words, space-stripped
// equality/prefix, the title-initials rule, and a token-set-ratio fuzzy
// fallback.
func AreNamesSimilar(a, b string, opts ...SimilarityOptions) bool {
	o := defaultSimilarityOptions()
	if len(opts) > 0 {
		o = opts[0]
		if o.MinCommonWords == 0 {
			o.MinCommonWords = 2
		}
		if o.FuzzyThreshold == 0 {
			o.FuzzyThreshold = 88
		}
	}

	cleanA := alphaNumSpaceCleanLower(a)
	cleanB := alphaNumSpaceCleanLower(b)

	wordsA := significantWordSet(cleanA)
	wordsB := significantWordSet(cleanB)
	if len(intersectStringSets(wordsA, wordsB)) >= o.MinCommonWords {
		return true
	}

	noSpaceA := strings.ReplaceAll(cleanA, " ", "")
	noSpaceB := strings.ReplaceAll(cleanB, " ", "")
	const minPrefixLen = 3
	if len(noSpaceA) >= minPrefixLen && len(noSpaceB) >= minPrefixLen {
		switch {
		case noSpaceA == noSpaceB:
			return true
		case len(noSpaceA) > len(noSpaceB) && strings.HasPrefix(noSpaceA, noSpaceB):
			return true
		case len(noSpaceB) > len(noSpaceA) && strings.HasPrefix(noSpaceB, noSpaceA):
			return true
		}
	}

	if len(o.TitleSigWords) > 0 && MatchesInitialSequence(b, o.TitleSigWords) {
		return true
	}

	if o.FuzzyThreshold <= 100 && TokenSetRatio(cleanA, cleanB) >= o.FuzzyThreshold {
		return true
	}

	return false
}

func alphaNumSpaceCleanLower(name string) string {
	cleaned := alphaNumSpaceRegex.ReplaceAllString(name, "")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	return strings.ToLower(strings.TrimSpace(cleaned))
}

func significantWordSet(cleanedLower string) map[string]struct{} {
	words := wordBoundaryRegex.FindAllString(cleanedLower, -1)
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if len(w) > 1 && !isIgnoreWord(defaultIgnoreWords, w) {
			out[w] = struct{}{}
		}
	}
	return out
}

func intersectStringSets(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for w := range a {
		if _, ok := b[w]; ok {
			out[w] = struct{}{}
		}
	}
	return out
}
