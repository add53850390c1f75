// Zaparoo Core
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Core.
//
// Zaparoo Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Core.  If not, see <http://www.gnu.org/licenses/>.

// Package matcher implements the string-normalization and similarity
// primitives used to locate a game's save directory by name alone: cleaning
// titles for comparison, generating alternate abbreviations, and deciding
// whether two names plausibly refer to the same game.
package matcher

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	symbolStripRegex    = regexp.MustCompile(`[™®©:]`)
	separatorRegex      = regexp.MustCompile(`[-_]`)
	whitespaceRegex     = regexp.MustCompile(`\s+`)
	alphanumericRegex   = regexp.MustCompile(`[^a-zA-Z0-9]`)
	alphaNumSpaceRegex  = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	wordBoundaryRegex   = regexp.MustCompile(`\b\w+\b`)
	trailingHyphenRegex = regexp.MustCompile(`[-_]+$`)
)

// defaultIgnoreWords is SIMILARITY_IGNORE_WORDS when no config override is
// loaded. Articles, edition qualifiers, and marketing terms that carry no
// identifying weight for a game title.
var defaultIgnoreWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "and": {},
	"remake": {}, "intergrade": {}, "edition": {}, "goty": {},
	"demo": {}, "trial": {}, "play": {}, "launch": {},
	"definitive": {}, "enhanced": {}, "complete": {}, "collection": {},
	"hd": {}, "ultra": {}, "deluxe": {}, "game": {}, "year": {},
	"directors": {}, "cut": {}, "remastered": {},
}

// stripDiacritics folds accented Latin characters to their base form so that
// e.g. "Pokémon" and "Pokemon" clean to the same comparison string.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		return out
	}
	return s
}

// CleanForComparison removes the symbols ™®©:, replaces - and _ with single
// spaces, collapses whitespace, folds diacritics, and lowercases. Digits and
// remaining punctuation are preserved.
func CleanForComparison(name string) string {
	name = symbolStripRegex.ReplaceAllString(name, "")
	name = separatorRegex.ReplaceAllString(name, " ")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = stripDiacritics(name)
	return strings.ToLower(name)
}

// isIgnoreWord reports whether w (already lowercase) is in the ignore set.
func isIgnoreWord(ignore map[string]struct{}, w string) bool {
	_, ok := ignore[strings.ToLower(w)]
	return ok
}

// significantWords returns the non-ignored tokens of length >= 2 from name,
// preserving original casing and order.
func significantWords(name string, ignore map[string]struct{}) []string {
	words := wordBoundaryRegex.FindAllString(name, -1)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 1 && !isIgnoreWord(ignore, w) {
			out = append(out, w)
		}
	}
	return out
}

// SignificantWords returns significant_title_words for name using the
// default ignore set: original-case tokens of length >= 2 that are not
// articles, edition qualifiers, or marketing terms. Used by the Orchestrator
// to build initial-sequence check input (§4.E step 1).
func SignificantWords(name string) []string {
	return significantWords(name, defaultIgnoreWords)
}

func capitalizedWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" && unicode.IsUpper(rune(w[0])) {
			out = append(out, w)
		}
	}
	return out
}

func acronym(words []string) string {
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteRune(unicode.ToUpper(rune(w[0])))
	}
	return b.String()
}
