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

package matcher

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// FuzzyAbbreviationMatch reports whether basename plausibly matches one of
// abbreviations within the given threshold (0-100), used by the Install-dir
// walk strategy's "fuzzy threshold 85" rule (§4.B strategy 4). Jaro-Winkler
// is used first since it is optimized for short strings and weights matching
// prefixes heavily, which fits directory basenames; Damerau-Levenshtein
// breaks ties among multiple abbreviations that clear the threshold so the
// closest one wins regardless of the order abbreviations were generated in.
func FuzzyAbbreviationMatch(basename string, abbreviations []string, threshold int) bool {
	_, ok := BestFuzzyAbbreviationMatch(basename, abbreviations, threshold)
	return ok
}

// BestFuzzyAbbreviationMatch returns the abbreviation that best matches
// basename at or above threshold, or ("", false) if none clear it.
func BestFuzzyAbbreviationMatch(basename string, abbreviations []string, threshold int) (string, bool) {
	type scored struct {
		abbr     string
		jw       float32
		dlDist   int
	}
	var hits []scored
	for _, abbr := range abbreviations {
		jw := edlib.JaroWinklerSimilarity(basename, abbr)
		if int(jw*100) >= threshold {
			hits = append(hits, scored{
				abbr:   abbr,
				jw:     jw,
				dlDist: edlib.DamerauLevenshteinDistance(basename, abbr),
			})
		}
	}
	if len(hits) == 0 {
		return "", false
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dlDist != hits[j].dlDist {
			return hits[i].dlDist < hits[j].dlDist
		}
		return hits[i].jw > hits[j].jw
	})
	return hits[0].abbr, true
}
