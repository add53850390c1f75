package savefinder

import (
	"path/filepath"
	"strings"

	"github.com/savevault/pathfinder/pkg/matcher"
)

// ScoreLinux assigns the Linux-variant score to a candidate, per §4.D's
// Linux differences and the pinned depth-penalty constant from §13.
func ScoreLinux(cand Candidate, insp InspectionResult, ctx ScoreContext) int {
	basename := filepath.Base(cand.Path)
	basenameLower := strings.ToLower(basename)

	score := linuxBaseScore(cand)
	score += linuxContentAndNameBonuses(cand, insp, basename, ctx)
	score += linuxPenalties(cand, insp, basenameLower)
	score += linuxDepthPenalty(cand, insp, basenameLower)

	return score
}

func linuxBaseScore(cand Candidate) int {
	switch {
	case cand.isXDGConfig():
		return 800
	case cand.isXDGData():
		return 700
	case cand.isProtonCompatdata():
		return 600
	case cand.isSteamRemote() || cand.isSteamBase():
		return 500
	case cand.isDocumentsNotMyGames():
		return 200
	case cand.isInstallDirWalk():
		return 50
	default:
		return 100
	}
}

func linuxContentAndNameBonuses(cand Candidate, insp InspectionResult, basename string, ctx ScoreContext) int {
	bonus := 0
	if insp.HasSaveEvidence {
		bonus += 800
	}
	if isCommonSaveSubdir(basename) {
		bonus += 600
	}
	if basenameMatchesAbbreviationOrSequence(basename, ctx) || cand.isDirectOrGameNameLvl() {
		bonus += 100
	}
	if matcher.CleanForComparison(basename) == ctx.CleanedGameName {
		bonus += 400
	}

	ratio := matcher.TokenSetRatio(ctx.CleanedGameName, basename)
	if ratio > FuzzyThresholdPathMatch {
		excess := int(float64(ratio-FuzzyThresholdPathMatch) / 15.0 * 300)
		bonus += excess
	}

	return bonus
}

func linuxPenalties(cand Candidate, insp InspectionResult, basenameLower string) int {
	penalty := 0

	if isGenericLinuxBasename(basenameLower) && !insp.HasSaveEvidence && !isCommonSaveSubdir(basenameLower) {
		penalty -= 200
	}
	if cand.isInstallDirWalk() && (!insp.HasSaveEvidence || !isCommonSaveSubdir(basenameLower)) {
		penalty -= 300
	}

	return penalty
}

// linuxDepthPenalty applies §13's pinned constant: -25 per level beyond
// depth 4 below home, halved (rounded toward zero) when the basename is a
// common save subdirectory or evidence is present.
func linuxDepthPenalty(cand Candidate, insp InspectionResult, basenameLower string) int {
	const threshold = 4
	const perLevel = -25

	if cand.DepthBelowHome <= threshold {
		return 0
	}
	levelsOver := cand.DepthBelowHome - threshold
	penalty := perLevel * levelsOver
	if insp.HasSaveEvidence || isCommonSaveSubdir(basenameLower) {
		penalty /= 2
	}
	return penalty
}
