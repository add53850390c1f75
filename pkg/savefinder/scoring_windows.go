package savefinder

import (
	"path/filepath"
	"strings"

	"github.com/savevault/pathfinder/pkg/matcher"
)

// ScoreWindows assigns the Windows-variant score to a candidate, per §4.D.
func ScoreWindows(cand Candidate, insp InspectionResult, ctx ScoreContext) int {
	basename := filepath.Base(cand.Path)
	basenameLower := strings.ToLower(basename)
	parentBasenameLower := strings.ToLower(filepath.Base(filepath.Dir(cand.Path)))

	score := windowsBaseScore(cand, insp)
	score += windowsContentAndNameBonuses(cand, insp, basename, basenameLower, parentBasenameLower, ctx)
	score += windowsPenalties(cand, insp, basenameLower)

	if ctx.underSteamUserdata(cand.Path) && score > MaxUserdataScoreWindows {
		score = MaxUserdataScoreWindows
	}
	return score
}

func windowsBaseScore(cand Candidate, insp InspectionResult) int {
	switch {
	case cand.isSteamRemote():
		return 1500
	case cand.isSteamBase():
		if insp.HasSaveEvidence {
			return 500
		}
		return 150
	case cand.isPrimeLocation():
		return 1000
	case cand.isDocumentsNotMyGames():
		return 300
	case cand.isInstallDirWalk():
		return -500
	default:
		return 100
	}
}

func windowsContentAndNameBonuses(
	cand Candidate, insp InspectionResult, basename, basenameLower, parentBasenameLower string, ctx ScoreContext,
) int {
	bonus := 0

	if insp.HasSaveEvidence && !cand.isSteamBase() {
		bonus += 600
	}
	if isCommonSaveSubdir(basename) {
		bonus += 350
	}
	if basenameMatchesAbbreviationOrSequence(basename, ctx) || cand.isDirectOrGameNameLvl() {
		bonus += 100
	}
	if _, ok := ctx.AbbreviationsLower[parentBasenameLower]; ok && isCommonSaveSubdir(basename) {
		bonus += 100
	}
	if matcher.CleanForComparison(basename) == ctx.CleanedGameName {
		bonus += 400
	}

	ratio := matcher.TokenSetRatio(ctx.CleanedGameName, basename)
	if ratio > 85 {
		excess := int(float64(ratio-85) / 15.0 * 300)
		bonus += excess
	}

	return bonus
}

func windowsPenalties(cand Candidate, insp InspectionResult, basenameLower string) int {
	penalty := 0
	guarded := !insp.HasSaveEvidence && !cand.isPrimeLocation() && !cand.isSteamRemote()

	if basenameLower == "data" && guarded {
		penalty -= 350
	}
	switch basenameLower {
	case "settings", "config", "cache", "logs":
		if guarded {
			penalty -= 150
		}
	}
	if len(basenameLower) <= 3 && !isCommonSaveSubdir(basenameLower) && !insp.HasSaveEvidence {
		penalty -= 30
	}
	if cand.isInstallDirWalk() && (!insp.HasSaveEvidence || !isCommonSaveSubdir(basenameLower)) {
		penalty -= 300
	}

	return penalty
}
