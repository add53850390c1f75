package savefinder

import (
	"path/filepath"
	"strings"

	"github.com/savevault/pathfinder/pkg/matcher"
)

// ScoreContext is the query-scope data the scoring function closes over
// (§4.D), threaded explicitly rather than captured from module-level state
// per §9's "explicit QueryContext" redesign note.
type ScoreContext struct {
	CleanedGameName     string
	Abbreviations       []string
	AbbreviationsLower  map[string]struct{}
	TitleSigWords       []string
	SteamUserdataRootLC string
}

// NewScoreContext builds a ScoreContext from a Query and its generated
// abbreviations.
func NewScoreContext(q Query, abbreviations []string) ScoreContext {
	lower := make(map[string]struct{}, len(abbreviations))
	for _, a := range abbreviations {
		lower[strings.ToLower(a)] = struct{}{}
	}
	ctx := ScoreContext{
		CleanedGameName:    matcher.CleanForComparison(q.GameName),
		Abbreviations:      abbreviations,
		AbbreviationsLower: lower,
		TitleSigWords:      matcher.SignificantWords(q.GameName),
	}
	if q.SteamUserdataRoot != "" {
		ctx.SteamUserdataRootLC = strings.ToLower(filepath.Clean(q.SteamUserdataRoot))
	}
	return ctx
}

func (ctx ScoreContext) underSteamUserdata(path string) bool {
	if ctx.SteamUserdataRootLC == "" {
		return false
	}
	lc := strings.ToLower(filepath.Clean(path))
	return strings.HasPrefix(lc, ctx.SteamUserdataRootLC)
}

func basenameMatchesAbbreviationOrSequence(basename string, ctx ScoreContext) bool {
	if _, ok := ctx.AbbreviationsLower[strings.ToLower(basename)]; ok {
		return true
	}
	return matcher.MatchesInitialSequence(basename, ctx.TitleSigWords)
}

func isCommonSaveSubdir(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range CommonSaveSubdirs {
		if strings.ToLower(s) == lower {
			return true
		}
	}
	return false
}

func isGenericLinuxBasename(name string) bool {
	switch strings.ToLower(name) {
	case "data", "config", "settings", "cache", "logs", "common", "default", "user", "users":
		return true
	default:
		return false
	}
}
