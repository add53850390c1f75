package savefinder

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/savevault/pathfinder/pkg/matcher"
	"github.com/spf13/afero"
)

// Platform selects which Collector/scoring variant the Finder runs.
type Platform int

const (
	PlatformWindows Platform = iota
	PlatformLinux
)

// Finder is the orchestrator of §4.E: it drives a Collector through its
// fixed-order strategies, validates and deduplicates what comes back, scores
// each surviving candidate, and returns them ranked highest-first.
type Finder struct {
	FS        afero.Fs
	Platform  Platform
	Collector Collector

	// AbbreviationVariant controls which GenerateAbbreviations flavor is
	// used. It is used as given: the zero value is VariantWindows whatever
	// the Platform. NewFinder sets it to match Platform.
	AbbreviationVariant matcher.Variant
}

// NewFinder builds a Finder for the given platform with its default
// Collector wiring. Callers needing custom roots (tests, Proton compatdata
// discovery) should construct the Collector directly and assign it after.
func NewFinder(fs afero.Fs, platform Platform) Finder {
	f := Finder{FS: fs, Platform: platform}
	switch platform {
	case PlatformWindows:
		f.Collector = WindowsCollector{Roots: DefaultWindowsRoots()}
		f.AbbreviationVariant = matcher.VariantWindows
	case PlatformLinux:
		f.Collector = DefaultLinuxCollector(nil)
		f.AbbreviationVariant = matcher.VariantLinux
	}
	return f
}

// Find implements §4.E: normalize inputs, generate abbreviations, collect
// candidates, validate/dedupe/score them, and sort by (-score,
// lowercase_path). Returns an empty slice (never nil) if cancelled or if
// nothing survives.
func (f Finder) Find(q Query) []ScoredPath {
	if q.Cancel == nil {
		q.Cancel = NeverCancel
	}
	if q.Cancel.Cancelled() {
		return []ScoredPath{}
	}

	abbreviations := matcher.GenerateAbbreviations(f.FS, q.GameName, q.InstallDir, f.AbbreviationVariant)
	scoreCtx := NewScoreContext(q, abbreviations)

	candidates := make(map[string]*Candidate)
	var order []string

	emit := func(path, source string, depthBelowHome int) {
		if q.Cancel.Cancelled() {
			return
		}
		if !f.acceptGuess(q, path, scoreCtx) {
			return
		}
		key := strings.ToLower(filepath.Clean(path))
		existing, ok := candidates[key]
		if !ok {
			existing = &Candidate{Path: filepath.Clean(path), DepthBelowHome: depthBelowHome}
			candidates[key] = existing
			order = append(order, key)
		} else if depthBelowHome > existing.DepthBelowHome {
			existing.DepthBelowHome = depthBelowHome
		}
		existing.AddSource(source)
	}

	f.Collector.Collect(f.FS, q, abbreviations, emit)

	if q.Cancel.Cancelled() {
		return []ScoredPath{}
	}

	results := make([]ScoredPath, 0, len(order))
	for _, key := range order {
		cand := *candidates[key]
		insp := Inspect(f.FS, cand.Path)
		cand.HasSavesHint = insp.HasSaveEvidence

		var score int
		switch f.Platform {
		case PlatformLinux:
			score = ScoreLinux(cand, insp, scoreCtx)
		default:
			score = ScoreWindows(cand, insp, scoreCtx)
		}
		results = append(results, ScoredPath{Path: cand.Path, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return strings.ToLower(results[i].Path) < strings.ToLower(results[j].Path)
	})

	return results
}

// acceptGuess applies §4.E's add_guess validation: the path must exist as a
// directory, must not be a filesystem root, must not contain only
// remotecache.vdf (a Steam bookkeeping file with no save content), and must
// not belong to a different installed Steam game (cross-contamination).
func (f Finder) acceptGuess(q Query, path string, ctx ScoreContext) bool {
	clean := filepath.Clean(path)
	if isFilesystemRoot(clean) {
		return false
	}
	if !dirExists(f.FS, clean) {
		return false
	}
	if isRemoteCacheOnly(f.FS, clean) {
		return false
	}
	if f.isCrossContamination(q, clean) {
		return false
	}
	return true
}

func isRemoteCacheOnly(fs afero.Fs, dir string) bool {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil || len(entries) != 1 {
		return false
	}
	return !entries[0].IsDir() && strings.EqualFold(entries[0].Name(), "remotecache.vdf")
}

// isCrossContamination rejects a candidate that lies under another
// installed Steam game's own install directory and whose basename reads as
// that other game's name rather than the queried one (§4.E, §8 scenario 6).
func (f Finder) isCrossContamination(q Query, path string) bool {
	if len(q.OtherInstalledSteamGames) == 0 {
		return false
	}
	lowerPath := strings.ToLower(path)
	for _, other := range q.OtherInstalledSteamGames {
		if other.InstallDir == "" || matcher.AreNamesSimilar(other.Name, q.GameName) {
			continue
		}
		otherDirLower := strings.ToLower(filepath.Clean(other.InstallDir))
		if otherDirLower == "" || !strings.HasPrefix(lowerPath, otherDirLower) {
			continue
		}
		basename := filepath.Base(path)
		if matcher.TokenSetRatio(matcher.CleanForComparison(other.Name), matcher.CleanForComparison(basename)) > FuzzyThresholdCrossContam {
			return true
		}
	}
	return false
}
