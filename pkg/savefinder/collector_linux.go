package savefinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/pkg/matcher"
	"github.com/spf13/afero"
)

// LinuxCollector implements the Linux-variant Candidate Collector
// strategies of §4.B: Steam userdata, Proton compatdata, XDG/known
// locations, an install-dir walk, and a two-tier bounded recursive descent.
type LinuxCollector struct {
	Home          string
	XDGConfigHome string
	XDGDataHome   string
	// SteamCompatdataRoots are the per-library "steamapps/compatdata" roots
	// to search for this app's Proton prefix.
	SteamCompatdataRoots []string
}

// DefaultLinuxCollector resolves XDG roots via adrg/xdg and the process
// home directory; Steam compatdata roots must be supplied by the caller
// (they require Steam library discovery, handled elsewhere).
func DefaultLinuxCollector(compatdataRoots []string) LinuxCollector {
	home, _ := os.UserHomeDir()
	return LinuxCollector{
		Home:                 home,
		XDGConfigHome:        xdg.ConfigHome,
		XDGDataHome:          xdg.DataHome,
		SteamCompatdataRoots: compatdataRoots,
	}
}

func (c LinuxCollector) knownLocations() []windowsLocation {
	locs := make([]windowsLocation, 0, len(LinuxKnownSaveLocations))
	for _, k := range LinuxKnownSaveLocations {
		path := k.Path
		switch {
		case path == "$XDG_CONFIG_HOME":
			path = c.XDGConfigHome
		case path == "$XDG_DATA_HOME":
			path = c.XDGDataHome
		case strings.HasPrefix(path, "~/"):
			path = filepath.Join(c.Home, strings.TrimPrefix(path, "~/"))
		}
		source := k.Label
		switch k.Label {
		case "XDG_CONFIG_HOME":
			source = SourceXDGConfigHome
		case "XDG_DATA_HOME":
			source = SourceXDGDataHome
		}
		locs = append(locs, windowsLocation{path: path, source: source})
	}
	return locs
}

// Collect implements Collector.
func (c LinuxCollector) Collect(fs afero.Fs, q Query, abbreviations []string, emit Emit) {
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	c.collectSteamUserdata(fs, q, emit)
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	c.collectProtonCompatdata(fs, q, emit)
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	c.collectKnownLocations(fs, q, abbreviations, emit)
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	c.collectInstallDirWalk(fs, q, abbreviations, emit)
}

func (c LinuxCollector) collectSteamUserdata(fs afero.Fs, q Query, emit Emit) {
	if q.SteamUserdataRoot == "" || q.SteamUser3ID == "" || q.SteamAppID == "" {
		return
	}
	base := filepath.Join(q.SteamUserdataRoot, q.SteamUser3ID, q.SteamAppID)
	remote := filepath.Join(base, "remote")
	emit(base, SourceSteamUserdataBase, 0)
	emit(remote, SourceSteamUserdataRemote, 0)
}

func (c LinuxCollector) collectProtonCompatdata(fs afero.Fs, q Query, emit Emit) {
	if q.SteamAppID == "" {
		return
	}
	for _, root := range c.SteamCompatdataRoots {
		pfx := filepath.Join(root, q.SteamAppID, "pfx")
		if !dirExists(fs, pfx) {
			continue
		}
		for _, frag := range ProtonUserPathFragments {
			emit(filepath.Join(pfx, frag), SourceProtonCompatdata, 0)
		}
	}
}

func (c LinuxCollector) collectKnownLocations(fs afero.Fs, q Query, abbreviations []string, emit Emit) {
	sigWords := matcher.SignificantWords(q.GameName)

	for _, loc := range c.knownLocations() {
		if loc.path == "" || !dirExists(fs, loc.path) {
			continue
		}
		for _, v := range abbreviations {
			emit(filepath.Join(loc.path, v), SourceDirectPrefix+loc.source, 0)
		}
		locDepth := 1
		if rel, err := filepath.Rel(c.Home, loc.path); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
			locDepth = len(strings.Split(filepath.ToSlash(rel), "/"))
		}
		c.boundedDescent(fs, q, loc.path, loc.source, abbreviations, sigWords, 0, locDepth, emit)
	}
}

// boundedDescent is the two-tier bounded DFS over one known location. It
// recurses through ordinary function calls, passing depth and
// depthBelowHome as parameters; it keeps no explicit stack of
// (path, depth, parentRelated) frames. A directory related to the query
// (name-similar, abbreviation match, or a common save subdirectory) is
// explored to the full generic depth bound; an unrelated directory only
// gets one shallow level of exploration looking for a related child.
func (c LinuxCollector) boundedDescent(
	fs afero.Fs, q Query, dir, sourceLabel string, abbreviations, sigWords []string,
	depth, depthBelowHome int, emit Emit,
) {
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	if depth > MaxDepthGeneric {
		return
	}

	children := listDirNames(fs, dir, DefaultSubItemScanLimit)
	for _, child := range children {
		if isBannedName(child) {
			continue
		}
		childPath := filepath.Join(dir, child)
		related := isCommonSaveSubdir(child) ||
			matcher.AreNamesSimilar(child, q.GameName, matcher.SimilarityOptions{TitleSigWords: sigWords}) ||
			matcher.FuzzyAbbreviationMatch(child, abbreviations, FuzzyThresholdBasenameMatch)

		if related {
			emit(childPath, sourceLabel, depthBelowHome+1)
			c.boundedDescent(fs, q, childPath, sourceLabel, abbreviations, sigWords, depth+1, depthBelowHome+1, emit)
			continue
		}

		if depth < DefaultShallowExploreDepth {
			for _, grandchild := range listDirNames(fs, childPath, DefaultSubItemScanLimit) {
				if isBannedName(grandchild) {
					continue
				}
				if isCommonSaveSubdir(grandchild) ||
					matcher.AreNamesSimilar(grandchild, q.GameName, matcher.SimilarityOptions{TitleSigWords: sigWords}) {
					emit(filepath.Join(childPath, grandchild), sourceLabel, depthBelowHome+2)
				}
			}
		}
	}
}

func (c LinuxCollector) collectInstallDirWalk(fs afero.Fs, q Query, abbreviations []string, emit Emit) {
	if q.InstallDir == "" || !dirExists(fs, q.InstallDir) {
		return
	}

	err := walkDirs(fs, q.InstallDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr // access errors are logged and skipped, per §7
		}
		if q.Cancel != nil && q.Cancel.Cancelled() {
			return filepath.SkipAll
		}
		if !info.IsDir() || path == q.InstallDir {
			return nil
		}
		depth := pathDepth(q.InstallDir, path)
		if depth > MaxDepthInstallDirLinux {
			return filepath.SkipDir
		}

		basename := filepath.Base(path)
		if isBannedName(basename) {
			return filepath.SkipDir
		}
		if isCommonSaveSubdir(basename) || matcher.FuzzyAbbreviationMatch(basename, abbreviations, FuzzyThresholdPathMatch) {
			emit(path, SourceInstallDirWalk, 0)
		}
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Str("installDir", q.InstallDir).Msg("install-dir walk failed")
	}
}
