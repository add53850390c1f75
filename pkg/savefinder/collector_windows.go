package savefinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/pkg/matcher"
	"github.com/spf13/afero"
)

// WindowsRoots are the user-profile locations the Windows collector
// searches, resolved once per process (or injected by tests against a
// virtual filesystem).
type WindowsRoots struct {
	SavedGames       string
	Documents        string
	DocumentsMyGames string
	AppDataRoaming   string
	AppDataLocal     string
	AppDataLocalLow  string
	PublicDocuments  string
	ProgramData      string
}

// DefaultWindowsRoots resolves WindowsRoots from the real environment
// (§6: APPDATA, LOCALAPPDATA, PUBLIC, ProgramData).
func DefaultWindowsRoots() WindowsRoots {
	home, _ := os.UserHomeDir()
	roaming := os.Getenv("APPDATA")
	local := os.Getenv("LOCALAPPDATA")
	public := os.Getenv("PUBLIC")
	programData := os.Getenv("ProgramData")

	return WindowsRoots{
		SavedGames:       filepath.Join(home, "Saved Games"),
		Documents:        filepath.Join(home, "Documents"),
		DocumentsMyGames: filepath.Join(home, "Documents", "My Games"),
		AppDataRoaming:   roaming,
		AppDataLocal:     local,
		AppDataLocalLow:  filepath.Join(local, "..", "LocalLow"),
		PublicDocuments:  filepath.Join(public, "Documents"),
		ProgramData:      programData,
	}
}

// WindowsCollector implements the Windows-variant Candidate Collector
// strategies of §4.B.
type WindowsCollector struct {
	Roots WindowsRoots
}

type windowsLocation struct {
	path   string
	source string
}

func (c WindowsCollector) locations() []windowsLocation {
	return []windowsLocation{
		{path: c.Roots.SavedGames, source: SourcePrimeLocationPrefix + "SavedGames"},
		{path: c.Roots.Documents, source: SourceDocuments},
		{path: c.Roots.DocumentsMyGames, source: SourceDocumentsMyGames},
		{path: c.Roots.AppDataRoaming, source: SourcePrimeLocationPrefix + "AppDataRoaming"},
		{path: c.Roots.AppDataLocal, source: SourcePrimeLocationPrefix + "AppDataLocal"},
		{path: c.Roots.AppDataLocalLow, source: SourcePrimeLocationPrefix + "AppDataLocalLow"},
		{path: c.Roots.PublicDocuments, source: SourceDocuments},
		{path: c.Roots.ProgramData, source: "CommonLocation/ProgramData"},
	}
}

// Collect implements Collector.
func (c WindowsCollector) Collect(fs afero.Fs, q Query, abbreviations []string, emit Emit) {
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}

	c.collectSteamUserdata(fs, q, emit)
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	c.collectDirectInjection(fs, abbreviations, emit)
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	c.collectExploratoryWalk(fs, q, abbreviations, emit)
	if q.Cancel != nil && q.Cancel.Cancelled() {
		return
	}
	c.collectInstallDirWalk(fs, q, abbreviations, emit)
}

func (c WindowsCollector) collectSteamUserdata(fs afero.Fs, q Query, emit Emit) {
	if q.SteamUserdataRoot == "" || q.SteamUser3ID == "" || q.SteamAppID == "" {
		return
	}
	base := filepath.Join(q.SteamUserdataRoot, q.SteamUser3ID, q.SteamAppID)
	remote := filepath.Join(base, "remote")

	emit(base, SourceSteamUserdataBase, 0)
	emit(remote, SourceSteamUserdataRemote, 0)

	for _, child := range listDirNames(fs, remote, 0) {
		if isCommonSaveSubdir(child) || matcher.AreNamesSimilar(child, q.GameName) {
			emit(filepath.Join(remote, child), SourceSteamUserdataRemote+"/child", 0)
		}
	}
}

func (c WindowsCollector) collectDirectInjection(fs afero.Fs, abbreviations []string, emit Emit) {
	for _, loc := range c.locations() {
		if loc.path == "" {
			continue
		}
		for _, v := range abbreviations {
			emit(filepath.Join(loc.path, v), SourceDirectPrefix+loc.source, 0)
			for _, publisher := range CommonPublishers {
				emit(filepath.Join(loc.path, publisher, v), SourceDirectPrefix+loc.source+"/Publisher", 0)
			}
			for _, subdir := range CommonSaveSubdirs {
				emit(filepath.Join(loc.path, v, subdir), SourceDirectPrefix+loc.source+"/SaveSubdir", 0)
			}
		}
	}
}

// collectExploratoryWalk is the bounded, three-level exploratory descent of
// §4.B: level 1 admits any non-banned child (recursion only continues past
// it when the child is a publisher name or already name-similar to the
// query); level 2 admits a name-similar or abbreviation-matching child, or a
// common save subdirectory sitting directly under a publisher folder; level
// 3 only looks for further common save subdirectories nested one level
// deeper.
func (c WindowsCollector) collectExploratoryWalk(fs afero.Fs, q Query, abbreviations []string, emit Emit) {
	sigWords := matcher.SignificantWords(q.GameName)
	simOpts := matcher.SimilarityOptions{TitleSigWords: sigWords}

	for _, loc := range c.locations() {
		if loc.path == "" || !dirExists(fs, loc.path) {
			continue
		}
		for _, lvl1 := range listDirNames(fs, loc.path, 0) {
			if q.Cancel != nil && q.Cancel.Cancelled() {
				return
			}
			if isBannedName(lvl1) {
				continue
			}
			lvl1Path := filepath.Join(loc.path, lvl1)
			lvl1NameSimilar := matcher.AreNamesSimilar(lvl1, q.GameName, simOpts)
			related := isPublisherName(lvl1) || lvl1NameSimilar
			if lvl1NameSimilar {
				emit(lvl1Path, SourceGameNameLvlPrefix+"1", 0)
			}
			if !related {
				continue
			}

			for _, lvl2 := range listDirNames(fs, lvl1Path, 0) {
				if isBannedName(lvl2) {
					continue
				}
				lvl2Path := filepath.Join(lvl1Path, lvl2)
				lvl2NameSimilar := matcher.AreNamesSimilar(lvl2, q.GameName, simOpts)
				lvl2AbbrevMatch := matcher.FuzzyAbbreviationMatch(lvl2, abbreviations, FuzzyThresholdBasenameMatch)

				if lvl2NameSimilar || lvl2AbbrevMatch {
					emit(lvl2Path, SourceGameNameLvlPrefix+"2", 0)
				}

				if isCommonSaveSubdir(lvl2) && isPublisherName(lvl1) {
					emit(lvl2Path, SourceGameNameLvlPrefix+"2/SaveSubdir", 0)
					for _, lvl3 := range listDirNames(fs, lvl2Path, 0) {
						if isCommonSaveSubdir(lvl3) {
							emit(filepath.Join(lvl2Path, lvl3), SourceGameNameLvlPrefix+"3", 0)
						}
					}
				}
			}
		}
	}
}

func (c WindowsCollector) collectInstallDirWalk(fs afero.Fs, q Query, abbreviations []string, emit Emit) {
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
		if pathDepth(q.InstallDir, path) > MaxDepthInstallDirWindows {
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

func isPublisherName(name string) bool {
	for _, p := range CommonPublishers {
		if matcher.CleanForComparison(p) == matcher.CleanForComparison(name) {
			return true
		}
	}
	return false
}

// pathDepth returns how many path components child sits below root.
func pathDepth(root, child string) int {
	rel, err := filepath.Rel(root, child)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(filepath.ToSlash(rel), "/"))
}
