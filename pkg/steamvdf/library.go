// Package steamvdf reads Steam's library and shortcut bookkeeping files to
// build the cross-contamination map the save finder uses to reject a
// candidate that actually belongs to a different installed game (§4.E).
package steamvdf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
)

// InstalledGame is one entry of the installed-games map: a Steam AppID
// mapped to its display name and install directory.
type InstalledGame struct {
	Name       string
	InstallDir string
}

func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

// ScanLibraries reads steamAppsDir/libraryfolders.vdf and every
// appmanifest_*.acf it references (across all libraries) and returns a map
// keyed by AppID.
func ScanLibraries(steamAppsDir string) map[string]InstalledGame {
	games := make(map[string]InstalledGame)

	libraryDirs := libraryPaths(steamAppsDir)
	for _, dir := range libraryDirs {
		scanLibraryManifests(dir, games)
	}
	return games
}

func libraryPaths(steamAppsDir string) []string {
	dirs := []string{steamAppsDir}

	//nolint:gosec // reads a local Steam config file
	f, err := os.Open(filepath.Join(steamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("steamvdf: no libraryfolders.vdf")
		return dirs
	}
	defer func() { _ = f.Close() }()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		log.Warn().Err(err).Msg("steamvdf: failed to parse libraryfolders.vdf")
		return dirs
	}
	m = normalizeVDFKeys(m)

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		return dirs
	}
	for _, v := range lfs {
		ls, ok := v.(map[string]any)
		if !ok {
			continue
		}
		path, ok := ls["path"].(string)
		if !ok {
			continue
		}
		dirs = append(dirs, filepath.Join(path, "steamapps"))
	}
	return dirs
}

func scanLibraryManifests(steamAppsDir string, out map[string]InstalledGame) {
	entries, err := os.ReadDir(steamAppsDir)
	if err != nil {
		log.Debug().Err(err).Str("dir", steamAppsDir).Msg("steamvdf: cannot list steamapps dir")
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "appmanifest_") {
			continue
		}
		game, appID, ok := readManifest(filepath.Join(steamAppsDir, e.Name()), steamAppsDir)
		if !ok {
			continue
		}
		out[appID] = game
	}
}

func readManifest(manifestPath, steamAppsDir string) (InstalledGame, string, bool) {
	//nolint:gosec // reads a local Steam manifest file
	f, err := os.Open(manifestPath)
	if err != nil {
		return InstalledGame{}, "", false
	}
	defer func() { _ = f.Close() }()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		log.Warn().Err(err).Str("manifest", manifestPath).Msg("steamvdf: failed to parse manifest")
		return InstalledGame{}, "", false
	}
	m = normalizeVDFKeys(m)

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		return InstalledGame{}, "", false
	}
	appID, ok := appState["appid"].(string)
	if !ok {
		return InstalledGame{}, "", false
	}
	name, ok := appState["name"].(string)
	if !ok {
		return InstalledGame{}, "", false
	}
	installDir, _ := appState["installdir"].(string) //nolint:revive // optional field

	game := InstalledGame{Name: name}
	if installDir != "" {
		game.InstallDir = filepath.Join(steamAppsDir, "common", installDir)
	}
	return game, appID, true
}
