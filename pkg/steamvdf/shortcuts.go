package steamvdf

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/internal/vdfbinary"
)

// ScanShortcuts reads userdataDir/<id3>/config/shortcuts.vdf (a binary VDF,
// unlike the text-format library files) and returns its non-Steam games
// keyed by a synthetic "shortcut:<appid>" AppID so they never collide with
// an official AppID.
func ScanShortcuts(userdataDir, id3 string) map[string]InstalledGame {
	games := make(map[string]InstalledGame)

	path := filepath.Join(userdataDir, id3, "config", "shortcuts.vdf")
	//nolint:gosec // reads a local Steam config file
	f, err := os.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("steamvdf: no shortcuts.vdf")
		return games
	}
	defer func() { _ = f.Close() }()

	shortcuts, err := vdfbinary.ParseShortcuts(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("steamvdf: failed to parse shortcuts.vdf")
		return games
	}

	for _, s := range shortcuts {
		key := "shortcut:" + strconv.FormatUint(uint64(s.AppID), 10)
		games[key] = InstalledGame{
			Name:       s.AppName,
			InstallDir: s.StartDir,
		}
	}
	return games
}

// Merge combines any number of InstalledGame maps (library scans, shortcut
// scans across users) into one, later maps overriding earlier entries on
// key collision.
func Merge(maps ...map[string]InstalledGame) map[string]InstalledGame {
	out := make(map[string]InstalledGame)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
