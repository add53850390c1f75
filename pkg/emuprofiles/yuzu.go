package emuprofiles

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Yuzu implements ProfileFinder for the Yuzu Nintendo Switch emulator
// (§4.F). Title names come from a bundled switch_game_list.yaml rather
// than per-game metadata files, since Yuzu itself doesn't ship one.
type Yuzu struct {
	DataRoot string
	// TitleMap is the bundled TitleID→name table; nil falls back to
	// TitleID-as-name.
	TitleMap map[string]string
}

func (y Yuzu) resolveDataRoot() string {
	if y.DataRoot != "" {
		return y.DataRoot
	}
	return filepath.Join(homeDir(), ".local", "share", "yuzu")
}

func (y Yuzu) FindProfiles(fs afero.Fs, _ string) Result {
	root := y.resolveDataRoot()
	userSaveRoot := filepath.Join(root, "nand", "user", "save", "0000000000000000")
	if ok, err := afero.DirExists(fs, userSaveRoot); err != nil || !ok {
		return UnknownResult()
	}

	userDirs, err := afero.ReadDir(fs, userSaveRoot)
	if err != nil {
		log.Debug().Err(err).Msg("emuprofiles: failed to list yuzu user save root")
		return FoundResult(nil)
	}

	var profiles []Profile
	for _, userDir := range userDirs {
		if !userDir.IsDir() || strings.Trim(userDir.Name(), "0") == "" {
			continue
		}
		userPath := filepath.Join(userSaveRoot, userDir.Name())
		titleDirs, readErr := afero.ReadDir(fs, userPath)
		if readErr != nil {
			continue
		}
		for _, t := range titleDirs {
			if !t.IsDir() {
				continue
			}
			titleID := strings.ToUpper(t.Name())
			name := titleID
			if mapped, ok := y.TitleMap[titleID]; ok {
				name = mapped
			}
			profiles = append(profiles, Profile{
				ID:    titleID,
				Name:  name,
				Paths: []string{filepath.Join(userPath, t.Name())},
			})
		}
	}
	return FoundResult(profiles)
}
