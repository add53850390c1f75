package emuprofiles

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// RomSaveConfig configures RomSaveFinder, the generic "one flat save file
// per title" adapter covering DeSmuME/mGBA/SNES9x/SameBoy/Gopher64 and,
// per §4.F's closing note that their adapters are "routine given the
// templates above", PCSX2/Flycast/Minecraft too.
type RomSaveConfig struct {
	Extensions []string
	// StandardRoots are additional OS paths (beyond the executable's own
	// directory) to search; empty for emulators that are portable-only.
	StandardRoots []string
	// NameFromParentDir uses the save file's parent directory name as the
	// profile name instead of the file's own stem (Minecraft's
	// "saves/<world name>/level.dat" layout).
	NameFromParentDir bool
}

// RomSaveFinder implements ProfileFinder for emulators that keep one save
// file per title directly in a saves directory, with the file's stem (tags
// stripped) as the display name.
type RomSaveFinder struct {
	cfg RomSaveConfig
}

// NewRomSaveFinder builds a RomSaveFinder for cfg.
func NewRomSaveFinder(cfg RomSaveConfig) RomSaveFinder {
	return RomSaveFinder{cfg: cfg}
}

// FindProfiles implements ProfileFinder.
func (f RomSaveFinder) FindProfiles(fs afero.Fs, executableHint string) Result {
	roots := candidateDataRoots(fs, executableHint, f.cfg.StandardRoots...)
	if len(roots) == 0 {
		return UnknownResult()
	}

	extSet := make(map[string]struct{}, len(f.cfg.Extensions))
	for _, e := range f.cfg.Extensions {
		extSet[strings.ToLower(e)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var profiles []Profile

	for _, root := range roots {
		entries, err := afero.ReadDir(fs, root)
		if err != nil {
			log.Debug().Err(err).Str("root", root).Msg("emuprofiles: failed to list rom-save root")
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(e.Name())), ".")
			if _, ok := extSet[ext]; !ok {
				continue
			}
			path := filepath.Join(root, e.Name())
			key := strings.ToLower(path)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			name := stripRegionTags(stem)
			if f.cfg.NameFromParentDir {
				name = stripRegionTags(filepath.Base(root))
			}

			profiles = append(profiles, Profile{
				ID:    stem,
				Name:  name,
				Paths: []string{path},
			})
		}
	}

	return FoundResult(profiles)
}
