package emuprofiles

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// skippedXeniaContentNames are folders under content/<pkg>/<titleId>/ that
// hold bookkeeping, not save slots, plus the all-zero package placeholder
// Xenia writes for system content (§4.F).
var skippedXeniaContentNames = map[string]struct{}{
	"0000000000000000": {},
	"headers":          {},
	"marketplace":      {},
}

// Xenia implements ProfileFinder for the Xenia Xbox 360 emulator (§4.F).
type Xenia struct {
	DataRoot string
	TitleMap map[string]string
}

func (x Xenia) resolveDataRoot(executableHint string) string {
	if x.DataRoot != "" {
		return x.DataRoot
	}
	if executableHint != "" {
		return filepath.Dir(executableHint)
	}
	return filepath.Join(homeDir(), ".xenia")
}

func (x Xenia) FindProfiles(fs afero.Fs, executableHint string) Result {
	root := x.resolveDataRoot(executableHint)
	contentRoot := filepath.Join(root, "content")
	if ok, err := afero.DirExists(fs, contentRoot); err != nil || !ok {
		return UnknownResult()
	}

	pkgDirs, err := afero.ReadDir(fs, contentRoot)
	if err != nil {
		log.Debug().Err(err).Msg("emuprofiles: failed to list xenia content root")
		return FoundResult(nil)
	}

	var profiles []Profile
	for _, pkgDir := range pkgDirs {
		if !pkgDir.IsDir() {
			continue
		}
		if _, skip := skippedXeniaContentNames[strings.ToLower(pkgDir.Name())]; skip {
			continue
		}
		pkgPath := filepath.Join(contentRoot, pkgDir.Name())
		titleDirs, readErr := afero.ReadDir(fs, pkgPath)
		if readErr != nil {
			continue
		}
		for _, titleDir := range titleDirs {
			if !titleDir.IsDir() {
				continue
			}
			if _, skip := skippedXeniaContentNames[strings.ToLower(titleDir.Name())]; skip {
				continue
			}
			titleID := strings.ToUpper(titleDir.Name())
			name := titleID
			if mapped, ok := x.TitleMap[titleID]; ok {
				name = mapped
			}
			titlePath := filepath.Join(pkgPath, titleDir.Name())
			slotDirs, _ := afero.ReadDir(fs, titlePath)
			var paths []string
			for _, slot := range slotDirs {
				if !slot.IsDir() {
					continue
				}
				if _, skip := skippedXeniaContentNames[strings.ToLower(slot.Name())]; skip {
					continue
				}
				paths = append(paths, filepath.Join(titlePath, slot.Name()))
			}
			if len(paths) == 0 {
				paths = []string{titlePath}
			}
			profiles = append(profiles, Profile{ID: titleID, Name: name, Paths: paths})
		}
	}
	return FoundResult(profiles)
}
