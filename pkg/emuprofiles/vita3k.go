package emuprofiles

import (
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/internal/binformat"
	"github.com/spf13/afero"
)

// titleIDPattern matches a PS Vita Title ID: PCS followed by 6 characters
// (a region letter and 5 digits, e.g. PCSE00510), or NPS/VCV followed by 6
// alphanumerics (§4.F).
var titleIDPattern = regexp.MustCompile(`^(PCS[A-Z]\d{5}|(NPS|VCV)[A-Z0-9]{6})$`)

// Vita3K implements ProfileFinder for the Vita3K PS Vita emulator (§4.F).
type Vita3K struct {
	DataRoot string
}

func (v Vita3K) resolveDataRoot() string {
	if v.DataRoot != "" {
		return v.DataRoot
	}
	return filepath.Join(homeDir(), ".local", "share", "Vita3K")
}

func (v Vita3K) FindProfiles(fs afero.Fs, _ string) Result {
	root := v.resolveDataRoot()
	ux0 := filepath.Join(root, "ux0")
	if ok, err := afero.DirExists(fs, ux0); err != nil || !ok {
		return UnknownResult()
	}

	appDirs, _ := afero.ReadDir(fs, filepath.Join(ux0, "app"))
	titleNames := make(map[string]string, len(appDirs))
	for _, d := range appDirs {
		if !d.IsDir() || !titleIDPattern.MatchString(d.Name()) {
			continue
		}
		paramPath := filepath.Join(ux0, "app", d.Name(), "sce_sys", "param.sfo")
		if info := v.readSFO(fs, paramPath); info.Title != "" {
			titleNames[d.Name()] = info.Title
		}
	}

	userDirs, err := afero.ReadDir(fs, filepath.Join(ux0, "user"))
	if err != nil {
		log.Debug().Err(err).Msg("emuprofiles: failed to list vita3k user root")
		return FoundResult(nil)
	}

	var profiles []Profile
	for _, userDir := range userDirs {
		if !userDir.IsDir() {
			continue
		}
		savedataRoot := filepath.Join(ux0, "user", userDir.Name(), "savedata")
		titleDirs, readErr := afero.ReadDir(fs, savedataRoot)
		if readErr != nil {
			continue
		}
		for _, t := range titleDirs {
			if !t.IsDir() || !titleIDPattern.MatchString(t.Name()) {
				continue
			}
			name, ok := titleNames[t.Name()]
			if !ok {
				if info := v.readSFO(fs, filepath.Join(savedataRoot, t.Name(), "sce_sys", "param.sfo")); info.Title != "" {
					name = info.Title
				} else {
					name = t.Name()
				}
			}
			profiles = append(profiles, Profile{
				ID:    t.Name(),
				Name:  name,
				Paths: []string{filepath.Join(savedataRoot, t.Name())},
			})
		}
	}
	return FoundResult(profiles)
}

func (v Vita3K) readSFO(fs afero.Fs, path string) binformat.SFOInfo {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return binformat.SFOInfo{}
	}
	return binformat.DecodeSFO(data)
}
