package emuprofiles

import (
	"path/filepath"

	"github.com/savevault/pathfinder/internal/binformat"
	"github.com/spf13/afero"
)

// MGBA implements ProfileFinder for mGBA, which overrides its save
// directory via config.ini's [ports.qt] section rather than always using a
// path next to the executable (§4.F, §4.G).
type MGBA struct {
	// ConfigPath, when set, overrides the default "<executable dir>/config.ini"
	// lookup — primarily for tests.
	ConfigPath string
}

func (m MGBA) FindProfiles(fs afero.Fs, executableHint string) Result {
	configPath := m.ConfigPath
	if configPath == "" && executableHint != "" {
		configPath = filepath.Join(filepath.Dir(executableHint), "config.ini")
	}

	saveDir := ""
	if configPath != "" {
		cfg := binformat.ReadMGBAConfig(configPath)
		saveDir = cfg.SaveDir
	}

	romFinder := NewRomSaveFinder(RomSaveConfig{
		Extensions:    []string{"sav"},
		StandardRoots: []string{saveDir},
	})
	return romFinder.FindProfiles(fs, executableHint)
}
