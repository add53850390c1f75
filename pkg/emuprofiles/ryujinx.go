package emuprofiles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/internal/binformat"
	"github.com/spf13/afero"
)

// Ryujinx implements ProfileFinder for the Ryujinx Nintendo Switch
// emulator (§4.F).
type Ryujinx struct {
	// DataRoot overrides data-root resolution (tests; production falls
	// back to the platform's standard Ryujinx config directory).
	DataRoot string
}

type ryujinxMetadata struct {
	Title string `json:"title"`
}

func (r Ryujinx) resolveDataRoot(executableHint string) string {
	if r.DataRoot != "" {
		return r.DataRoot
	}
	home := homeDir()
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Ryujinx")
		}
		return filepath.Join(home, "AppData", "Roaming", "Ryujinx")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Ryujinx")
	}
	return filepath.Join(home, ".config", "Ryujinx")
}

func (r Ryujinx) FindProfiles(fs afero.Fs, executableHint string) Result {
	root := r.resolveDataRoot(executableHint)
	if ok, err := afero.DirExists(fs, root); err != nil || !ok {
		return UnknownResult()
	}

	titles := r.loadTitleMap(fs, root)
	saveIndex := r.loadSaveIndex(fs, root)

	userSaveRoot := filepath.Join(root, "bis", "user", "save")
	entries, err := afero.ReadDir(fs, userSaveRoot)
	if err != nil {
		log.Debug().Err(err).Str("root", userSaveRoot).Msg("emuprofiles: ryujinx user save root missing")
		return FoundResult(nil)
	}

	var profiles []Profile
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		saveDataID := e.Name()
		titleID, ok := saveIndex[saveDataID]
		name := "Unknown Title"
		if ok {
			if t, found := titles[titleID]; found {
				name = t
			} else {
				name = titleID
			}
		}
		profiles = append(profiles, Profile{
			ID:    saveDataID,
			Name:  name,
			Paths: []string{filepath.Join(userSaveRoot, saveDataID)},
		})
	}
	return FoundResult(profiles)
}

// loadTitleMap builds a TitleID→title map from every games/<titleId>/gui/metadata.json.
func (r Ryujinx) loadTitleMap(fs afero.Fs, root string) map[string]string {
	out := make(map[string]string)
	gamesRoot := filepath.Join(root, "games")
	entries, err := afero.ReadDir(fs, gamesRoot)
	if err != nil {
		return out
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		metaPath := filepath.Join(gamesRoot, e.Name(), "gui", "metadata.json")
		data, readErr := afero.ReadFile(fs, metaPath)
		if readErr != nil {
			continue
		}
		var meta ryujinxMetadata
		if jsonErr := json.Unmarshal(data, &meta); jsonErr != nil {
			log.Debug().Err(jsonErr).Str("path", metaPath).Msg("emuprofiles: bad ryujinx metadata.json")
			continue
		}
		if meta.Title != "" {
			out[strings.ToUpper(e.Name())] = meta.Title
		}
	}
	return out
}

// loadSaveIndex decodes the IMKVDB save index, keyed by SaveDataID as an
// unpadded decimal folder name (Ryujinx names save folders by the decimal
// SaveDataID, not its hex form), mapped to ProgramID.
func (r Ryujinx) loadSaveIndex(fs afero.Fs, root string) map[string]string {
	out := make(map[string]string)
	path := filepath.Join(root, "bis", "system", "save", "8000000000000000", "0", "imkvdb.arc")
	f, err := fs.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("emuprofiles: no ryujinx imkvdb.arc")
		return out
	}
	defer func() { _ = f.Close() }()

	decoded := binformat.DecodeIMKVDB(f)
	for saveHex, programHex := range decoded {
		saveValue, parseErr := strconv.ParseUint(saveHex, 16, 64)
		if parseErr != nil {
			out[saveHex] = programHex
			continue
		}
		out[strconv.FormatUint(saveValue, 10)] = programHex
	}
	return out
}
