package binformat

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// MGBAConfig is the subset of mGBA's config.ini this module reads.
type MGBAConfig struct {
	SaveDir       string
	LastDirectory string
}

// ReadMGBAConfig reads the [ports.qt] savedir and lastDirectory keys from an
// mGBA config.ini file, applying tilde expansion per §4.G. A missing or
// unparsable file yields a zero-value MGBAConfig, not an error — config.ini
// absence is routine (portable installs may not have one yet).
func ReadMGBAConfig(path string) MGBAConfig {
	cfg, err := ini.Load(path)
	if err != nil {
		return MGBAConfig{}
	}

	section := cfg.Section("ports.qt")
	result := MGBAConfig{
		SaveDir:       expandTilde(section.Key("savedir").String()),
		LastDirectory: expandTilde(section.Key("lastDirectory").String()),
	}
	return result
}

func expandTilde(p string) string {
	if p == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
