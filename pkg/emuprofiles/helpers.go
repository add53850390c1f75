package emuprofiles

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// parentheticalTagRegex strips trailing region/language tags like "(USA)"
// or "(En,Fr,De,Es,It)" from a ROM-derived display name.
var parentheticalTagRegex = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// stripRegionTags repeatedly removes trailing parenthetical tags (a ROM
// name can carry more than one, e.g. "Title (USA) (En,Fr)").
func stripRegionTags(name string) string {
	for {
		stripped := parentheticalTagRegex.ReplaceAllString(name, "")
		if stripped == name {
			return strings.TrimSpace(stripped)
		}
		name = stripped
	}
}

// candidateDataRoots returns executableHint's directory (the "portable"
// install convention most emulators support) followed by the supplied
// standard OS roots, skipping anything that doesn't exist.
func candidateDataRoots(fs afero.Fs, executableHint string, standardRoots ...string) []string {
	var roots []string
	if executableHint != "" {
		roots = append(roots, filepath.Dir(executableHint))
	}
	roots = append(roots, standardRoots...)

	var out []string
	for _, r := range roots {
		if r == "" {
			continue
		}
		if ok, err := afero.DirExists(fs, r); err == nil && ok {
			out = append(out, r)
		}
	}
	return out
}

func homeDir() string {
	h, _ := os.UserHomeDir()
	return h
}
