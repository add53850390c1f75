package savefinder

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Emit is called by a Collector for every candidate directory it discovers,
// tagged with the provenance string that produced it and (for
// depth-tracking strategies) its depth below the home directory.
type Emit func(path, source string, depthBelowHome int)

// Collector enumerates candidate directories for a query (§4.B). The two
// OS-specific implementations share this interface; deduplication is the
// Orchestrator's job.
type Collector interface {
	Collect(fs afero.Fs, q Query, abbreviations []string, emit Emit)
}

func isBannedName(name string) bool {
	_, ok := BannedFolderNamesLower[strings.ToLower(name)]
	return ok
}

func isFilesystemRoot(path string) bool {
	clean := filepath.Clean(path)
	return clean == filepath.Dir(clean)
}

func dirExists(fs afero.Fs, path string) bool {
	ok, err := afero.DirExists(fs, path)
	return err == nil && ok
}

// listDirNames returns the names of up to limit subdirectories of dir,
// access errors treated as "no children" per §7.
func listDirNames(fs afero.Fs, dir string, limit int) []string {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		out = append(out, e.Name())
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
