package savefinder

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// InspectionResult is the Content Inspector's output (§4.C).
type InspectionResult struct {
	HasSaveEvidence bool
	MatchCount      int
}

// Inspect lists up to DefaultScanLimit entries of dir and reports whether
// any regular file looks save-like by extension or filename substring.
// Access errors are logged and treated as "empty directory", per §7.
func Inspect(fs afero.Fs, dir string) InspectionResult {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("inspector: failed to list directory")
		return InspectionResult{}
	}

	var result InspectionResult
	limit := len(entries)
	if limit > DefaultScanLimit {
		limit = DefaultScanLimit
	}

	for _, entry := range entries[:limit] {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")

		matched := false
		if _, ok := CommonSaveExtensions[ext]; ok {
			matched = true
		}
		if !matched {
			for _, substr := range CommonSaveFilenames {
				if strings.Contains(name, substr) {
					matched = true
					break
				}
			}
		}
		if matched {
			result.HasSaveEvidence = true
			result.MatchCount++
		}
	}

	return result
}

// HasMultipleEvidence reports whether r clears the "multiple evidence"
// bonus threshold (§4.C).
func (r InspectionResult) HasMultipleEvidence() bool {
	return r.MatchCount >= DefaultMultiEvidenceThreshold
}
