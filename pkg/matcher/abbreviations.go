package matcher

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Variant selects the platform-specific extensions to abbreviation
// generation. The Linux variant additionally produces CamelCase and
// prefix-stripped-acronym forms (§4.A step 5).
type Variant int

const (
	VariantWindows Variant = iota
	VariantLinux
)

var exeSuffixes = []string{"Win64-Shipping.exe", "Win32-Shipping.exe", ".exe"}

var exeTrimSuffixes = []string{
	"Win64-Shipping.exe", "Win32-Shipping.exe", ".exe",
	"-Win64-Shipping", "-Win32-Shipping", "-Shipping",
}

var exeTrailingKeywords = []string{"launcher", "server", "client", "editor"}

// GenerateAbbreviations produces a deduplicated, length-descending (then
// alphabetic) list of alternative names for name, per §4.A. fs and
// installDir are used to probe for the largest executable when installDir is
// a real directory; installDir may be empty.
func GenerateAbbreviations(fs afero.Fs, name, installDir string, variant Variant) []string {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	abbrevs := make(map[string]struct{})
	add := func(s string) {
		if len(s) >= 2 {
			abbrevs[s] = struct{}{}
		}
	}

	sanitized := symbolStripRegex.ReplaceAllString(name, "")
	sanitized = strings.TrimSpace(sanitized)

	cleaned := CleanForComparison(name)
	add(cleaned)
	add(strings.ReplaceAll(cleaned, " ", ""))
	add(alphanumericRegex.ReplaceAllString(cleaned, ""))

	words := wordBoundaryRegex.FindAllString(sanitized, -1)
	sigWords := make([]string, 0, len(words))
	for _, w := range words {
		if isIgnoreWord(defaultIgnoreWords, w) {
			continue
		}
		if len(w) > 1 {
			sigWords = append(sigWords, w)
		}
	}
	sigWordsCaps := capitalizedWords(sigWords)

	if acr := acronym(sigWords); len(acr) >= 2 {
		add(acr)
	}
	if acr := acronym(sigWordsCaps); len(acr) >= 2 {
		add(acr)
	}

	if idx := strings.Index(name, ":"); idx >= 0 {
		after := strings.TrimSpace(name[idx+1:])
		if after != "" {
			afterWords := wordBoundaryRegex.FindAllString(after, -1)
			var afterSigCaps []string
			for _, w := range afterWords {
				if len(w) > 1 && !isIgnoreWord(defaultIgnoreWords, w) && w != "" && unicode.IsUpper(rune(w[0])) {
					afterSigCaps = append(afterSigCaps, w)
				}
			}
			if acr := acronym(afterSigCaps); len(acr) >= 2 {
				add(acr)
			}
		}
	}

	if variant == VariantLinux {
		if camel := strings.Join(sigWords, ""); len(camel) >= 2 {
			add(camel)
		}
		if len(sigWords) > 0 {
			first := sigWords[0]
			looksLikeAcronym := len(first) <= 4 || first == strings.ToUpper(first)
			if looksLikeAcronym && len(sigWords) > 1 {
				if camel := strings.Join(sigWords[1:], ""); len(camel) >= 2 {
					add(camel)
				}
			}
		}
	}

	if installDir != "" {
		if exeName, ok := bestInstallExe(fs, installDir); ok {
			add(deriveExeAbbreviation(exeName))
		}
	}

	out := make([]string, 0, len(abbrevs))
	for a := range abbrevs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// bestInstallExe searches installDir (and its Binaries/Win64 and bin
// subdirectories) for the largest executable, so small launcher stubs lose
// to the main game binary. Among equal sizes the first one found wins.
func bestInstallExe(fs afero.Fs, installDir string) (string, bool) {
	isDir, err := afero.IsDir(fs, installDir)
	if err != nil || !isDir {
		return "", false
	}

	searchDirs := []string{
		installDir,
		filepath.Join(installDir, "Binaries", "Win64"),
		filepath.Join(installDir, "bin"),
	}

	var best string
	var bestSize int64 = -1
	for _, dir := range searchDirs {
		for _, suffix := range exeSuffixes {
			matches, err := afero.Glob(fs, filepath.Join(dir, "*"+suffix))
			if err != nil || len(matches) == 0 {
				continue
			}
			for _, m := range matches {
				info, statErr := fs.Stat(m)
				if statErr != nil {
					continue
				}
				if info.Size() > bestSize {
					best, bestSize = filepath.Base(m), info.Size()
				}
			}
		}
	}
	return best, best != ""
}

// deriveExeAbbreviation strips known shipping-build suffixes and trailing
// launcher/server/client/editor keywords from an executable's base name.
func deriveExeAbbreviation(exeName string) string {
	trimmed := exeName
	for _, suffix := range exeTrimSuffixes {
		if strings.HasSuffix(strings.ToLower(trimmed), strings.ToLower(suffix)) {
			trimmed = trimmed[:len(trimmed)-len(suffix)]
			break
		}
	}
	trimmed = trailingHyphenRegex.ReplaceAllString(trimmed, "")

	processed := trimmed
	for _, keyword := range exeTrailingKeywords {
		if strings.HasSuffix(strings.ToLower(processed), keyword) {
			processed = processed[:len(processed)-len(keyword)]
			break
		}
	}
	processed = trailingHyphenRegex.ReplaceAllString(processed, "")

	if len(processed) >= 2 {
		log.Debug().Str("exe", exeName).Str("abbreviation", processed).Msg("derived abbreviation from executable")
		return processed
	}
	if len(trimmed) >= 2 {
		return trimmed
	}
	return exeName
}
