// Package emuprofiles locates per-title save profiles for a fixed set of
// emulators, given each emulator's data directory (§4.F). Every adapter
// shares one contract so the dispatcher can treat them uniformly.
package emuprofiles

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/pkg/config"
	"github.com/spf13/afero"
)

// Profile is one discovered save slot: a title identifier, its resolved
// display name (or a fallback when unresolved), and the directory (or
// directories) holding its save data.
type Profile struct {
	ID    string
	Name  string
	Paths []string
}

// Result is a ProfileFinder's total, two-state output: either the data
// root could not be determined at all (Unknown), or it was found and
// Profiles lists whatever was discovered there — possibly empty, which is
// itself meaningful ("scanner ran, zero profiles exist").
type Result struct {
	Unknown  bool
	Profiles []Profile
}

// UnknownResult is the "could not determine a data root" sentinel.
func UnknownResult() Result { return Result{Unknown: true} }

// FoundResult wraps a (possibly empty) profile list as a successful scan.
func FoundResult(profiles []Profile) Result { return Result{Profiles: profiles} }

// ProfileFinder is the uniform emulator adapter contract of §4.F.
type ProfileFinder interface {
	// FindProfiles scans the emulator's data root, optionally hinted by the
	// path of its executable (used to derive portable-install roots).
	FindProfiles(fs afero.Fs, executableHint string) Result
}

// keywordEntry pairs a lowercase keyword against a target path with the
// ProfileFinder it dispatches to.
type keywordEntry struct {
	keyword string
	finder  ProfileFinder
}

// Registry is the static keyword→adapter table §9 requires in place of a
// runtime dictionary-of-functions dispatch.
type Registry struct {
	entries []keywordEntry
}

// NewRegistry builds the default registry covering every emulator named in
// §4.F. Yuzu and Xenia are seeded from their bundled switch_game_list.yaml/
// xenia_titles.yaml title maps; a decode failure logs a warning and falls
// back to TitleID-as-name rather than failing registry construction, per
// §7's "never propagate a decode error as a failure" policy.
func NewRegistry() Registry {
	yuzuTitles, err := config.LoadBundledSwitchTitleMap()
	if err != nil {
		log.Warn().Err(err).Msg("emuprofiles: failed to load bundled switch title map")
	}
	xeniaTitles, err := config.LoadBundledXeniaTitleMap()
	if err != nil {
		log.Warn().Err(err).Msg("emuprofiles: failed to load bundled xenia title map")
	}

	return Registry{entries: []keywordEntry{
		{keyword: "ryujinx", finder: Ryujinx{}},
		{keyword: "yuzu", finder: Yuzu{TitleMap: yuzuTitles}},
		{keyword: "vita3k", finder: Vita3K{}},
		{keyword: "desmume", finder: NewRomSaveFinder(RomSaveConfig{Extensions: []string{"dsv"}})},
		{keyword: "mgba", finder: MGBA{}},
		{keyword: "snes9x", finder: NewRomSaveFinder(RomSaveConfig{Extensions: []string{"srm"}})},
		{keyword: "sameboy", finder: NewRomSaveFinder(RomSaveConfig{Extensions: []string{"sav"}})},
		{keyword: "gopher64", finder: NewRomSaveFinder(RomSaveConfig{Extensions: []string{"sav", "srm"}})},
		{keyword: "xenia", finder: Xenia{TitleMap: xeniaTitles}},
		{keyword: "pcsx2", finder: NewRomSaveFinder(RomSaveConfig{Extensions: []string{"ps2"}})},
		{keyword: "flycast", finder: NewRomSaveFinder(RomSaveConfig{Extensions: []string{"vmu"}})},
		{keyword: "minecraft", finder: NewRomSaveFinder(RomSaveConfig{Extensions: []string{"dat"}, NameFromParentDir: true})},
	}}
}

// DetectAndFindProfiles matches keywords against the lowercased
// targetPath and, on the first match, invokes that adapter. Returns the
// matched emulator key alongside the result; ok is false when nothing
// matched, per §4.F's "optional" dispatch return.
func (r Registry) DetectAndFindProfiles(fs afero.Fs, targetPath string) (key string, result Result, ok bool) {
	lower := strings.ToLower(targetPath)
	for _, e := range r.entries {
		if strings.Contains(lower, e.keyword) {
			return e.keyword, e.finder.FindProfiles(fs, targetPath), true
		}
	}
	return "", Result{}, false
}
