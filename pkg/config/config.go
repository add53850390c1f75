// Package config loads the §6 constants tables the finder depends on —
// ignore words, save extensions/filenames/subdirs, publisher names, banned
// folder names, and the Linux known-location/Proton fragment tables — from
// compiled-in defaults, with an optional on-disk pathfinder.toml override
// for any subset of them. It mirrors the donor's own TOML-backed
// pkg/config/config.go: defaults first, then an override file merged in.
package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/pkg/savefinder"
	"github.com/spf13/afero"
)

// CfgFile is the default override filename, resolved relative to a
// caller-supplied config directory.
const CfgFile = "pathfinder.toml"

// Constants is the full, overridable table set savefinder collectors and
// scorers consume.
type Constants struct {
	IgnoreWords             []string             `toml:"ignore_words,omitempty"`
	CommonSaveExtensions    []string             `toml:"common_save_extensions,omitempty"`
	CommonSaveFilenames     []string             `toml:"common_save_filenames,omitempty"`
	CommonSaveSubdirs       []string             `toml:"common_save_subdirs,omitempty"`
	CommonPublishers        []string             `toml:"common_publishers,omitempty"`
	BannedFolderNames       []string             `toml:"banned_folder_names,omitempty"`
	LinuxKnownSaveLocations []LinuxKnownLocation `toml:"linux_known_save_locations,omitempty"`
	ProtonUserPathFragments []string             `toml:"proton_user_path_fragments,omitempty"`
}

// LinuxKnownLocation mirrors savefinder.LinuxKnownLocation with TOML tags;
// the two are kept as distinct types since savefinder must not import
// pkg/config (it has no need of overrides, only the finalized tables).
type LinuxKnownLocation struct {
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

// Defaults returns Constants populated from savefinder's compiled-in
// defaults (§6 of spec.md, pinned in savefinder's constants.go).
func Defaults() Constants {
	c := Constants{
		IgnoreWords:             append([]string(nil), savefinder.DefaultIgnoreWords...),
		CommonSaveFilenames:     append([]string(nil), savefinder.CommonSaveFilenames...),
		CommonSaveSubdirs:       append([]string(nil), savefinder.CommonSaveSubdirs...),
		CommonPublishers:        append([]string(nil), savefinder.CommonPublishers...),
		ProtonUserPathFragments: append([]string(nil), savefinder.ProtonUserPathFragments...),
	}
	for ext := range savefinder.CommonSaveExtensions {
		c.CommonSaveExtensions = append(c.CommonSaveExtensions, ext)
	}
	for name := range savefinder.BannedFolderNamesLower {
		c.BannedFolderNames = append(c.BannedFolderNames, name)
	}
	for _, loc := range savefinder.LinuxKnownSaveLocations {
		c.LinuxKnownSaveLocations = append(c.LinuxKnownSaveLocations, LinuxKnownLocation{Label: loc.Label, Path: loc.Path})
	}
	return c
}

// Load returns Defaults() merged with an optional pathfinder.toml override
// at path. A missing override file is not an error — it simply means the
// compiled-in defaults apply, matching §7's "total" philosophy: absence of
// configuration is a normal state, not a failure.
func Load(fs afero.Fs, path string) (Constants, error) {
	cfg := Defaults()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("checking config override: %w", err)
	}
	if !exists {
		log.Debug().Str("path", path).Msg("config: no override file, using defaults")
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("reading config override: %w", err)
	}

	var override Constants
	if err := toml.Unmarshal(data, &override); err != nil {
		return cfg, fmt.Errorf("parsing config override: %w", err)
	}

	mergeInto(&cfg, override)
	log.Info().Str("path", path).Msg("config: loaded override")
	return cfg, nil
}

// mergeInto replaces any non-empty table in override onto cfg. The override
// format is whole-table replacement, not element-level merging — matching
// the donor's own Values struct, where a present TOML section overwrites
// the corresponding default section wholesale.
func mergeInto(cfg *Constants, override Constants) {
	if len(override.IgnoreWords) > 0 {
		cfg.IgnoreWords = override.IgnoreWords
	}
	if len(override.CommonSaveExtensions) > 0 {
		cfg.CommonSaveExtensions = override.CommonSaveExtensions
	}
	if len(override.CommonSaveFilenames) > 0 {
		cfg.CommonSaveFilenames = override.CommonSaveFilenames
	}
	if len(override.CommonSaveSubdirs) > 0 {
		cfg.CommonSaveSubdirs = override.CommonSaveSubdirs
	}
	if len(override.CommonPublishers) > 0 {
		cfg.CommonPublishers = override.CommonPublishers
	}
	if len(override.BannedFolderNames) > 0 {
		cfg.BannedFolderNames = override.BannedFolderNames
	}
	if len(override.LinuxKnownSaveLocations) > 0 {
		cfg.LinuxKnownSaveLocations = override.LinuxKnownSaveLocations
	}
	if len(override.ProtonUserPathFragments) > 0 {
		cfg.ProtonUserPathFragments = override.ProtonUserPathFragments
	}
}
