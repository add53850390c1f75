package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed assets/switch_game_list.yaml
var switchGameListYAML []byte

//go:embed assets/xenia_titles.yaml
var xeniaTitlesYAML []byte

// TitleMapEntry is one row of a bundled emulator title-map asset
// (switch_game_list.yaml, xenia_titles.yaml): a hex title/program ID to its
// display name.
type TitleMapEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// LoadTitleMapYAML decodes a bundled title-map asset of the shape
// `- id: "0100000000010000"\n  name: Super Mario Odyssey`, keyed by
// uppercased ID. It backs the Yuzu and Xenia adapters (§4.F), which unlike
// Ryujinx have no per-game metadata file to read titles from at scan time.
func LoadTitleMapYAML(data []byte) (map[string]string, error) {
	var entries []TitleMapEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing title map: %w", err)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		out[strings.ToUpper(e.ID)] = e.Name
	}
	return out, nil
}

// LoadBundledSwitchTitleMap decodes the bundled switch_game_list.yaml asset
// the Yuzu adapter ships with.
func LoadBundledSwitchTitleMap() (map[string]string, error) {
	return LoadTitleMapYAML(switchGameListYAML)
}

// LoadBundledXeniaTitleMap decodes the bundled xenia_titles.yaml asset the
// Xenia adapter ships with.
func LoadBundledXeniaTitleMap() (map[string]string, error) {
	return LoadTitleMapYAML(xeniaTitlesYAML)
}
