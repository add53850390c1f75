package config_test

import (
	"testing"

	"github.com/savevault/pathfinder/pkg/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingOverrideReturnsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg, err := config.Load(fs, "/etc/pathfinder.toml")
	require.NoError(t, err)
	assert.ElementsMatch(t, config.Defaults().CommonPublishers, cfg.CommonPublishers)
}

func TestLoad_OverrideReplacesWholeTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/pathfinder.toml", []byte(`
common_publishers = ["Acme Games"]
`), 0o644))

	cfg, err := config.Load(fs, "/etc/pathfinder.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Games"}, cfg.CommonPublishers)
	// Untouched tables still carry their defaults.
	assert.NotEmpty(t, cfg.CommonSaveSubdirs)
}

func TestLoad_MalformedOverrideReturnsError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/pathfinder.toml", []byte(`not = [valid toml`), 0o644))

	_, err := config.Load(fs, "/etc/pathfinder.toml")
	assert.Error(t, err)
}

func TestLoadTitleMapYAML_ParsesEntries(t *testing.T) {
	data := []byte(`
- id: "0100000000010000"
  name: Super Mario Odyssey
- id: "4D53007D"
  name: Halo 3
`)
	m, err := config.LoadTitleMapYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "Super Mario Odyssey", m["0100000000010000"])
	assert.Equal(t, "Halo 3", m["4D53007D"])
}

func TestLoadTitleMapYAML_RejectsMalformedYAML(t *testing.T) {
	_, err := config.LoadTitleMapYAML([]byte("not: valid: yaml: ["))
	assert.Error(t, err)
}
