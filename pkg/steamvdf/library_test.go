package steamvdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/savevault/pathfinder/pkg/steamvdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libraryFoldersVDF = `"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.steam/steam"
		"apps"
		{
			"123"		"1000"
		}
	}
}
`

const manifestVDF = `"AppState"
{
	"appid"		"123"
	"name"		"My Game"
	"installdir"	"My Game"
}
`

func writeSteamAppsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	steamApps := filepath.Join(dir, "steamapps")
	require.NoError(t, os.MkdirAll(steamApps, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(steamApps, "libraryfolders.vdf"), []byte(libraryFoldersVDF), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(steamApps, "appmanifest_123.acf"), []byte(manifestVDF), 0o644))
	return steamApps
}

func TestScanLibraries_ReadsManifest(t *testing.T) {
	steamApps := writeSteamAppsDir(t)

	games := steamvdf.ScanLibraries(steamApps)

	require.Contains(t, games, "123")
	game := games["123"]
	assert.Equal(t, "My Game", game.Name)
	assert.Equal(t, filepath.Join(steamApps, "common", "My Game"), game.InstallDir)
}

func TestScanLibraries_MissingLibraryFoldersIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	steamApps := filepath.Join(dir, "steamapps")
	require.NoError(t, os.MkdirAll(steamApps, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(steamApps, "appmanifest_123.acf"), []byte(manifestVDF), 0o644))

	games := steamvdf.ScanLibraries(steamApps)
	assert.Contains(t, games, "123")
}

func TestToQueryGames_PreservesNameAndInstallDir(t *testing.T) {
	games := map[string]steamvdf.InstalledGame{
		"123": {Name: "My Game", InstallDir: "/games/MyGame"},
	}
	out := steamvdf.ToQueryGames(games)
	require.Contains(t, out, "123")
	assert.Equal(t, "My Game", out["123"].Name)
	assert.Equal(t, "/games/MyGame", out["123"].InstallDir)
}
