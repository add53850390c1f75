package savefinder_test

import (
	"testing"

	"github.com/savevault/pathfinder/pkg/savefinder"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestWindowsCollector_DirectInjectionFindsSavedGames(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkdirAll(t, fs, `C:\Users\player\Saved Games\MyGame`)

	c := savefinder.WindowsCollector{
		Roots: savefinder.WindowsRoots{SavedGames: `C:\Users\player\Saved Games`},
	}

	var seen []string
	c.Collect(fs, savefinder.Query{GameName: "My Game"}, []string{"MyGame"}, func(path, source string, depth int) {
		seen = append(seen, path)
	})

	assert.Contains(t, seen, `C:\Users\player\Saved Games\MyGame`)
}

func TestWindowsCollector_InstallDirWalkRespectsDepthBound(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkdirAll(t, fs,
		`C:\Games\MyGame\a\b\c\Saves`, // depth 4, beyond MaxDepthInstallDirWindows(3)
		`C:\Games\MyGame\a\Saves`,     // depth 2, within bound
	)

	c := savefinder.WindowsCollector{}
	var seen []string
	c.Collect(fs, savefinder.Query{GameName: "My Game", InstallDir: `C:\Games\MyGame`}, nil,
		func(path, source string, depth int) { seen = append(seen, path) })

	assert.Contains(t, seen, `C:\Games\MyGame\a\Saves`)
	assert.NotContains(t, seen, `C:\Games\MyGame\a\b\c\Saves`)
}

func TestWindowsCollector_BannedFolderSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkdirAll(t, fs, `C:\Games\MyGame\Windows\Saves`)

	c := savefinder.WindowsCollector{}
	var seen []string
	c.Collect(fs, savefinder.Query{GameName: "My Game", InstallDir: `C:\Games\MyGame`}, nil,
		func(path, source string, depth int) { seen = append(seen, path) })

	assert.NotContains(t, seen, `C:\Games\MyGame\Windows\Saves`)
}
