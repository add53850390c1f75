package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/savevault/pathfinder/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestInit_ConsoleOnlyDoesNotError(t *testing.T) {
	opts := logging.DefaultOptions()
	assert.NoError(t, logging.Init(opts))
}

func TestInit_WithFilePathDoesNotError(t *testing.T) {
	opts := logging.DefaultOptions()
	opts.FilePath = filepath.Join(t.TempDir(), "pathfinder.log")
	assert.NoError(t, logging.Init(opts))
}

func TestInit_DebugLevelDoesNotError(t *testing.T) {
	opts := logging.DefaultOptions()
	opts.Debug = true
	assert.NoError(t, logging.Init(opts))
}
