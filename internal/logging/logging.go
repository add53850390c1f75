// Package logging configures the global zerolog logger used throughout
// pathfinder. Every subsystem logs through github.com/rs/zerolog/log rather
// than returning errors for recoverable conditions (bad file magic, a
// directory that vanished mid-walk, a malformed config override) so the
// finder stays total: it always returns a result, never aborts on bad input.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Init. FilePath enables rotating file output; an empty
// FilePath logs to Console only.
type Options struct {
	// FilePath is the rotating log file destination. Empty disables file
	// logging.
	FilePath string
	// MaxSizeMB is the rotation threshold in megabytes.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int
	// MaxAgeDays is how long to retain rotated files.
	MaxAgeDays int
	// Debug enables debug-level logging; otherwise info-level.
	Debug bool
	// Console, when true, also writes human-readable output to stderr.
	Console bool
}

// DefaultOptions returns sane defaults for a CLI caller: console output at
// info level, no file logging.
func DefaultOptions() Options {
	return Options{
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Console:    true,
	}
}

// Init configures the global zerolog logger per opts. It may be called more
// than once (e.g. after loading a config override that changes the log
// path); the latest call wins.
func Init(opts Options) error {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	if opts.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	log.Logger = log.Output(io.MultiWriter(writers...)).With().Timestamp().Logger()
	return nil
}
