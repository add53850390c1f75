// Command pathfinder runs the save-file discovery engine against the real
// filesystem for a single game and prints the ranked candidates. It exists
// to exercise the library end to end, the way the donor's cmd/testscanner
// exercises its media scanner.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/savevault/pathfinder/internal/logging"
	"github.com/savevault/pathfinder/pkg/emuprofiles"
	"github.com/savevault/pathfinder/pkg/savefinder"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	gameName := flag.String("game", "", "game name to search for")
	installDir := flag.String("install-dir", "", "known install directory, if any")
	emulatorExe := flag.String("emulator-exe", "", "path to an emulator executable; if set, locates emulator save profiles instead of searching for -game")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	opts := logging.DefaultOptions()
	opts.Debug = *debug
	if err := logging.Init(opts); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if *emulatorExe != "" {
		return runEmulatorProfiles(*emulatorExe)
	}

	if *gameName == "" {
		return fmt.Errorf("missing required -game flag")
	}

	platform := savefinder.PlatformLinux
	if runtime.GOOS == "windows" {
		platform = savefinder.PlatformWindows
	}

	finder := savefinder.NewFinder(afero.NewOsFs(), platform)
	results := finder.Find(savefinder.Query{
		GameName:   *gameName,
		InstallDir: *installDir,
	})

	log.Info().Int("count", len(results)).Str("game", *gameName).Msg("pathfinder: search complete")
	for _, r := range results {
		fmt.Printf("%6d  %s\n", r.Score, r.Path)
	}
	return nil
}

// runEmulatorProfiles dispatches emulatorExe through the emulator-profile
// registry (§4.F) and prints whatever profiles were found.
func runEmulatorProfiles(emulatorExe string) error {
	registry := emuprofiles.NewRegistry()
	key, result, ok := registry.DetectAndFindProfiles(afero.NewOsFs(), emulatorExe)
	if !ok {
		return fmt.Errorf("no known emulator recognized in %q", emulatorExe)
	}
	if result.Unknown {
		log.Info().Str("emulator", key).Msg("pathfinder: emulator recognized but data root not found")
		return nil
	}

	log.Info().Str("emulator", key).Int("count", len(result.Profiles)).Msg("pathfinder: profile scan complete")
	for _, p := range result.Profiles {
		fmt.Printf("%-20s %-30s %v\n", p.ID, p.Name, p.Paths)
	}
	return nil
}
