package steamvdf

import "github.com/savevault/pathfinder/pkg/savefinder"

// ToQueryGames adapts an InstalledGame map to the shape savefinder.Query
// expects for cross-contamination rejection (§4.E).
func ToQueryGames(games map[string]InstalledGame) map[string]savefinder.SteamGameInfo {
	out := make(map[string]savefinder.SteamGameInfo, len(games))
	for id, g := range games {
		out[id] = savefinder.SteamGameInfo{Name: g.Name, InstallDir: g.InstallDir}
	}
	return out
}
