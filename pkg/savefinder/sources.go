package savefinder

import "strings"

// Provenance tag prefixes. The Candidate Collector emits fully-qualified
// tags like "SteamUserdata/remote" or "Direct/XDG_DATA_HOME"; the scorer's
// is* helpers below match each tag against these constants by string
// prefix.
const (
	SourceSteamUserdataRemote = "SteamUserdata/remote"
	SourceSteamUserdataBase   = "SteamUserdata/base"
	SourcePrimeLocationPrefix = "PrimeLocation/"
	SourceDocuments           = "Documents"
	SourceDocumentsMyGames    = "Documents/MyGames"
	SourceInstallDirWalk      = "InstallDirWalk"
	SourceDirectPrefix        = "Direct/"
	SourceGameNameLvlPrefix   = "GameNameLvl"
	SourceXDGConfigHome       = "XDG_CONFIG_HOME"
	SourceXDGDataHome         = "XDG_DATA_HOME"
	SourceProtonCompatdata    = "ProtonCompatdata"
)

func (c Candidate) hasSourcePrefix(prefix string) bool {
	for s := range c.Sources {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func (c Candidate) hasSourceExact(tag string) bool {
	_, ok := c.Sources[tag]
	return ok
}

func (c Candidate) isSteamRemote() bool { return c.hasSourcePrefix(SourceSteamUserdataRemote) }
func (c Candidate) isSteamBase() bool   { return c.hasSourcePrefix(SourceSteamUserdataBase) }
func (c Candidate) isPrimeLocation() bool {
	return c.hasSourcePrefix(SourcePrimeLocationPrefix)
}
func (c Candidate) isDocumentsNotMyGames() bool {
	return c.hasSourcePrefix(SourceDocuments) && !c.hasSourcePrefix(SourceDocumentsMyGames)
}
func (c Candidate) isInstallDirWalk() bool { return c.hasSourcePrefix(SourceInstallDirWalk) }
func (c Candidate) isDirectOrGameNameLvl() bool {
	return c.hasSourcePrefix(SourceDirectPrefix) || c.hasSourcePrefix(SourceGameNameLvlPrefix)
}
func (c Candidate) isXDGConfig() bool    { return c.hasSourcePrefix(SourceXDGConfigHome) }
func (c Candidate) isXDGData() bool      { return c.hasSourcePrefix(SourceXDGDataHome) }
func (c Candidate) isProtonCompatdata() bool { return c.hasSourcePrefix(SourceProtonCompatdata) }
