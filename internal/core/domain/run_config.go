package domain

// RunConfig holds the user's choices that affect planning.
type RunConfig struct {
	Debug       bool
	Force       bool
	GenPkgOnly  bool
	BuildKind   BuildKind
	Features    string
	PkgPath     string
	Toolchain   string
	CargoOutput bool
}
