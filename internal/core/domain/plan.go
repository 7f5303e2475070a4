package domain

import "path/filepath"

// Plan is everything needed to materialize a package and invoke the build tool.
type Plan struct {
	PkgDir       string
	UsingCache   bool
	ForceCompile bool
	EmitMetadata bool
	Execute      bool

	Metadata    Metadata
	OldMetadata *Metadata

	Manifest   string
	Script     string
	ScriptFile string

	Toolchain   string
	BuildKind   BuildKind
	CargoOutput bool
	Env         ScriptEnv
}

// ManifestPath returns the manifest location inside the package directory.
func (p *Plan) ManifestPath() string {
	return filepath.Join(p.PkgDir, ManifestFileName)
}

// ScriptPath returns the generated script location inside the package directory.
func (p *Plan) ScriptPath() string {
	return filepath.Join(p.PkgDir, p.ScriptFile)
}

// Fresh reports whether the recorded metadata matches the freshly computed one.
func (p *Plan) Fresh() bool {
	return !p.ForceCompile && p.Metadata.Equal(p.OldMetadata)
}
