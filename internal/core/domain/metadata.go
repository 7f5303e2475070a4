package domain

import "slices"

// Metadata describes the inputs a package directory was last generated from.
// It is the only signal used to decide whether generated files are stale.
type Metadata struct {
	Path         string       `json:"path,omitempty"`
	Debug        bool         `json:"debug"`
	Deps         []Dependency `json:"deps"`
	Prelude      []string     `json:"prelude"`
	Features     string       `json:"features,omitempty"`
	ManifestHash string       `json:"manifest_hash"`
	ScriptHash   string       `json:"script_hash"`
}

// Equal reports whether every field of m matches other. A nil side is only equal to another nil.
func (m *Metadata) Equal(other *Metadata) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Path == other.Path &&
		m.Debug == other.Debug &&
		slices.Equal(m.Deps, other.Deps) &&
		slices.Equal(m.Prelude, other.Prelude) &&
		m.Features == other.Features &&
		m.ManifestHash == other.ManifestHash &&
		m.ScriptHash == other.ScriptHash
}
