package domain

import (
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// AnyVersion is the version requirement used for dependencies given without one.
const AnyVersion = "*"

// Dependency is a package requirement passed to the build tool.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// String returns the dependency in "name=version" form.
func (d Dependency) String() string {
	return d.Name + "=" + d.Version
}

// ParseDependency parses a "name" or "name=version" spec.
func ParseDependency(spec string) (Dependency, error) {
	name, version, found := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)

	if !found {
		version = AnyVersion
	}

	dep := Dependency{Name: name, Version: version}
	if err := dep.validate(); err != nil {
		return Dependency{}, zerr.With(err, "spec", spec)
	}
	return dep, nil
}

// ParseDependencies parses every spec and returns the dependencies sorted by name.
// Duplicate names are rejected rather than merged.
func ParseDependencies(specs []string) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(specs))
	for _, spec := range specs {
		dep, err := ParseDependency(spec)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}

	SortDependencies(deps)
	if err := ValidateDependencies(deps); err != nil {
		return nil, err
	}
	return deps, nil
}

// SortDependencies orders dependencies by name, then version.
func SortDependencies(deps []Dependency) {
	slices.SortFunc(deps, func(a, b Dependency) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Version, b.Version)
	})
}

// ValidateDependencies checks a sorted dependency list for empty fields and duplicate names.
func ValidateDependencies(sortedDeps []Dependency) error {
	for i, dep := range sortedDeps {
		if err := dep.validate(); err != nil {
			return err
		}
		if i > 0 && sortedDeps[i-1].Name == dep.Name {
			return zerr.With(ErrDuplicateDependency, "name", dep.Name)
		}
	}
	return nil
}

func (d Dependency) validate() error {
	if d.Name == "" {
		return ErrEmptyDependencyName
	}
	if d.Version == "" {
		return zerr.With(ErrEmptyDependencyVersion, "name", d.Name)
	}
	return nil
}
