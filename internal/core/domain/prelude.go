package domain

import "slices"

// BuildPrelude returns the sorted directives injected ahead of the script body
// for the requested unstable features and extern crates.
func BuildPrelude(unstableFeatures, externs []string) []string {
	prelude := make([]string, 0, len(unstableFeatures)+len(externs))
	for _, f := range unstableFeatures {
		prelude = append(prelude, "#![feature("+f+")]")
	}
	for _, x := range externs {
		prelude = append(prelude, "#[macro_use] extern crate "+x+";")
	}
	slices.Sort(prelude)
	return prelude
}
