package domain

// BuildKind selects the build tool subcommand.
type BuildKind int

const (
	// BuildKindNormal compiles and runs the script.
	BuildKindNormal BuildKind = iota
	// BuildKindTest runs the script's tests.
	BuildKindTest
	// BuildKindBench runs the script's benchmarks.
	BuildKindBench
)

// BuildKindFromFlags resolves the build kind from the test and bench flags.
func BuildKindFromFlags(test, bench bool) (BuildKind, error) {
	switch {
	case test && bench:
		return BuildKindNormal, ErrConflictingBuildKind
	case test:
		return BuildKindTest, nil
	case bench:
		return BuildKindBench, nil
	default:
		return BuildKindNormal, nil
	}
}

// Subcommand returns the build tool subcommand for the kind.
func (k BuildKind) Subcommand() string {
	switch k {
	case BuildKindTest:
		return "test"
	case BuildKindBench:
		return "bench"
	default:
		return "run"
	}
}

// String returns the subcommand name.
func (k BuildKind) String() string {
	return k.Subcommand()
}

// Normalize applies the per-kind overrides to the user's debug and force flags.
// Test and bench builds never force a rebuild since the build tool tracks those itself.
func (k BuildKind) Normalize(debug, force bool) (normDebug, normForce bool) {
	switch k {
	case BuildKindTest:
		return true, false
	case BuildKindBench:
		return false, false
	default:
		return debug, force
	}
}
