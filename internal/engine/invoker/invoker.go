// Package invoker builds the build tool command line for a plan.
package invoker

import (
	"go.trai.ch/rscript/internal/core/domain"
)

// Invoker constructs build tool invocations.
type Invoker struct {
	cargo      string
	targetDir  string
	forceColor bool
}

// NewInvoker creates a new Invoker.
// cargo is the build tool executable, targetDir the output directory shared by
// every package, and forceColor whether colour output is requested explicitly.
func NewInvoker(cargo, targetDir string, forceColor bool) *Invoker {
	return &Invoker{
		cargo:      cargo,
		targetDir:  targetDir,
		forceColor: forceColor,
	}
}

// Command builds the invocation for a package manifest.
// Trailing arguments are only forwarded to the program for normal runs.
func (i *Invoker) Command(
	kind domain.BuildKind,
	manifestPath string,
	toolchain string,
	meta domain.Metadata,
	trailingArgs []string,
	quiet bool,
) domain.Command {
	args := make([]string, 0, 12+len(trailingArgs))

	if toolchain != "" {
		args = append(args, "+"+toolchain)
	}
	args = append(args, kind.Subcommand())

	if kind == domain.BuildKindNormal && quiet {
		args = append(args, "-q")
	}

	args = append(args, "--manifest-path", manifestPath)

	if i.forceColor {
		args = append(args, "--color", "always")
	}

	args = append(args, "--target-dir", i.targetDir)

	// Benchmarks are always optimized and reject --release.
	if !meta.Debug && kind != domain.BuildKindBench {
		args = append(args, "--release")
	}

	if meta.Features != "" {
		args = append(args, "--features", meta.Features)
	}

	if kind == domain.BuildKindNormal && len(trailingArgs) > 0 {
		args = append(args, "--")
		args = append(args, trailingArgs...)
	}

	return domain.Command{
		Name: i.cargo,
		Args: args,
	}
}

// ForPlan builds the invocation for a plan, carrying the script environment.
func (i *Invoker) ForPlan(plan *domain.Plan, trailingArgs []string) domain.Command {
	cmd := i.Command(
		plan.BuildKind,
		plan.ManifestPath(),
		plan.Toolchain,
		plan.Metadata,
		trailingArgs,
		!plan.CargoOutput,
	)
	cmd.Env = plan.Env.Environ()
	return cmd
}
