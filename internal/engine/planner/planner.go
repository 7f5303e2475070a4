// Package planner decides what has to happen to run an input.
package planner

import (
	"fmt"
	"strings"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
)

// Planner combines an input, its dependencies, the prelude and the run
// configuration into a single plan. It never writes to disk.
type Planner struct {
	renderer ports.Renderer
	store    ports.PackageStore
	logger   ports.Logger
	layout   domain.CacheLayout
}

// NewPlanner creates a new Planner.
func NewPlanner(
	renderer ports.Renderer,
	store ports.PackageStore,
	logger ports.Logger,
	layout domain.CacheLayout,
) *Planner {
	return &Planner{
		renderer: renderer,
		store:    store,
		logger:   logger,
		layout:   layout,
	}
}

// Decide builds the plan for input. deps and prelude must already be sorted.
func (p *Planner) Decide(
	input domain.Input,
	deps []domain.Dependency,
	prelude []string,
	cfg domain.RunConfig,
) (*domain.Plan, error) {
	if err := domain.ValidateDependencies(deps); err != nil {
		return nil, err
	}

	id := domain.ComputeID(input, deps)
	p.logger.Debug("id: " + id)

	pkgDir, usingCache := p.layout.PackageDir(id), true
	if cfg.PkgPath != "" {
		pkgDir, usingCache = cfg.PkgPath, false
	}
	p.logger.Debug(fmt.Sprintf("using_cache: %t, pkg_path: %s", usingCache, pkgDir))

	env := domain.NewScriptEnv(input)
	manifest, script, err := p.renderer.Render(input, deps, prelude, id, env)
	if err != nil {
		return nil, err
	}

	debug, force := cfg.BuildKind.Normalize(cfg.Debug, cfg.Force)

	plan := &domain.Plan{
		PkgDir:       pkgDir,
		UsingCache:   usingCache,
		ForceCompile: force,
		EmitMetadata: true,
		Execute:      true,
		Metadata: domain.Metadata{
			Path:         input.Path(),
			Debug:        debug,
			Deps:         deps,
			Prelude:      prelude,
			Features:     cfg.Features,
			ManifestHash: domain.HashContent(manifest),
			ScriptHash:   domain.HashContent(script),
		},
		Manifest:    manifest,
		Script:      script,
		ScriptFile:  input.SafeName() + domain.ScriptExt,
		Toolchain:   toolchain(cfg),
		BuildKind:   cfg.BuildKind,
		CargoOutput: cfg.CargoOutput,
		Env:         env,
	}
	p.logger.Debug(describe(plan))

	if cfg.GenPkgOnly {
		plan.Execute = false
		return plan, nil
	}

	if cfg.BuildKind != domain.BuildKindNormal {
		p.logger.Debug("not recompiling because: " + cfg.BuildKind.String() + " build requested")
		plan.ForceCompile = false
		return plan, nil
	}

	old, err := p.store.LoadMetadata(pkgDir)
	if err != nil {
		p.logger.Debug("recompiling since failed to load metadata: " + err.Error())
		return plan, nil
	}
	plan.OldMetadata = old

	return plan, nil
}

func toolchain(cfg domain.RunConfig) string {
	if cfg.Toolchain != "" {
		return cfg.Toolchain
	}
	if cfg.BuildKind == domain.BuildKindBench {
		return domain.BenchToolchain
	}
	return ""
}

func describe(plan *domain.Plan) string {
	deps := make([]string, 0, len(plan.Metadata.Deps))
	for _, d := range plan.Metadata.Deps {
		deps = append(deps, d.String())
	}
	return fmt.Sprintf(
		"plan: kind=%s debug=%t force=%t deps=[%s] manifest_hash=%s script_hash=%s",
		plan.BuildKind, plan.Metadata.Debug, plan.ForceCompile,
		strings.Join(deps, ", "), plan.Metadata.ManifestHash, plan.Metadata.ScriptHash,
	)
}
