// Package app implements the application layer for rscript.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/rscript/internal/engine/invoker"
	"go.trai.ch/rscript/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver   ports.ScriptResolver
	planner    *planner.Planner
	store      ports.PackageStore
	invoker    *invoker.Invoker
	executor   ports.Executor
	evictor    ports.CacheEvictor
	logger     ports.Logger
	tracer     ports.Tracer
	settings   *domain.Settings
	newWatcher ports.WatcherFactory

	stdout io.Writer
	getwd  func() (string, error)
}

// New creates a new App instance.
func New(
	resolver ports.ScriptResolver,
	plan *planner.Planner,
	store ports.PackageStore,
	inv *invoker.Invoker,
	executor ports.Executor,
	evictor ports.CacheEvictor,
	log ports.Logger,
	tracer ports.Tracer,
	settings *domain.Settings,
	newWatcher ports.WatcherFactory,
) *App {
	return &App{
		resolver:   resolver,
		planner:    plan,
		store:      store,
		invoker:    inv,
		executor:   executor,
		evictor:    evictor,
		logger:     log,
		tracer:     tracer,
		settings:   settings,
		newWatcher: newWatcher,
		stdout:     os.Stdout,
		getwd:      os.Getwd,
	}
}

// WithOutput sets the writer used for user-facing results such as the
// generated package path.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir fixes the directory expressions are resolved against.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// SetVerbose switches the logger to debug output when it supports it.
func (a *App) SetVerbose(verbose bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(verbose)
	}
}

// Shutdown flushes telemetry.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Script is the script name, or the expression text when Expr is set.
	Script string
	Expr   bool
	// Args are passed to the program after the build tool's "--".
	Args []string

	Deps             []string
	Features         string
	UnstableFeatures []string
	Externs          []string

	Debug       bool
	Force       bool
	GenPkgOnly  bool
	PkgPath     string
	Test        bool
	Bench       bool
	Toolchain   string
	CargoOutput bool

	ClearCache bool
	Watch      bool
}

// Run executes the script described by opts and returns the exit code to report.
// The build tool's exit code is surfaced unchanged.
func (a *App) Run(ctx context.Context, opts RunOptions) (int, error) {
	if opts.ClearCache {
		if err := a.ClearCache(ctx); err != nil {
			return 1, err
		}
		if opts.Script == "" {
			_, _ = fmt.Fprintln(a.stdout, domain.AppName+" cache cleared.")
			return 0, nil
		}
	}

	if opts.Script == "" {
		return 1, domain.ErrNoScript
	}

	if opts.Watch {
		return a.Watch(ctx, opts)
	}

	return a.runOnce(ctx, opts)
}

//nolint:cyclop // orchestration function
func (a *App) runOnce(ctx context.Context, opts RunOptions) (int, error) {
	runID := uuid.NewString()
	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()
	span.SetAttribute("run_id", runID)
	a.logger.Debug("run_id: " + runID)

	fail := func(err error) (int, error) {
		span.RecordError(err)
		return 1, err
	}

	kind, err := domain.BuildKindFromFlags(opts.Test, opts.Bench)
	if err != nil {
		return fail(err)
	}

	deps, err := domain.ParseDependencies(opts.Deps)
	if err != nil {
		return fail(err)
	}
	prelude := domain.BuildPrelude(opts.UnstableFeatures, opts.Externs)

	var input domain.Input
	err = a.phase(ctx, "resolve", func(context.Context) error {
		input, err = a.resolve(opts)
		return err
	})
	if err != nil {
		return fail(err)
	}

	var plan *domain.Plan
	err = a.phase(ctx, "plan", func(context.Context) error {
		plan, err = a.planner.Decide(input, deps, prelude, domain.RunConfig{
			Debug:       opts.Debug,
			Force:       opts.Force,
			GenPkgOnly:  opts.GenPkgOnly,
			BuildKind:   kind,
			Features:    opts.Features,
			PkgPath:     opts.PkgPath,
			Toolchain:   opts.Toolchain,
			CargoOutput: opts.CargoOutput,
		})
		return err
	})
	if err != nil {
		return fail(err)
	}

	err = a.phase(ctx, "materialize", func(context.Context) error {
		if plan.Fresh() {
			a.logger.Debug("package is fresh, nothing to regenerate")
		}
		return a.store.Materialize(plan)
	})
	if err != nil {
		return fail(err)
	}

	// A full clear has already swept everything this run.
	if !opts.ClearCache {
		defer a.evict(context.WithoutCancel(ctx))
	}

	if !plan.Execute {
		_, _ = fmt.Fprintln(a.stdout, plan.PkgDir)
		return 0, nil
	}

	var code int
	err = a.phase(ctx, "invoke", func(ctx context.Context) error {
		code, err = a.executor.Execute(ctx, a.invoker.ForPlan(plan, opts.Args))
		return err
	})
	if err != nil {
		return fail(err)
	}
	span.SetAttribute("exit_code", code)

	return code, nil
}

func (a *App) resolve(opts RunOptions) (domain.Input, error) {
	if opts.Expr {
		wd, err := a.getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
		}
		return domain.ExprInput{Content: opts.Script, WorkDir: wd}, nil
	}
	return a.resolver.Resolve(opts.Script)
}

func (a *App) evict(ctx context.Context) {
	if a.settings.MaxCacheAge <= 0 {
		a.logger.Debug("automatic cache eviction disabled")
		return
	}

	err := a.phase(ctx, "evict", func(ctx context.Context) error {
		return a.evictor.Sweep(ctx, a.settings.MaxCacheAge)
	})
	if err != nil {
		a.logger.Warn("cache eviction failed: " + err.Error())
	}
}

// phase runs fn inside a span named name.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
