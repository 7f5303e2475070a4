package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/rscript/internal/engine/invoker"
	"go.trai.ch/rscript/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			planner.NodeID,
			cas.StoreNodeID,
			cas.EvictorNodeID,
			invoker.NodeID,
			shell.NodeID,
			logger.ConcreteNodeID,
			telemetry.TracerNodeID,
			config.SettingsNodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.ScriptResolver](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.PackageStore](ctx)
	if err != nil {
		return nil, err
	}

	evictor, err := graft.Dep[ports.CacheEvictor](ctx)
	if err != nil {
		return nil, err
	}

	inv, err := graft.Dep[*invoker.Invoker](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	// The concrete logger is taken so SetVerbose reaches it.
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, plan, store, inv, executor, evictor, log, tracer, settings, newWatcher), nil
}
