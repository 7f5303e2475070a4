package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/adapters/cas"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			cas.StoreNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.PackageStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewPlanner(renderer, store, log, settings.Layout()), nil
		},
	})
}
