package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/adapters/config"
	"go.trai.ch/rscript/internal/adapters/logger"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the package store Graft node.
	StoreNodeID graft.ID = "adapter.package_store"
	// EvictorNodeID is the unique identifier for the cache evictor Graft node.
	EvictorNodeID graft.ID = "adapter.cache_evictor"
)

func init() {
	graft.Register(graft.Node[ports.PackageStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})

	graft.Register(graft.Node[ports.CacheEvictor]{
		ID:        EvictorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheEvictor, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvictor(settings.Layout(), log), nil
		},
	})
}
