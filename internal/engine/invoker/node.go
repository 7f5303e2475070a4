package invoker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/adapters/detector" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rscript/internal/core/domain"
)

// NodeID is the unique identifier for the invoker Graft node.
const NodeID graft.ID = "engine.invoker"

func init() {
	graft.Register(graft.Node[*Invoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Invoker, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvoker(settings.Cargo, settings.Layout().BinariesDir(), detector.DetectColor()), nil
		},
	})
}
