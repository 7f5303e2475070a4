package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/internal/core/ports"
)

// ResolverNodeID is the unique identifier for the script resolver Graft node.
const ResolverNodeID graft.ID = "adapter.fs.resolver"

func init() {
	graft.Register(graft.Node[ports.ScriptResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptResolver, error) {
			return NewResolver(), nil
		},
	})
}
