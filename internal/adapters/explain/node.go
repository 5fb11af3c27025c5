package explain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/internal/adapters/fs"
	"go.trai.ch/fixit/internal/adapters/logger"
	"go.trai.ch/fixit/internal/core/ports"
)

// NodeID is the unique identifier for the explanation resolver Graft node.
const NodeID graft.ID = "adapter.explain"

func init() {
	graft.Register(graft.Node[ports.ExplanationResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.SnippetDirNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ExplanationResolver, error) {
			dir, err := graft.Dep[fs.SnippetDir](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(dir, log), nil
		},
	})
}
