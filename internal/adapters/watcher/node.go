package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/internal/adapters/cache"
	"go.trai.ch/fixit/internal/adapters/fs"
	"go.trai.ch/fixit/internal/adapters/logger"
	"go.trai.ch/fixit/internal/core/ports"
)

// NodeID is the unique identifier for the snippet watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[*Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.SnippetDirNodeID, cache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Watcher, error) {
			dir, err := graft.Dep[fs.SnippetDir](ctx)
			if err != nil {
				return nil, err
			}
			fixCache, err := graft.Dep[ports.FixCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(dir, fixCache, log), nil
		},
	})
}
