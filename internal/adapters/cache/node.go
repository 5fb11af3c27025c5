package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/internal/adapters/fs"
	"go.trai.ch/fixit/internal/core/ports"
)

// NodeID is the unique identifier for the fix cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.FixCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ScannerNodeID},
		Run: func(ctx context.Context) (ports.FixCache, error) {
			scanner, err := graft.Dep[ports.FixScanner](ctx)
			if err != nil {
				return nil, err
			}
			return New(scanner), nil
		},
	})
}
