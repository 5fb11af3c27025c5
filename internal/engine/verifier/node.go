package verifier

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/internal/adapters/cache"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fixit/internal/adapters/explain" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fixit/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fixit/internal/adapters/store"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fixit/internal/core/ports"
)

// NodeID is the unique identifier for the verifier Graft node.
const NodeID graft.ID = "engine.verifier"

func init() {
	graft.Register(graft.Node[*Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			explain.NodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Verifier, error) {
			fixCache, err := graft.Dep[ports.FixCache](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ExplanationResolver](ctx)
			if err != nil {
				return nil, err
			}

			progress, err := graft.Dep[ports.ProgressStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fixCache, resolver, progress, progress, log), nil
		},
	})
}
