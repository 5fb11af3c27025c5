package httpapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/internal/adapters/i18n"
	"go.trai.ch/fixit/internal/adapters/logger"
	"go.trai.ch/fixit/internal/adapters/store"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/fixit/internal/engine/verifier" //nolint:depguard // Wired in transport wiring
)

// NodeID is the unique identifier for the HTTP server Graft node.
const NodeID graft.ID = "adapter.httpapi"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{verifier.NodeID, store.NodeID, i18n.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			v, err := graft.Dep[*verifier.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			progress, err := graft.Dep[ports.ProgressStore](ctx)
			if err != nil {
				return nil, err
			}
			translator, err := graft.Dep[ports.Translator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(v, progress, translator, log), nil
		},
	})
}
