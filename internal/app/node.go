package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/internal/adapters/cache"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/adapters/httpapi" //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/adapters/i18n"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/adapters/store"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/fixit/internal/engine/verifier"
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
			config.ConfigNodeID,
			verifier.NodeID,
			fs.ScannerNodeID,
			cache.NodeID,
			store.NodeID,
			i18n.NodeID,
			httpapi.NodeID,
			watcher.NodeID,
			logger.NodeID,
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
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	v, err := graft.Dep[*verifier.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.FixScanner](ctx)
	if err != nil {
		return nil, err
	}

	fixCache, err := graft.Dep[ports.FixCache](ctx)
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

	server, err := graft.Dep[*httpapi.Server](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[*watcher.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, v, scanner, fixCache, progress, translator, server, w, log), nil
}
