package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixit/internal/adapters/config"
	"go.trai.ch/fixit/internal/adapters/logger"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
)

const (
	// SnippetDirNodeID is the unique identifier for the snippet directory Graft node.
	SnippetDirNodeID graft.ID = "adapter.fs.snippet_dir"
	// ScannerNodeID is the unique identifier for the fix scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
)

func init() {
	// SnippetDir Node (shared by the scanner and the explanation resolver)
	graft.Register(graft.Node[SnippetDir]{
		ID:        SnippetDirNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (SnippetDir, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return SnippetDir{}, err
			}
			return NewSnippetDir(cfg.SnippetDir)
		},
	})

	// Scanner Node
	graft.Register(graft.Node[ports.FixScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SnippetDirNodeID, config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.FixScanner, error) {
			dir, err := graft.Dep[SnippetDir](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(dir, cfg.Strict, log), nil
		},
	})
}
