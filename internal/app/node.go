package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/decoder" //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			decoder.NodeID,
			logger.NodeID,
			metrics.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	lister, err := graft.Dep[ports.FolderLister](ctx)
	if err != nil {
		return nil, err
	}

	dec, err := graft.Dep[ports.Decoder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[*metrics.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, lister, dec, log, m, w), nil
}
