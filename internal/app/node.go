package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildinfo/internal/adapters/artifactory" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/docstore"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/environment" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/localcache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/lockfile"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/session"     //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
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
			logger.NodeID,
			lockfile.NodeID,
			localcache.NodeID,
			artifactory.NodeID,
			session.NodeID,
			docstore.NodeID,
			environment.NodeID,
			telemetry.TracerNodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
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
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	lockfiles, err := graft.Dep[ports.LockfileLoader](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[ports.PackageCache](ctx)
	if err != nil {
		return nil, err
	}
	repo, err := graft.Dep[ports.ArtifactRepository](ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := graft.Dep[ports.SessionStore](ctx)
	if err != nil {
		return nil, err
	}
	documents, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, err
	}
	env, err := graft.Dep[ports.EnvironmentReader](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, lockfiles, cache, repo, sessions, documents, env, tracer, settings), nil
}
