package localcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildinfo/internal/adapters/config"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
)

// NodeID is the unique identifier for the local package cache Graft node.
const NodeID graft.ID = "adapter.local_cache"

func init() {
	graft.Register(graft.Node[ports.PackageCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.PackageCache, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := New(settings.CacheRoot, DefaultCacheSize)
			if err != nil {
				return nil, err
			}
			return cache, nil
		},
	})
}
