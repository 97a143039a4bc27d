package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildinfo/internal/adapters/config"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
)

// NodeID is the unique identifier for the session store Graft node.
const NodeID graft.ID = "adapter.session"

func init() {
	graft.Register(graft.Node[ports.SessionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.SessionStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.CacheRoot), nil
		},
	})
}
