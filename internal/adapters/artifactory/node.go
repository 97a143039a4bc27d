package artifactory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildinfo/internal/core/ports"
)

// NodeID is the unique identifier for the artifact repository Graft node.
const NodeID graft.ID = "adapter.artifactory"

func init() {
	graft.Register(graft.Node[ports.ArtifactRepository]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactRepository, error) {
			return New(), nil
		},
	})
}
