package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unexpire/internal/core/ports"
)

// NodeID is the unique identifier for the artifact writer Graft node.
const NodeID graft.ID = "adapter.fs.writer"

func init() {
	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactWriter, error) {
			return NewWriter(), nil
		},
	})
}
