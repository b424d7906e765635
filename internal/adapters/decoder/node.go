package decoder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the decoder Graft node.
const NodeID graft.ID = "adapter.decoder"

func init() {
	graft.Register(graft.Node[ports.Decoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Decoder, error) {
			return New(), nil
		},
	})
}
