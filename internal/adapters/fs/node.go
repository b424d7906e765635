package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/core/ports"
)

// NodeID is the unique identifier for the folder lister Graft node.
const NodeID graft.ID = "adapter.fs.lister"

func init() {
	graft.Register(graft.Node[ports.FolderLister]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FolderLister, error) {
			return NewOSLister(), nil
		},
	})
}
