// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainLength interface {
		Len() int
	}
	PeerCounter interface {
		Peers() int
	}
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	chain ChainLength
	peers PeerCounter
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(chain ChainLength, peers PeerCounter) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{chain: chain, peers: peers}
}

// Health reports server health along with chain length and peer count.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: fmt.Sprintf("blocks=%d peers=%d", h.chain.Len(), h.peers.Peers()),
	}, nil
}
