// Package node accepts peer connections, admits blocks they send and
// broadcasts admitted miner blocks to every connected peer.
package node

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/goodnatureofminers/powledger/internal/model"
	"github.com/goodnatureofminers/powledger/internal/validator"
	"github.com/goodnatureofminers/powledger/internal/wire"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config tunes peer handling. Zero values fall back to defaults; a negative
// InboundRPS or WriteTimeout disables the limit.
type Config struct {
	InboundRPS     int
	WriteTimeout   time.Duration
	MaxMessageSize int
}

// Node owns the peer registry and the broadcast side of the block-ready channel.
type Node struct {
	logger     *zap.Logger
	admitter   Admitter
	metrics    Metrics
	registry   *Registry
	blockReady <-chan model.Block
	cfg        Config
}

// New builds a Node that submits inbound blocks to admitter and broadcasts
// blocks received on blockReady.
func New(
	admitter Admitter,
	metrics Metrics,
	blockReady <-chan model.Block,
	logger *zap.Logger,
	cfg Config,
) (*Node, error) {
	if admitter == nil {
		return nil, errors.New("node admitter is required")
	}
	if metrics == nil {
		return nil, errors.New("node metrics is required")
	}
	if blockReady == nil {
		return nil, errors.New("block-ready channel is required")
	}
	if cfg.InboundRPS == 0 {
		cfg.InboundRPS = defaultInboundRPS
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = wire.DefaultMaxMessageSize
	}

	return &Node{
		logger:     logger,
		admitter:   admitter,
		metrics:    metrics,
		registry:   NewRegistry(),
		blockReady: blockReady,
		cfg:        cfg,
	}, nil
}

// Peers returns the number of connected peers.
func (n *Node) Peers() int {
	return n.registry.Len()
}

// Run serves peers on addr and broadcasts blocks until ctx is canceled.
func (n *Node) Run(ctx context.Context, addr string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return n.ListenAndServe(ctx, addr)
	})
	g.Go(func() error {
		return n.Broadcast(ctx)
	})
	return g.Wait()
}

// ListenAndServe binds addr (host:port) and serves peers on it.
func (n *Node) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return n.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled. Every connection is
// registered for broadcasts and read by its own goroutine.
func (n *Node) Serve(ctx context.Context, ln net.Listener) error {
	n.logger.Info("accepting peers", zap.String("addr", ln.Addr().String()))

	var wg sync.WaitGroup
	defer wg.Wait()
	defer n.registry.CloseAll()

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			_ = ln.Close()
			return fmt.Errorf("accept peer: %w", err)
		}

		peer := n.registry.Add(conn, n.cfg.WriteTimeout)
		n.metrics.SetPeers(n.registry.Len())
		n.logger.Info("peer connected", zap.Uint64("peer", peer.ID()), zap.String("remote", peer.RemoteAddr()))

		wg.Add(1)
		go func() {
			defer wg.Done()
			n.handle(ctx, peer)
		}()
	}
}

// handle reads block messages from p and submits each one to the admitter.
// Rejected blocks are dropped. Any read error ends the connection.
func (n *Node) handle(ctx context.Context, p *Peer) {
	logger := n.logger.With(zap.Uint64("peer", p.ID()), zap.String("remote", p.RemoteAddr()))

	stop := context.AfterFunc(ctx, func() {
		_ = p.Close()
	})
	defer func() {
		stop()
		n.registry.Remove(p.ID())
		_ = p.Close()
		n.metrics.SetPeers(n.registry.Len())
	}()

	limiter := ratelimit.NewUnlimited()
	if n.cfg.InboundRPS > 0 {
		limiter = ratelimit.New(n.cfg.InboundRPS)
	}
	reader := wire.NewReader(p.conn, n.cfg.MaxMessageSize)

	for {
		block, err := reader.Next()
		switch {
		case err == nil:
		case errors.Is(err, wire.ErrMalformedMessage):
			n.metrics.ObserveInbound("malformed")
			logger.Warn("dropping malformed message", zap.Error(err))
			continue
		case errors.Is(err, io.EOF):
			logger.Info("peer disconnected")
			return
		default:
			if ctx.Err() == nil {
				logger.Error("peer read failed", zap.Error(err))
			}
			return
		}

		limiter.Take()
		err = n.admitter.ValidateAndAppend(block)
		n.metrics.ObserveInbound(validator.Outcome(err))
		if err != nil {
			logger.Warn("dropping peer block", zap.Uint32("index", block.Index), zap.Error(err))
			continue
		}
		logger.Info("peer block admitted", zap.Uint32("index", block.Index), zap.String("hash", block.Hash))
	}
}

// Broadcast drains the block-ready channel until ctx is canceled or the
// channel is closed, writing every block to all registered peers.
func (n *Node) Broadcast(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case block, ok := <-n.blockReady:
			if !ok {
				return nil
			}
			n.broadcast(block)
		}
	}
}

// broadcast writes block to every peer in registration order. Failed writes
// are logged and not retried.
func (n *Node) broadcast(block model.Block) {
	started := time.Now()
	data, err := wire.Encode(block)
	if err != nil {
		n.logger.Error("encode block failed", zap.Uint32("index", block.Index), zap.Error(err))
		return
	}

	peers := n.registry.Snapshot()
	failures := 0
	for _, p := range peers {
		if err := p.Write(data); err != nil {
			failures++
			n.logger.Warn("peer write failed",
				zap.Uint64("peer", p.ID()),
				zap.String("remote", p.RemoteAddr()),
				zap.Uint32("index", block.Index),
				zap.Error(err),
			)
		}
	}
	n.metrics.ObserveBroadcast(len(peers), failures, started)
	n.logger.Debug("block broadcast", zap.Uint32("index", block.Index), zap.Int("peers", len(peers)), zap.Int("failures", failures))
}
