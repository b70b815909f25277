package node

import (
	"net"
	"sync"
	"time"
)

// Peer is a registered connection.
type Peer struct {
	id           uint64
	conn         net.Conn
	writeTimeout time.Duration
	closeOnce    sync.Once
}

// ID returns the registry-assigned identifier.
func (p *Peer) ID() uint64 {
	return p.id
}

// RemoteAddr returns the remote address of the connection.
func (p *Peer) RemoteAddr() string {
	return p.conn.RemoteAddr().String()
}

// Write sends data in one call, bounded by the write timeout when set.
func (p *Peer) Write(data []byte) error {
	if p.writeTimeout > 0 {
		if err := p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout)); err != nil {
			return err
		}
	}
	_, err := p.conn.Write(data)
	return err
}

// Close closes the underlying connection once.
func (p *Peer) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.conn.Close()
	})
	return err
}

// Registry keeps connected peers in registration order.
type Registry struct {
	mu     sync.Mutex
	nextID uint64
	peers  []*Peer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers conn and returns its Peer.
func (r *Registry) Add(conn net.Conn, writeTimeout time.Duration) *Peer {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p := &Peer{id: r.nextID, conn: conn, writeTimeout: writeTimeout}
	r.peers = append(r.peers, p)
	return p
}

// Remove unregisters the peer with id. It reports whether it was present.
func (r *Registry) Remove(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.peers {
		if p.id == id {
			r.peers = append(r.peers[:i], r.peers[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns the registered peers in registration order.
func (r *Registry) Snapshot() []*Peer {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Peer, len(r.peers))
	copy(out, r.peers)
	return out
}

// Len returns the number of registered peers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.peers)
}

// CloseAll closes every registered connection. Peers stay registered until
// their read loops observe the close.
func (r *Registry) CloseAll() {
	for _, p := range r.Snapshot() {
		_ = p.Close()
	}
}
