package chain

import (
	"sync"

	"github.com/goodnatureofminers/powledger/internal/model"
)

// Ledger is the shared handle to a Chain. Every access goes through its lock.
type Ledger struct {
	mu    sync.Mutex
	chain *Chain
}

// NewLedger creates a Ledger whose chain starts with genesis.
func NewLedger(genesis model.Block) *Ledger {
	c := &Chain{}
	c.Append(genesis)
	return &Ledger{chain: c}
}

// Update runs fn with exclusive access to the chain for its whole duration.
func (l *Ledger) Update(fn func(c *Chain) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.chain)
}

// Tail returns the last block and the chain length in one acquisition.
func (l *Ledger) Tail() (model.Block, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	last, _ := l.chain.Last()
	return last, l.chain.Len()
}

// Last returns the most recently appended block.
func (l *Ledger) Last() (model.Block, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chain.Last()
}

// Len returns the number of blocks including genesis.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chain.Len()
}

// Block returns the block at position i.
func (l *Ledger) Block(i int) (model.Block, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chain.At(i)
}

// Blocks returns a copy of the blocks in [from, from+limit). A limit of zero
// or less returns everything from from onwards.
func (l *Ledger) Blocks(from, limit int) []model.Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.chain.Len()
	if from < 0 {
		from = 0
	}
	if from >= n {
		return []model.Block{}
	}
	to := n
	if limit > 0 && from+limit < n {
		to = from + limit
	}
	out := make([]model.Block, 0, to-from)
	for i := from; i < to; i++ {
		b, _ := l.chain.At(i)
		out = append(out, b)
	}
	return out
}
