// Package chain holds the append-only block sequence and its shared handle.
package chain

import "github.com/goodnatureofminers/powledger/internal/model"

// Chain is an ordered, append-only sequence of blocks. It is not safe for
// concurrent use; share it through a Ledger.
type Chain struct {
	blocks []model.Block
}

// Append pushes b to the end without any validation.
func (c *Chain) Append(b model.Block) {
	c.blocks = append(c.blocks, b.Clone())
}

// Last returns the most recently appended block.
func (c *Chain) Last() (model.Block, bool) {
	if len(c.blocks) == 0 {
		return model.Block{}, false
	}
	return c.blocks[len(c.blocks)-1].Clone(), true
}

// Len returns the number of blocks including genesis.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// At returns the block at position i.
func (c *Chain) At(i int) (model.Block, bool) {
	if i < 0 || i >= len(c.blocks) {
		return model.Block{}, false
	}
	return c.blocks[i].Clone(), true
}
