// Package model defines domain models for the ledger.
package model

// GenesisPreviousHash is the previous hash recorded by the genesis block.
const GenesisPreviousHash = "0"

// Transaction moves an amount between two identifiers. No balance is tracked.
type Transaction struct {
	Sender   string
	Receiver string
	Amount   float32
}

// Block is one entry in the chain.
type Block struct {
	Index        uint32
	Timestamp    uint64
	PreviousHash string
	Hash         string
	Transactions []Transaction
	Nonce        uint64
}

// Genesis returns the unsealed first block for the given timestamp.
func Genesis(timestamp uint64) Block {
	return Block{
		Index:        0,
		Timestamp:    timestamp,
		PreviousHash: GenesisPreviousHash,
		Transactions: []Transaction{},
		Nonce:        0,
	}
}

// IsGenesis reports whether b sits at position 0.
func (b Block) IsGenesis() bool {
	return b.Index == 0 && b.PreviousHash == GenesisPreviousHash
}

// Clone returns a copy of b that does not share the transaction slice.
func (b Block) Clone() Block {
	txs := make([]Transaction, len(b.Transactions))
	copy(txs, b.Transactions)
	b.Transactions = txs
	return b
}
