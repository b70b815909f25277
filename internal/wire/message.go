package wire

import "github.com/goodnatureofminers/powledger/internal/model"

// TransactionMessage is the JSON form of a transaction.
type TransactionMessage struct {
	Sender   string  `json:"sender"`
	Receiver string  `json:"receiver"`
	Amount   float32 `json:"amount"`
}

// Message is the JSON form of a block.
type Message struct {
	Index        uint32               `json:"index"`
	Timestamp    uint64               `json:"timestamp"`
	PreviousHash string               `json:"previous_hash"`
	Hash         string               `json:"hash"`
	Transactions []TransactionMessage `json:"transactions"`
	Nonce        uint64               `json:"nonce"`
}

// ToMessage converts a block to its JSON form.
func ToMessage(b model.Block) Message {
	txs := make([]TransactionMessage, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		txs = append(txs, TransactionMessage(tx))
	}
	return Message{
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		PreviousHash: b.PreviousHash,
		Hash:         b.Hash,
		Transactions: txs,
		Nonce:        b.Nonce,
	}
}

// FromMessage converts a JSON message back to a block.
func FromMessage(d Message) model.Block {
	txs := make([]model.Transaction, 0, len(d.Transactions))
	for _, tx := range d.Transactions {
		txs = append(txs, model.Transaction(tx))
	}
	return model.Block{
		Index:        d.Index,
		Timestamp:    d.Timestamp,
		PreviousHash: d.PreviousHash,
		Hash:         d.Hash,
		Transactions: txs,
		Nonce:        d.Nonce,
	}
}
