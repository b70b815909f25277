package miner

import (
	"math/rand/v2"
	"strconv"

	"github.com/goodnatureofminers/powledger/internal/model"
)

func randomTransactions(rng *rand.Rand) []model.Transaction {
	n := minBatchSize + rng.IntN(maxBatchSize-minBatchSize)
	txs := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, model.Transaction{
			Sender:   strconv.Itoa(1 + rng.IntN(maxIdentifier-1)),
			Receiver: strconv.Itoa(1 + rng.IntN(maxIdentifier-1)),
			Amount:   float32(1 + rng.IntN(maxAmount-1)),
		})
	}
	return txs
}
