// Package pow provides block hashing and the proof-of-work predicate.
package pow

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/powledger/internal/model"
)

// RequiredPrefix is the fixed prefix an admitted block hash must start with.
const RequiredPrefix = "00"

// HashSize is the length of a hex encoded block hash.
const HashSize = chainhash.HashSize * 2

// HashFunc computes the digest of a block's canonical fields.
type HashFunc func(b model.Block) string

// Hash returns the lowercase hex SHA-256 of index, timestamp, transactions,
// previous hash and nonce concatenated in that order.
func Hash(b model.Block) string {
	return hex.EncodeToString(chainhash.HashB(preimage(b)))
}

func preimage(b model.Block) []byte {
	buf := make([]byte, 0, 64+len(b.PreviousHash)+len(b.Transactions)*24)
	buf = strconv.AppendUint(buf, uint64(b.Index), 10)
	buf = strconv.AppendUint(buf, b.Timestamp, 10)
	for _, tx := range b.Transactions {
		buf = append(buf, tx.Sender...)
		buf = append(buf, tx.Receiver...)
		buf = strconv.AppendFloat(buf, float64(tx.Amount), 'f', -1, 32)
	}
	buf = append(buf, b.PreviousHash...)
	buf = strconv.AppendUint(buf, b.Nonce, 10)
	return buf
}

// MeetsTarget reports whether hash satisfies the proof-of-work predicate.
func MeetsTarget(hash string) bool {
	return strings.HasPrefix(hash, RequiredPrefix)
}

// Seal returns b with its Hash field computed by hash.
func Seal(b model.Block, hash HashFunc) model.Block {
	b.Hash = hash(b)
	return b
}
