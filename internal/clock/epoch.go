// Package clock provides time helpers shared by the node loops.
package clock

import (
	"time"

	"github.com/goodnatureofminers/powledger/pkg/safe"
)

// EpochSeconds returns t as whole seconds since the Unix epoch. Times before
// the epoch are rejected.
func EpochSeconds(t time.Time) (uint64, error) {
	return safe.Uint64(t.Unix())
}
