// Package validator implements the single admission gate for chain growth.
package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain"
	"github.com/goodnatureofminers/powledger/internal/model"
	"github.com/goodnatureofminers/powledger/internal/pow"
)

// Validator admits blocks into a Ledger. Every append must pass through it.
type Validator struct {
	ledger  *chain.Ledger
	metrics Metrics
	rehash  pow.HashFunc
}

// Option configures a Validator.
type Option func(v *Validator)

// WithHashVerification makes the validator recompute the candidate digest
// with hash and reject blocks whose Hash field does not match.
func WithHashVerification(hash pow.HashFunc) Option {
	return func(v *Validator) {
		v.rehash = hash
	}
}

// New builds a Validator guarding ledger.
func New(ledger *chain.Ledger, metrics Metrics, opts ...Option) (*Validator, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("validator metrics is required")
	}
	v := &Validator{ledger: ledger, metrics: metrics}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// ValidateAndAppend checks candidate against the current tail and appends it.
// The check and the append happen under one lock acquisition, so of several
// candidates for the same index at most one succeeds. On failure the chain is
// left untouched.
func (v *Validator) ValidateAndAppend(candidate model.Block) (err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveAdmission(Outcome(err), started)
	}()

	return v.ledger.Update(func(c *chain.Chain) error {
		last, ok := c.Last()
		if !ok {
			return errors.New("chain has no genesis block")
		}
		if candidate.Index != last.Index+1 {
			return fmt.Errorf("%w: got %d, want %d", ErrIndexMismatch, candidate.Index, last.Index+1)
		}
		if candidate.PreviousHash != last.Hash {
			return fmt.Errorf("%w: block %d points at %q, tail is %q",
				ErrLinkageMismatch, candidate.Index, candidate.PreviousHash, last.Hash)
		}
		if !pow.MeetsTarget(candidate.Hash) {
			return fmt.Errorf("%w: hash %q lacks prefix %q", ErrInsufficientWork, candidate.Hash, pow.RequiredPrefix)
		}
		if v.rehash != nil {
			if want := v.rehash(candidate); want != candidate.Hash {
				return fmt.Errorf("%w: got %q, computed %q", ErrHashMismatch, candidate.Hash, want)
			}
		}
		c.Append(candidate)
		return nil
	})
}
