// Package miner assembles candidate blocks and searches for proof-of-work.
package miner

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/goodnatureofminers/powledger/internal/clock"
	"github.com/goodnatureofminers/powledger/internal/model"
	"github.com/goodnatureofminers/powledger/internal/pow"
	"github.com/goodnatureofminers/powledger/internal/validator"
	"github.com/goodnatureofminers/powledger/pkg/safe"
	"go.uber.org/zap"
)

// Config tunes the mining loop. Zero values fall back to defaults.
type Config struct {
	Interval   time.Duration
	YieldEvery uint64
}

// Miner repeatedly builds random blocks on top of the chain tail and submits
// every nonce attempt to the admission gate.
type Miner struct {
	logger     *zap.Logger
	tail       TailReader
	admitter   Admitter
	metrics    Metrics
	blockReady chan<- model.Block
	hash       pow.HashFunc
	rng        *rand.Rand
	now        func() time.Time
	sleep      func(context.Context, time.Duration) error
	interval   time.Duration
	yieldEvery uint64
}

// New builds a Miner. Admitted blocks are pushed to blockReady.
func New(
	tail TailReader,
	admitter Admitter,
	metrics Metrics,
	blockReady chan<- model.Block,
	logger *zap.Logger,
	cfg Config,
) (*Miner, error) {
	if tail == nil || admitter == nil {
		return nil, errors.New("miner requires a chain and an admitter")
	}
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}
	if blockReady == nil {
		return nil, errors.New("block-ready channel is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.YieldEvery == 0 {
		cfg.YieldEvery = defaultYieldEvery
	}

	return &Miner{
		logger:     logger,
		tail:       tail,
		admitter:   admitter,
		metrics:    metrics,
		blockReady: blockReady,
		hash:       pow.Hash,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:        time.Now,
		sleep:      clock.SleepWithContext,
		interval:   cfg.Interval,
		yieldEvery: cfg.YieldEvery,
	}, nil
}

// Run mines blocks until ctx is canceled.
func (m *Miner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.logger.Warn("mining iteration failed, backing off", zap.Error(err), zap.Duration("sleep", m.interval))
			if sleepErr := m.sleep(ctx, m.interval); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (m *Miner) run(ctx context.Context) error {
	block, err := m.mine(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("block admitted",
		zap.Uint32("index", block.Index),
		zap.String("hash", block.Hash),
		zap.Uint64("nonce", block.Nonce),
		zap.Int("transactions", len(block.Transactions)),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case m.blockReady <- block:
	}

	return m.sleep(ctx, m.interval)
}

// mine searches nonces from zero until the admitter accepts the candidate.
// A candidate built against an outdated tail is rebuilt with nonce zero.
func (m *Miner) mine(ctx context.Context) (model.Block, error) {
	started := time.Now()
	txs := randomTransactions(m.rng)

	candidate, err := m.candidate(txs)
	if err != nil {
		return model.Block{}, err
	}

	var attempts uint64
	for {
		attempts++
		err := m.admitter.ValidateAndAppend(candidate)
		switch {
		case err == nil:
			m.metrics.ObserveBlock(attempts, started)
			return candidate, nil
		case validator.IsStale(err):
			m.metrics.ObserveStale()
			m.logger.Debug("candidate went stale, rebuilding", zap.Uint32("index", candidate.Index), zap.Error(err))
			if candidate, err = m.candidate(txs); err != nil {
				return model.Block{}, err
			}
		case errors.Is(err, validator.ErrInsufficientWork), errors.Is(err, validator.ErrHashMismatch):
			candidate.Nonce++
			candidate.Hash = m.hash(candidate)
		default:
			return model.Block{}, fmt.Errorf("submit candidate %d: %w", candidate.Index, err)
		}

		if attempts%m.yieldEvery == 0 {
			if err := ctx.Err(); err != nil {
				return model.Block{}, err
			}
			runtime.Gosched()
		}
	}
}

func (m *Miner) candidate(txs []model.Transaction) (model.Block, error) {
	last, length := m.tail.Tail()
	index, err := safe.Uint32(length)
	if err != nil {
		return model.Block{}, fmt.Errorf("next block index: %w", err)
	}
	ts, err := clock.EpochSeconds(m.now())
	if err != nil {
		return model.Block{}, fmt.Errorf("block timestamp: %w", err)
	}

	b := model.Block{
		Index:        index,
		Timestamp:    ts,
		PreviousHash: last.Hash,
		Transactions: txs,
		Nonce:        0,
	}
	return pow.Seal(b, m.hash), nil
}
