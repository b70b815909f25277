package miner

import (
	"time"

	"github.com/goodnatureofminers/powledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Admitter interface {
		ValidateAndAppend(candidate model.Block) error
	}
	TailReader interface {
		Tail() (model.Block, int)
	}
	Metrics interface {
		ObserveBlock(attempts uint64, started time.Time)
		ObserveStale()
	}
)
