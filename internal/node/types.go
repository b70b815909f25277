package node

import (
	"time"

	"github.com/goodnatureofminers/powledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Admitter interface {
		ValidateAndAppend(candidate model.Block) error
	}
	Metrics interface {
		SetPeers(n int)
		ObserveInbound(outcome string)
		ObserveBroadcast(peers, failures int, started time.Time)
	}
)
