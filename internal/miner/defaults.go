package miner

import "time"

const (
	defaultInterval   = 1 * time.Second
	defaultYieldEvery = 1024

	minBatchSize = 1
	maxBatchSize = 10 // exclusive

	maxIdentifier = 1000 // exclusive
	maxAmount     = 1000 // exclusive
)
