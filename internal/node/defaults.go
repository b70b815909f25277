package node

import "time"

const (
	defaultInboundRPS   = 100
	defaultWriteTimeout = 10 * time.Second
)
