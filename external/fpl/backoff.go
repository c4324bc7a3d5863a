package fpl

import (
	"math/rand/v2"
	"time"
)

const (
	backoffBase   = 50 * time.Millisecond
	backoffJitter = 100 * time.Millisecond
)

// JitterSource is satisfied by *rand.Rand from math/rand/v2.
type JitterSource interface {
	Int64N(n int64) int64
}

type globalJitter struct{}

func (globalJitter) Int64N(n int64) int64 { return rand.Int64N(n) }

// BackoffDelay is the pause before retry number attempt (1-based):
// 50ms plus a uniform jitter in [0, 100ms). No delay precedes the first try.
func BackoffDelay(attempt int, src JitterSource) time.Duration {
	if attempt < 1 {
		return 0
	}
	if src == nil {
		src = globalJitter{}
	}
	return backoffBase + time.Duration(src.Int64N(int64(backoffJitter)))
}
