package matching

import "sync/atomic"

// idGenerator hands out strictly increasing positive int64 ids, starting
// at 1. It increments before returning, so the zero value is never
// handed out and ids stay contiguous across concurrent callers.
type idGenerator struct {
	counter atomic.Int64
}

func (g *idGenerator) next() int64 {
	return g.counter.Add(1)
}
