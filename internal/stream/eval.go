package stream

import (
	"github.com/binbinmeng/MatX/internal/expr"
	"github.com/binbinmeng/MatX/internal/parallel"
)

// Evaluate submits e for evaluation at every coordinate of its shape.
func (s *Stream) Evaluate(e expr.Emitter) error {
	cfg := s.cfg.Parallel
	return s.Submit(func() error {
		return Run(e, cfg)
	})
}

// Run evaluates e at every coordinate on the calling goroutine, fanning the
// linear index space out with cfg. A rank-0 or scalar emitter runs once.
func Run(e expr.Emitter, cfg parallel.Config) error {
	rank := max(e.Rank(), 0)
	var size [expr.MaxRank]int
	total := 1
	for d := 0; d < rank; d++ {
		size[d] = e.Size(d)
		total *= size[d]
	}

	return parallel.ForRange(total, func(start, end int) {
		var idx expr.Index
		rem := start
		for d := rank - 1; d >= 0; d-- {
			idx[d] = rem % size[d]
			rem /= size[d]
		}
		for i := start; i < end; i++ {
			e.Emit(idx)
			for d := rank - 1; d >= 0; d-- {
				idx[d]++
				if idx[d] < size[d] {
					break
				}
				idx[d] = 0
			}
		}
	}, cfg)
}
