// Package parallel splits index ranges across goroutines for CPU evaluation.
package parallel

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config controls how an index range is split across goroutines.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1024, // Per-element evaluation is cheap; keep goroutines busy.
	}
}

// Sequential returns a configuration that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// chunks returns the chunk length For uses for n items.
func (c Config) chunks(n int) int {
	if !c.Enabled || c.NumWorkers <= 1 || n < 2*c.MinChunkSize {
		return n
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// ForRange calls f once per chunk [start, end) covering [0, n).
// A panic inside f is recovered and returned as an error; the other chunks
// still run to completion.
func ForRange(n int, f func(start, end int), cfg Config) error {
	if n <= 0 {
		return nil
	}
	size := cfg.chunks(n)
	if size >= n {
		return run(f, 0, n)
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		err error
	)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			if cerr := run(f, s, e); cerr != nil {
				mu.Lock()
				err = multierr.Append(err, cerr)
				mu.Unlock()
			}
		}(start, end)
	}
	wg.Wait()
	return err
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) error {
	return ForRange(n, func(s, e int) {
		for i := s; i < e; i++ {
			f(i)
		}
	}, cfg)
}

// ForBatch iterates a batch x items grid, the pattern of batched tile loops.
func ForBatch(batch, items int, f func(b, i int), cfg Config) error {
	if items <= 0 {
		return nil
	}
	return For(batch*items, func(k int) {
		f(k/items, k%items)
	}, cfg)
}

func run(f func(start, end int), s, e int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = errors.Wrapf(rerr, "chunk [%d, %d)", s, e)
				return
			}
			err = errors.Errorf("chunk [%d, %d): panic: %v", s, e, r)
		}
	}()
	f(s, e)
	return nil
}
