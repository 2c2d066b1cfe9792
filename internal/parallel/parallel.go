// Package parallel spreads independent work items over goroutines.
//
// Work items must not share mutable state. In this module each item owns its
// own autodiff graph, which is what makes them independent.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
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
		MinChunkSize: 16, // A pricing tape is a few dozen nodes.
	}
}

// WithWorkers returns cfg with NumWorkers set; n <= 0 keeps the current value.
func (cfg Config) WithWorkers(n int) Config {
	if n > 0 {
		cfg.NumWorkers = n
		cfg.Enabled = n > 1
	}
	return cfg
}

// chunks splits [0, n) into contiguous ranges, or returns nil when the work
// should run sequentially.
func (cfg Config) chunks(n int) [][2]int {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		return nil
	}
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	var out [][2]int
	for start := 0; start < n; start += chunkSize {
		out = append(out, [2]int{start, min(start+chunkSize, n)})
	}
	return out
}

// ForErr executes f(ctx, i) for i in [0, n), spreading contiguous chunks over
// goroutines. It falls back to sequential execution if parallelism is disabled
// or n is too small.
//
// The first error cancels the context passed to the remaining calls and is
// returned once every goroutine has finished. Items not yet started when the
// context is cancelled are skipped.
func ForErr(ctx context.Context, n int, f func(ctx context.Context, i int) error, cfg Config) error {
	chunks := cfg.chunks(n)
	if chunks == nil {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		eg.Go(func() error {
			for i := c[0]; i < c[1]; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := f(ctx, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
