// Package parallel runs independent jobs on a bounded set of goroutines.
//
// Jobs must not share graph nodes: each one builds and owns its networks.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Workers int // Maximum concurrent jobs; <= 1 runs sequentially
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// Map calls f(ctx, i) for i in [0, n) and returns the results in index order.
//
// The first error cancels the context passed to the remaining jobs; jobs that
// have not started are skipped and Map returns that first error.
func Map[T any](ctx context.Context, n int, cfg Config, f func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	if n == 0 {
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	workers := min(max(cfg.Workers, 1), n)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				res, err := f(ctx, i)
				if err != nil {
					fail(err)
					continue
				}
				results[i] = res
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return results, firstErr
	}
	return results, ctx.Err()
}
