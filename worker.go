package datefmt

import (
	"context"

	"github.com/bool64/ctxd"
	"golang.org/x/sync/errgroup"
)

// RunWorkers runs fn in n goroutines, each with its own Cache built from cfg and attached to its context.
//
// First failure cancels context of other workers and is returned.
// Defaults of cfg are shared by all workers and must tolerate concurrent reads.
func RunWorkers(ctx context.Context, n int, cfg Config, fn func(ctx context.Context, worker int, c *Cache) error) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		worker := i

		g.Go(func() error {
			c := New(cfg)

			if err := fn(WithCache(ctx, c), worker, c); err != nil {
				return ctxd.WrapError(ctx, err, "date format worker failed", "worker", worker)
			}

			return nil
		})
	}

	return g.Wait()
}
