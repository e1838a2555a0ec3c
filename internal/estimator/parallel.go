package estimator

import (
	"context"
	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lox/tennissim/internal/randutil"
	"github.com/lox/tennissim/internal/sim"
)

// runParallel splits the trial count across cfg.Workers goroutines, each
// with its own draw stream seeded from the parent source. Win counts sum
// commutatively, so the estimate does not depend on scheduling order.
func runParallel(p1, p2 sim.PlayerStats, cfg Config, parent *rand.Rand) (int, error) {
	workers := cfg.Workers
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	perWorker := cfg.Trials / workers
	remainder := cfg.Trials % workers

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan int, workers)

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}

		// Seeds are drawn from the parent stream so a seeded run with a
		// fixed worker count stays reproducible.
		workerSeed := parent.Int64()

		g.Go(func() error {
			s := sim.New(randutil.New(workerSeed), cfg.Sim)
			wins := runTrials(s, p1, p2, trials, cfg.BestOf, cfg.FinalSetTiebreak)

			select {
			case results <- wins:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	total := 0
	for wins := range results {
		total += wins
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
