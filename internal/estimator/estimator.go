// Package estimator turns repeated match simulations into a win-probability
// estimate with a Wilson score confidence interval.
package estimator

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/tennissim/internal/randutil"
	"github.com/lox/tennissim/internal/sim"
)

// Config controls an estimation run.
type Config struct {
	// Trials is the number of independent simulated matches. Must be at
	// least 1; the win proportion divides by it.
	Trials int

	// BestOf is the match length, typically 3 or 5. Must be a positive
	// odd number.
	BestOf int

	// FinalSetTiebreak applies only to the deciding set; earlier sets
	// always play a normal tiebreak.
	FinalSetTiebreak sim.TiebreakPolicy

	// Sim carries the opponent-adjustment settings threaded into every
	// simulated point.
	Sim sim.Config

	// Seed, when non-nil, re-seeds the draw stream before the trial loop,
	// making sequential runs bit-for-bit reproducible for a fixed trial
	// count.
	Seed *int64

	// Workers above 1 splits trials across goroutines with independent
	// draw streams. The summed counts are order-independent, but results
	// are only reproducible across runs with the same worker count; leave
	// at 0 or 1 for the strictly deterministic path.
	Workers int

	// Logger receives progress output. Nil discards it.
	Logger *log.Logger
}

func (c Config) validate(p1, p2 sim.PlayerStats) error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.BestOf < 1 || c.BestOf%2 == 0 {
		return fmt.Errorf("best-of must be a positive odd number, got %d", c.BestOf)
	}
	if err := c.FinalSetTiebreak.Validate(); err != nil {
		return err
	}
	if err := p1.Validate(); err != nil {
		return fmt.Errorf("player 1: %w", err)
	}
	if err := p2.Validate(); err != nil {
		return fmt.Errorf("player 2: %w", err)
	}
	return nil
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

// Result is the aggregate of an estimation run. Lower and Upper bound the
// 95% Wilson score interval around P1WinProb.
type Result struct {
	P1WinProb float64
	P2WinProb float64
	Lower     float64
	Upper     float64
	Trials    int
}

// Estimate runs cfg.Trials independent match simulations between p1 and p2
// and returns the player-1 win probability with its confidence interval.
// Player statistics are validated up front; simulation never starts on bad
// input.
func Estimate(p1, p2 sim.PlayerStats, cfg Config) (Result, error) {
	if err := cfg.validate(p1, p2); err != nil {
		return Result{}, err
	}

	rng := newRNG(cfg.Seed)

	var wins int
	if cfg.Workers > 1 {
		var err error
		wins, err = runParallel(p1, p2, cfg, rng)
		if err != nil {
			return Result{}, err
		}
	} else {
		wins = runTrials(sim.New(rng, cfg.Sim), p1, p2, cfg.Trials, cfg.BestOf, cfg.FinalSetTiebreak)
	}

	p := float64(wins) / float64(cfg.Trials)
	lower, upper := wilson(p, cfg.Trials)

	cfg.logger().Debug("estimation complete",
		"trials", cfg.Trials,
		"p1_wins", wins,
		"p1_win_prob", p,
		"ci_lower", lower,
		"ci_upper", upper,
	)

	return Result{
		P1WinProb: p,
		P2WinProb: 1 - p,
		Lower:     lower,
		Upper:     upper,
		Trials:    cfg.Trials,
	}, nil
}

func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return randutil.New(*seed)
	}
	return randutil.NewRandom()
}

func runTrials(s *sim.Simulator, p1, p2 sim.PlayerStats, trials, bestOf int, policy sim.TiebreakPolicy) int {
	wins := 0
	for i := 0; i < trials; i++ {
		if s.Match(p1, p2, bestOf, policy).Winner == sim.P1 {
			wins++
		}
	}
	return wins
}
