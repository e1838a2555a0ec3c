// Package sim simulates tennis matches point by point from per-player
// serve and return statistics. The hierarchy runs point → game → tiebreak →
// set → match, every probabilistic decision consuming exactly one uniform
// draw from an injected source, so two simulators built from identically
// seeded sources replay the same match.
package sim

import "fmt"

// Rand is the stream of uniform draws behind every probabilistic decision.
// *rand.Rand from math/rand/v2 satisfies it; tests substitute scripted
// sources to force specific branches.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

// Player identifies one side of the match.
type Player int

const (
	P1 Player = 1
	P2 Player = 2
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == P1 {
		return P2
	}
	return P1
}

func (p Player) String() string {
	return fmt.Sprintf("player %d", int(p))
}

// TiebreakPolicy selects what happens when a set reaches the tiebreak
// trigger score.
type TiebreakPolicy string

const (
	// TiebreakNormal plays a 7-point tiebreak.
	TiebreakNormal TiebreakPolicy = "normal"
	// TiebreakSuper plays a 10-point tiebreak.
	TiebreakSuper TiebreakPolicy = "super"
	// TiebreakNone keeps playing games until one side leads by two
	// (advantage set).
	TiebreakNone TiebreakPolicy = "none"
)

// TargetPoints returns the tiebreak length for the policy, or 0 for
// TiebreakNone.
func (p TiebreakPolicy) TargetPoints() int {
	switch p {
	case TiebreakSuper:
		return 10
	case TiebreakNone:
		return 0
	default:
		return 7
	}
}

// Validate rejects policies other than the three known values.
func (p TiebreakPolicy) Validate() error {
	switch p {
	case TiebreakNormal, TiebreakSuper, TiebreakNone:
		return nil
	}
	return fmt.Errorf("unknown tiebreak policy %q", p)
}

// Simulator drives the match hierarchy from a single draw stream.
type Simulator struct {
	rng Rand
	cfg Config
}

// New returns a Simulator drawing from rng under the given adjustment
// configuration.
func New(rng Rand, cfg Config) *Simulator {
	return &Simulator{rng: rng, cfg: cfg}
}
