package sim

// PointCategory classifies how a point ended.
type PointCategory int

const (
	Rally PointCategory = iota
	Ace
	DoubleFault
)

func (c PointCategory) String() string {
	switch c {
	case Ace:
		return "ace"
	case DoubleFault:
		return "double_fault"
	default:
		return "rally"
	}
}

// Serve says which serve the point was played on.
type Serve int

const (
	FirstServe Serve = iota
	SecondServe
)

func (s Serve) String() string {
	if s == SecondServe {
		return "second"
	}
	return "first"
}

// PointOutcome is the result of a single service point.
type PointOutcome struct {
	ServerWon bool
	Category  PointCategory
	Serve     Serve
}

// Point simulates one service point. The returner may be nil, in which case
// no opponent adjustment applies. Stats must have passed Validate; in
// particular FirstInPct is assumed strictly between 0 and 1.
func (s *Simulator) Point(server PlayerStats, returner *PlayerStats) PointOutcome {
	if s.rng.Float64() < server.FirstInPct {
		// Ace rate conditional on the first serve landing.
		if s.rng.Float64() < server.AcePct/server.FirstInPct {
			return PointOutcome{ServerWon: true, Category: Ace, Serve: FirstServe}
		}

		winProb := server.FirstWonPct
		if s.cfg.UseAdjustment && returner != nil && returner.ReturnVsFirst != nil {
			winProb = clamp(winProb+(s.cfg.AvgReturnVsFirst-*returner.ReturnVsFirst), 0.30, 0.95)
		}
		return PointOutcome{ServerWon: s.rng.Float64() < winProb, Category: Rally, Serve: FirstServe}
	}

	// Double-fault rate conditional on the first serve missing.
	if s.rng.Float64() < server.DFPct/(1-server.FirstInPct) {
		return PointOutcome{ServerWon: false, Category: DoubleFault, Serve: SecondServe}
	}

	winProb := server.SecondWonPct
	if s.cfg.UseAdjustment && returner != nil && returner.ReturnVsSecond != nil {
		winProb = clamp(winProb+(s.cfg.AvgReturnVsSecond-*returner.ReturnVsSecond), 0.20, 0.85)
	}
	return PointOutcome{ServerWon: s.rng.Float64() < winProb, Category: Rally, Serve: SecondServe}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
