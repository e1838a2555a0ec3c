package sim

// scriptRand replays a fixed sequence of draws, cycling when exhausted, so
// tests can force the simulator down a chosen branch at every decision.
type scriptRand struct {
	draws []float64
	ints  []int
	di    int
	ii    int
}

func (r *scriptRand) Float64() float64 {
	v := r.draws[r.di%len(r.draws)]
	r.di++
	return v
}

func (r *scriptRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func constRand(v float64) *scriptRand {
	return &scriptRand{draws: []float64{v}}
}

func ptr(v float64) *float64 { return &v }

// Typical ATP-level matchup used across the package tests.
var (
	baselineStats = PlayerStats{
		FirstInPct:     0.62,
		FirstWonPct:    0.75,
		SecondWonPct:   0.52,
		AcePct:         0.08,
		DFPct:          0.03,
		ReturnVsFirst:  ptr(0.30),
		ReturnVsSecond: ptr(0.50),
	}

	grinderStats = PlayerStats{
		FirstInPct:     0.65,
		FirstWonPct:    0.72,
		SecondWonPct:   0.50,
		AcePct:         0.05,
		DFPct:          0.04,
		ReturnVsFirst:  ptr(0.32),
		ReturnVsSecond: ptr(0.52),
	}
)
