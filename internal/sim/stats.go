package sim

import "fmt"

// PlayerStats holds a player's service and return rates. Serve rates are
// conditioned on a service point, return rates on a return point; all are
// probabilities in [0,1]. Values are treated as read-only once a simulation
// starts.
type PlayerStats struct {
	FirstInPct   float64 // first serves landed / service points
	FirstWonPct  float64 // points won when the first serve lands
	SecondWonPct float64 // points won on second serve
	AcePct       float64 // aces / service points
	DFPct        float64 // double faults / service points

	// Return effectiveness, consumed only by the opponent adjustment.
	// Nil means unknown and silently disables adjustment for that serve
	// class.
	ReturnVsFirst  *float64
	ReturnVsSecond *float64
}

// Validate rejects statistics that would push the point model's conditional
// probabilities outside [0,1] or divide by zero. Callers run it once before
// a simulation; the simulators themselves assume valid input.
func (s PlayerStats) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"first_in_pct", s.FirstInPct},
		{"first_won_pct", s.FirstWonPct},
		{"second_won_pct", s.SecondWonPct},
		{"ace_pct", s.AcePct},
		{"df_pct", s.DFPct},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", r.name, r.value)
		}
	}

	optional := []struct {
		name  string
		value *float64
	}{
		{"return_vs_first", s.ReturnVsFirst},
		{"return_vs_second", s.ReturnVsSecond},
	}
	for _, r := range optional {
		if r.value != nil && (*r.value < 0 || *r.value > 1) {
			return fmt.Errorf("%s must be in [0,1], got %v", r.name, *r.value)
		}
	}

	// The conditional ace and double-fault rates divide by FirstInPct and
	// 1-FirstInPct respectively, so the boundary values are rejected here
	// rather than checked per point.
	if s.FirstInPct <= 0 || s.FirstInPct >= 1 {
		return fmt.Errorf("first_in_pct must be strictly between 0 and 1, got %v", s.FirstInPct)
	}
	if s.AcePct > s.FirstInPct {
		return fmt.Errorf("ace_pct %v exceeds first_in_pct %v", s.AcePct, s.FirstInPct)
	}
	if s.DFPct > 1-s.FirstInPct {
		return fmt.Errorf("df_pct %v exceeds missed first-serve share %v", s.DFPct, 1-s.FirstInPct)
	}
	return nil
}
