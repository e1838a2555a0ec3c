package sim

import (
	"strings"
	"testing"

	"github.com/lox/tennissim/internal/randutil"
)

func TestMatchDeterministic(t *testing.T) {
	// IntN(2)=0 gives player 1 the opening serve; all-zero draws make
	// every set a 7-6 tiebreak win for player 1.
	s := New(&scriptRand{draws: []float64{0.0}, ints: []int{0}}, DefaultConfig())
	match := s.Match(baselineStats, grinderStats, 3, TiebreakNormal)

	if match.Winner != P1 {
		t.Errorf("expected player 1 to win, got %v", match.Winner)
	}
	if match.P1Sets != 2 || match.P2Sets != 0 {
		t.Errorf("expected 2-0 in sets, got %d-%d", match.P1Sets, match.P2Sets)
	}
	if match.Score != "7-6 7-6" {
		t.Errorf("expected score string %q, got %q", "7-6 7-6", match.Score)
	}
}

func TestMatchSetsToWin(t *testing.T) {
	s := New(randutil.New(41), DefaultConfig())

	cases := []struct {
		bestOf    int
		setsToWin int
	}{
		{3, 2},
		{5, 3},
	}

	for _, tc := range cases {
		for i := 0; i < 300; i++ {
			match := s.Match(baselineStats, grinderStats, tc.bestOf, TiebreakNormal)

			winner, loser := match.P1Sets, match.P2Sets
			if match.Winner == P2 {
				winner, loser = loser, winner
			}

			if winner != tc.setsToWin {
				t.Fatalf("best of %d: winner took %d sets, expected %d", tc.bestOf, winner, tc.setsToWin)
			}
			if loser >= tc.setsToWin {
				t.Fatalf("best of %d: loser took %d sets", tc.bestOf, loser)
			}
			if len(match.SetScores) != match.P1Sets+match.P2Sets {
				t.Fatalf("set scores length %d disagrees with %d-%d", len(match.SetScores), match.P1Sets, match.P2Sets)
			}
		}
	}
}

func TestMatchScoreString(t *testing.T) {
	s := New(randutil.New(43), DefaultConfig())

	for i := 0; i < 100; i++ {
		match := s.Match(baselineStats, grinderStats, 3, TiebreakNormal)

		parts := make([]string, len(match.SetScores))
		for j, sc := range match.SetScores {
			parts[j] = sc.String()
		}
		if want := strings.Join(parts, " "); match.Score != want {
			t.Fatalf("score string %q does not match set scores %q", match.Score, want)
		}
	}
}

func TestMatchFinalSetPolicyOnlyAppliesToDecider(t *testing.T) {
	// Under an advantage-set decider, every non-deciding set still ends
	// either 7-6 via tiebreak or with a two-game lead, and a deciding set
	// can never end 7-6.
	s := New(randutil.New(47), DefaultConfig())

	for i := 0; i < 500; i++ {
		match := s.Match(baselineStats, grinderStats, 3, TiebreakNone)

		last := match.SetScores[len(match.SetScores)-1]
		decider := len(match.SetScores) == 3
		if decider {
			hi, lo := last.P1, last.P2
			if lo > hi {
				hi, lo = lo, hi
			}
			if hi == 7 && lo == 6 {
				t.Fatalf("advantage-set decider ended 7-6: %q", match.Score)
			}
			if hi < 6 || hi-lo < 2 {
				t.Fatalf("advantage-set decider ended early: %q", match.Score)
			}
		}
	}
}
