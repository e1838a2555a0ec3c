package sim

import (
	"fmt"
	"strings"
)

// SetScore is a completed set's game score.
type SetScore struct {
	P1 int
	P2 int
}

func (s SetScore) String() string {
	return fmt.Sprintf("%d-%d", s.P1, s.P2)
}

// MatchOutcome is the result of a complete match. Score is the set scores
// joined with spaces, e.g. "6-4 3-6 7-6".
type MatchOutcome struct {
	Winner    Player
	P1Sets    int
	P2Sets    int
	SetScores []SetScore
	Score     string
}

// Match simulates a best-of-N match. The opening server is drawn uniformly;
// afterwards the next set's opening server flips whenever the completed set
// had an odd number of games, which keeps long-run serve parity fair. Only
// the deciding set (both players one set from victory) uses finalSetPolicy;
// every earlier set plays a normal tiebreak at 6-6.
func (s *Simulator) Match(p1, p2 PlayerStats, bestOf int, finalSetPolicy TiebreakPolicy) MatchOutcome {
	setsToWin := (bestOf + 1) / 2

	var p1Sets, p2Sets int
	var setScores []SetScore

	server := Player(s.rng.IntN(2) + 1)

	for p1Sets < setsToWin && p2Sets < setsToWin {
		policy := TiebreakNormal
		if p1Sets == setsToWin-1 && p2Sets == setsToWin-1 {
			policy = finalSetPolicy
		}

		set := s.Set(p1, p2, server, 6, policy)
		setScores = append(setScores, SetScore{P1: set.P1Games, P2: set.P2Games})

		if set.Winner == P1 {
			p1Sets++
		} else {
			p2Sets++
		}

		if (set.P1Games+set.P2Games)%2 == 1 {
			server = server.Opponent()
		}
	}

	winner := P1
	if p2Sets > p1Sets {
		winner = P2
	}

	scores := make([]string, len(setScores))
	for i, sc := range setScores {
		scores[i] = sc.String()
	}

	return MatchOutcome{
		Winner:    winner,
		P1Sets:    p1Sets,
		P2Sets:    p2Sets,
		SetScores: setScores,
		Score:     strings.Join(scores, " "),
	}
}
