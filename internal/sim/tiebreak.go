package sim

// TiebreakOutcome is the result of a tiebreak, scored in player-1/player-2
// space.
type TiebreakOutcome struct {
	Winner   Player
	P1Points int
	P2Points int
}

// tiebreakServer returns who serves point i. Player 1 opens on point 0,
// after which the serve changes hands every two points.
func tiebreakServer(i int) Player {
	if i == 0 {
		return P1
	}
	if ((i-1)/2)%2 == 0 {
		return P1
	}
	return P2
}

// Tiebreak simulates a tiebreak to target points, win by two.
func (s *Simulator) Tiebreak(p1, p2 PlayerStats, target int) TiebreakOutcome {
	var p1Points, p2Points, pointNum int
	for {
		var pointWinner Player
		if tiebreakServer(pointNum) == P1 {
			if s.Point(p1, &p2).ServerWon {
				pointWinner = P1
			} else {
				pointWinner = P2
			}
		} else {
			if s.Point(p2, &p1).ServerWon {
				pointWinner = P2
			} else {
				pointWinner = P1
			}
		}

		if pointWinner == P1 {
			p1Points++
		} else {
			p2Points++
		}
		pointNum++

		if p1Points >= target && p1Points-p2Points >= 2 {
			return TiebreakOutcome{Winner: P1, P1Points: p1Points, P2Points: p2Points}
		}
		if p2Points >= target && p2Points-p1Points >= 2 {
			return TiebreakOutcome{Winner: P2, P1Points: p1Points, P2Points: p2Points}
		}
	}
}
