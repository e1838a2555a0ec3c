package sim

// SetOutcome is the result of a set. TiebreakScore is non-nil only when the
// set was decided by a tiebreak.
type SetOutcome struct {
	Winner        Player
	P1Games       int
	P2Games       int
	Tiebreak      bool
	TiebreakScore *TiebreakOutcome
}

// Set simulates one set. The server alternates every game starting from
// firstServer. A set ends when a player has at least six games and a
// two-game lead; at tiebreakAt games all, TiebreakNormal and TiebreakSuper
// play a tiebreak (7 and 10 points respectively) whose winner is credited
// one further game. Under TiebreakNone play continues past the trigger.
//
// The tiebreak trigger is an equality check, so an advantage set that moves
// beyond tiebreakAt-all can only end on the two-game lead: 8-6 finishes it,
// 7-6 does not. Downstream score audits rely on this exact behaviour.
func (s *Simulator) Set(p1, p2 PlayerStats, firstServer Player, tiebreakAt int, policy TiebreakPolicy) SetOutcome {
	var p1Games, p2Games int
	server := firstServer

	for {
		var gameWinner Player
		if server == P1 {
			if s.Game(p1, &p2).ServerWon {
				gameWinner = P1
			} else {
				gameWinner = P2
			}
		} else {
			if s.Game(p2, &p1).ServerWon {
				gameWinner = P2
			} else {
				gameWinner = P1
			}
		}

		if gameWinner == P1 {
			p1Games++
		} else {
			p2Games++
		}

		if p1Games >= 6 && p1Games-p2Games >= 2 {
			return SetOutcome{Winner: P1, P1Games: p1Games, P2Games: p2Games}
		}
		if p2Games >= 6 && p2Games-p1Games >= 2 {
			return SetOutcome{Winner: P2, P1Games: p1Games, P2Games: p2Games}
		}

		if p1Games == tiebreakAt && p2Games == tiebreakAt && policy != TiebreakNone {
			tb := s.Tiebreak(p1, p2, policy.TargetPoints())
			if tb.Winner == P1 {
				p1Games++
			} else {
				p2Games++
			}
			return SetOutcome{
				Winner:        tb.Winner,
				P1Games:       p1Games,
				P2Games:       p2Games,
				Tiebreak:      true,
				TiebreakScore: &tb,
			}
		}

		server = server.Opponent()
	}
}
