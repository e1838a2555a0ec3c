package sim

// GameOutcome is the result of one service game, scored from the server's
// side.
type GameOutcome struct {
	ServerWon      bool
	ServerPoints   int
	ReturnerPoints int
}

// Game simulates one service game: first to four points, win by two. No
// iteration cap is applied; deuce games run until the two-point margin
// appears, which happens with probability one.
func (s *Simulator) Game(server PlayerStats, returner *PlayerStats) GameOutcome {
	var serverPoints, returnerPoints int
	for {
		if s.Point(server, returner).ServerWon {
			serverPoints++
		} else {
			returnerPoints++
		}

		if serverPoints >= 4 && serverPoints-returnerPoints >= 2 {
			return GameOutcome{ServerWon: true, ServerPoints: serverPoints, ReturnerPoints: returnerPoints}
		}
		if returnerPoints >= 4 && returnerPoints-serverPoints >= 2 {
			return GameOutcome{ServerWon: false, ServerPoints: serverPoints, ReturnerPoints: returnerPoints}
		}
	}
}
