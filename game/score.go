package game

import "math/rand"

// Score tracks points and serve rotation for one match. Serve rules follow
// official table tennis play: the serve changes hands every two points, or
// every point once both players have reached deuce. After a point the next
// ball is held back for ServeDelay seconds so the new score can be shown
// before play resumes.
type Score struct {
	P1         int
	P2         int
	ServerIsP1 bool

	serveCount     int
	serveRemaining float64
	awaitingServe  bool

	rng *rand.Rand
}

// NewScore picks the opening server with a coin flip. rng may be nil, in
// which case the global source is used.
func NewScore(rng *rand.Rand) *Score {
	s := &Score{rng: rng}
	s.ServerIsP1 = s.coinFlip()
	return s
}

// AwardPoint gives side a point, rotates the serve when the rotation
// threshold is met and arms the serve-delay countdown.
func (s *Score) AwardPoint(side Side) {
	if side == Left {
		s.P1++
	} else {
		s.P2++
	}

	s.serveCount++
	threshold := 2
	if s.P1 >= DeuceScore && s.P2 >= DeuceScore {
		threshold = 1
	}
	if s.serveCount >= threshold {
		s.ServerIsP1 = !s.ServerIsP1
		s.serveCount = 0
	}

	s.awaitingServe = true
	s.serveRemaining = ServeDelay
}

// AwaitingServe reports whether a serve is pending. No ball exists while it
// is true.
func (s *Score) AwaitingServe() bool {
	return s.awaitingServe
}

// Server returns the side serving next.
func (s *Score) Server() Side {
	if s.ServerIsP1 {
		return Left
	}
	return Right
}

// TickServeDelay advances the between-points countdown by dt. On the tick
// the delay elapses it reports true with the serving side, and the pending
// serve is cleared.
func (s *Score) TickServeDelay(dt float64) (Side, bool) {
	if !s.awaitingServe {
		return 0, false
	}
	s.serveRemaining -= dt
	if s.serveRemaining > 0 {
		return 0, false
	}
	s.awaitingServe = false
	return s.Server(), true
}

// MatchWon reports whether either player has reached 11 points with a two
// point lead. Both players can never satisfy this at once.
func (s *Score) MatchWon() bool {
	if s.P1 >= PointsToWin && s.P1 >= s.P2+WinMargin {
		return true
	}
	if s.P2 >= PointsToWin && s.P2 >= s.P1+WinMargin {
		return true
	}
	return false
}

// Winner returns the leading side.
func (s *Score) Winner() Side {
	if s.P1 > s.P2 {
		return Left
	}
	return Right
}

// Reset returns the match to its opening state with a fresh coin flip for
// the first server.
func (s *Score) Reset() {
	s.P1 = 0
	s.P2 = 0
	s.ServerIsP1 = s.coinFlip()
	s.serveCount = 0
	s.serveRemaining = 0
	s.awaitingServe = false
}

func (s *Score) coinFlip() bool {
	if s.rng != nil {
		return s.rng.Intn(2) == 0
	}
	return rand.Intn(2) == 0
}
