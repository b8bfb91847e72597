package game

// Collision is a collision-start notification from the physics layer naming
// two entities that came into contact since the previous tick. The order of
// the two handles carries no meaning.
type Collision struct {
	A Handle
	B Handle
}

// ResolveScoring maps ball-wall contacts onto points: the left wall scores
// for player two, the right wall for player one, and the scored-on ball is
// despawned. Top and bottom walls are plain boundaries. Notifications that
// do not pair the ball with a wall fall through silently, as do handles
// that went stale across the frame boundary.
func ResolveScoring(a *Arena, s *Score, collisions []Collision) {
	for _, c := range collisions {
		ballH, wall, ok := splitBallWall(a, c)
		if !ok {
			continue
		}
		side, scoring := wall.Role.ScoresFor()
		if !scoring {
			continue
		}
		s.AwardPoint(side)
		a.Despawn(ballH)
	}
}

func splitBallWall(a *Arena, c Collision) (Handle, *Entity, bool) {
	ea, okA := a.Get(c.A)
	eb, okB := a.Get(c.B)
	if !okA || !okB {
		return NilHandle, nil, false
	}
	switch {
	case ea.Kind == KindBall && eb.Kind == KindWall:
		return c.A, eb, true
	case eb.Kind == KindBall && ea.Kind == KindWall:
		return c.B, ea, true
	}
	return NilHandle, nil, false
}
