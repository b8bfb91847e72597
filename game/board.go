package game

import "math"

// Board is the thin physics layer the simulation core sits on. It owns ball
// integration and contact detection and reports each contact as a
// collision-start notification; deciding what a contact means (scoring,
// punch animation) is left to the core. Bounces are super-elastic, matching
// the board's restitution, and the velocity governor is expected to bleed
// the extra energy back off.
type Board struct {
	arena *Arena
	walls map[WallRole]Handle
}

// NewBoard populates the arena with the four walls and both paddles. The
// left paddle is human-driven, the right one predictive.
func NewBoard(arena *Arena) *Board {
	b := &Board{
		arena: arena,
		walls: make(map[WallRole]Handle, 4),
	}
	for _, role := range []WallRole{WallTop, WallBottom, WallLeft, WallRight} {
		b.walls[role] = arena.Spawn(Entity{Kind: KindWall, Role: role})
	}
	arena.Spawn(Entity{
		Kind:  KindPaddle,
		Pos:   Vec2{X: LeftPaddleX},
		Side:  Left,
		Agent: AgentHuman,
	})
	arena.Spawn(Entity{
		Kind:  KindPaddle,
		Pos:   Vec2{X: RightPaddleX},
		Side:  Right,
		Agent: AgentPredictive,
	})
	return b
}

// SpawnBall produces a ball at center moving horizontally away from the
// serving side.
func (b *Board) SpawnBall(server Side) Handle {
	vel := Vec2{X: BallSpeed}
	if server == Right {
		vel.X = -BallSpeed
	}
	return b.arena.Spawn(Entity{Kind: KindBall, Vel: vel})
}

// Step integrates the ball by dt and returns the contacts started this
// tick. Top and bottom walls reflect the ball; paddle hits redirect it at
// an angle set by where on the paddle it landed; the scoring walls only
// report the contact and leave the ball to the resolver.
func (b *Board) Step(dt float64) []Collision {
	ballH, ok := b.arena.Find(KindBall)
	if !ok {
		return nil
	}
	ball, _ := b.arena.Get(ballH)
	ball.Pos = ball.Pos.Add(ball.Vel.Scale(dt))

	var collisions []Collision

	limitY := BoardHeight/2 - BallRadius
	if ball.Pos.Y >= limitY && ball.Vel.Y > 0 {
		ball.Pos.Y = limitY
		ball.Vel.Y = -ball.Vel.Y
		ball.Vel = ball.Vel.Scale(WallRestitution)
		collisions = append(collisions, Collision{A: ballH, B: b.walls[WallTop]})
	} else if ball.Pos.Y <= -limitY && ball.Vel.Y < 0 {
		ball.Pos.Y = -limitY
		ball.Vel.Y = -ball.Vel.Y
		ball.Vel = ball.Vel.Scale(WallRestitution)
		collisions = append(collisions, Collision{A: ballH, B: b.walls[WallBottom]})
	}

	for _, side := range []Side{Left, Right} {
		paddleH, ok := b.arena.FindPaddle(side)
		if !ok {
			continue
		}
		paddle, _ := b.arena.Get(paddleH)
		if b.paddleContact(ball, paddle) {
			bounceOffPaddle(ball, paddle)
			collisions = append(collisions, Collision{A: ballH, B: paddleH})
		}
	}

	limitX := BoardWidth/2 - BallRadius
	if ball.Pos.X <= -limitX && ball.Vel.X < 0 {
		collisions = append(collisions, Collision{A: ballH, B: b.walls[WallLeft]})
	} else if ball.Pos.X >= limitX && ball.Vel.X > 0 {
		collisions = append(collisions, Collision{A: ballH, B: b.walls[WallRight]})
	}

	return collisions
}

func (b *Board) paddleContact(ball, paddle *Entity) bool {
	if math.Abs(ball.Pos.X-paddle.Pos.X) > BallRadius+PaddleHalfWidth {
		return false
	}
	if math.Abs(ball.Pos.Y-paddle.Pos.Y) > BallRadius+PaddleHalfHeight {
		return false
	}
	// Only a ball moving into the paddle face counts; a ball already heading
	// away was handled on an earlier tick.
	if paddle.Side == Left {
		return ball.Vel.X < 0
	}
	return ball.Vel.X > 0
}

// bounceOffPaddle redirects the ball away from the paddle. The exit angle
// scales with how far from the paddle center the ball landed, up to
// MaxBounceAngle at the edge.
func bounceOffPaddle(ball, paddle *Entity) {
	rel := (ball.Pos.Y - paddle.Pos.Y) / (PaddleHalfHeight + BallRadius)
	rel = math.Max(-1, math.Min(1, rel))
	angle := rel * MaxBounceAngle

	speed := ball.Vel.Len() * PaddleRestitution
	dir := 1.0
	if paddle.Side == Right {
		dir = -1
	}
	ball.Vel = Vec2{X: math.Cos(angle) * dir, Y: math.Sin(angle)}.Scale(speed)
	ball.Pos.X = paddle.Pos.X + dir*(PaddleHalfWidth+BallRadius)
}
