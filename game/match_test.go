package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tickDt = 1.0 / 60.0

func newTestMatch() *Match {
	return NewMatch(rand.New(rand.NewSource(1)))
}

// stepFor advances the match in fixed ticks, letting the board feed the
// collision notifications like the hosting loop does.
func stepFor(m *Match, seconds float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += tickDt {
		var collisions []Collision
		if m.Phase() == Active {
			collisions = m.Board.Step(tickDt)
		}
		m.Step(tickDt, collisions)
	}
}

func TestMatchStartsInIntro(t *testing.T) {
	m := newTestMatch()

	assert.Equal(t, Intro, m.Phase(), "a new match begins at the intro screen")
	_, _, ok := m.BallState()
	assert.False(t, ok, "no ball exists before play starts")
}

func TestStartInputBeginsPlay(t *testing.T) {
	m := newTestMatch()

	m.HandleStart()

	assert.Equal(t, Active, m.Phase(), "the start input begins play")
	_, vel, ok := m.BallState()
	assert.True(t, ok, "the opening ball should be served")
	if m.Score.ServerIsP1 {
		assert.Greater(t, vel.X, 0.0, "P1's serve travels right")
	} else {
		assert.Less(t, vel.X, 0.0, "P2's serve travels left")
	}
}

func TestPauseDespawnsBallAndResumeServesFresh(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()
	stepFor(m, 0.1)

	m.HandleTogglePause()
	assert.Equal(t, Paused, m.Phase(), "pause input suspends play")
	_, _, ok := m.BallState()
	assert.False(t, ok, "leaving play destroys the ball")

	m.SetHumanMove(MoveUp)
	for i := 0; i < 30; i++ {
		m.Step(tickDt, nil)
	}
	assert.Equal(t, 0.0, m.PaddleY(Left), "held input must not act while paused")

	m.HandleTogglePause()
	assert.Equal(t, Active, m.Phase(), "pause input resumes play")
	pos, _, ok := m.BallState()
	assert.True(t, ok, "resuming serves a fresh ball")
	assert.Equal(t, Vec2{}, pos, "the resume serve starts from center")
}

func TestResumeDuringServeDelayDoesNotDoubleServe(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()
	ballH, _ := m.Arena.Find(KindBall)
	m.Step(tickDt, []Collision{{A: ballH, B: m.Board.walls[WallLeft]}})
	assert.True(t, m.Score.AwaitingServe(), "precondition: a serve is pending")

	m.HandleTogglePause()
	m.HandleTogglePause()

	_, _, ok := m.BallState()
	assert.False(t, ok, "the pending serve still owns the next ball")

	stepFor(m, ServeDelay*2)
	_, _, ok = m.BallState()
	assert.True(t, ok, "the serve delay produces the ball after resuming")
}

func TestPauseToggleIgnoredOutsideActivePlay(t *testing.T) {
	m := newTestMatch()

	m.HandleTogglePause()
	assert.Equal(t, Intro, m.Phase(), "pause is meaningless on the intro screen")
}

func TestScoringDespawnsBallAndSchedulesServe(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()
	ballH, _ := m.Arena.Find(KindBall)

	m.Step(tickDt, []Collision{{A: ballH, B: m.Board.walls[WallLeft]}})

	assert.Equal(t, 1, m.Score.P2, "the left wall scores for P2")
	_, _, ok := m.BallState()
	assert.False(t, ok, "the scored-on ball is gone")
	assert.True(t, m.Score.AwaitingServe(), "the next serve is pending")

	// The serve delay holds the ball back, then produces exactly one.
	stepFor(m, ServeDelay/2)
	_, _, ok = m.BallState()
	assert.False(t, ok, "the ball stays despawned during the serve delay")

	stepFor(m, ServeDelay)
	_, _, ok = m.BallState()
	assert.True(t, ok, "the serve delay elapsing produces the next ball")
	assert.False(t, m.Score.AwaitingServe(), "the pending serve is cleared")
}

func TestHumanInputMovesLeftPaddle(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()

	m.SetHumanMove(MoveUp)
	m.Step(tickDt, nil)
	assert.InDelta(t, PaddleSpeed*tickDt, m.PaddleY(Left), 1e-9, "held input moves the paddle each tick")

	m.SetHumanMove(MoveDown)
	m.Step(tickDt, nil)
	m.Step(tickDt, nil)
	assert.InDelta(t, -PaddleSpeed*tickDt, m.PaddleY(Left), 1e-9, "movement reverses with the input")

	m.SetHumanMove(MoveNone)
	m.Step(tickDt, nil)
	assert.InDelta(t, -PaddleSpeed*tickDt, m.PaddleY(Left), 1e-9, "no input holds the paddle still")
}

func TestPaddleStopsAtBoardEdge(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()

	m.SetHumanMove(MoveUp)
	stepFor(m, 2.0)

	limit := BoardHeight/2 - PaddleHalfHeight
	assert.LessOrEqual(t, m.PaddleY(Left), limit, "the paddle must not leave the board")
}

func TestVictoryEntersFinishedAndDespawnsBall(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()
	m.Score.P1 = 10
	m.Score.P2 = 5
	ballH, _ := m.Arena.Find(KindBall)

	m.Step(tickDt, []Collision{{A: ballH, B: m.Board.walls[WallRight]}})

	assert.Equal(t, 11, m.Score.P1, "the match point should land")
	assert.Equal(t, Finished, m.Phase(), "the win ends the match")
	_, _, ok := m.BallState()
	assert.False(t, ok, "entering Finished forces the ball out of play")
}

func TestNoServeIntoFinishedMatch(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()
	m.Score.P1 = 10
	m.Score.P2 = 5
	ballH, _ := m.Arena.Find(KindBall)

	m.Step(tickDt, []Collision{{A: ballH, B: m.Board.walls[WallRight]}})

	// The point armed a serve, but the victory check ran first; ticking on
	// must never produce a ball.
	for i := 0; i < 120; i++ {
		m.Step(tickDt, nil)
	}
	_, _, ok := m.BallState()
	assert.False(t, ok, "a finished match must never serve")
}

func TestRestartResetsScoreAndResumesPlay(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()
	m.Score.P1 = 10
	m.Score.P2 = 5
	ballH, _ := m.Arena.Find(KindBall)
	m.Step(tickDt, []Collision{{A: ballH, B: m.Board.walls[WallRight]}})
	assert.Equal(t, Finished, m.Phase(), "precondition: the match is over")

	m.HandleStart()

	assert.Equal(t, Active, m.Phase(), "the restart input returns to play")
	assert.Equal(t, 0, m.Score.P1, "the restart zeroes the score")
	assert.Equal(t, 0, m.Score.P2, "the restart zeroes the score")
	_, _, ok := m.BallState()
	assert.True(t, ok, "the restart serves a fresh ball")
}

func TestOpponentTracksBall(t *testing.T) {
	m := newTestMatch()
	m.AI.missChance = 0
	m.AI.errorChance = 0
	m.HandleStart()

	// Aim the ball at the upper part of the right paddle's plane and give
	// the opponent time to react.
	ballH, _ := m.Arena.Find(KindBall)
	ball, _ := m.Arena.Get(ballH)
	ball.Pos = Vec2{X: 0, Y: 0}
	ball.Vel = Vec2{X: BallSpeed, Y: 0}.Normalize().Scale(BallSpeed)
	ball.Vel.Y = 3
	ball.Vel = GovernBallSpeed(ball.Vel)

	for i := 0; i < 30; i++ {
		m.Step(tickDt, nil)
	}

	assert.Greater(t, m.PaddleY(Right), 0.0, "the opponent should move toward the intercept")
}

func TestPunchLungesAndRecovers(t *testing.T) {
	m := newTestMatch()
	m.HandleStart()
	ballH, _ := m.Arena.Find(KindBall)
	paddleH, _ := m.Arena.FindPaddle(Right)

	m.Step(tickDt, []Collision{{A: ballH, B: paddleH}})

	paddle, _ := m.Arena.Get(paddleH)
	assert.InDelta(t, RightPaddleX-PunchOffset, paddle.Pos.X, 1e-9, "the paddle lunges toward the ball on contact")

	stepFor(m, PunchDuration*2)
	paddle, _ = m.Arena.Get(paddleH)
	assert.InDelta(t, RightPaddleX, paddle.Pos.X, 1e-9, "the paddle snaps back to its rest plane")
}
