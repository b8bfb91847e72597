package game

import (
	"math"
	"math/rand"
)

// MoveDir is the held movement direction for the human paddle.
type MoveDir int

const (
	MoveNone MoveDir = iota
	MoveUp
	MoveDown
)

// Match is the complete simulation state for one pong match: the entity
// arena, the board physics, the score and serve rotation, the predictive
// opponent and the phase machine gating them. It is stepped by an external
// scheduler and never blocks or sleeps; all waiting is modeled as counters
// advanced by the supplied dt. Construct one per match, there is no shared
// global state.
type Match struct {
	Arena *Arena
	Board *Board
	Score *Score
	AI    *AIController

	phase     Phase
	humanMove MoveDir
	punches   [2]punchState
}

// punchState tracks the short lunge a paddle makes toward the ball on
// contact before snapping back to its rest plane.
type punchState struct {
	active    bool
	remaining float64
}

// NewMatch builds a ready-to-start match in the Intro phase. rng seeds the
// serve coin flip and the opponent's imperfections; nil uses the global
// source.
func NewMatch(rng *rand.Rand) *Match {
	arena := NewArena()
	return &Match{
		Arena: arena,
		Board: NewBoard(arena),
		Score: NewScore(rng),
		AI:    NewAIController(Right, rng),
		phase: Intro,
	}
}

func (m *Match) Phase() Phase {
	return m.phase
}

// HandleStart reacts to the start/restart input: it begins play from the
// intro screen and starts a fresh match from the endgame screen. Other
// phases ignore it.
func (m *Match) HandleStart() {
	switch m.phase {
	case Intro:
		m.phase = Active
		m.Board.SpawnBall(m.Score.Server())
	case Finished:
		m.Score.Reset()
		m.phase = Active
		m.Board.SpawnBall(m.Score.Server())
	}
}

// HandleTogglePause flips between Active and Paused. The ball does not
// survive leaving play: it is despawned on pause and a fresh one is served
// from center on resume, unless a serve delay is already pending.
func (m *Match) HandleTogglePause() {
	switch m.phase {
	case Active:
		m.phase = Paused
		if h, ok := m.Arena.Find(KindBall); ok {
			m.Arena.Despawn(h)
		}
	case Paused:
		m.phase = Active
		if _, ok := m.Arena.Find(KindBall); !ok && !m.Score.AwaitingServe() {
			m.Board.SpawnBall(m.Score.Server())
		}
	}
}

// SetHumanMove records the held movement direction for the left paddle; it
// is applied on each Active tick through the same actuator as the
// opponent's intent.
func (m *Match) SetHumanMove(d MoveDir) {
	m.humanMove = d
}

// Step advances the simulation one tick. Collision notifications are scored
// first, then the victory check runs, and only then may the serve delay
// produce a new ball, so a point is never served into a finished match.
func (m *Match) Step(dt float64, collisions []Collision) {
	if m.phase != Active {
		return
	}

	ResolveScoring(m.Arena, m.Score, collisions)

	if m.Score.MatchWon() {
		m.finish()
		return
	}

	if side, ok := m.Score.TickServeDelay(dt); ok {
		m.Board.SpawnBall(side)
	}

	if h, ok := m.Arena.Find(KindBall); ok {
		ball, _ := m.Arena.Get(h)
		ball.Vel = GovernBallSpeed(ball.Vel)
	}

	switch m.humanMove {
	case MoveUp:
		m.movePaddle(Left, PaddleSpeed*dt)
	case MoveDown:
		m.movePaddle(Left, -PaddleSpeed*dt)
	}

	var ball *Entity
	if h, ok := m.Arena.Find(KindBall); ok {
		ball, _ = m.Arena.Get(h)
	}
	m.movePaddle(Right, m.AI.Step(dt, ball, m.PaddleY(Right)))

	m.stepPunches(dt, collisions)
}

// PaddleY returns the given paddle's current center height.
func (m *Match) PaddleY(side Side) float64 {
	h, ok := m.Arena.FindPaddle(side)
	if !ok {
		return 0
	}
	p, _ := m.Arena.Get(h)
	return p.Pos.Y
}

// BallState returns the live ball's kinematics, if one is in flight.
func (m *Match) BallState() (pos, vel Vec2, ok bool) {
	h, found := m.Arena.Find(KindBall)
	if !found {
		return Vec2{}, Vec2{}, false
	}
	ball, _ := m.Arena.Get(h)
	return ball.Pos, ball.Vel, true
}

// finish despawns any live ball and enters the terminal phase. The despawn
// is idempotent with the resolver's own.
func (m *Match) finish() {
	if h, ok := m.Arena.Find(KindBall); ok {
		m.Arena.Despawn(h)
	}
	m.phase = Finished
}

func (m *Match) movePaddle(side Side, dy float64) {
	if dy == 0 {
		return
	}
	h, ok := m.Arena.FindPaddle(side)
	if !ok {
		return
	}
	p, _ := m.Arena.Get(h)
	limit := BoardHeight/2 - PaddleHalfHeight
	p.Pos.Y = math.Max(-limit, math.Min(limit, p.Pos.Y+dy))
}

// stepPunches starts a lunge for every ball-paddle contact this tick and
// advances lunges already running.
func (m *Match) stepPunches(dt float64, collisions []Collision) {
	for _, c := range collisions {
		if side, ok := m.ballPaddleContact(c); ok {
			m.startPunch(side)
		}
	}
	for side := Left; side <= Right; side++ {
		p := &m.punches[side]
		if !p.active {
			continue
		}
		p.remaining -= dt
		if p.remaining <= 0 {
			p.active = false
			m.setPaddleX(side, restX(side))
		}
	}
}

func (m *Match) startPunch(side Side) {
	p := &m.punches[side]
	if p.active {
		return
	}
	p.active = true
	p.remaining = PunchDuration
	// Lunge toward the center line.
	offset := PunchOffset
	if side == Right {
		offset = -PunchOffset
	}
	m.setPaddleX(side, restX(side)+offset)
}

func (m *Match) ballPaddleContact(c Collision) (Side, bool) {
	ea, okA := m.Arena.Get(c.A)
	eb, okB := m.Arena.Get(c.B)
	if !okA || !okB {
		return 0, false
	}
	switch {
	case ea.Kind == KindBall && eb.Kind == KindPaddle:
		return eb.Side, true
	case eb.Kind == KindBall && ea.Kind == KindPaddle:
		return ea.Side, true
	}
	return 0, false
}

func (m *Match) setPaddleX(side Side, x float64) {
	h, ok := m.Arena.FindPaddle(side)
	if !ok {
		return
	}
	p, _ := m.Arena.Get(h)
	p.Pos.X = x
}

func restX(side Side) float64 {
	if side == Left {
		return LeftPaddleX
	}
	return RightPaddleX
}
