package game

import (
	"math"
	"math/rand"
)

// aiMove is the tagged movement state of the controller.
type aiMove uint8

const (
	aiIdle aiMove = iota
	aiMovingUp
	aiMovingDown
)

// AIController drives the predictive paddle. Decisions are re-evaluated on a
// coarse cadence to mimic human reaction time, while the resulting movement
// intent is emitted every tick until its duration timer runs out or the
// paddle reaches the stored target. Small random misreads and prediction
// offsets keep returns imperfect rather than machine-precise.
type AIController struct {
	side Side

	decisionRemaining float64
	state             aiMove
	targetY           float64
	moveRemaining     float64
	lastPrediction    float64
	hasPrediction     bool

	missChance  float64
	errorChance float64
	moveJitter  float64

	rng *rand.Rand
}

// NewAIController returns a controller for the paddle on side. rng may be
// nil, in which case the global source is used.
func NewAIController(side Side, rng *rand.Rand) *AIController {
	return &AIController{
		side:              side,
		decisionRemaining: AIDecisionPeriod,
		missChance:        AIMissChance,
		errorChance:       AIErrorChance,
		moveJitter:        AIMoveJitter,
		rng:               rng,
	}
}

// PredictIntercept computes the linear-trajectory intersection of the ball
// with the vertical plane at x. It reports false when the ball is not
// moving toward the plane.
func PredictIntercept(pos, vel Vec2, x float64) (float64, bool) {
	toward := (x > pos.X && vel.X > 0) || (x < pos.X && vel.X < 0)
	if !toward {
		return 0, false
	}
	t := (x - pos.X) / vel.X
	return pos.Y + vel.Y*t, true
}

// Step advances the controller by dt and returns the vertical movement to
// apply to the paddle this tick. ball is nil while no ball is in flight;
// that yields no new decision, not a fault.
func (c *AIController) Step(dt float64, ball *Entity, paddleY float64) float64 {
	// Movement timers run every tick regardless of the decision cadence.
	if c.state != aiIdle {
		c.moveRemaining -= dt
		if c.moveRemaining <= 0 {
			c.state = aiIdle
		}
	}

	c.decisionRemaining -= dt
	if c.decisionRemaining <= 0 {
		c.decisionRemaining += AIDecisionPeriod
		c.decide(ball, paddleY)
	}

	return c.intent(dt, paddleY)
}

func (c *AIController) decide(ball *Entity, paddleY float64) {
	if ball == nil {
		return
	}
	predicted, ok := PredictIntercept(ball.Pos, ball.Vel, c.paddlePlane())
	if !ok {
		return
	}
	c.lastPrediction = predicted
	c.hasPrediction = true

	// Aim slightly off-center against the ball's travel so the return comes
	// off the paddle edge rather than dead flat.
	target := predicted
	if ball.Vel.Y > 0 {
		target -= AIHitOffset
	} else {
		target += AIHitOffset
	}

	switch {
	case c.float() < c.missChance:
		// Misread: chase a spot unrelated to the real trajectory.
		target = predicted + (c.float()*2-1)*AIMissRange
	case c.float() < c.errorChance:
		target += (c.float()*2 - 1) * AIErrorRange
	}

	diff := target - paddleY
	if math.Abs(diff) <= AIDeadzone {
		c.state = aiIdle
		return
	}

	duration := math.Abs(diff) / PaddleSpeed
	duration *= 1 + (c.float()*2-1)*c.moveJitter
	duration = math.Min(math.Max(duration, AIMoveMinTime), AIMoveMaxTime)

	c.targetY = target
	c.moveRemaining = duration
	if diff > 0 {
		c.state = aiMovingUp
	} else {
		c.state = aiMovingDown
	}
}

func (c *AIController) intent(dt float64, paddleY float64) float64 {
	switch c.state {
	case aiMovingUp:
		if paddleY >= c.targetY {
			c.state = aiIdle
			return 0
		}
		return PaddleSpeed * dt
	case aiMovingDown:
		if paddleY <= c.targetY {
			c.state = aiIdle
			return 0
		}
		return -PaddleSpeed * dt
	}
	return 0
}

func (c *AIController) paddlePlane() float64 {
	if c.side == Left {
		return LeftPaddleX
	}
	return RightPaddleX
}

func (c *AIController) float() float64 {
	if c.rng != nil {
		return c.rng.Float64()
	}
	return rand.Float64()
}
