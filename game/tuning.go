package game

const (
	BoardWidth  = 16.0
	BoardHeight = 10.0

	BallRadius     = 0.15
	BallSpeed      = 10.0 // pace the governor steers back to
	SpeedTolerance = 0.5  // allowed drift before the governor corrects

	PaddleHalfHeight = 1.0
	PaddleHalfWidth  = 0.25
	PaddleSpeed      = 20.0 // board units per second
	LeftPaddleX      = -7.65
	RightPaddleX     = 7.65
	MaxBounceAngle   = 1.0 // radians, at the paddle's very edge

	WallRestitution   = 1.5 // bounces add energy; the governor bleeds it off
	PaddleRestitution = 1.5

	ServeDelay = 0.75 // seconds between a point and the next ball

	PointsToWin = 11
	WinMargin   = 2
	DeuceScore  = 10 // both at or above: serve switches every point

	AIDecisionPeriod = 0.3 // seconds between target re-evaluations
	AIDeadzone       = 0.1
	AIMissChance     = 0.05 // chance a decision misreads the trajectory entirely
	AIMissRange      = 3.0
	AIErrorChance    = 0.2
	AIErrorRange     = 0.35 // max prediction offset injected on an error
	AIHitOffset      = PaddleHalfHeight / 2
	AIMoveJitter     = 0.1 // +-fraction applied to movement durations
	AIMoveMinTime    = 0.05
	AIMoveMaxTime    = 0.6

	PunchOffset   = 0.15 // paddle lunge toward the ball on contact
	PunchDuration = 0.05
)
