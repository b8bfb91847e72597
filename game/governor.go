package game

import "math"

// GovernBallSpeed re-asserts the designed ball pace after physics drift.
// Wall and paddle bounces are deliberately super-elastic and integration
// accumulates small errors, so once the speed leaves the tolerance band
// around BallSpeed the velocity is rescaled onto it, preserving direction.
// A zero velocity is left untouched; normalizing it is undefined and the
// ball never legitimately stops mid-rally.
func GovernBallSpeed(v Vec2) Vec2 {
	speed := v.Len()
	if speed == 0 {
		return v
	}
	if math.Abs(speed-BallSpeed) > SpeedTolerance {
		return v.Normalize().Scale(BallSpeed)
	}
	return v
}
