package game

// Side identifies a player by the half of the board they defend. Player one
// is the left (human) paddle, player two the right (predictive) paddle.
type Side int

const (
	Left Side = iota
	Right
)

var sideName = map[Side]string{
	Left:  "left",
	Right: "right",
}

func (s Side) String() string {
	return sideName[s]
}

func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}
