package game

// WallRole names the four static board boundaries. The left and right walls
// are scoring walls; top and bottom are plain physical boundaries.
type WallRole int

const (
	WallTop WallRole = iota
	WallBottom
	WallLeft
	WallRight
)

var wallRoleName = map[WallRole]string{
	WallTop:    "top",
	WallBottom: "bottom",
	WallLeft:   "left",
	WallRight:  "right",
}

func (r WallRole) String() string {
	return wallRoleName[r]
}

// ScoresFor returns the side awarded a point when the ball reaches this
// wall. The left wall scores for the right player and vice versa; top and
// bottom walls score for nobody.
func (r WallRole) ScoresFor() (Side, bool) {
	switch r {
	case WallLeft:
		return Right, true
	case WallRight:
		return Left, true
	}
	return 0, false
}
