package game

// Phase is the coarse state of a match. Intro is the initial phase; Finished
// is terminal until a restart input returns the match to Active.
type Phase int

const (
	Intro Phase = iota
	Active
	Paused
	Finished
)

var phaseName = map[Phase]string{
	Intro:    "intro",
	Active:   "active",
	Paused:   "paused",
	Finished: "finished",
}

func (p Phase) String() string {
	return phaseName[p]
}
