package server

import (
	"math/rand"
	"time"

	"github.com/0xAlcibiades/rusty-pong/game"
	"github.com/0xAlcibiades/rusty-pong/protocol"
)

type command interface{}

type startCmd struct{}
type pauseCmd struct{}
type moveCmd struct{ dir game.MoveDir }

// Room hosts one human-vs-AI match. Its goroutine owns the match state
// exclusively: client intents arrive through the inbox and are applied
// between ticks, so the simulation itself stays single-threaded.
type Room struct {
	Inbox chan command

	match          *game.Match
	client         *Client
	tickHz         int
	broadcastEvery int
	quit           chan struct{}
}

func NewRoom(rng *rand.Rand, tickHz, snapshotHz int, client *Client) *Room {
	broadcastEvery := tickHz / snapshotHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan command, 64),
		match:          game.NewMatch(rng),
		client:         client,
		tickHz:         tickHz,
		broadcastEvery: broadcastEvery,
		quit:           make(chan struct{}),
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// Run drives the match at the configured tick rate. Each tick the board
// physics produces the collision notifications accumulated since the last
// tick and the match consumes them; snapshots go out at a reduced rate.
func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	dt := 1.0 / float64(r.tickHz)
	tick := 0

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			wasActive := r.match.Phase() == game.Active
			var collisions []game.Collision
			if wasActive {
				collisions = r.match.Board.Step(dt)
			}
			r.match.Step(dt, collisions)
			if wasActive && r.match.Phase() == game.Finished {
				r.sendGameOver()
			}
			tick++
			if tick%r.broadcastEvery == 0 {
				r.broadcastState()
			}
		}
	}
}

func (r *Room) handleCommand(cmd command) {
	switch c := cmd.(type) {
	case startCmd:
		r.match.HandleStart()
	case pauseCmd:
		r.match.HandleTogglePause()
	case moveCmd:
		r.match.SetHumanMove(c.dir)
	}
}

func (r *Room) broadcastState() {
	snap := protocol.Snapshot{
		Phase:      r.match.Phase().String(),
		P1Y:        r.match.PaddleY(game.Left),
		P2Y:        r.match.PaddleY(game.Right),
		P1Score:    r.match.Score.P1,
		P2Score:    r.match.Score.P2,
		ServerIsP1: r.match.Score.ServerIsP1,
	}
	if pos, vel, ok := r.match.BallState(); ok {
		snap.BallLive = true
		snap.BallX = pos.X
		snap.BallY = pos.Y
		snap.BallVX = vel.X
		snap.BallVY = vel.Y
	}
	r.client.Send(protocol.Message{Type: protocol.StateUpdate, Data: snap})
}

func (r *Room) sendGameOver() {
	r.client.Send(protocol.Message{
		Type: protocol.GameOver,
		Data: protocol.Result{
			Winner:  r.match.Score.Winner().String(),
			P1Score: r.match.Score.P1,
			P2Score: r.match.Score.P2,
		},
	})
}
