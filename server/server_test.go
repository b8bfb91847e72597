package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xAlcibiades/rusty-pong/protocol"
)

func TestSnapshotsStreamBeforeStart(t *testing.T) {
	StartTestServer()
	conn := ConnectToServer(t)
	defer conn.Close()

	snap := ReadSnapshot(t, conn)

	assert.Equal(t, "intro", snap.Phase, "a fresh match sits on the intro screen")
	assert.False(t, snap.BallLive, "no ball exists before the first serve")
	assert.Equal(t, 0, snap.P1Score, "the match starts scoreless")
	assert.Equal(t, 0, snap.P2Score, "the match starts scoreless")
}

func TestStartGameBeginsPlay(t *testing.T) {
	StartTestServer()
	conn := ConnectToServer(t)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{Type: protocol.StartGame})
	snap := WaitForPhase(t, conn, "active")

	assert.True(t, snap.BallLive, "play begins with a served ball")
}

func TestTogglePauseRoundTrip(t *testing.T) {
	StartTestServer()
	conn := ConnectToServer(t)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{Type: protocol.StartGame})
	WaitForPhase(t, conn, "active")

	SendMessage(t, conn, protocol.Message{Type: protocol.TogglePause})
	WaitForPhase(t, conn, "paused")

	SendMessage(t, conn, protocol.Message{Type: protocol.TogglePause})
	WaitForPhase(t, conn, "active")
}

func TestMovePaddleMovesP1(t *testing.T) {
	StartTestServer()
	conn := ConnectToServer(t)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{Type: protocol.StartGame})
	before := WaitForPhase(t, conn, "active")

	SendMessage(t, conn, protocol.Message{Type: protocol.MovePaddle, Data: "up"})
	// Give the held input a few ticks to act, then release it.
	var after protocol.Snapshot
	for i := 0; i < 20; i++ {
		after = ReadSnapshot(t, conn)
		if after.P1Y > before.P1Y {
			break
		}
	}
	SendMessage(t, conn, protocol.Message{Type: protocol.MovePaddle, Data: "stop"})

	assert.Greater(t, after.P1Y, before.P1Y, "the up input should raise the left paddle")
}

func TestInvalidMoveDirectionIsRejected(t *testing.T) {
	StartTestServer()
	conn := ConnectToServer(t)
	defer conn.Close()

	SendMessage(t, conn, protocol.Message{Type: protocol.MovePaddle, Data: "sideways"})
	msg := ReadMessage(t, conn, protocol.StateUpdate)

	assert.Equal(t, protocol.Error, msg.Type, "an invalid direction should be answered with an error")
}
