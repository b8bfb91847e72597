package protocol

import (
	"encoding/json"
	"log"

	"github.com/0xAlcibiades/rusty-pong/game"
)

const (
	StartGame   = "start_game"
	TogglePause = "toggle_pause"
	MovePaddle  = "move_paddle"
	StateUpdate = "state_update"
	GameOver    = "game_over"
	Error       = "error"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Snapshot is the flat per-tick state pushed to clients for display.
type Snapshot struct {
	Phase      string  `json:"phase"`
	BallLive   bool    `json:"ball_live"`
	BallX      float64 `json:"ball_x"`
	BallY      float64 `json:"ball_y"`
	BallVX     float64 `json:"ball_vx"`
	BallVY     float64 `json:"ball_vy"`
	P1Y        float64 `json:"p1_y"`
	P2Y        float64 `json:"p2_y"`
	P1Score    int     `json:"p1_score"`
	P2Score    int     `json:"p2_score"`
	ServerIsP1 bool    `json:"server_is_p1"`
}

// Result reports the final state of a finished match.
type Result struct {
	Winner  string `json:"winner"`
	P1Score int    `json:"p1_score"`
	P2Score int    `json:"p2_score"`
}

// ClientActions is the surface a connected client exposes to the message
// dispatcher.
type ClientActions interface {
	HandleStartGame()
	HandleTogglePause()
	HandleMovePaddle(dir game.MoveDir)
	Send(msg Message)
}

// ParseMessage processes one incoming client message and handles errors.
func ParseMessage(client ClientActions, rawMessage []byte) {
	var message Message
	err := json.Unmarshal(rawMessage, &message)
	if err != nil {
		log.Println("Error parsing message:", err)
		return
	}

	var errorMessage Message
	errorMessage.Type = Error

	switch message.Type {
	case StartGame:
		client.HandleStartGame()
	case TogglePause:
		client.HandleTogglePause()
	case MovePaddle:
		direction, ok := message.Data.(string)
		if !ok {
			errorMessage.Data = "Invalid move_paddle data"
			client.Send(errorMessage)
			return
		}
		switch direction {
		case "up":
			client.HandleMovePaddle(game.MoveUp)
		case "down":
			client.HandleMovePaddle(game.MoveDown)
		case "stop":
			client.HandleMovePaddle(game.MoveNone)
		default:
			errorMessage.Data = "Invalid move_paddle direction"
			client.Send(errorMessage)
		}
	default:
		log.Println("Unknown message type:", message.Type)
	}
}
