package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/0xAlcibiades/rusty-pong/config"
	"github.com/0xAlcibiades/rusty-pong/game"
	"github.com/0xAlcibiades/rusty-pong/protocol"
)

type Server struct {
	upgrader   websocket.Upgrader
	tickHz     int
	snapshotHz int
	aiSeed     int64
}

type Client struct {
	Conn *websocket.Conn
	Room *Room

	writeMu sync.Mutex
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		upgrader:   websocket.Upgrader{},
		tickHz:     cfg.TickHz,
		snapshotHz: cfg.SnapshotHz,
		aiSeed:     cfg.AISeed,
	}
}

// HandleConnection upgrades the connection and hosts a fresh match for it
// until the client disconnects.
func (s *Server) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		http.Error(w, "Could not upgrade connection", http.StatusInternalServerError)
		return
	}

	client := &Client{Conn: conn}
	room := NewRoom(s.matchRNG(), s.tickHz, s.snapshotHz, client)
	client.Room = room

	go room.Run()
	defer room.Stop()
	defer func() {
		if err := client.Conn.Close(); err != nil {
			log.Println("Error closing connection:", err)
		}
	}()

	client.Listen()
}

// matchRNG returns a fresh random source per match. A configured seed makes
// the opponent and serve flips reproducible.
func (s *Server) matchRNG() *rand.Rand {
	seed := s.aiSeed
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}

func (c *Client) Listen() {
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Println("Connection closed normally")
			} else {
				log.Println("Read error:", err)
			}
			break
		}
		protocol.ParseMessage(c, message)
	}
}

func (c *Client) HandleStartGame() {
	c.Room.Inbox <- startCmd{}
}

func (c *Client) HandleTogglePause() {
	c.Room.Inbox <- pauseCmd{}
}

func (c *Client) HandleMovePaddle(dir game.MoveDir) {
	c.Room.Inbox <- moveCmd{dir: dir}
}

// Send marshals and writes one message. The room goroutine and the reader
// both send, so writes are serialized here.
func (c *Client) Send(message protocol.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Println("Error marshalling message:", err)
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Println("Write error:", err)
	}
}
