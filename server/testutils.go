package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/0xAlcibiades/rusty-pong/config"
	"github.com/0xAlcibiades/rusty-pong/protocol"
)

var (
	testServer *Server
	serverOnce sync.Once
	serverAddr = "ws://localhost:8080/"
)

// StartTestServer starts the WebSocket server only once. The match RNG is
// seeded so the hosted opponent behaves the same on every run.
func StartTestServer() {
	serverOnce.Do(func() {
		testServer = NewServer(config.Config{
			Addr:       ":8080",
			TickHz:     60,
			SnapshotHz: 20,
			AISeed:     1,
		})
		go func() {
			http.HandleFunc("/", testServer.HandleConnection)
			if err := http.ListenAndServe(":8080", nil); err != nil {
				panic("Server failed to start: " + err.Error())
			}
		}()
		// Wait for the server to start
		time.Sleep(100 * time.Millisecond)
	})
}

// ConnectToServer creates a WebSocket connection to the test server.
func ConnectToServer(t *testing.T) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(serverAddr, nil)
	if err != nil {
		t.Fatal("Failed to connect to WebSocket server:", err)
	}
	return conn
}

// SendMessage sends a Message over the WebSocket connection.
func SendMessage(t *testing.T, conn *websocket.Conn, msg protocol.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal("Failed to marshal message:", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatal("Failed to send message:", err)
	}
}

// ReadMessage reads a Message from the WebSocket connection with a 1-second
// timeout. Messages of the given types are skipped.
func ReadMessage(t *testing.T, conn *websocket.Conn, ignoreTypes ...string) protocol.Message {
	deadline := time.Now().Add(1 * time.Second)
	for {
		if err := conn.SetReadDeadline(deadline); err != nil {
			t.Fatal("Failed to set read deadline:", err)
		}
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatal("Failed to read message from WebSocket:", err)
		}

		var msg protocol.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatal("Failed to unmarshal message:", err)
		}

		skip := false
		for _, ignoreType := range ignoreTypes {
			if msg.Type == ignoreType {
				skip = true
				break
			}
		}
		if !skip {
			return msg
		}
	}
}

// ReadSnapshot reads state updates until one arrives, decoded into a
// Snapshot.
func ReadSnapshot(t *testing.T, conn *websocket.Conn) protocol.Snapshot {
	for {
		msg := ReadMessage(t, conn)
		if msg.Type != protocol.StateUpdate {
			continue
		}
		return decodeSnapshot(t, msg)
	}
}

// WaitForPhase reads snapshots until the match reports the wanted phase.
func WaitForPhase(t *testing.T, conn *websocket.Conn, phase string) protocol.Snapshot {
	for i := 0; i < 100; i++ {
		snap := ReadSnapshot(t, conn)
		if snap.Phase == phase {
			return snap
		}
	}
	t.Fatalf("Match never reached phase %q", phase)
	return protocol.Snapshot{}
}

func decodeSnapshot(t *testing.T, msg protocol.Message) protocol.Snapshot {
	data, err := json.Marshal(msg.Data)
	if err != nil {
		t.Fatal("Failed to re-marshal snapshot data:", err)
	}
	var snap protocol.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal("Failed to decode snapshot:", err)
	}
	return snap
}
