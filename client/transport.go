// Package client is a reference terminal client for Remi: it dials a
// running server over WebSocket, renders the player's own GameView with
// termbox-go, and turns keypresses into remi.Action messages.
package client

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/ssveto/remi-backend/remi"
)

type serverMessage struct {
	Type  string         `json:"type"`
	View  *remi.GameView `json:"view,omitempty"`
	Error *remi.Error    `json:"error,omitempty"`
}

// Connection is the client-side half of the server's per-room
// WebSocket: it carries inbound GameViews and outbound actions.
type Connection struct {
	ws       *websocket.Conn
	playerID string

	Views  chan remi.GameView
	Errors chan *remi.Error
}

// Dial opens a WebSocket connection to a room on address, identifying
// as playerID.
func Dial(address, roomCode, playerID string) (*Connection, error) {
	u := url.URL{Scheme: "ws", Host: address, Path: fmt.Sprintf("/rooms/%s/ws", roomCode), RawQuery: "playerId=" + playerID}
	ws, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", u.String(), err)
	}
	c := &Connection{
		ws:       ws,
		playerID: playerID,
		Views:    make(chan remi.GameView, 4),
		Errors:   make(chan *remi.Error, 4),
	}
	go c.readLoop()
	return c, nil
}

func (c *Connection) readLoop() {
	defer close(c.Views)
	for {
		var msg serverMessage
		if err := c.ws.ReadJSON(&msg); err != nil {
			log.Printf("remi client: connection closed: %v", err)
			return
		}
		if msg.Error != nil {
			c.Errors <- msg.Error
			continue
		}
		if msg.View != nil {
			c.Views <- *msg.View
		}
	}
}

type clientMessage struct {
	Type string          `json:"type"`
	Body json.RawMessage `json:"body,omitempty"`
}

// SendAction serializes and sends a player action.
func (c *Connection) SendAction(a remi.Action) error {
	return c.ws.WriteJSON(clientMessage{Type: "action", Body: remi.SerializeAction(a)})
}

// SendStartGame requests the room start its first hand.
func (c *Connection) SendStartGame() error {
	return c.ws.WriteJSON(clientMessage{Type: "start_game"})
}

// SendReorderHand requests a pure cosmetic reorder of the player's own hand.
func (c *Connection) SendReorderHand(from, to int) error {
	body, _ := json.Marshal(struct {
		From int `json:"from"`
		To   int `json:"to"`
	}{from, to})
	return c.ws.WriteJSON(clientMessage{Type: "reorder_hand", Body: body})
}

// Close closes the underlying WebSocket.
func (c *Connection) Close() error {
	return c.ws.Close()
}
