package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/ssveto/remi-backend/remi"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// inboundMessage is the envelope a connected client sends: either a
// remi.Action (dispatched by its own "name" field) or one of the small
// set of room-lifecycle commands the engine doesn't model as an Action.
type inboundMessage struct {
	Type string          `json:"type"`
	Body json.RawMessage `json:"body"`
}

const (
	msgTypeAction      = "action"
	msgTypeStartGame   = "start_game"
	msgTypeStartHand   = "start_next_hand"
	msgTypeReorderHand = "reorder_hand"
)

type reorderHandBody struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type outboundMessage struct {
	Type  string         `json:"type"`
	View  *remi.GameView `json:"view,omitempty"`
	Error *remi.Error    `json:"error,omitempty"`
}

// conn is one player's live WebSocket, registered with the room's
// broadcast set for the lifetime of the connection.
type conn struct {
	ws       *websocket.Conn
	playerID string
	mu       sync.Mutex
}

func (c *conn) send(msg outboundMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ws.WriteJSON(msg); err != nil {
		log.Printf("remi: write to %s failed: %v", c.playerID, err)
	}
}

// broadcastSet is the set of live connections for one room, guarded
// separately from the room's own move-serializing mutex.
type broadcastSet struct {
	mu    sync.Mutex
	conns map[string]*conn
}

var broadcasts = struct {
	mu   sync.Mutex
	sets map[string]*broadcastSet
}{sets: make(map[string]*broadcastSet)}

func broadcastSetFor(code string) *broadcastSet {
	broadcasts.mu.Lock()
	defer broadcasts.mu.Unlock()
	bs, ok := broadcasts.sets[code]
	if !ok {
		bs = &broadcastSet{conns: make(map[string]*conn)}
		broadcasts.sets[code] = bs
	}
	return bs
}

func (bs *broadcastSet) register(c *conn) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.conns[c.playerID] = c
}

func (bs *broadcastSet) unregister(playerID string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	delete(bs.conns, playerID)
}

func (bs *broadcastSet) get(playerID string) (*conn, bool) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	c, ok := bs.conns[playerID]
	return c, ok
}

func (bs *broadcastSet) publish(room *remi.Room, msgType string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if room.Game == nil {
		return
	}
	for playerID, c := range bs.conns {
		view := room.Game.ViewFor(playerID)
		c.send(outboundMessage{Type: msgType, View: &view})
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	room, ok := s.room(code)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		http.Error(w, "playerId is required", http.StatusBadRequest)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("remi: upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	c := &conn{ws: ws, playerID: playerID}
	bs := broadcastSetFor(code)
	bs.register(c)
	defer bs.unregister(playerID)
	defer func() {
		_ = room.Leave(playerID)
		bs.publish(room, "player_left")
	}()

	bs.publish(room, "room_updated")

	for {
		var msg inboundMessage
		if err := ws.ReadJSON(&msg); err != nil {
			return
		}
		s.dispatch(room, bs, playerID, msg)
	}
}

func (s *Server) dispatch(room *remi.Room, bs *broadcastSet, playerID string, msg inboundMessage) {
	switch msg.Type {
	case msgTypeStartGame:
		if err := room.StartGame(); err != nil {
			if c, ok := bs.get(playerID); ok {
				c.send(outboundMessage{Type: "error", Error: err})
			}
			return
		}
		bs.publish(room, "game_started")

	case msgTypeStartHand:
		if err := room.StartNextHand(); err != nil {
			if c, ok := bs.get(playerID); ok {
				c.send(outboundMessage{Type: "error", Error: err})
			}
			return
		}
		bs.publish(room, "hand_started")

	case msgTypeReorderHand:
		var body reorderHandBody
		if jerr := json.Unmarshal(msg.Body, &body); jerr != nil {
			return
		}
		if err := room.ReorderHand(playerID, body.From, body.To); err != nil {
			if c, ok := bs.get(playerID); ok {
				c.send(outboundMessage{Type: "error", Error: err})
			}
			return
		}
		if c, ok := bs.get(playerID); ok {
			view := room.Game.ViewFor(playerID)
			c.send(outboundMessage{Type: "room_updated", View: &view})
		}

	case msgTypeAction:
		action, derr := remi.DeserializeAction(msg.Body)
		if derr != nil {
			return
		}
		if err := room.Execute(action); err != nil {
			if c, ok := bs.get(playerID); ok {
				c.send(outboundMessage{Type: "error", Error: err})
			}
			return
		}
		bs.publish(room, "game_updated")

	default:
		log.Printf("remi: unknown message type %q from %s", msg.Type, playerID)
	}
}
