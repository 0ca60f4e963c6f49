// Package server exposes Remi over HTTP and WebSocket: a gorilla/mux
// router for room lifecycle endpoints and a gorilla/websocket hub that
// pumps actions in and game views out of each room.
package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/ssveto/remi-backend/remi"
)

// Server owns the room registry and the HTTP router. One Server
// instance serves every room for the process's lifetime.
type Server struct {
	port string

	mu    sync.Mutex
	rooms map[string]*remi.Room

	router *mux.Router
}

// New builds a Server listening on port, wiring the room-lifecycle and
// WebSocket routes.
func New(port string) *Server {
	s := &Server{
		port:  port,
		rooms: make(map[string]*remi.Room),
	}
	s.router = mux.NewRouter()
	s.router.HandleFunc("/rooms", s.handleCreateRoom).Methods(http.MethodPost)
	s.router.HandleFunc("/rooms/{code}/join", s.handleJoinRoom).Methods(http.MethodPost)
	s.router.HandleFunc("/rooms/{code}/ws", s.handleWebSocket).Methods(http.MethodGet)
	return s
}

// Start blocks serving HTTP on s.port.
func (s *Server) Start() {
	addr := ":" + s.port
	log.Printf("remi: listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, s.router))
}

func (s *Server) room(code string) (*remi.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	return r, ok
}

func (s *Server) newRoom(maxPlayers int) *remi.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	var code string
	for {
		code = remi.NewRoomCode()
		if _, exists := s.rooms[code]; !exists {
			break
		}
	}
	r := remi.NewRoom(code, maxPlayers)
	s.rooms[code] = r
	return r
}
