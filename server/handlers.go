package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type createRoomRequest struct {
	MaxPlayers int `json:"maxPlayers"`
}

type createRoomResponse struct {
	Code string `json:"code"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // empty body selects the default MaxPlayers

	room := s.newRoom(req.MaxPlayers)
	writeJSON(w, http.StatusCreated, createRoomResponse{Code: room.Code})
}

type joinRoomRequest struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	room, ok := s.room(code)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := room.Join(req.PlayerID, req.DisplayName); err != nil {
		writeJSON(w, http.StatusConflict, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
