package remi

import (
	"math/rand"
	"sync"
	"time"
)

const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewRoomCode generates a RoomCodeLength alphanumeric code (I, O, zero and
// one excluded to avoid ambiguous reads), the §6 "short alphanumeric code" a
// room is identified by.
func NewRoomCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	buf := make([]byte, RoomCodeLength)
	for i := range buf {
		buf[i] = roomCodeAlphabet[rng.Intn(len(roomCodeAlphabet))]
	}
	return string(buf)
}

// Room is the supplemented pre-game lobby and per-hand serialization
// domain described in SPEC_FULL.md: it owns the roster that accumulates
// before StartGame, and — once started — the one GameState that roster
// plays through, hand after hand. §5 requires one room's actions be
// serialized; Room.mu is that single mutual-exclusion primitive.
type Room struct {
	mu sync.Mutex

	Code       string
	MaxPlayers int

	roster      []string          // join order, pre-game
	displayName map[string]string // playerID -> display name
	connected   map[string]bool

	Game *GameState
}

// NewRoom creates an empty room. maxPlayers is clamped to
// [MinPlayers, MaxPlayersHardCap]; 0 selects the MaxPlayers default.
func NewRoom(code string, maxPlayers int) *Room {
	if maxPlayers <= 0 {
		maxPlayers = MaxPlayers
	}
	if maxPlayers < MinPlayers {
		maxPlayers = MinPlayers
	}
	if maxPlayers > MaxPlayersHardCap {
		maxPlayers = MaxPlayersHardCap
	}
	return &Room{
		Code:        code,
		MaxPlayers:  maxPlayers,
		displayName: make(map[string]string),
		connected:   make(map[string]bool),
	}
}

// Join adds playerID to the roster before the game has started.
func (r *Room) Join(playerID, displayName string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game != nil {
		return newErr(ErrInvalidGameState, "cannot join a room whose game has already started")
	}
	for _, id := range r.roster {
		if id == playerID {
			r.connected[playerID] = true
			return nil
		}
	}
	if len(r.roster) >= r.MaxPlayers {
		return newErrf(ErrInvalidGameState, "room %s is full (%d players)", r.Code, r.MaxPlayers)
	}
	r.roster = append(r.roster, playerID)
	r.displayName[playerID] = displayName
	r.connected[playerID] = true
	return nil
}

// Leave removes playerID from the pre-game roster, or simply marks them
// disconnected if the game has already started (the engine tracks
// Player.Connected rather than removing a seated player mid-hand).
func (r *Room) Leave(playerID string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game != nil {
		p, err := r.Game.player(playerID)
		if err != nil {
			return err
		}
		p.Connected = false
		r.connected[playerID] = false
		return nil
	}
	out := r.roster[:0]
	for _, id := range r.roster {
		if id != playerID {
			out = append(out, id)
		}
	}
	r.roster = out
	delete(r.displayName, playerID)
	delete(r.connected, playerID)
	return nil
}

// StartGame deals the first hand once enough players have joined.
func (r *Room) StartGame() *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game != nil {
		return newErr(ErrInvalidGameState, "game has already started")
	}
	if len(r.roster) < MinPlayers {
		return newErrf(ErrInvalidGameState, "need at least %d players, have %d", MinPlayers, len(r.roster))
	}

	g, err := NewGameState(r.roster)
	if err != nil {
		var e *Error
		if AsError(err, &e) {
			return e
		}
		return newErr(ErrInvalidGameState, err.Error())
	}
	for _, id := range r.roster {
		g.Players[id].DisplayName = r.displayName[id]
		g.Players[id].Connected = r.connected[id]
	}
	r.Game = g
	return nil
}

// Execute serializes a played Action against this room's GameState: one
// action is validated, applied and published to completion before the
// next is accepted (§5).
func (r *Room) Execute(a Action) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game == nil {
		return newErr(ErrInvalidGameState, "game has not started")
	}
	return r.Game.Execute(a)
}

// StartNextHand deals a fresh hand once the previous one reached
// GameOver, preserving cumulative scores (SPEC_FULL.md supplemented
// multi-hand flow).
func (r *Room) StartNextHand() *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game == nil {
		return newErr(ErrInvalidGameState, "game has not started")
	}
	if r.Game.Phase != PhaseGameOver {
		return newErr(ErrWrongPhase, "current hand has not ended")
	}
	r.Game.StartNextHand()
	return nil
}

// ReorderHand implements the §6 ReorderHand action: a pure, validation-
// free rearrangement of the acting player's own private hand. It never
// changes hand membership or size, and never affects any other
// invariant — SPEC_FULL.md's supplemented, presentation-only action.
func (r *Room) ReorderHand(playerID string, from, to int) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Game == nil {
		return newErr(ErrInvalidGameState, "game has not started")
	}
	p, err := r.Game.player(playerID)
	if err != nil {
		return err
	}
	n := len(p.Hand)
	if from < 0 || from >= n || to < 0 || to >= n {
		return newErrf(ErrCardNotInHand, "reorder indices [%d,%d] out of range for a %d-card hand", from, to, n)
	}
	card := p.Hand[from]
	hand := append(p.Hand[:from], p.Hand[from+1:]...)
	hand = append(hand[:to], append([]Card{card}, hand[to:]...)...)
	p.Hand = hand
	return nil
}
