package remi

import "fmt"

// Action names, mirroring §6's inbound action surface for the
// hand-scoped subset the turn machine itself enforces. Room-lifecycle
// actions (CreateRoom, JoinRoom, LeaveRoom, StartGame) live in room.go.
const (
	ActionNameDrawFromDeck     = "draw_from_deck"
	ActionNameDrawFromDiscard  = "draw_from_discard"
	ActionNameTakeFinishing    = "take_finishing_card"
	ActionNameLayMelds         = "lay_melds"
	ActionNameAddToMeld        = "add_to_meld"
	ActionNameSkipMeld         = "skip_meld"
	ActionNameDiscard          = "discard"
)

// Action is one player-initiated move the turn machine can validate and
// apply. IsPossible must never mutate g; Run assumes IsPossible has
// already returned nil and applies the action's effect in full or not at
// all (§5: "either fully committed or fully rejected").
type Action interface {
	Name() string
	GetPlayerID() string
	IsPossible(g *GameState) *Error
	Run(g *GameState) *Error
	fmt.Stringer
}

// act is the shared embed every concrete action carries, mirroring the
// teacher's own act/Action split.
type act struct {
	ActionName string `json:"name"`
	PlayerID   string `json:"playerId"`
}

func (a act) Name() string        { return a.ActionName }
func (a act) GetPlayerID() string { return a.PlayerID }

// Execute is the Move Validator / Turn State Machine's single entry
// point (§4.5): it runs the integrity guards, checks turn ownership,
// asks the action whether it is possible, and only then applies it. On
// any rejection the game state is left completely untouched.
func (g *GameState) Execute(a Action) *Error {
	if err := g.CheckIntegrity(); err != nil {
		return err
	}
	if g.Phase == PhaseGameOver {
		return newErr(ErrWrongPhase, "hand has already ended")
	}
	if a.GetPlayerID() != g.CurrentPlayerID {
		return newErrf(ErrNotYourTurn, "it is %q's turn, not %q", g.CurrentPlayerID, a.GetPlayerID())
	}
	if err := a.IsPossible(g); err != nil {
		return err
	}
	if err := a.Run(g); err != nil {
		return err
	}
	g.UpdatedAt = now()
	return nil
}

// maybeGoOut implements the go-out transition shared by LayMelds and
// AddToMeld (§4.5): if the acting player's hand is now empty and they
// have opened (possibly by this very action), the hand ends.
func (g *GameState) maybeGoOut(p *Player) {
	if len(p.Hand) == 0 && p.HasOpened {
		g.Phase = PhaseGameOver
		g.WinnerID = p.ID
	}
}
