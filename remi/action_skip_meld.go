package remi

import "fmt"

// ActionSkipMeld declines to lay or add any meld this turn, moving
// straight to the Discard phase. Laying or adding melds keeps the phase
// at Meld; the other way out of Meld is a Discard made directly from it.
type ActionSkipMeld struct{ act }

// NewActionSkipMeld builds the action for playerID.
func NewActionSkipMeld(playerID string) *ActionSkipMeld {
	return &ActionSkipMeld{act{ActionName: ActionNameSkipMeld, PlayerID: playerID}}
}

func (a *ActionSkipMeld) IsPossible(g *GameState) *Error {
	if g.Phase != PhaseMeld {
		return newErrf(ErrWrongPhase, "skip_meld requires meld phase, got %q", g.Phase)
	}
	if _, err := g.player(a.PlayerID); err != nil {
		return err
	}
	return nil
}

func (a *ActionSkipMeld) Run(g *GameState) *Error {
	if err := a.IsPossible(g); err != nil {
		return err
	}
	g.Phase = PhaseDiscard
	return nil
}

func (a *ActionSkipMeld) String() string {
	return fmt.Sprintf("player %s skips melding", a.PlayerID)
}
