package remi

import "fmt"

// ActionTakeFinishingCard claims the dedicated finishing card set aside at
// deal time, in place of drawing (§4.5 TakeFinishingCard). It is the
// one-shot alternative to drawing described in the glossary, available
// only to an un-opened player during the Draw phase.
type ActionTakeFinishingCard struct{ act }

// NewActionTakeFinishingCard builds the action for playerID.
func NewActionTakeFinishingCard(playerID string) *ActionTakeFinishingCard {
	return &ActionTakeFinishingCard{act{ActionName: ActionNameTakeFinishing, PlayerID: playerID}}
}

func (a *ActionTakeFinishingCard) IsPossible(g *GameState) *Error {
	if g.Phase != PhaseDraw {
		return newErrf(ErrWrongPhase, "take_finishing_card requires draw phase, got %q", g.Phase)
	}
	p, err := g.player(a.PlayerID)
	if err != nil {
		return err
	}
	if g.FinishingCard == nil || g.FinishingCardClaimed {
		return newErr(ErrNoFinishingCard, "finishing card already claimed or was never dealt")
	}
	if p.HasOpened {
		return newErr(ErrAlreadyOpened, "only a player who has not opened may claim the finishing card")
	}
	if len(p.Hand) != InitialHandSize {
		return newErrf(ErrInvalidHandSize, "finishing card requires a %d-card hand, got %d", InitialHandSize, len(p.Hand))
	}
	return nil
}

func (a *ActionTakeFinishingCard) Run(g *GameState) *Error {
	if err := a.IsPossible(g); err != nil {
		return err
	}
	p := g.Players[a.PlayerID]
	p.Hand = append(p.Hand, *g.FinishingCard)
	g.FinishingCardClaimed = true
	g.finishingCardTakenThisTurn = true
	g.Phase = PhaseMeld
	return nil
}

func (a *ActionTakeFinishingCard) String() string {
	return fmt.Sprintf("player %s claims the finishing card", a.PlayerID)
}
