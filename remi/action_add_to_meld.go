package remi

import "fmt"

// ActionAddToMeld appends one card from the acting player's hand onto an
// existing meld, owned by the acting player or another player.
type ActionAddToMeld struct {
	act
	CardID      int    `json:"cardId"`
	MeldOwnerID string `json:"meldOwnerId"`
	MeldIndex   int    `json:"meldIndex"`
}

// NewActionAddToMeld builds the action for playerID adding cardID onto
// meldOwnerID's meld at meldIndex.
func NewActionAddToMeld(playerID string, cardID int, meldOwnerID string, meldIndex int) *ActionAddToMeld {
	return &ActionAddToMeld{
		act:         act{ActionName: ActionNameAddToMeld, PlayerID: playerID},
		CardID:      cardID,
		MeldOwnerID: meldOwnerID,
		MeldIndex:   meldIndex,
	}
}

// extendedMeld tries to place card at the end of, then at the start of,
// meld.Cards, returning the first orientation that is still a valid
// meld. Sets are order-insensitive, so only the append is tried for them.
func extendedMeld(meld Meld, card Card) ([]Card, bool) {
	appended := append(append([]Card{}, meld.Cards...), card)
	if meld.Type == MeldTypeSet {
		if IsValidSet(appended) {
			return appended, true
		}
		return nil, false
	}
	if IsValidRun(appended) {
		return appended, true
	}
	prepended := append([]Card{card}, meld.Cards...)
	if IsValidRun(prepended) {
		return prepended, true
	}
	return nil, false
}

func (a *ActionAddToMeld) findMeld(g *GameState) (*Player, Meld, *Error) {
	owner, err := g.player(a.MeldOwnerID)
	if err != nil {
		return nil, Meld{}, err
	}
	if a.MeldIndex < 0 || a.MeldIndex >= len(owner.Melds) {
		return nil, Meld{}, newErrf(ErrMeldNotFound, "player %q has no meld at index %d", a.MeldOwnerID, a.MeldIndex)
	}
	return owner, owner.Melds[a.MeldIndex], nil
}

func (a *ActionAddToMeld) IsPossible(g *GameState) *Error {
	if g.Phase != PhaseMeld {
		return newErrf(ErrWrongPhase, "add_to_meld requires meld phase, got %q", g.Phase)
	}
	actor, err := g.player(a.PlayerID)
	if err != nil {
		return err
	}
	_, meld, merr := a.findMeld(g)
	if merr != nil {
		return merr
	}
	card, ok := FindCard(actor.Hand, a.CardID)
	if !ok {
		return newErrf(ErrCardNotInHand, "card %d is not in player %q's hand", a.CardID, a.PlayerID)
	}
	if a.MeldOwnerID != a.PlayerID && !actor.HasOpened {
		return newErr(ErrNotOpened, "player must have opened before adding to another player's meld")
	}
	if _, ok := extendedMeld(meld, card); !ok {
		return newErrf(ErrInvalidAddition, "card %v cannot extend meld %d", card, a.MeldIndex)
	}
	return nil
}

func (a *ActionAddToMeld) Run(g *GameState) *Error {
	if err := a.IsPossible(g); err != nil {
		return err
	}
	actor := g.Players[a.PlayerID]
	owner, meld, _ := a.findMeld(g)
	card, _ := FindCard(actor.Hand, a.CardID)
	extended, ok := extendedMeld(meld, card)
	if !ok {
		return newErrf(ErrInvalidAddition, "card %v cannot extend meld %d", card, a.MeldIndex)
	}

	hand, _ := RemoveCard(actor.Hand, a.CardID)
	actor.Hand = hand
	owner.Melds[a.MeldIndex].Cards = extended

	g.maybeGoOut(actor)
	return nil
}

func (a *ActionAddToMeld) String() string {
	return fmt.Sprintf("player %s adds card %d to %s's meld %d", a.PlayerID, a.CardID, a.MeldOwnerID, a.MeldIndex)
}
