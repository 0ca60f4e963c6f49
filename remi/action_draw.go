package remi

import "fmt"

// ActionDrawFromDeck draws the top card of the draw pile into the
// acting player's hand.
type ActionDrawFromDeck struct{ act }

// NewActionDrawFromDeck builds the action for playerID.
func NewActionDrawFromDeck(playerID string) *ActionDrawFromDeck {
	return &ActionDrawFromDeck{act{ActionName: ActionNameDrawFromDeck, PlayerID: playerID}}
}

func (a *ActionDrawFromDeck) canDraw(g *GameState) bool {
	if g.DrawPile.Size() > 0 {
		return true
	}
	return len(g.DiscardPile.Cards) > 1
}

func (a *ActionDrawFromDeck) IsPossible(g *GameState) *Error {
	if g.Phase != PhaseDraw {
		return newErrf(ErrWrongPhase, "draw_from_deck requires draw phase, got %q", g.Phase)
	}
	p, err := g.player(a.PlayerID)
	if err != nil {
		return err
	}
	if !a.canDraw(g) {
		return newErr(ErrEmptyDeck, "draw pile is empty and discard pile has nothing to reshuffle")
	}
	if len(p.Hand) >= g.maxHandSize {
		return newErrf(ErrHandFull, "hand already has %d cards", len(p.Hand))
	}
	return nil
}

func (a *ActionDrawFromDeck) Run(g *GameState) *Error {
	if err := a.IsPossible(g); err != nil {
		return err
	}
	p := g.Players[a.PlayerID]
	if g.DrawPile.IsEmpty() {
		g.reshuffleDrawPile()
	}
	card, ok := g.DrawPile.DrawCard()
	if !ok {
		return newErr(ErrEmptyDeck, "draw pile emptied between validation and apply")
	}
	p.Hand = append(p.Hand, card)
	g.Phase = PhaseMeld
	return nil
}

func (a *ActionDrawFromDeck) String() string {
	return fmt.Sprintf("player %s draws from the deck", a.PlayerID)
}

// ActionDrawFromDiscard draws the discard pile's top card into the
// acting player's hand (§4.5 DrawFromDiscard).
type ActionDrawFromDiscard struct{ act }

// NewActionDrawFromDiscard builds the action for playerID.
func NewActionDrawFromDiscard(playerID string) *ActionDrawFromDiscard {
	return &ActionDrawFromDiscard{act{ActionName: ActionNameDrawFromDiscard, PlayerID: playerID}}
}

func (a *ActionDrawFromDiscard) IsPossible(g *GameState) *Error {
	if g.Phase != PhaseDraw {
		return newErrf(ErrWrongPhase, "draw_from_discard requires draw phase, got %q", g.Phase)
	}
	p, err := g.player(a.PlayerID)
	if err != nil {
		return err
	}
	if _, ok := g.DiscardPile.TopCard(); !ok {
		return newErr(ErrEmptyDiscard, "discard pile is empty")
	}
	if len(p.Hand) >= g.maxHandSize {
		return newErrf(ErrHandFull, "hand already has %d cards", len(p.Hand))
	}
	return nil
}

func (a *ActionDrawFromDiscard) Run(g *GameState) *Error {
	if err := a.IsPossible(g); err != nil {
		return err
	}
	p := g.Players[a.PlayerID]
	card, ok := g.DiscardPile.DrawCard()
	if !ok {
		return newErr(ErrEmptyDiscard, "discard pile emptied between validation and apply")
	}
	p.Hand = append(p.Hand, card)
	g.Phase = PhaseMeld
	return nil
}

func (a *ActionDrawFromDiscard) String() string {
	return fmt.Sprintf("player %s draws from the discard pile", a.PlayerID)
}
