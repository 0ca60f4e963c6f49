package remi

import "fmt"

// ActionLayMelds lays down one or more melds in a single action (§4.5
// LayMelds). MeldCardIDs holds one slice of card IDs per meld, in the
// order those cards should appear in the laid meld (order is semantic
// for Runs, §3).
type ActionLayMelds struct {
	act
	MeldCardIDs [][]int `json:"meldCardIds"`
}

// NewActionLayMelds builds the action for playerID laying meldCardIDs.
func NewActionLayMelds(playerID string, meldCardIDs [][]int) *ActionLayMelds {
	return &ActionLayMelds{act: act{ActionName: ActionNameLayMelds, PlayerID: playerID}, MeldCardIDs: meldCardIDs}
}

// resolveMelds resolves each slice of card IDs against the player's hand,
// returning the ordered Card slices (in request order) or an error.
func (a *ActionLayMelds) resolveMelds(hand []Card) ([][]Card, *Error) {
	if len(a.MeldCardIDs) == 0 {
		return nil, newErr(ErrInvalidMeld, "lay_melds requires at least one meld")
	}
	seen := make(map[int]bool)
	resolved := make([][]Card, 0, len(a.MeldCardIDs))
	for _, ids := range a.MeldCardIDs {
		cards := make([]Card, 0, len(ids))
		for _, id := range ids {
			if seen[id] {
				return nil, newErrf(ErrDuplicateCards, "card %d used more than once across the laid melds", id)
			}
			seen[id] = true
			card, ok := FindCard(hand, id)
			if !ok {
				return nil, newErrf(ErrCardNotInHand, "card %d is not in hand", id)
			}
			cards = append(cards, card)
		}
		resolved = append(resolved, cards)
	}
	return resolved, nil
}

func (a *ActionLayMelds) IsPossible(g *GameState) *Error {
	if g.Phase != PhaseMeld {
		return newErrf(ErrWrongPhase, "lay_melds requires meld phase, got %q", g.Phase)
	}
	p, err := g.player(a.PlayerID)
	if err != nil {
		return err
	}

	meldCards, rerr := a.resolveMelds(p.Hand)
	if rerr != nil {
		return rerr
	}

	total := 0
	for _, cards := range meldCards {
		if _, ok := GetMeldType(cards); !ok {
			return newErrf(ErrInvalidMeld, "%v is not a valid set or run", cards)
		}
		meld, _ := NewMeld(cards, p.ID)
		total += CalculateMeldScore(meld)
	}

	if !p.HasOpened && total < g.openingReq {
		return newErrf(ErrInsufficientPoints, "opening lay scores %d, needs at least %d", total, g.openingReq)
	}
	return nil
}

func (a *ActionLayMelds) Run(g *GameState) *Error {
	if err := a.IsPossible(g); err != nil {
		return err
	}
	p := g.Players[a.PlayerID]
	meldCards, rerr := a.resolveMelds(p.Hand)
	if rerr != nil {
		return rerr
	}

	hand := p.Hand
	for _, cards := range meldCards {
		for _, c := range cards {
			hand, _ = RemoveCard(hand, c.ID)
		}
	}
	p.Hand = hand

	for _, cards := range meldCards {
		meld, _ := NewMeld(cards, p.ID)
		p.Melds = append(p.Melds, meld)
	}
	p.HasOpened = true

	g.maybeGoOut(p)
	return nil
}

func (a *ActionLayMelds) String() string {
	return fmt.Sprintf("player %s lays %d meld(s)", a.PlayerID, len(a.MeldCardIDs))
}
