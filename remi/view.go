package remi

// PlayerView is the broadcast-safe projection of a Player: every viewer
// sees hand sizes for every player, but a player's actual Hand is only
// populated for the viewer's own entry.
type PlayerView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	HandSize    int    `json:"handSize"`
	Hand        []Card `json:"hand,omitempty"`
	Melds       []Meld `json:"melds"`
	HasOpened   bool   `json:"hasOpened"`
	Connected   bool   `json:"connected"`
	Score       int    `json:"score"`
	Deadwood    int    `json:"deadwood"`
}

// GameView is the externally observable game state: current player,
// phase, turn number, pile sizes, the discard top, the finishing card's
// claimed flag, and every player's view.
type GameView struct {
	HandNumber            int          `json:"handNumber"`
	CurrentPlayerID        string       `json:"currentPlayerId"`
	Phase                  Phase        `json:"phase"`
	TurnNumber             int          `json:"turnNumber"`
	DrawPileSize           int          `json:"drawPileSize"`
	DiscardTop             *Card        `json:"discardTop,omitempty"`
	FinishingCardClaimed   bool         `json:"finishingCardClaimed"`
	FinishingCardAvailable bool         `json:"finishingCardAvailable"`
	Players                []PlayerView `json:"players"`
	WinnerID               string       `json:"winnerId,omitempty"`
}

// ViewFor builds the GameView a given viewerID is authorised to see: only
// viewerID's own hand is populated. The server alone ever holds the full
// hand array; broadcast views carry only hand sizes plus the viewing
// player's own hand.
func (g *GameState) ViewFor(viewerID string) GameView {
	view := GameView{
		HandNumber:             g.HandNumber,
		CurrentPlayerID:        g.CurrentPlayerID,
		Phase:                  g.Phase,
		TurnNumber:             g.TurnNumber,
		DrawPileSize:           g.DrawPile.Size(),
		FinishingCardClaimed:   g.FinishingCardClaimed,
		FinishingCardAvailable: g.FinishingCard != nil && !g.FinishingCardClaimed,
		WinnerID:               g.WinnerID,
	}
	if top, ok := g.DiscardPile.TopCard(); ok {
		view.DiscardTop = &top
	}

	for _, id := range g.PlayerOrder {
		p := g.Players[id]
		pv := PlayerView{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			HandSize:    len(p.Hand),
			Melds:       p.Melds,
			HasOpened:   p.HasOpened,
			Connected:   p.Connected,
			Score:       p.Score,
			Deadwood:    p.Deadwood(),
		}
		if id == viewerID {
			pv.Hand = append([]Card{}, p.Hand...)
		}
		view.Players = append(view.Players, pv)
	}
	return view
}
