package remi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame builds a GameState directly (bypassing the random deal) so
// scenarios can pin exact hands and piles.
func newTestGame(order []string, hands map[string][]Card) *GameState {
	g := &GameState{
		CurrentPlayerID: order[0],
		PlayerOrder:     append([]string{}, order...),
		Phase:           PhaseDraw,
		TurnNumber:      1,
		DrawPile:        &Pile{},
		DiscardPile:     &Pile{Cards: []Card{reg(Diamond, 2)}},
		Players:         make(map[string]*Player, len(order)),
		openingReq:      OpeningRequirement,
		maxHandSize:     MaxHandSize,
		maxPlayersHard:  MaxPlayersHardCap,
		StartedAt:       now(),
	}
	for _, id := range order {
		g.Players[id] = &Player{ID: id, Hand: append([]Card{}, hands[id]...)}
	}
	return g
}

func TestTurnSequenceDrawMeldDiscard(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 4)},
		"b": {reg(Heart, 9)},
	})
	g.DrawPile.AddCard(reg(Spade, 3))

	require.Nil(t, g.Execute(NewActionDrawFromDeck("a")))
	assert.Equal(t, PhaseMeld, g.Phase)
	assert.Len(t, g.Players["a"].Hand, 2)

	require.Nil(t, g.Execute(NewActionSkipMeld("a")))
	assert.Equal(t, PhaseDiscard, g.Phase)

	discardCard := g.Players["a"].Hand[0]
	require.Nil(t, g.Execute(NewActionDiscard("a", discardCard.ID)))
	assert.Equal(t, PhaseDraw, g.Phase)
	assert.Equal(t, "b", g.CurrentPlayerID)
	assert.Equal(t, 2, g.TurnNumber)
}

func TestNotYourTurnRejected(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 4)},
		"b": {reg(Heart, 9)},
	})
	g.DrawPile.AddCard(reg(Spade, 3))

	err := g.Execute(NewActionDrawFromDeck("b"))
	require.Error(t, err)
	assert.Equal(t, ErrNotYourTurn, err.Code)
}

func TestWrongPhaseRejected(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 4)},
		"b": {reg(Heart, 9)},
	})
	err := g.Execute(NewActionSkipMeld("a"))
	require.Error(t, err)
	assert.Equal(t, ErrWrongPhase, err.Code)
}

func TestOpeningLayRejectedBelowThreshold(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 2), reg(Spade, 2), reg(Club, 2)}, // scores 6, needs 51
		"b": {reg(Heart, 9)},
	})
	g.Phase = PhaseMeld
	ids := []int{g.Players["a"].Hand[0].ID, g.Players["a"].Hand[1].ID, g.Players["a"].Hand[2].ID}

	err := g.Execute(NewActionLayMelds("a", [][]int{ids}))
	require.Error(t, err)
	assert.Equal(t, ErrInsufficientPoints, err.Code)
	assert.False(t, g.Players["a"].HasOpened)
}

func TestOpeningLaySucceedsAtThreshold(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {
			reg(Heart, RankKing), reg(Spade, RankKing), reg(Club, RankKing), reg(Diamond, RankKing),
			reg(Heart, RankQueen), reg(Spade, RankQueen), reg(Club, RankQueen),
		},
		"b": {reg(Heart, 9)},
	})
	g.Phase = PhaseMeld
	hand := g.Players["a"].Hand
	kings := []int{hand[0].ID, hand[1].ID, hand[2].ID, hand[3].ID}
	queens := []int{hand[4].ID, hand[5].ID, hand[6].ID}

	require.Nil(t, g.Execute(NewActionLayMelds("a", [][]int{kings, queens})))
	assert.True(t, g.Players["a"].HasOpened)
	assert.Empty(t, g.Players["a"].Hand)
	assert.Len(t, g.Players["a"].Melds, 2)
}

func TestAddToMeldOnOtherPlayersMeldRequiresOpened(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 8)},
		"b": {reg(Heart, 9)},
	})
	g.Phase = PhaseMeld
	g.Players["b"].Melds = []Meld{{Type: MeldTypeRun, Cards: []Card{reg(Heart, 5), reg(Heart, 6), reg(Heart, 7)}, OwnerID: "b"}}

	err := g.Execute(NewActionAddToMeld("a", g.Players["a"].Hand[0].ID, "b", 0))
	require.Error(t, err)
	assert.Equal(t, ErrNotOpened, err.Code)

	g.Players["a"].HasOpened = true
	require.Nil(t, g.Execute(NewActionAddToMeld("a", g.Players["a"].Hand[0].ID, "b", 0)))
	assert.Len(t, g.Players["b"].Melds[0].Cards, 4)
}

func TestGoOutOnDiscardWithEmptyHand(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 5)},
		"b": {reg(Heart, 9)},
	})
	g.Phase = PhaseDiscard
	g.Players["a"].HasOpened = true

	require.Nil(t, g.Execute(NewActionDiscard("a", g.Players["a"].Hand[0].ID)))
	assert.Equal(t, PhaseGameOver, g.Phase)
	assert.Equal(t, "a", g.WinnerID)
}

func TestGoOutRequiresHavingOpened(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 5)},
		"b": {reg(Heart, 9)},
	})
	g.Phase = PhaseDiscard

	require.Nil(t, g.Execute(NewActionDiscard("a", g.Players["a"].Hand[0].ID)))
	assert.Equal(t, PhaseDraw, g.Phase)
	assert.NotEqual(t, PhaseGameOver, g.Phase)
}

func TestTakeFinishingCardThenCannotDiscardItSameTurn(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": make([]Card, InitialHandSize),
		"b": {reg(Heart, 9)},
	})
	fc := reg(Spade, 4)
	g.FinishingCard = &fc

	require.Nil(t, g.Execute(NewActionTakeFinishingCard("a")))
	assert.Equal(t, PhaseMeld, g.Phase)
	assert.True(t, g.FinishingCardClaimed)

	require.Nil(t, g.Execute(NewActionSkipMeld("a")))
	err := g.Execute(NewActionDiscard("a", fc.ID))
	require.Error(t, err)
	assert.Equal(t, ErrInvalidAddition, err.Code)
}

func TestDrawFromEmptyDeckReshufflesDiscard(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 4)},
		"b": {reg(Heart, 9)},
	})
	g.DiscardPile.Cards = append(g.DiscardPile.Cards, reg(Club, 5), reg(Club, 6), reg(Club, 7))

	require.Nil(t, g.Execute(NewActionDrawFromDeck("a")))
	assert.Len(t, g.Players["a"].Hand, 2)
	// the old discard top stays as the only remaining discard card
	assert.Len(t, g.DiscardPile.Cards, 1)
}

func TestDrawFromEmptyDeckAndDiscardFails(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 4)},
		"b": {reg(Heart, 9)},
	})
	g.DiscardPile.Cards = nil

	err := g.Execute(NewActionDrawFromDeck("a"))
	require.Error(t, err)
	assert.Equal(t, ErrEmptyDeck, err.Code)
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	original := NewActionLayMelds("a", [][]int{{1, 2, 3}})
	bs := SerializeAction(original)

	decoded, err := DeserializeAction(bs)
	require.NoError(t, err)
	lm, ok := decoded.(*ActionLayMelds)
	require.True(t, ok)
	assert.Equal(t, "a", lm.PlayerID)
	assert.Equal(t, original.MeldCardIDs, lm.MeldCardIDs)
}

func TestCheckConservationOnFreshDeal(t *testing.T) {
	g, err := NewGameState([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.Nil(t, g.CheckConservation())
}

func TestViewForHidesOtherHands(t *testing.T) {
	g := newTestGame([]string{"a", "b"}, map[string][]Card{
		"a": {reg(Heart, 4)},
		"b": {reg(Heart, 9), reg(Spade, 3)},
	})
	view := g.ViewFor("a")
	for _, pv := range view.Players {
		if pv.ID == "a" {
			assert.Len(t, pv.Hand, 1)
		} else {
			assert.Nil(t, pv.Hand)
			assert.Equal(t, 2, pv.HandSize)
		}
	}
}
