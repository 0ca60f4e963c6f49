package remi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardPointValue(t *testing.T) {
	assert.Equal(t, 10, Card{Suit: Heart, Rank: RankAce}.PointValue())
	assert.Equal(t, 7, Card{Suit: Heart, Rank: 7}.PointValue())
	assert.Equal(t, 10, Card{Suit: Heart, Rank: RankJack}.PointValue())
	assert.Equal(t, 10, Card{Suit: Heart, Rank: RankQueen}.PointValue())
	assert.Equal(t, 10, Card{Suit: Heart, Rank: RankKing}.PointValue())
	assert.Equal(t, 0, Card{Suit: JokerRed}.PointValue())
}

func TestCardEqualIgnoresFaceUp(t *testing.T) {
	a := Card{ID: 4, Suit: Heart, Rank: 5, FaceUp: true}
	b := Card{ID: 4, Suit: Heart, Rank: 5, FaceUp: false}
	assert.True(t, a.Equal(b))
}

func TestCardEqualDistinguishesDuplicateDecks(t *testing.T) {
	a := Card{ID: 4, Suit: Heart, Rank: 5}
	b := Card{ID: 58, Suit: Heart, Rank: 5}
	assert.False(t, a.Equal(b))
}

func TestIsJoker(t *testing.T) {
	assert.True(t, Card{Suit: JokerRed}.IsJoker())
	assert.True(t, Card{Suit: JokerBlack}.IsJoker())
	assert.False(t, Card{Suit: Heart, Rank: 5}.IsJoker())
}

func TestFindRemoveContainsCard(t *testing.T) {
	hand := []Card{{ID: 1, Suit: Heart, Rank: 5}, {ID: 2, Suit: Spade, Rank: 9}}

	assert.True(t, ContainsCard(hand, 2))
	assert.False(t, ContainsCard(hand, 99))

	card, ok := FindCard(hand, 1)
	require.True(t, ok)
	assert.Equal(t, 5, card.Rank)

	_, ok = FindCard(hand, 99)
	assert.False(t, ok)

	remaining, removed := RemoveCard(hand, 1)
	require.True(t, removed)
	assert.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].ID)

	_, removed = RemoveCard(hand, 99)
	assert.False(t, removed)
}

func TestHasDuplicateID(t *testing.T) {
	assert.False(t, HasDuplicateID([]Card{{ID: 1}, {ID: 2}}))
	assert.True(t, HasDuplicateID([]Card{{ID: 1}, {ID: 1}}))
}

func TestNewDeckIsConserved(t *testing.T) {
	d := newDeck()
	require.Equal(t, TotalCards, d.size())
	seen := make(map[int]bool, TotalCards)
	for _, c := range d.cards {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, TotalCards)
}

func TestDeckDrawExhausts(t *testing.T) {
	d := newDeck()
	for i := 0; i < TotalCards; i++ {
		_, ok := d.draw()
		require.True(t, ok)
	}
	_, ok := d.draw()
	assert.False(t, ok)
	assert.Equal(t, 0, d.size())
}

func TestPileDrawAndTop(t *testing.T) {
	p := &Pile{}
	assert.True(t, p.IsEmpty())
	p.AddCard(Card{ID: 1})
	p.AddCard(Card{ID: 2})
	top, ok := p.TopCard()
	require.True(t, ok)
	assert.Equal(t, 2, top.ID)

	card, ok := p.DrawCard()
	require.True(t, ok)
	assert.Equal(t, 2, card.ID)
	assert.Equal(t, 1, p.Size())
}
