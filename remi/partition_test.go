package remi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionMeldsCoversEverythingWhenClean(t *testing.T) {
	cards := []Card{
		reg(Heart, 5), reg(Spade, 5), reg(Club, 5),
		reg(Diamond, 1), reg(Diamond, 2), reg(Diamond, 3),
	}
	melds := PartitionMelds(cards)
	total := 0
	for _, m := range melds {
		total += len(m.Cards)
	}
	assert.Equal(t, 6, total)
	assert.Len(t, melds, 2)
}

func TestPartitionMeldsSkipsDeadwood(t *testing.T) {
	cards := []Card{
		reg(Heart, 9), // deadwood, no partner
		reg(Heart, 5), reg(Spade, 5), reg(Club, 5),
	}
	melds := PartitionMelds(cards)
	total := 0
	for _, m := range melds {
		total += len(m.Cards)
	}
	assert.Equal(t, 3, total)
	require.Len(t, melds, 1)
	assert.Equal(t, MeldTypeSet, melds[0].Type)
}

func TestPartitionMeldsPrefersMoreCardsOverMoreMelds(t *testing.T) {
	// A 6-card run can be read as one 6-card run (6 cards, 1 meld) or, if
	// a smaller split happened to also validate, the DP must prefer
	// covering all 6 cards.
	cards := []Card{
		reg(Heart, 1), reg(Heart, 2), reg(Heart, 3),
		reg(Heart, 4), reg(Heart, 5), reg(Heart, 6),
	}
	melds := PartitionMelds(cards)
	total := 0
	for _, m := range melds {
		total += len(m.Cards)
	}
	assert.Equal(t, 6, total)
}

func TestPartitionMeldsEmptySelection(t *testing.T) {
	assert.Empty(t, PartitionMelds(nil))
}

func TestFindBestCombinationNonContiguous(t *testing.T) {
	// Cards arranged so the Set is not contiguous in input order; the
	// combinatorial hint-finder (unlike the DP) may still recover it.
	cards := []Card{
		reg(Heart, 5), reg(Diamond, 9), reg(Spade, 5), reg(Club, 9), reg(Club, 5),
	}
	melds := FindBestCombination(cards)
	require.NotEmpty(t, melds)
	for _, m := range melds {
		ok := IsValidSet(m.Cards) || IsValidRun(m.Cards)
		assert.True(t, ok)
	}
}

func TestFindBestCombinationNoOverlap(t *testing.T) {
	cards := []Card{
		reg(Heart, 5), reg(Spade, 5), reg(Club, 5), reg(Diamond, 5),
	}
	melds := FindBestCombination(cards)
	seen := make(map[int]bool)
	for _, m := range melds {
		for _, c := range m.Cards {
			require.False(t, seen[c.ID])
			seen[c.ID] = true
		}
	}
}
