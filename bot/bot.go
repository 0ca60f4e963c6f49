// Package bot implements a simple deterministic Remi player: given a
// GameView, ChooseAction decides the next move using the same meld
// partitioner the rules engine itself uses to validate lays.
package bot

import (
	"sort"

	"github.com/ssveto/remi-backend/remi"
)

// Bot chooses the next action for a player given their current view of
// the game. Implementations must be pure: the same view always yields
// the same action.
type Bot interface {
	ChooseAction(view remi.GameView, playerID string) remi.Action
}

// Greedy is a deterministic bot: it draws from the discard pile only
// when doing so improves its best partition, lays every meld its
// partitioner finds once it can open (or once it has already opened),
// and otherwise discards its highest-value unmelded card.
type Greedy struct{}

// New returns a Greedy bot.
func New() *Greedy { return &Greedy{} }

func (b *Greedy) ChooseAction(view remi.GameView, playerID string) remi.Action {
	self := findSelf(view, playerID)
	if self == nil {
		return remi.NewActionSkipMeld(playerID)
	}

	switch view.Phase {
	case remi.PhaseDraw:
		return b.chooseDraw(view, *self, playerID)
	case remi.PhaseMeld:
		return b.chooseMeld(*self, playerID)
	case remi.PhaseDiscard:
		return b.chooseDiscard(*self, playerID)
	default:
		return remi.NewActionSkipMeld(playerID)
	}
}

func findSelf(view remi.GameView, playerID string) *remi.PlayerView {
	for _, p := range view.Players {
		if p.ID == playerID {
			return &p
		}
	}
	return nil
}

func (b *Greedy) chooseDraw(view remi.GameView, self remi.PlayerView, playerID string) remi.Action {
	if view.FinishingCardAvailable && !self.HasOpened {
		return remi.NewActionTakeFinishingCard(playerID)
	}
	if view.DiscardTop == nil {
		return remi.NewActionDrawFromDeck(playerID)
	}

	withoutDiscard := remi.PartitionMelds(self.Hand)
	withDiscard := remi.PartitionMelds(append(append([]remi.Card{}, self.Hand...), *view.DiscardTop))
	if coveredCards(withDiscard) > coveredCards(withoutDiscard) {
		return remi.NewActionDrawFromDiscard(playerID)
	}
	return remi.NewActionDrawFromDeck(playerID)
}

func (b *Greedy) chooseMeld(self remi.PlayerView, playerID string) remi.Action {
	melds := remi.PartitionMelds(self.Hand)
	if len(melds) == 0 {
		return remi.NewActionSkipMeld(playerID)
	}

	total := 0
	ids := make([][]int, 0, len(melds))
	for _, m := range melds {
		total += remi.CalculateMeldScore(m)
		meldIDs := make([]int, len(m.Cards))
		for i, c := range m.Cards {
			meldIDs[i] = c.ID
		}
		ids = append(ids, meldIDs)
	}

	if !self.HasOpened && total < remi.OpeningRequirement {
		return remi.NewActionSkipMeld(playerID)
	}
	return remi.NewActionLayMelds(playerID, ids)
}

func (b *Greedy) chooseDiscard(self remi.PlayerView, playerID string) remi.Action {
	if len(self.Hand) == 0 {
		return remi.NewActionSkipMeld(playerID)
	}
	melded := make(map[int]bool)
	for _, m := range remi.PartitionMelds(self.Hand) {
		for _, c := range m.Cards {
			melded[c.ID] = true
		}
	}
	var hand []remi.Card
	for _, c := range self.Hand {
		if !melded[c.ID] {
			hand = append(hand, c)
		}
	}
	if len(hand) == 0 {
		hand = append([]remi.Card{}, self.Hand...)
	}
	sort.Slice(hand, func(i, j int) bool { return hand[i].PointValue() > hand[j].PointValue() })
	return remi.NewActionDiscard(playerID, hand[0].ID)
}

func coveredCards(melds []remi.Meld) int {
	n := 0
	for _, m := range melds {
		n += len(m.Cards)
	}
	return n
}
