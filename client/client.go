package client

import (
	"github.com/nsf/termbox-go"

	"github.com/ssveto/remi-backend/remi"
)

// Player runs the terminal client until the user quits or the
// connection drops: q quits, d draws from the deck, c draws from the
// discard pile, f claims the finishing card, k skips melding, space
// toggles a card into the pending meld, m lays the pending meld, enter
// discards the highlighted card, left/right move the highlight.
func Player(address, roomCode, playerID string) error {
	conn, err := Dial(address, roomCode, playerID)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	var last remi.GameView
	var cursor int
	pending := make(map[int]bool) // hand index -> toggled into the pending meld

	redraw := func() { render(last, playerID) }

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	for {
		select {
		case view, ok := <-conn.Views:
			if !ok {
				return nil
			}
			last = view
			if cursor >= len(ownHand(last, playerID)) {
				cursor = 0
			}
			redraw()

		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			hand := ownHand(last, playerID)
			switch {
			case ev.Ch == 'q':
				return nil
			case ev.Ch == 'd':
				_ = conn.SendAction(remi.NewActionDrawFromDeck(playerID))
			case ev.Ch == 'c':
				_ = conn.SendAction(remi.NewActionDrawFromDiscard(playerID))
			case ev.Ch == 'f':
				_ = conn.SendAction(remi.NewActionTakeFinishingCard(playerID))
			case ev.Ch == 'k':
				_ = conn.SendAction(remi.NewActionSkipMeld(playerID))
			case ev.Ch == ' ':
				if cursor < len(hand) {
					pending[cursor] = !pending[cursor]
				}
			case ev.Ch == 'm':
				ids := pendingIDs(hand, pending)
				if len(ids) > 0 {
					_ = conn.SendAction(remi.NewActionLayMelds(playerID, [][]int{ids}))
				}
				pending = make(map[int]bool)
			case ev.Key == termbox.KeyEnter:
				if cursor < len(hand) {
					_ = conn.SendAction(remi.NewActionDiscard(playerID, hand[cursor].ID))
				}
			case ev.Key == termbox.KeyArrowLeft:
				if cursor > 0 {
					cursor--
				}
			case ev.Key == termbox.KeyArrowRight:
				if cursor < len(hand)-1 {
					cursor++
				}
			}
		}
	}
}

func ownHand(view remi.GameView, playerID string) []remi.Card {
	for _, p := range view.Players {
		if p.ID == playerID {
			return p.Hand
		}
	}
	return nil
}

func pendingIDs(hand []remi.Card, pending map[int]bool) []int {
	var ids []int
	for i, c := range hand {
		if pending[i] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
