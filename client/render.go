package client

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/ssveto/remi-backend/remi"
)

// drawLine writes s starting at (x, y), advancing by each rune's display
// width so wide glyphs never overlap the next column — the reason a
// terminal renderer reaches for go-runewidth instead of counting runes.
func drawLine(x, y int, fg, bg termbox.Attribute, s string) int {
	cx := x
	for _, r := range s {
		termbox.SetCell(cx, y, r, fg, bg)
		cx += runewidth.RuneWidth(r)
	}
	return cx
}

func cardLabel(c remi.Card) string {
	return c.String()
}

// render paints one GameView: the pile sizes and discard top, the
// current turn and phase, then every player's row — the viewer's own
// hand spelled out, everyone else's just a card count.
func render(view remi.GameView, selfID string) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	y := 0
	drawLine(0, y, termbox.ColorWhite, termbox.ColorDefault,
		fmt.Sprintf("Remi — hand %d, turn %d, phase %s", view.HandNumber, view.TurnNumber, view.Phase))
	y++
	drawLine(0, y, termbox.ColorWhite, termbox.ColorDefault,
		fmt.Sprintf("draw pile: %d cards", view.DrawPileSize))
	y++
	if view.DiscardTop != nil {
		drawLine(0, y, termbox.ColorWhite, termbox.ColorDefault,
			fmt.Sprintf("discard top: %s", cardLabel(*view.DiscardTop)))
	} else {
		drawLine(0, y, termbox.ColorWhite, termbox.ColorDefault, "discard pile: empty")
	}
	y++
	if view.FinishingCardAvailable {
		drawLine(0, y, termbox.ColorYellow, termbox.ColorDefault, "finishing card: available")
		y++
	}
	y++

	for _, p := range view.Players {
		fg := termbox.ColorWhite
		if p.ID == view.CurrentPlayerID {
			fg = termbox.ColorGreen
		}
		label := fmt.Sprintf("%-12s score=%-4d deadwood=%-3d", p.DisplayName, p.Score, p.Deadwood)
		if !p.Connected {
			label += " (disconnected)"
		}
		drawLine(0, y, fg, termbox.ColorDefault, label)
		y++

		if p.ID == selfID {
			hand := ""
			for i, c := range p.Hand {
				if i > 0 {
					hand += " "
				}
				hand += cardLabel(c)
			}
			drawLine(2, y, termbox.ColorCyan, termbox.ColorDefault, "hand: "+hand)
		} else {
			drawLine(2, y, termbox.ColorDefault, termbox.ColorDefault, fmt.Sprintf("hand: %d cards", p.HandSize))
		}
		y++

		for mi, m := range p.Melds {
			melded := ""
			for i, c := range m.Cards {
				if i > 0 {
					melded += " "
				}
				melded += cardLabel(c)
			}
			drawLine(2, y, termbox.ColorMagenta, termbox.ColorDefault, fmt.Sprintf("meld[%d] %s: %s", mi, m.Type, melded))
			y++
		}
		y++
	}

	if view.WinnerID != "" {
		drawLine(0, y, termbox.ColorRed, termbox.ColorDefault, "winner: "+view.WinnerID)
	}

	termbox.Flush()
}
