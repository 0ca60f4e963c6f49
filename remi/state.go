package remi

import "time"

// Phase is one of the four literal turn-machine states from §4.5.
type Phase string

const (
	PhaseDraw     Phase = "draw"
	PhaseMeld     Phase = "meld"
	PhaseDiscard  Phase = "discard"
	PhaseGameOver Phase = "game_over"
)

func (p Phase) valid() bool {
	switch p {
	case PhaseDraw, PhaseMeld, PhaseDiscard, PhaseGameOver:
		return true
	}
	return false
}

// Game constants, §6. OpeningRequirement and MaxHandSize can be
// overridden per game via the functional options passed to NewGameState;
// MaxPlayers is chosen per room by NewRoom. The others are fixed.
const (
	MinPlayers         = 2
	MaxPlayers         = 4
	MaxPlayersHardCap  = 6
	InitialHandSize    = 14
	MaxHandSize        = 15
	OpeningRequirement = 51
	TurnTimeout        = 60 * time.Second
	RoomCodeLength     = 6
	ReconnectTimeout   = 30 * time.Second
)

// Player is the authoritative, server-side view of one participant: it
// carries the full hand. Broadcast views (PlayerView) carry only the
// viewing player's own hand plus everyone else's hand size.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Hand        []Card `json:"-"`
	Melds       []Meld `json:"melds"`
	HasOpened   bool   `json:"hasOpened"`
	Connected   bool   `json:"connected"`
	Score       int    `json:"score"`
}

// Deadwood sums the point values of cards still in hand (§ glossary).
func (p *Player) Deadwood() int {
	total := 0
	for _, c := range p.Hand {
		total += c.PointValue()
	}
	return total
}

// GameState is the authoritative, mutable state of one hand of Remi. It
// is created at deal time and mutates only through validated actions
// (see actions.go), reaching PhaseGameOver when a player goes out.
type GameState struct {
	HandNumber           int
	CurrentPlayerID      string
	PlayerOrder          []string
	Phase                Phase
	TurnNumber           int
	DrawPile             *Pile
	DiscardPile          *Pile
	FinishingCard        *Card
	FinishingCardClaimed bool
	// finishingCardTakenThisTurn is set for the remainder of the turn the
	// finishing card was claimed in, so Discard can reject discarding it
	// back out in the same turn (§4.5's DiscardCard precondition).
	finishingCardTakenThisTurn bool

	Players map[string]*Player

	WinnerID string

	StartedAt time.Time
	UpdatedAt time.Time

	deck           *deck
	openingReq     int
	maxHandSize    int
	maxPlayersHard int
}

// GameStateOption configures a GameState at construction time.
type GameStateOption func(*GameState)

// WithOpeningRequirement overrides the default 51-point opening threshold.
func WithOpeningRequirement(points int) GameStateOption {
	return func(g *GameState) { g.openingReq = points }
}

// WithMaxHandSize overrides the default 15-card hand cap.
func WithMaxHandSize(size int) GameStateOption {
	return func(g *GameState) { g.maxHandSize = size }
}

// NewGameState deals a fresh hand to playerIDs (2..6 players, in seating
// order) and returns the authoritative state: a finishing card set aside
// before any hand is dealt (§9(b)), InitialHandSize cards per player, and
// one card flipped onto the discard pile from what remains.
func NewGameState(playerIDs []string, opts ...GameStateOption) (*GameState, error) {
	if len(playerIDs) < MinPlayers || len(playerIDs) > MaxPlayersHardCap {
		return nil, newErrf(ErrInvalidGameState, "player count %d out of range [%d,%d]", len(playerIDs), MinPlayers, MaxPlayersHardCap)
	}

	g := &GameState{
		HandNumber:     1,
		PlayerOrder:    append([]string{}, playerIDs...),
		Players:        make(map[string]*Player, len(playerIDs)),
		openingReq:     OpeningRequirement,
		maxHandSize:    MaxHandSize,
		maxPlayersHard: MaxPlayersHardCap,
		StartedAt:      now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, id := range playerIDs {
		g.Players[id] = &Player{ID: id}
	}

	g.dealHand()
	return g, nil
}

// dealHand (re)shuffles a fresh deck, sets aside the finishing card, deals
// InitialHandSize cards to every player in seating order, and flips the
// next card onto the discard pile.
func (g *GameState) dealHand() {
	g.deck = newDeck()

	if card, ok := g.deck.draw(); ok {
		fc := card
		g.FinishingCard = &fc
	}
	g.FinishingCardClaimed = false
	g.finishingCardTakenThisTurn = false

	for _, id := range g.PlayerOrder {
		p := g.Players[id]
		p.Hand = nil
		p.Melds = nil
		p.HasOpened = false
		for i := 0; i < InitialHandSize; i++ {
			if card, ok := g.deck.draw(); ok {
				p.Hand = append(p.Hand, card)
			}
		}
	}

	g.DrawPile = &Pile{}
	g.DiscardPile = &Pile{}
	if card, ok := g.deck.draw(); ok {
		g.DiscardPile.AddCard(card)
	}
	g.DrawPile.Cards = append(g.DrawPile.Cards, g.deck.cards...)
	g.deck.cards = nil

	g.CurrentPlayerID = g.PlayerOrder[0]
	g.Phase = PhaseDraw
	g.TurnNumber = 1
	g.UpdatedAt = now()
}

// StartNextHand advances HandNumber, rotates who acts first, and re-deals
// — the supplemented multi-hand cumulative-scoring flow (SPEC_FULL.md).
// Player.Score is preserved across hands.
func (g *GameState) StartNextHand() {
	g.HandNumber++
	g.PlayerOrder = rotate(g.PlayerOrder)
	g.dealHand()
}

func rotate(order []string) []string {
	if len(order) == 0 {
		return order
	}
	out := make([]string, len(order))
	copy(out, order[1:])
	out[len(out)-1] = order[0]
	return out
}

func (g *GameState) nextPlayerID() string {
	for i, id := range g.PlayerOrder {
		if id == g.CurrentPlayerID {
			return g.PlayerOrder[(i+1)%len(g.PlayerOrder)]
		}
	}
	return g.CurrentPlayerID
}

func (g *GameState) player(id string) (*Player, *Error) {
	p, ok := g.Players[id]
	if !ok {
		return nil, newErrf(ErrPlayerNotFound, "no such player %q", id)
	}
	return p, nil
}

// CheckIntegrity implements §4.5's integrity guards, run before every
// action: current player resolvable, every hand size in range, draw pile
// size non-negative, phase one of the four literals.
func (g *GameState) CheckIntegrity() *Error {
	if _, ok := g.Players[g.CurrentPlayerID]; !ok {
		return newErrf(ErrPlayerNotFound, "current player %q not resolvable", g.CurrentPlayerID)
	}
	for id, p := range g.Players {
		if len(p.Hand) > g.maxHandSize {
			return newErrf(ErrInvalidHandSize, "player %q hand size %d out of range", id, len(p.Hand))
		}
	}
	if g.DrawPile == nil {
		return newErr(ErrInvalidDrawPile, "draw pile is nil")
	}
	if !g.Phase.valid() {
		return newErrf(ErrInvalidPhase, "phase %q is not one of the four literals", g.Phase)
	}
	return nil
}

// CheckConservation implements I3: every card identity is accounted for
// exactly once across hands, piles, the unclaimed finishing card slot,
// and laid melds, summing to the 108-card universe. It also checks I4
// (pairwise-distinct identities). Exposed for property tests (P1).
func (g *GameState) CheckConservation() *Error {
	total := 0
	seen := make(map[int]bool, TotalCards)
	count := func(cards []Card) *Error {
		for _, c := range cards {
			if seen[c.ID] {
				return newErrf(ErrInvalidGameState, "card id %d appears more than once", c.ID)
			}
			seen[c.ID] = true
			total++
		}
		return nil
	}

	for _, id := range g.PlayerOrder {
		p := g.Players[id]
		if err := count(p.Hand); err != nil {
			return err
		}
		for _, m := range p.Melds {
			if err := count(m.Cards); err != nil {
				return err
			}
		}
	}
	if err := count(g.DrawPile.Cards); err != nil {
		return err
	}
	if err := count(g.DiscardPile.Cards); err != nil {
		return err
	}
	if g.FinishingCard != nil && !g.FinishingCardClaimed {
		if seen[g.FinishingCard.ID] {
			return newErrf(ErrInvalidGameState, "finishing card id %d double-counted", g.FinishingCard.ID)
		}
		seen[g.FinishingCard.ID] = true
		total++
	}

	if total != TotalCards {
		return newErrf(ErrInvalidGameState, "card conservation violated: counted %d, want %d", total, TotalCards)
	}
	return nil
}

// now is isolated so it is the only place the engine touches wall-clock
// time, keeping the rest of the package pure and deterministic given the
// same action sequence.
var now = time.Now
