package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Seat indices. The first seat always opens the match.
const (
	SeatHuman = 0
	SeatAI    = 1
)

const (
	MinDeckSize     = 10
	MaxDeckSize     = 40
	DefaultDeckSize = 20
	InitialHandSize = 5
)

// MatchState holds the complete state of a duel.
type MatchState struct {
	Players  [2]*Player
	Current  int // 0 or 1: whose turn it is
	Turn     int // 1-based turn counter
	Phase    Phase
	DeckSize int

	// Game result
	Over   bool
	Winner int // 0, 1, or -1 (no winner yet, or a tie once Over)
	Result string

	// Battle history
	BattleLog  []*BattleRecord
	LastBattle *BattleRecord

	catalog *Catalog
	rng     *rand.Rand

	// Explicit decks set by WithDecks, bypassing the pool deal.
	fixed    [2][]*Card
	useFixed bool
}

// MatchOption configures a new match.
type MatchOption func(*MatchState)

// WithDeckSize sets how many cards are dealt to each deck, clamped to
// [MinDeckSize, MaxDeckSize].
func WithDeckSize(n int) MatchOption {
	return func(m *MatchState) {
		if n < MinDeckSize {
			n = MinDeckSize
		}
		if n > MaxDeckSize {
			n = MaxDeckSize
		}
		m.DeckSize = n
	}
}

// WithSeed fixes the RNG seed for a reproducible deal.
func WithSeed(seed int64) MatchOption {
	return func(m *MatchState) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNames sets the display names for the two seats.
func WithNames(p0, p1 string) MatchOption {
	return func(m *MatchState) {
		m.Players[0].Name = p0
		m.Players[1].Name = p1
	}
}

// WithDecks hands each seat an explicit deck instead of dealing from
// the catalog pool. The decks are used in the order given: no
// shuffling, no size clamp.
func WithDecks(deck0, deck1 []*Card) MatchOption {
	return func(m *MatchState) {
		m.fixed[0] = deck0
		m.fixed[1] = deck1
		m.useFixed = true
	}
}

// NewMatch creates and deals a fresh duel using cards from cat,
// leaving the match in the first seat's main phase with both opening
// hands drawn.
func NewMatch(cat *Catalog, opts ...MatchOption) *MatchState {
	m := &MatchState{
		Players: [2]*Player{
			NewPlayer("Human", cat),
			NewPlayer("CPU", cat),
		},
		Current:  SeatHuman,
		Turn:     1,
		Phase:    PhaseDraw,
		DeckSize: DefaultDeckSize,
		Winner:   -1,
		catalog:  cat,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.setup()
	return m
}

// setup deals both decks from the shuffled catalog pool, doubling the
// pool when it cannot fill two decks, then draws the opening hands.
func (m *MatchState) setup() {
	if m.useFixed {
		for seat := 0; seat < 2; seat++ {
			deck := make([]CardInstance, 0, len(m.fixed[seat]))
			for _, c := range m.fixed[seat] {
				deck = append(deck, NewCardInstance(c))
			}
			m.Players[seat].Deck = deck
		}
	} else {
		pool := m.catalog.Cards()
		m.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		if len(pool) < 2*m.DeckSize {
			pool = append(pool, pool...)
			m.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		}
		size := m.DeckSize
		if len(pool) < 2*size {
			// Tiny catalogs deal what they can, split evenly.
			size = len(pool) / 2
		}
		for seat := 0; seat < 2; seat++ {
			deck := make([]CardInstance, 0, size)
			for _, c := range pool[seat*size : (seat+1)*size] {
				deck = append(deck, NewCardInstance(c))
			}
			m.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
			m.Players[seat].Deck = deck
		}
	}

	for seat := 0; seat < 2; seat++ {
		for i := 0; i < InitialHandSize; i++ {
			m.Players[seat].Draw()
		}
	}
	m.Phase = PhaseMain
}

// CurrentPlayer returns the player whose turn it is.
func (m *MatchState) CurrentPlayer() *Player {
	return m.Players[m.Current]
}

// Opponent returns the index of the other seat.
func (m *MatchState) Opponent(seat int) int {
	return 1 - seat
}

// UpcomingCards returns up to n card definitions from the top of a
// seat's deck.
func (m *MatchState) UpcomingCards(seat, n int) []*Card {
	deck := m.Players[seat].Deck
	if n > len(deck) {
		n = len(deck)
	}
	out := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, deck[i].Card)
	}
	return out
}

// LegalActions enumerates everything seat may do in its main phase:
// summon each hand card in either stance under either guardian star,
// fuse any matching pair, or pass. Passing is offered when the hand
// yields no other action or a monster already holds the field.
func (m *MatchState) LegalActions(seat int) []Action {
	if seat < 0 || seat > 1 {
		return nil
	}
	p := m.Players[seat]
	var actions []Action

	for i, ci := range p.Hand {
		for _, stance := range []Stance{StanceAttack, StanceDefense} {
			for _, star := range []int{1, 2} {
				starName := ci.Card.Star1
				if star == 2 {
					starName = ci.Card.Star2
				}
				actions = append(actions, Action{
					Type:      ActionSummon,
					Player:    seat,
					HandIndex: i,
					Stance:    stance,
					Star:      star,
					Card:      ci.Card.Name,
					Desc:      fmt.Sprintf("Summon %s in %s with %s", ci.Card.Name, stance, starName),
				})
			}
		}
	}

	for _, combo := range p.PossibleCombinations() {
		actions = append(actions, Action{
			Type:   ActionFuse,
			Player: seat,
			FuseA:  combo.I,
			FuseB:  combo.J,
			Card:   p.Hand[combo.I].Card.Name,
			Result: combo.Result.Name,
			Desc: fmt.Sprintf("Fuse %s + %s into %s",
				p.Hand[combo.I].Card.Name, p.Hand[combo.J].Card.Name, combo.Result.Name),
		})
	}

	if len(actions) == 0 || p.Field != nil {
		actions = append(actions, Action{
			Type:   ActionPass,
			Player: seat,
			Desc:   "Pass",
		})
	}

	return actions
}

// ApplyAction mutates the state with the given action. It returns
// false when the action is stale or malformed, for example a hand
// index that no longer exists.
func (m *MatchState) ApplyAction(a Action) bool {
	if m.Over {
		return false
	}
	if a.Player < 0 || a.Player > 1 {
		return false
	}
	p := m.Players[a.Player]
	switch a.Type {
	case ActionSummon:
		return p.PlayToField(a.HandIndex, a.Stance, a.Star)
	case ActionFuse:
		return p.Combine(a.FuseA, a.FuseB) != nil
	case ActionPass:
		return true
	default:
		return false
	}
}

// NextTurn hands play to the other seat and draws them a card. The
// turn counter advances when play returns to the first seat.
func (m *MatchState) NextTurn() (CardInstance, bool) {
	if m.Over {
		return CardInstance{}, false
	}
	m.Current = 1 - m.Current
	if m.Current == SeatHuman {
		m.Turn++
	}
	card, ok := m.CurrentPlayer().Draw()
	m.Phase = PhaseMain
	return card, ok
}

// CheckGameOver evaluates the end-of-duel conditions and finalizes the
// result when one holds. A player loses at zero life, or with no cards
// left across deck, hand, and field; the first seat's conditions are
// checked first.
func (m *MatchState) CheckGameOver() bool {
	if m.Over {
		return true
	}
	switch {
	case m.Players[SeatHuman].Life <= 0:
		m.finish(SeatAI, fmt.Sprintf("%s wins: %s ran out of life points", m.Players[SeatAI].Name, m.Players[SeatHuman].Name))
	case m.Players[SeatAI].Life <= 0:
		m.finish(SeatHuman, fmt.Sprintf("%s wins: %s ran out of life points", m.Players[SeatHuman].Name, m.Players[SeatAI].Name))
	case !m.Players[SeatHuman].HasCards():
		m.finish(SeatAI, fmt.Sprintf("%s wins: %s ran out of cards", m.Players[SeatAI].Name, m.Players[SeatHuman].Name))
	case !m.Players[SeatAI].HasCards():
		m.finish(SeatHuman, fmt.Sprintf("%s wins: %s ran out of cards", m.Players[SeatHuman].Name, m.Players[SeatAI].Name))
	}
	return m.Over
}

func (m *MatchState) finish(winner int, result string) {
	m.Over = true
	m.Winner = winner
	m.Result = result
}

// Copy returns a deep copy for lookahead search. The battle history is
// left empty; the catalog and RNG are shared.
func (m *MatchState) Copy() *MatchState {
	return &MatchState{
		Players:  [2]*Player{m.Players[0].Copy(), m.Players[1].Copy()},
		Current:  m.Current,
		Turn:     m.Turn,
		Phase:    m.Phase,
		DeckSize: m.DeckSize,
		Over:     m.Over,
		Winner:   m.Winner,
		Result:   m.Result,
		catalog:  m.catalog,
		rng:      m.rng,
	}
}
