package game

const (
	// StartingLife is each duelist's opening life point total.
	StartingLife = 8000

	// MaxHandSize caps how many cards a player may hold.
	MaxHandSize = 5
)

// Player is one side of a duel: life points, deck, hand, graveyard,
// and the single field slot.
type Player struct {
	Name      string
	Life      int
	Deck      []CardInstance
	Hand      []CardInstance
	Graveyard []CardInstance
	Field     *CardInstance

	catalog *Catalog

	// Bookkeeping for taking back the most recent summon.
	sacrificed      bool
	sacrificeHeight int
}

// NewPlayer creates a player with starting life and empty zones.
func NewPlayer(name string, cat *Catalog) *Player {
	return &Player{
		Name:    name,
		Life:    StartingLife,
		catalog: cat,
	}
}

// Draw moves the top card of the deck to the hand. It fails when the
// deck is empty or the hand is full.
func (p *Player) Draw() (CardInstance, bool) {
	if len(p.Deck) == 0 || len(p.Hand) >= MaxHandSize {
		return CardInstance{}, false
	}
	card := p.Deck[0]
	p.Deck = p.Deck[1:]
	p.Hand = append(p.Hand, card)
	return card, true
}

// PlayToField summons the hand card at index. Any card already on the
// field is sent to the graveyard first. stance and star set the new
// card's battle state.
func (p *Player) PlayToField(index int, stance Stance, star int) bool {
	if index < 0 || index >= len(p.Hand) {
		return false
	}
	p.sacrificed = false
	if p.Field != nil {
		p.Graveyard = append(p.Graveyard, *p.Field)
		p.sacrificed = true
		p.sacrificeHeight = len(p.Graveyard)
	}
	card := p.Hand[index]
	p.Hand = append(p.Hand[:index], p.Hand[index+1:]...)
	card.Stance = stance
	card.SelectStar(star)
	p.Field = &card
	return true
}

// UndoPlay reverses the most recent PlayToField: the field card goes
// back to the hand, and when the sacrificed card is still on top of
// the graveyard it returns to the field.
func (p *Player) UndoPlay() bool {
	if p.Field == nil {
		return false
	}
	p.Hand = append(p.Hand, *p.Field)
	p.Field = nil
	if p.sacrificed {
		if len(p.Graveyard) == p.sacrificeHeight {
			card := p.Graveyard[len(p.Graveyard)-1]
			p.Graveyard = p.Graveyard[:len(p.Graveyard)-1]
			p.Field = &card
		}
		p.sacrificed = false
	}
	return true
}

// CanCombine returns the card the hand cards at i and j would fuse
// into, or nil when the indices are invalid or no recipe matches.
func (p *Player) CanCombine(i, j int) *Card {
	if i < 0 || j < 0 || i >= len(p.Hand) || j >= len(p.Hand) || i == j {
		return nil
	}
	return p.catalog.Fusion(p.Hand[i].Card.Name, p.Hand[j].Card.Name)
}

// Combine fuses the hand cards at i and j. Both materials go to the
// graveyard and the result joins the end of the hand. Returns the
// result card, or nil when the fusion is not possible.
func (p *Player) Combine(i, j int) *Card {
	result := p.CanCombine(i, j)
	if result == nil {
		return nil
	}
	hi, lo := i, j
	if hi < lo {
		hi, lo = lo, hi
	}
	// Remove the higher index first so the lower one stays valid.
	p.Graveyard = append(p.Graveyard, p.Hand[hi])
	p.Hand = append(p.Hand[:hi], p.Hand[hi+1:]...)
	p.Graveyard = append(p.Graveyard, p.Hand[lo])
	p.Hand = append(p.Hand[:lo], p.Hand[lo+1:]...)
	p.Hand = append(p.Hand, NewCardInstance(result))
	return result
}

// Combination is one fusable pair in a player's hand.
type Combination struct {
	I      int
	J      int
	Result *Card
}

// PossibleCombinations lists every fusable pair of hand cards, lower
// index first.
func (p *Player) PossibleCombinations() []Combination {
	var combos []Combination
	for i := 0; i < len(p.Hand); i++ {
		for j := i + 1; j < len(p.Hand); j++ {
			if result := p.CanCombine(i, j); result != nil {
				combos = append(combos, Combination{I: i, J: j, Result: result})
			}
		}
	}
	return combos
}

// HasCards reports whether any cards remain in deck, hand, or field.
func (p *Player) HasCards() bool {
	return len(p.Deck) > 0 || len(p.Hand) > 0 || p.Field != nil
}

// Copy returns a deep copy of the player. Take-back bookkeeping does
// not carry over.
func (p *Player) Copy() *Player {
	cp := &Player{
		Name:      p.Name,
		Life:      p.Life,
		Deck:      append([]CardInstance(nil), p.Deck...),
		Hand:      append([]CardInstance(nil), p.Hand...),
		Graveyard: append([]CardInstance(nil), p.Graveyard...),
		catalog:   p.catalog,
	}
	if p.Field != nil {
		f := *p.Field
		cp.Field = &f
	}
	return cp
}
