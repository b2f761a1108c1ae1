package game

import "testing"

// fireAndWater builds a catalog with one fusion line for hand tests.
func fireAndWater() *Catalog {
	cat := NewCatalog()
	cat.AddCard(vanilla("Cinder Pup", "Pyro", AttrFIRE, 800, 600))
	cat.AddCard(vanilla("Mire Crawler", "Aqua", AttrWATER, 900, 700))
	cat.AddCard(vanilla("Dust Golem", "Rock", AttrEARTH, 1000, 1200))
	cat.AddFusion("Cinder Pup", "Mire Crawler", *vanilla("Steam Colossus", "Machine", AttrWATER, 2100, 1800))
	return cat
}

func handOf(p *Player, names ...string) {
	p.Hand = p.Hand[:0]
	for _, name := range names {
		p.Hand = append(p.Hand, NewCardInstance(p.catalog.CardByName(name)))
	}
}

func TestDraw(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)

	if _, ok := p.Draw(); ok {
		t.Error("drawing from an empty deck should fail")
	}

	for i := 0; i < 7; i++ {
		p.Deck = append(p.Deck, NewCardInstance(cat.CardByName("Cinder Pup")))
	}
	p.Deck[0] = NewCardInstance(cat.CardByName("Mire Crawler"))

	card, ok := p.Draw()
	if !ok {
		t.Fatal("draw failed with a full deck")
	}
	if card.Card.Name != "Mire Crawler" {
		t.Errorf("drew %s, want the top card Mire Crawler", card.Card.Name)
	}
	if len(p.Deck) != 6 || len(p.Hand) != 1 {
		t.Errorf("after draw: deck %d hand %d, want 6 and 1", len(p.Deck), len(p.Hand))
	}

	for i := 0; i < MaxHandSize-1; i++ {
		p.Draw()
	}
	if len(p.Hand) != MaxHandSize {
		t.Fatalf("hand has %d cards, want %d", len(p.Hand), MaxHandSize)
	}
	if _, ok := p.Draw(); ok {
		t.Error("drawing with a full hand should fail")
	}
}

func TestPlayToField(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler")

	if p.PlayToField(5, StanceAttack, 1) {
		t.Error("playing an out-of-range index should fail")
	}

	if !p.PlayToField(1, StanceDefense, 2) {
		t.Fatal("PlayToField failed")
	}
	if p.Field == nil || p.Field.Card.Name != "Mire Crawler" {
		t.Fatalf("field holds %v, want Mire Crawler", p.Field)
	}
	if p.Field.Stance != StanceDefense {
		t.Errorf("field stance = %s, want Defense", p.Field.Stance)
	}
	if p.Field.ActiveStar != p.Field.Card.Star2 {
		t.Errorf("field star = %s, want the secondary %s", p.Field.ActiveStar, p.Field.Card.Star2)
	}
	if len(p.Hand) != 1 || p.Hand[0].Card.Name != "Cinder Pup" {
		t.Errorf("hand after summon = %v, want just Cinder Pup", p.Hand)
	}
}

func TestPlayToFieldTribute(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler")

	p.PlayToField(0, StanceAttack, 1)
	if !p.PlayToField(0, StanceAttack, 1) {
		t.Fatal("summoning over an occupied field failed")
	}
	if p.Field.Card.Name != "Mire Crawler" {
		t.Errorf("field holds %s, want Mire Crawler", p.Field.Card.Name)
	}
	if len(p.Graveyard) != 1 || p.Graveyard[0].Card.Name != "Cinder Pup" {
		t.Errorf("graveyard = %v, want the replaced Cinder Pup", p.Graveyard)
	}
}

func TestUndoPlay(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler")

	if p.UndoPlay() {
		t.Error("undo with an empty field should fail")
	}

	p.PlayToField(0, StanceDefense, 2)
	if !p.UndoPlay() {
		t.Fatal("UndoPlay failed")
	}
	if p.Field != nil {
		t.Error("field should be empty after undo")
	}
	if len(p.Hand) != 2 {
		t.Fatalf("hand has %d cards after undo, want 2", len(p.Hand))
	}
}

func TestUndoPlayRestoresTribute(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler")

	p.PlayToField(0, StanceAttack, 1) // Cinder Pup to the field
	p.PlayToField(0, StanceAttack, 1) // Mire Crawler replaces it

	if !p.UndoPlay() {
		t.Fatal("UndoPlay failed")
	}
	if p.Field == nil || p.Field.Card.Name != "Cinder Pup" {
		t.Fatalf("field = %v, want the restored Cinder Pup", p.Field)
	}
	if len(p.Graveyard) != 0 {
		t.Errorf("graveyard has %d cards, want the tribute back on the field", len(p.Graveyard))
	}
	if len(p.Hand) != 1 || p.Hand[0].Card.Name != "Mire Crawler" {
		t.Errorf("hand after undo = %v, want just Mire Crawler", p.Hand)
	}
}

func TestUndoPlayLeavesBuriedTribute(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler", "Dust Golem")

	p.PlayToField(0, StanceAttack, 1)
	p.PlayToField(0, StanceAttack, 1)
	// Something else reaches the graveyard on top of the tribute.
	p.Graveyard = append(p.Graveyard, NewCardInstance(cat.CardByName("Dust Golem")))

	if !p.UndoPlay() {
		t.Fatal("UndoPlay failed")
	}
	if p.Field != nil {
		t.Errorf("field = %v, want empty: the tribute is buried", p.Field)
	}
	if len(p.Graveyard) != 2 {
		t.Errorf("graveyard has %d cards, want both left in place", len(p.Graveyard))
	}
}

func TestCombine(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Dust Golem", "Cinder Pup", "Mire Crawler")

	if p.Combine(0, 1) != nil {
		t.Error("Dust Golem + Cinder Pup has no recipe, Combine should fail")
	}
	if len(p.Hand) != 3 {
		t.Fatalf("failed fusion changed the hand: %d cards", len(p.Hand))
	}

	result := p.Combine(1, 2)
	if result == nil || result.Name != "Steam Colossus" {
		t.Fatalf("Combine = %v, want Steam Colossus", result)
	}
	if len(p.Hand) != 2 {
		t.Fatalf("hand has %d cards after fusion, want 2", len(p.Hand))
	}
	if p.Hand[len(p.Hand)-1].Card.Name != "Steam Colossus" {
		t.Errorf("last hand card = %s, want the fusion result", p.Hand[len(p.Hand)-1].Card.Name)
	}
	if len(p.Graveyard) != 2 {
		t.Fatalf("graveyard has %d cards, want both materials", len(p.Graveyard))
	}
	// Higher index removed first.
	if p.Graveyard[0].Card.Name != "Mire Crawler" || p.Graveyard[1].Card.Name != "Cinder Pup" {
		t.Errorf("graveyard order = %s, %s, want Mire Crawler then Cinder Pup",
			p.Graveyard[0].Card.Name, p.Graveyard[1].Card.Name)
	}
}

func TestCombineReversedIndices(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler")

	if result := p.Combine(1, 0); result == nil || result.Name != "Steam Colossus" {
		t.Fatalf("Combine with reversed indices = %v, want Steam Colossus", result)
	}
}

func TestPossibleCombinations(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Mire Crawler", "Dust Golem", "Cinder Pup")

	combos := p.PossibleCombinations()
	if len(combos) != 1 {
		t.Fatalf("found %d combinations, want 1", len(combos))
	}
	if combos[0].I != 0 || combos[0].J != 2 {
		t.Errorf("combination indices = (%d, %d), want (0, 2)", combos[0].I, combos[0].J)
	}
	if combos[0].Result.Name != "Steam Colossus" {
		t.Errorf("combination result = %s, want Steam Colossus", combos[0].Result.Name)
	}
}

func TestHasCards(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)

	if p.HasCards() {
		t.Error("a player with no cards anywhere should report false")
	}
	handOf(p, "Cinder Pup")
	if !p.HasCards() {
		t.Error("a card in hand should count")
	}
	p.PlayToField(0, StanceAttack, 1)
	if !p.HasCards() {
		t.Error("a card on the field should count")
	}
}

func TestPlayerCopy(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler")
	p.Deck = append(p.Deck, NewCardInstance(cat.CardByName("Dust Golem")))
	p.PlayToField(0, StanceAttack, 1)

	cp := p.Copy()
	cp.Life -= 1000
	cp.Hand = cp.Hand[:0]
	cp.Field.Stance = StanceDefense

	if p.Life != StartingLife {
		t.Errorf("original life changed to %d", p.Life)
	}
	if len(p.Hand) != 1 {
		t.Errorf("original hand changed: %d cards", len(p.Hand))
	}
	if p.Field.Stance != StanceAttack {
		t.Error("original field stance changed through the copy")
	}
}

func TestPlayerCopyDropsUndoBookkeeping(t *testing.T) {
	cat := fireAndWater()
	p := NewPlayer("P1", cat)
	handOf(p, "Cinder Pup", "Mire Crawler")
	p.PlayToField(0, StanceAttack, 1)
	p.PlayToField(0, StanceAttack, 1) // tribute: Cinder Pup to the graveyard

	cp := p.Copy()
	if !cp.UndoPlay() {
		t.Fatal("UndoPlay on the copy failed")
	}
	// The copy has no record of the tribute, so the graveyard stays put.
	if cp.Field != nil {
		t.Errorf("copy restored %s, want no tribute restore after Copy", cp.Field.Card.Name)
	}
	if len(cp.Graveyard) != 1 {
		t.Errorf("copy graveyard has %d cards, want 1", len(cp.Graveyard))
	}
}
