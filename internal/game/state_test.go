package game

import "testing"

func TestNewMatchDeal(t *testing.T) {
	m := NewMatch(DefaultCatalog(), WithSeed(42))

	if m.Turn != 1 || m.Current != SeatHuman || m.Phase != PhaseMain {
		t.Errorf("fresh match: turn %d, seat %d, phase %s", m.Turn, m.Current, m.Phase)
	}
	for seat := 0; seat < 2; seat++ {
		p := m.Players[seat]
		if p.Life != StartingLife {
			t.Errorf("seat %d life = %d, want %d", seat, p.Life, StartingLife)
		}
		if len(p.Hand) != InitialHandSize {
			t.Errorf("seat %d hand = %d cards, want %d", seat, len(p.Hand), InitialHandSize)
		}
		if len(p.Deck) != DefaultDeckSize-InitialHandSize {
			t.Errorf("seat %d deck = %d cards, want %d", seat, len(p.Deck), DefaultDeckSize-InitialHandSize)
		}
	}
}

func TestWithSeedReproducible(t *testing.T) {
	a := NewMatch(DefaultCatalog(), WithSeed(7))
	b := NewMatch(DefaultCatalog(), WithSeed(7))

	for i := range a.Players[0].Hand {
		if a.Players[0].Hand[i].Card.Name != b.Players[0].Hand[i].Card.Name {
			t.Fatalf("same seed dealt different hands at %d: %s vs %s",
				i, a.Players[0].Hand[i].Card.Name, b.Players[0].Hand[i].Card.Name)
		}
	}
}

func TestWithDeckSizeClamp(t *testing.T) {
	small := NewMatch(DefaultCatalog(), WithSeed(1), WithDeckSize(5))
	if got := len(small.Players[0].Deck) + len(small.Players[0].Hand); got != MinDeckSize {
		t.Errorf("deck size 5 dealt %d cards, want clamped to %d", got, MinDeckSize)
	}

	big := NewMatch(DefaultCatalog(), WithSeed(1), WithDeckSize(100))
	if got := len(big.Players[0].Deck) + len(big.Players[0].Hand); got != MaxDeckSize {
		t.Errorf("deck size 100 dealt %d cards, want clamped to %d", got, MaxDeckSize)
	}
}

func TestWithDecksKeepsOrder(t *testing.T) {
	cat := fireAndWater()
	deck := []*Card{
		cat.CardByName("Cinder Pup"),
		cat.CardByName("Mire Crawler"),
		cat.CardByName("Dust Golem"),
		cat.CardByName("Cinder Pup"),
		cat.CardByName("Mire Crawler"),
		cat.CardByName("Dust Golem"),
	}
	m := NewMatch(cat, WithDecks(deck, deck))

	wantHand := []string{"Cinder Pup", "Mire Crawler", "Dust Golem", "Cinder Pup", "Mire Crawler"}
	for i, want := range wantHand {
		if got := m.Players[0].Hand[i].Card.Name; got != want {
			t.Errorf("hand[%d] = %s, want %s", i, got, want)
		}
	}
	if len(m.Players[0].Deck) != 1 || m.Players[0].Deck[0].Card.Name != "Dust Golem" {
		t.Errorf("deck after the opening draw = %v, want just Dust Golem", m.Players[0].Deck)
	}
}

func TestLegalActionsEnumeration(t *testing.T) {
	cat := fireAndWater()
	m := NewMatch(cat, WithDecks(nil, nil))
	p := m.Players[0]
	handOf(p, "Cinder Pup", "Mire Crawler")

	actions := m.LegalActions(0)
	// Two cards, each in two stances under two stars, plus one fusion.
	if len(actions) != 9 {
		t.Fatalf("got %d actions, want 9", len(actions))
	}

	summons, fuses, passes := 0, 0, 0
	for _, a := range actions {
		switch a.Type {
		case ActionSummon:
			summons++
		case ActionFuse:
			fuses++
		case ActionPass:
			passes++
		}
	}
	if summons != 8 || fuses != 1 || passes != 0 {
		t.Errorf("action mix = %d summons, %d fuses, %d passes, want 8/1/0", summons, fuses, passes)
	}

	// An occupied field adds the pass option.
	p.PlayToField(0, StanceAttack, 1)
	actions = m.LegalActions(0)
	foundPass := false
	for _, a := range actions {
		if a.Type == ActionPass {
			foundPass = true
		}
	}
	if !foundPass {
		t.Error("an occupied field should offer Pass")
	}

	// An empty hand with nothing else to do is a forced pass.
	p.Hand = p.Hand[:0]
	p.Field = nil
	actions = m.LegalActions(0)
	if len(actions) != 1 || actions[0].Type != ActionPass {
		t.Errorf("empty hand actions = %v, want a single Pass", actions)
	}

	if m.LegalActions(2) != nil {
		t.Error("an invalid seat should yield no actions")
	}
}

func TestApplyAction(t *testing.T) {
	cat := fireAndWater()
	m := NewMatch(cat, WithDecks(nil, nil))
	p := m.Players[0]
	handOf(p, "Cinder Pup", "Mire Crawler")

	if m.ApplyAction(Action{Type: ActionSummon, Player: 0, HandIndex: 9}) {
		t.Error("a stale hand index should be rejected")
	}
	if m.ApplyAction(Action{Type: ActionFuse, Player: 0, FuseA: 0, FuseB: 0}) {
		t.Error("a fusion of a card with itself should be rejected")
	}
	if m.ApplyAction(Action{Type: ActionSummon, Player: 5, HandIndex: 0}) {
		t.Error("an invalid seat should be rejected")
	}

	if !m.ApplyAction(Action{Type: ActionFuse, Player: 0, FuseA: 0, FuseB: 1}) {
		t.Error("a valid fusion should apply")
	}
	if !m.ApplyAction(Action{Type: ActionSummon, Player: 0, HandIndex: 0, Stance: StanceAttack, Star: 1}) {
		t.Error("a valid summon should apply")
	}
	if !m.ApplyAction(Action{Type: ActionPass, Player: 0}) {
		t.Error("pass should always apply")
	}

	m.Over = true
	if m.ApplyAction(Action{Type: ActionPass, Player: 0}) {
		t.Error("actions after the duel ends should be rejected")
	}
}

func TestNextTurn(t *testing.T) {
	cat := fireAndWater()
	deck := repeatDeck(cat.CardByName("Cinder Pup"), 8)
	m := NewMatch(cat, WithDecks(deck, deck))

	card, drew := m.NextTurn()
	if m.Current != SeatAI {
		t.Errorf("seat after NextTurn = %d, want %d", m.Current, SeatAI)
	}
	if m.Turn != 1 {
		t.Errorf("turn = %d, want 1 until play returns to the first seat", m.Turn)
	}
	if !drew || card.Card.Name != "Cinder Pup" {
		t.Errorf("draw on turn change = %v %v", card, drew)
	}
	if m.Phase != PhaseMain {
		t.Errorf("phase = %s, want Main Phase", m.Phase)
	}

	m.NextTurn()
	if m.Current != SeatHuman || m.Turn != 2 {
		t.Errorf("after a full round: seat %d turn %d, want 0 and 2", m.Current, m.Turn)
	}
}

func TestCheckGameOverPriority(t *testing.T) {
	newState := func() *MatchState {
		cat := fireAndWater()
		deck := repeatDeck(cat.CardByName("Cinder Pup"), 8)
		return NewMatch(cat, WithDecks(deck, deck))
	}

	m := newState()
	m.Players[SeatHuman].Life = 0
	if !m.CheckGameOver() || m.Winner != SeatAI {
		t.Errorf("human at zero life: over=%v winner=%d, want the machine seat", m.Over, m.Winner)
	}

	// Both at zero: the first seat's loss is seen first.
	m = newState()
	m.Players[SeatHuman].Life = 0
	m.Players[SeatAI].Life = 0
	if !m.CheckGameOver() || m.Winner != SeatAI {
		t.Errorf("double knockout winner = %d, want the machine seat", m.Winner)
	}

	m = newState()
	m.Players[SeatAI].Life = -300
	if !m.CheckGameOver() || m.Winner != SeatHuman {
		t.Errorf("machine below zero: winner = %d, want the human seat", m.Winner)
	}

	m = newState()
	p := m.Players[SeatAI]
	p.Deck, p.Hand, p.Field = nil, nil, nil
	if !m.CheckGameOver() || m.Winner != SeatHuman {
		t.Errorf("machine out of cards: winner = %d, want the human seat", m.Winner)
	}

	// Life is checked before cards.
	m = newState()
	m.Players[SeatHuman].Life = 0
	p = m.Players[SeatAI]
	p.Deck, p.Hand, p.Field = nil, nil, nil
	if !m.CheckGameOver() || m.Winner != SeatAI {
		t.Errorf("life-out beats deck-out: winner = %d, want the machine seat", m.Winner)
	}

	m = newState()
	if m.CheckGameOver() {
		t.Error("a healthy match should not be over")
	}
}

func TestStateCopy(t *testing.T) {
	cat := fireAndWater()
	deck := repeatDeck(cat.CardByName("Cinder Pup"), 8)
	m := NewMatch(cat, WithDecks(deck, deck))
	m.Players[0].PlayToField(0, StanceAttack, 1)
	m.Players[1].PlayToField(0, StanceAttack, 1)
	m.ResolveBattle(0)

	cp := m.Copy()
	if len(cp.BattleLog) != 0 || cp.LastBattle != nil {
		t.Error("the battle history should not carry into a copy")
	}

	cp.Players[0].Life = 1
	cp.NextTurn()
	if m.Players[0].Life == 1 {
		t.Error("mutating the copy changed the original's life")
	}
	if m.Current != SeatHuman {
		t.Error("mutating the copy changed the original's turn")
	}
}

func TestUpcomingCards(t *testing.T) {
	cat := fireAndWater()
	deck := []*Card{
		cat.CardByName("Cinder Pup"),
		cat.CardByName("Mire Crawler"),
		cat.CardByName("Dust Golem"),
		cat.CardByName("Cinder Pup"),
		cat.CardByName("Mire Crawler"),
		cat.CardByName("Dust Golem"),
		cat.CardByName("Cinder Pup"),
	}
	m := NewMatch(cat, WithDecks(deck, deck))

	// Two cards remain after the opening draw.
	up := m.UpcomingCards(0, 5)
	if len(up) != 2 {
		t.Fatalf("UpcomingCards returned %d cards, want the 2 that remain", len(up))
	}
	if up[0].Name != "Dust Golem" || up[1].Name != "Cinder Pup" {
		t.Errorf("upcoming = %s, %s, want Dust Golem then Cinder Pup", up[0].Name, up[1].Name)
	}
}
