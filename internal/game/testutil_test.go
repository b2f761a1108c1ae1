package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/fmx/internal/log"
)

// ScriptedController is a PlayerController that follows a predefined
// script of actions. Used in tests to deterministically drive a duel.
type ScriptedController struct {
	t       *testing.T
	name    string
	actions []ScriptedAction
	pos     int
}

type ScriptedAction struct {
	// Match by ActionType; picks the first action of this type.
	Type ActionType
	// Optional: match by card name as well
	CardName string
	// For summons: the stance and star slot must match too
	Stance Stance
	Star   int
}

func NewScriptedController(t *testing.T, name string) *ScriptedController {
	return &ScriptedController{t: t, name: name}
}

// AddSummon scripts summoning the named card in the given stance under
// the given star slot (1 or 2).
func (sc *ScriptedController) AddSummon(cardName string, stance Stance, star int) *ScriptedController {
	sc.actions = append(sc.actions, ScriptedAction{Type: ActionSummon, CardName: cardName, Stance: stance, Star: star})
	return sc
}

// AddFuse scripts a fusion whose first material is the named card.
func (sc *ScriptedController) AddFuse(cardName string) *ScriptedController {
	sc.actions = append(sc.actions, ScriptedAction{Type: ActionFuse, CardName: cardName})
	return sc
}

func (sc *ScriptedController) AddPass() *ScriptedController {
	sc.actions = append(sc.actions, ScriptedAction{Type: ActionPass})
	return sc
}

func (sc *ScriptedController) ChooseAction(ctx context.Context, state *MatchState, actions []Action) (Action, error) {
	if sc.pos < len(sc.actions) {
		// Peek at the next scripted action and only consume it if it
		// matches an available action, so scripts can span multiple turns.
		scripted := sc.actions[sc.pos]
		for _, a := range actions {
			if a.Type != scripted.Type {
				continue
			}
			if scripted.CardName != "" && a.Card != scripted.CardName {
				continue
			}
			if scripted.Type == ActionSummon && (a.Stance != scripted.Stance || a.Star != scripted.Star) {
				continue
			}
			sc.pos++
			return a, nil
		}
	}

	// Script exhausted or not yet applicable: pass when offered,
	// otherwise take the first action.
	for _, a := range actions {
		if a.Type == ActionPass {
			return a, nil
		}
	}
	return actions[0], nil
}

func (sc *ScriptedController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

// --- Test card helpers ---

// vanilla builds a plain monster definition. Register it with a
// catalog before dealing it so its guardian stars get derived.
func vanilla(name, monsterType string, attr Attribute, atk, def int) *Card {
	return &Card{
		Name:      name,
		Type:      monsterType,
		Attribute: attr,
		Level:     4,
		ATK:       atk,
		DEF:       def,
	}
}

// makeDeck lays out a deck with the given cards on top (index 0 drawn
// first) and filler copies behind them up to size.
func makeDeck(top []*Card, filler *Card, size int) []*Card {
	deck := make([]*Card, 0, size)
	deck = append(deck, top...)
	for len(deck) < size {
		deck = append(deck, filler)
	}
	return deck
}

// repeatDeck builds a deck of count copies of one card.
func repeatDeck(c *Card, count int) []*Card {
	deck := make([]*Card, count)
	for i := range deck {
		deck[i] = c
	}
	return deck
}

// runDuel runs a duel to completion and returns the logger for
// inspection.
func runDuel(t *testing.T, cfg DuelConfig, p0, p1 PlayerController) *log.MemoryLogger {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = 50
	}

	duel := NewDuel(cfg, p0, p1)

	winner, err := duel.Run(context.Background())
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Duel error: %v", err)
	}

	t.Logf("Duel result: winner=%d (%s)", winner, duel.State.Result)
	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))

	return logger
}
