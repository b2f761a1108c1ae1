package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/peterkuimelis/fmx/internal/log"
)

// PlayerController is the interface that both human (CLI) and machine
// (search) players implement.
type PlayerController interface {
	// ChooseAction presents the legal actions and waits for the player to
	// pick one.
	ChooseAction(ctx context.Context, state *MatchState, actions []Action) (Action, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// DuelConfig holds configuration for creating a new duel.
type DuelConfig struct {
	Catalog  *Catalog // card pool (nil for the builtin roster)
	Logger   log.EventLogger
	Seed     int64      // RNG seed (0 for random)
	DeckSize int        // cards dealt per deck (0 for the default)
	Decks    [2][]*Card // fixed deck lists (nil to deal from the pool)
	Names    [2]string  // seat display names (empty for defaults)
	MaxTurns int        // stop after this many turns (0 for the 200-turn default)
}

// Duel orchestrates an entire duel between two players.
type Duel struct {
	State       *MatchState
	Controllers [2]PlayerController
	Logger      log.EventLogger
	ctx         context.Context
	maxTurns    int
}

// NewDuel creates a new duel from the given config and player controllers.
func NewDuel(cfg DuelConfig, p0, p1 PlayerController) *Duel {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = DefaultCatalog()
	}

	var opts []MatchOption
	if cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	if cfg.DeckSize != 0 {
		opts = append(opts, WithDeckSize(cfg.DeckSize))
	}
	if cfg.Decks[0] != nil && cfg.Decks[1] != nil {
		opts = append(opts, WithDecks(cfg.Decks[0], cfg.Decks[1]))
	}
	if cfg.Names[0] != "" && cfg.Names[1] != "" {
		opts = append(opts, WithNames(cfg.Names[0], cfg.Names[1]))
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 200 // safety limit
	}

	return &Duel{
		State:       NewMatch(cat, opts...),
		Controllers: [2]PlayerController{p0, p1},
		Logger:      logger,
		ctx:         context.Background(),
		maxTurns:    maxTurns,
	}
}

// Run executes the entire duel loop. Returns the winner (0, 1, or -1
// for a tie).
func (d *Duel) Run(ctx context.Context) (int, error) {
	d.ctx = ctx
	m := d.State

	d.log(log.NewTurnEvent(m.Turn, m.Current))

	for !m.Over {
		if m.Turn > d.maxTurns {
			m.Over = true
			m.Winner = -1
			m.Result = fmt.Sprintf("turn limit reached after %d turns", d.maxTurns)
			break
		}

		if err := d.runMainPhase(); err != nil {
			return m.Winner, err
		}
		if m.Over {
			break
		}

		d.runBattlePhase()
		if m.Over {
			break
		}

		d.advanceTurn()

		if err := d.ctx.Err(); err != nil {
			return -1, err
		}
	}

	d.logOutcome()
	return m.Winner, nil
}

// runMainPhase asks the current player for actions until one ends the
// phase. Fusions chain into further choices; a summon or pass ends the
// phase.
func (d *Duel) runMainPhase() error {
	m := d.State
	seat := m.Current

	for !m.Over {
		actions := m.LegalActions(seat)
		if len(actions) == 0 {
			return nil
		}

		chosen, err := d.Controllers[seat].ChooseAction(d.ctx, m, actions)
		if err != nil {
			return err
		}

		// Combine splices the hand, so grab the second material's name
		// before applying.
		var matB string
		if chosen.Type == ActionFuse {
			p := m.Players[seat]
			if chosen.FuseB >= 0 && chosen.FuseB < len(p.Hand) {
				matB = p.Hand[chosen.FuseB].Card.Name
			}
		}

		if !m.ApplyAction(chosen) {
			continue
		}

		switch chosen.Type {
		case ActionFuse:
			p := m.Players[seat]
			result := p.Hand[len(p.Hand)-1]
			d.log(log.NewFusionEvent(m.Turn, m.Phase.String(), seat, chosen.Card, matB, result.Card.Name, result.Card.ATK))
		case ActionSummon:
			f := m.Players[seat].Field
			d.log(log.NewSummonEvent(m.Turn, m.Phase.String(), seat, f.Card.Name, f.Card.ATK, f.Stance.String(), f.ActiveStar.String()))
			return nil
		case ActionPass:
			d.log(log.NewPassEvent(m.Turn, m.Phase.String(), seat))
			return nil
		}
	}

	return nil
}

// runBattlePhase resolves one round of combat with the current seat
// attacking. Nothing happens unless both fields are occupied.
func (d *Duel) runBattlePhase() {
	m := d.State
	seat := m.Current
	opp := m.Opponent(seat)

	att := m.Players[seat].Field
	def := m.Players[opp].Field
	if att == nil || def == nil {
		return
	}

	m.Phase = PhaseBattle
	d.log(log.NewPhaseChangeEvent(m.Turn, m.Phase.String()))
	d.log(log.NewAttackDeclareEvent(m.Turn, seat, att.Card.Name, def.Card.Name))

	rec := m.ResolveBattle(seat)
	if rec == nil {
		return
	}

	d.log(log.NewDamageCalcEvent(m.Turn, seat, rec.Description))
	if rec.AttackerDestroyed {
		d.log(log.NewBattleDestroyEvent(m.Turn, seat, rec.AttackerCard))
	}
	if rec.DefenderDestroyed {
		d.log(log.NewBattleDestroyEvent(m.Turn, opp, rec.DefenderCard))
	}
	if rec.Damage > 0 && rec.DamagedSeat >= 0 {
		lp := m.Players[rec.DamagedSeat].Life
		d.log(log.NewLifeChangeEvent(m.Turn, m.Phase.String(), rec.DamagedSeat, lp+rec.Damage, lp, "battle damage"))
	}
}

// advanceTurn hands play to the other seat and logs the turn and draw.
func (d *Duel) advanceTurn() {
	m := d.State

	card, drew := m.NextTurn()
	d.log(log.NewTurnEvent(m.Turn, m.Current))
	if drew {
		d.log(log.NewDrawEvent(m.Turn, PhaseDraw.String(), m.Current, card.Card.Name))
	}
	m.CheckGameOver()
}

// logOutcome emits the final win or tie event once the match is over.
func (d *Duel) logOutcome() {
	m := d.State
	if !m.Over {
		return
	}
	if m.Winner >= 0 {
		d.log(log.NewWinEvent(m.Turn, m.Phase.String(), m.Winner, resultReason(m.Result)))
	} else {
		d.log(log.NewTieEvent(m.Turn, m.Phase.String(), m.Result))
	}
}

// resultReason trims the winner's name prefix from a match result so
// event details don't repeat it.
func resultReason(result string) string {
	if i := strings.Index(result, ": "); i >= 0 {
		return result[i+2:]
	}
	return result
}

// log emits a game event through the logger and notifies both players.
func (d *Duel) log(event log.GameEvent) {
	d.Logger.Log(event)
	for i := 0; i < 2; i++ {
		_ = d.Controllers[i].Notify(d.ctx, event)
	}
}
