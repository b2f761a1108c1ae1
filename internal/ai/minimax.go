package ai

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/peterkuimelis/fmx/internal/game"
)

// A fusion is taken without searching when it beats its best material
// by more than fusionShortcutGain ATK, or the result reaches
// fusionShortcutATK outright.
const (
	fusionShortcutGain = 500
	fusionShortcutATK  = 2500
)

// SearchStats reports what a single BestMove call explored.
type SearchStats struct {
	Nodes    int
	Prunes   int
	Depth    int
	Score    float64
	Shortcut bool
	Elapsed  time.Duration
}

// Engine picks moves by minimax with alpha-beta pruning over the full
// match state.
type Engine struct {
	Depth   int
	Weights Weights
	Stats   SearchStats
}

// NewEngine returns a search engine at the given depth. Depths at or
// below zero fall back to normal.
func NewEngine(depth int, w Weights) *Engine {
	if depth <= 0 {
		depth = DepthNormal
	}
	return &Engine{Depth: depth, Weights: w}
}

// BestMove picks the machine seat's move for the current state.
func (e *Engine) BestMove(m *game.MatchState) (game.Action, bool) {
	return e.BestMoveFor(m, game.SeatAI)
}

// BestMoveFor picks a move for the given seat. Seat 1 maximizes the
// evaluation, seat 0 minimizes it. An obviously strong fusion is taken
// without searching; otherwise the tree is searched to the engine's
// depth and a chosen summon gets its star and stance re-picked against
// the opponent's current field.
func (e *Engine) BestMoveFor(m *game.MatchState, seat int) (game.Action, bool) {
	start := time.Now()
	e.Stats = SearchStats{Depth: e.Depth}

	if a, ok := e.valuableFusion(m, seat); ok {
		e.Stats.Shortcut = true
		e.Stats.Elapsed = time.Since(start)
		log.Debug().Int("seat", seat).Str("move", a.Desc).Msg("shortcut fusion")
		return a, true
	}

	score, best, ok := e.search(m, e.Depth, math.Inf(-1), math.Inf(1), seat == game.SeatAI)
	e.Stats.Score = score
	e.Stats.Elapsed = time.Since(start)
	if !ok {
		return game.Action{}, false
	}

	if best.Type == game.ActionSummon {
		best = refineSummon(m, seat, best)
	}

	log.Debug().
		Int("seat", seat).
		Int("depth", e.Stats.Depth).
		Int("nodes", e.Stats.Nodes).
		Int("prunes", e.Stats.Prunes).
		Float64("score", e.Stats.Score).
		Dur("elapsed", e.Stats.Elapsed).
		Str("move", best.Desc).
		Msg("search complete")

	return best, true
}

// search walks the game tree. Ties keep the earliest action, so the
// enumeration order of LegalActions breaks them.
func (e *Engine) search(m *game.MatchState, depth int, alpha, beta float64, maximizing bool) (float64, game.Action, bool) {
	e.Stats.Nodes++

	if depth == 0 || m.Over {
		return Evaluate(m, e.Weights), game.Action{}, false
	}

	seat := game.SeatHuman
	if maximizing {
		seat = game.SeatAI
	}
	actions := m.LegalActions(seat)
	if len(actions) == 0 {
		return Evaluate(m, e.Weights), game.Action{}, false
	}

	best := actions[0]

	if maximizing {
		maxScore := math.Inf(-1)
		for _, a := range actions {
			score := e.searchChild(m, a, depth, alpha, beta, seat, maximizing)
			if score > maxScore {
				maxScore = score
				best = a
			}
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				e.Stats.Prunes++
				break
			}
		}
		return maxScore, best, true
	}

	minScore := math.Inf(1)
	for _, a := range actions {
		score := e.searchChild(m, a, depth, alpha, beta, seat, maximizing)
		if score < minScore {
			minScore = score
			best = a
		}
		beta = math.Min(beta, score)
		if beta <= alpha {
			e.Stats.Prunes++
			break
		}
	}
	return minScore, best, true
}

// searchChild applies one action on a copy and recurses. A battle
// resolves whenever both fields end up occupied, with the acting seat
// attacking. A fusion keeps the turn, so the same seat searches on at
// full depth; a summon or pass hands off to the opponent one level
// down.
func (e *Engine) searchChild(m *game.MatchState, a game.Action, depth int, alpha, beta float64, seat int, maximizing bool) float64 {
	child := m.Copy()
	child.ApplyAction(a)

	if child.Players[game.SeatHuman].Field != nil && child.Players[game.SeatAI].Field != nil {
		child.ResolveBattle(seat)
	}

	if a.Type == game.ActionFuse {
		score, _, _ := e.search(child, depth, alpha, beta, maximizing)
		return score
	}
	score, _, _ := e.search(child, depth-1, alpha, beta, !maximizing)
	return score
}

// valuableFusion scans a seat's hand for a fusion strong enough to
// take on sight. Of the qualifying pairs, the largest improvement over
// its best material wins; a big result that improves nothing is left
// for the search to judge.
func (e *Engine) valuableFusion(m *game.MatchState, seat int) (game.Action, bool) {
	p := m.Players[seat]

	var best game.Action
	bestImprovement := 0
	found := false

	for _, combo := range p.PossibleCombinations() {
		a := p.Hand[combo.I].Card
		b := p.Hand[combo.J].Card
		improvement := combo.Result.ATK - strongerATK(p, combo.I, combo.J)

		if improvement <= fusionShortcutGain && combo.Result.ATK < fusionShortcutATK {
			continue
		}
		if improvement > bestImprovement {
			bestImprovement = improvement
			best = game.Action{
				Type:   game.ActionFuse,
				Player: seat,
				FuseA:  combo.I,
				FuseB:  combo.J,
				Card:   a.Name,
				Result: combo.Result.Name,
				Desc:   fmt.Sprintf("Fuse %s + %s into %s", a.Name, b.Name, combo.Result.Name),
			}
			found = true
		}
	}

	return best, found
}

// refineSummon re-picks the guardian star and stance of a summon
// against the opponent's current field card.
func refineSummon(m *game.MatchState, seat int, a game.Action) game.Action {
	p := m.Players[seat]
	if a.HandIndex < 0 || a.HandIndex >= len(p.Hand) {
		return a
	}
	card := p.Hand[a.HandIndex].Card
	opp := m.Players[m.Opponent(seat)].Field

	a.Star = bestStar(card, opp)
	a.Stance = bestStance(card, opp)

	star := card.Star1
	if a.Star == 2 {
		star = card.Star2
	}
	a.Desc = fmt.Sprintf("Summon %s in %s with %s", card.Name, a.Stance, star)
	return a
}

// bestStar picks the star slot with the better combat bonus against
// the defender. Ties and open fields take the first slot.
func bestStar(card *game.Card, opp *game.CardInstance) int {
	if opp == nil {
		return 1
	}
	bonus1 := game.CombatBonus(card.Star1, opp.ActiveStar)
	bonus2 := game.CombatBonus(card.Star2, opp.ActiveStar)
	if bonus2 > bonus1 {
		return 2
	}
	return 1
}

// bestStance decides between Attack and Defense. With an open field,
// anything at 1500 ATK or more attacks. Against a monster: attack when
// the ATK wins outright, defend when the DEF holds, otherwise fall
// back to the card's better stat.
func bestStance(card *game.Card, opp *game.CardInstance) game.Stance {
	if opp == nil {
		if card.ATK >= 1500 {
			return game.StanceAttack
		}
		return game.StanceDefense
	}
	if card.ATK > opp.Card.ATK {
		return game.StanceAttack
	}
	if card.DEF >= opp.Card.ATK {
		return game.StanceDefense
	}
	if card.DEF > card.ATK {
		return game.StanceDefense
	}
	return game.StanceAttack
}
