package ai

import (
	"github.com/peterkuimelis/fmx/internal/game"
)

// WinScore is the terminal evaluation magnitude. The heuristic factors
// stay well inside it, so a found win always dominates.
const WinScore = 100000

// Evaluate scores a match state from the machine seat's perspective:
// positive favors seat 1, negative favors seat 0. Both hands and decks
// are read openly.
func Evaluate(m *game.MatchState, w Weights) float64 {
	if m.Over {
		switch m.Winner {
		case game.SeatAI:
			return WinScore
		case game.SeatHuman:
			return -WinScore
		default:
			return 0
		}
	}

	human := m.Players[game.SeatHuman]
	machine := m.Players[game.SeatAI]

	score := float64(machine.Life-human.Life) * w.LifeDiff

	switch {
	case machine.Field != nil && human.Field == nil:
		score += float64(machine.Field.Card.ATK) * w.OpenField
	case human.Field != nil && machine.Field == nil:
		score -= float64(human.Field.Card.ATK) * w.OpenField
	case machine.Field != nil && human.Field != nil:
		// An even matchup scores as a loss for the machine.
		machineValue := machine.Field.BattleValueAgainst(human.Field)
		humanValue := human.Field.BattleValueAgainst(machine.Field)
		if machineValue > humanValue {
			score += float64(machineValue-humanValue) * w.BattleEdge
			if human.Field.Stance == game.StanceAttack {
				score += w.ExposedPenalty
			}
		} else {
			score -= float64(humanValue-machineValue) * w.BattleEdge
			if machine.Field.Stance == game.StanceAttack {
				score -= w.ExposedPenalty
			}
		}
	}

	score += float64(handPower(machine)-handPower(human)) * w.HandPower
	score += float64(bestHandATK(machine)-bestHandATK(human)) * w.BestCard

	score += float64(len(machine.Hand)-len(human.Hand)) * w.HandCards
	score += float64(len(machine.Deck)-len(human.Deck)) * w.DeckCards

	score += (fusionPotential(machine, w) - fusionPotential(human, w)) * w.FusionReady

	if len(machine.Deck) > 0 {
		score += float64(machine.Deck[0].Card.BetterStat()) * w.NextDraw
	}
	if len(human.Deck) > 0 {
		score -= float64(human.Deck[0].Card.BetterStat()) * w.NextDraw
	}

	if float64(machine.Life) < w.DangerLife {
		score -= (w.DangerLife - float64(machine.Life)) * w.Desperation
	}
	if float64(human.Life) < w.DangerLife {
		score += (w.DangerLife - float64(human.Life)) * w.Desperation
	}

	return score
}

func handPower(p *game.Player) int {
	total := 0
	for i := range p.Hand {
		total += p.Hand[i].Card.BetterStat()
	}
	return total
}

func bestHandATK(p *game.Player) int {
	best := 0
	for i := range p.Hand {
		if atk := p.Hand[i].Card.ATK; atk > best {
			best = atk
		}
	}
	return best
}

// fusionPotential totals the workable fusions in a hand. Each pair
// whose result out-attacks its strongest material counts one point
// plus one more per FusionStep of improvement.
func fusionPotential(p *game.Player, w Weights) float64 {
	total := 0.0
	for _, combo := range p.PossibleCombinations() {
		improvement := combo.Result.ATK - strongerATK(p, combo.I, combo.J)
		if improvement > 0 {
			total += 1 + float64(improvement)/w.FusionStep
		}
	}
	return total
}

func strongerATK(p *game.Player, i, j int) int {
	atk := p.Hand[i].Card.ATK
	if other := p.Hand[j].Card.ATK; other > atk {
		atk = other
	}
	return atk
}
