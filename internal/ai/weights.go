package ai

import "strings"

// Search depths for the named difficulty levels.
const (
	DepthEasy   = 2
	DepthNormal = 4
	DepthHard   = 6
	DepthExpert = 8
)

// Weights tunes the position evaluation. Every factor scores from the
// machine seat's perspective: positive favors seat 1.
type Weights struct {
	LifeDiff       float64 // life point difference
	OpenField      float64 // per point of ATK on an unopposed field
	BattleEdge     float64 // battle value margin when both fields are occupied
	ExposedPenalty float64 // flat swing when the losing field would take damage in Attack
	HandPower      float64 // summed best stat across the hand
	BestCard       float64 // strongest ATK in hand
	HandCards      float64 // per card in hand
	DeckCards      float64 // per card in deck
	FusionReady    float64 // per point of fusion potential in hand
	FusionStep     float64 // ATK improvement behind each extra potential point
	NextDraw       float64 // best stat of the known next draw
	Desperation    float64 // per life point below the danger line
	DangerLife     float64 // life total considered in danger
}

// DefaultWeights returns the baseline evaluation profile.
func DefaultWeights() Weights {
	return Weights{
		LifeDiff:       1.5,
		OpenField:      0.3,
		BattleEdge:     0.5,
		ExposedPenalty: 200,
		HandPower:      0.1,
		BestCard:       0.15,
		HandCards:      75,
		DeckCards:      25,
		FusionReady:    150,
		FusionStep:     500,
		NextDraw:       0.05,
		Desperation:    0.5,
		DangerLife:     2000,
	}
}

// AggressiveWeights favors board pressure and immediate damage over
// card economy.
func AggressiveWeights() Weights {
	w := DefaultWeights()
	w.OpenField = 0.45
	w.BattleEdge = 0.7
	w.ExposedPenalty = 300
	w.HandCards = 50
	w.DeckCards = 15
	w.Desperation = 0.3
	return w
}

// CautiousWeights holds on to resources and plays around low life
// totals sooner.
func CautiousWeights() Weights {
	w := DefaultWeights()
	w.BattleEdge = 0.4
	w.HandCards = 90
	w.DeckCards = 35
	w.Desperation = 0.8
	w.DangerLife = 3000
	return w
}

// WeightsByName maps a profile name to its weight set. The empty
// string resolves to the default profile.
func WeightsByName(name string) (Weights, bool) {
	switch strings.ToLower(name) {
	case "", "default", "balanced":
		return DefaultWeights(), true
	case "aggressive":
		return AggressiveWeights(), true
	case "cautious":
		return CautiousWeights(), true
	}
	return Weights{}, false
}

// DifficultyName translates a search depth to its difficulty label.
func DifficultyName(depth int) string {
	switch {
	case depth <= DepthEasy:
		return "easy"
	case depth <= DepthNormal:
		return "normal"
	case depth <= DepthHard:
		return "hard"
	default:
		return "expert"
	}
}

// DepthByName translates a difficulty label to its search depth. The
// empty string resolves to normal.
func DepthByName(name string) (int, bool) {
	switch strings.ToLower(name) {
	case "easy":
		return DepthEasy, true
	case "", "normal":
		return DepthNormal, true
	case "hard":
		return DepthHard, true
	case "expert":
		return DepthExpert, true
	}
	return 0, false
}
