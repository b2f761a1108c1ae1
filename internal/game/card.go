package game

import "fmt"

// --- Card definition (static, from the catalog) ---

type Card struct {
	ID          int
	Name        string
	Description string
	Type        string // e.g. "Dragon", "Spellcaster"
	Attribute   Attribute
	Level       int
	ATK         int
	DEF         int
	Star1       GuardianStar
	Star2       GuardianStar
}

func (c *Card) String() string {
	return c.Name
}

// BetterStat returns the higher of ATK and DEF.
func (c *Card) BetterStat() int {
	if c.DEF > c.ATK {
		return c.DEF
	}
	return c.ATK
}

// --- CardInstance (runtime card in deck/hand/field/graveyard) ---

type CardInstance struct {
	Card       *Card
	ActiveStar GuardianStar
	Stance     Stance
}

// NewCardInstance wraps a card definition with the default battle
// state: attack stance, fighting under the primary guardian star.
func NewCardInstance(c *Card) CardInstance {
	return CardInstance{
		Card:       c,
		ActiveStar: c.Star1,
		Stance:     StanceAttack,
	}
}

// SelectStar switches the active guardian star. n is 1 for the primary
// star; any other value selects the secondary.
func (ci *CardInstance) SelectStar(n int) {
	if n == 1 {
		ci.ActiveStar = ci.Card.Star1
	} else {
		ci.ActiveStar = ci.Card.Star2
	}
}

// BattleValue returns the stat this card defends with: ATK in attack
// stance, DEF in defense stance.
func (ci *CardInstance) BattleValue() int {
	if ci.Stance == StanceDefense {
		return ci.Card.DEF
	}
	return ci.Card.ATK
}

// BattleValueAgainst returns BattleValue adjusted by the guardian star
// matchup against opp. A nil opp means no adjustment.
func (ci *CardInstance) BattleValueAgainst(opp *CardInstance) int {
	v := ci.BattleValue()
	if opp != nil {
		v += CombatBonus(ci.ActiveStar, opp.ActiveStar)
	}
	return v
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (ATK:%d/DEF:%d) [%s/%s]", ci.Card.Name, ci.Card.ATK, ci.Card.DEF, ci.Stance, ci.ActiveStar)
}

// DisplayString returns a human-readable description for the event log.
func (ci *CardInstance) DisplayString() string {
	if ci == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (ATK %d/DEF %d)", ci.Card.Name, ci.Card.ATK, ci.Card.DEF)
}
