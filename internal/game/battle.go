package game

import "fmt"

// BattleRecord captures one resolved battle for the log and for replay
// by interfaces.
type BattleRecord struct {
	Attacker int // attacking seat

	AttackerCard   string
	DefenderCard   string
	AttackerStar   GuardianStar
	DefenderStar   GuardianStar
	AttackerStance Stance
	DefenderStance Stance

	AttackerBonus int
	DefenderBonus int
	AttackerValue int
	DefenderValue int

	Damage      int
	DamagedSeat int // seat that took damage, or -1

	AttackerDestroyed bool
	DefenderDestroyed bool

	Winner      int // winning seat, or -1 for a standoff
	Description string
}

// ResolveBattle fights the attacking seat's field monster against the
// other seat's. The attacker always strikes with ATK; the defender
// answers with ATK or DEF according to stance, and guardian star
// bonuses shift both sides. Returns nil when the duel is over or
// either field is empty.
func (m *MatchState) ResolveBattle(attacker int) *BattleRecord {
	if m.Over || attacker < 0 || attacker > 1 {
		return nil
	}
	defender := 1 - attacker
	att := m.Players[attacker].Field
	def := m.Players[defender].Field
	if att == nil || def == nil {
		return nil
	}

	attBonus := CombatBonus(att.ActiveStar, def.ActiveStar)
	defBonus := CombatBonus(def.ActiveStar, att.ActiveStar)
	attValue := att.Card.ATK + attBonus
	defValue := def.BattleValue() + defBonus

	rec := &BattleRecord{
		Attacker:       attacker,
		AttackerCard:   att.Card.Name,
		DefenderCard:   def.Card.Name,
		AttackerStar:   att.ActiveStar,
		DefenderStar:   def.ActiveStar,
		AttackerStance: att.Stance,
		DefenderStance: def.Stance,
		AttackerBonus:  attBonus,
		DefenderBonus:  defBonus,
		AttackerValue:  attValue,
		DefenderValue:  defValue,
		DamagedSeat:    -1,
		Winner:         -1,
	}

	attName := m.Players[attacker].Name
	defName := m.Players[defender].Name

	switch {
	case attValue > defValue:
		diff := attValue - defValue
		rec.Winner = attacker
		rec.DefenderDestroyed = true
		m.destroyField(defender)
		if rec.DefenderStance == StanceAttack {
			rec.Damage = diff
			rec.DamagedSeat = defender
			m.Players[defender].Life -= diff
			rec.Description = fmt.Sprintf("%s destroys %s; %s takes %d damage",
				rec.AttackerCard, rec.DefenderCard, defName, diff)
		} else {
			rec.Description = fmt.Sprintf("%s destroys defending %s",
				rec.AttackerCard, rec.DefenderCard)
		}

	case defValue > attValue:
		diff := defValue - attValue
		rec.Winner = defender
		rec.Damage = diff
		rec.DamagedSeat = attacker
		m.Players[attacker].Life -= diff
		if rec.DefenderStance == StanceAttack {
			rec.AttackerDestroyed = true
			m.destroyField(attacker)
			rec.Description = fmt.Sprintf("%s falls to %s; %s takes %d damage",
				rec.AttackerCard, rec.DefenderCard, attName, diff)
		} else {
			rec.Description = fmt.Sprintf("%s holds firm against %s; %s takes %d rebound damage",
				rec.DefenderCard, rec.AttackerCard, attName, diff)
		}

	default:
		if rec.DefenderStance == StanceAttack {
			rec.AttackerDestroyed = true
			rec.DefenderDestroyed = true
			m.destroyField(attacker)
			m.destroyField(defender)
			rec.Description = fmt.Sprintf("%s and %s destroy each other",
				rec.AttackerCard, rec.DefenderCard)
		} else {
			rec.Description = fmt.Sprintf("%s cannot break through %s",
				rec.AttackerCard, rec.DefenderCard)
		}
	}

	m.BattleLog = append(m.BattleLog, rec)
	m.LastBattle = rec
	m.CheckGameOver()
	return rec
}

// destroyField sends a seat's field monster to its graveyard.
func (m *MatchState) destroyField(seat int) {
	p := m.Players[seat]
	if p.Field == nil {
		return
	}
	p.Graveyard = append(p.Graveyard, *p.Field)
	p.Field = nil
}
