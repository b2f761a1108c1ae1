package game

import "strings"

// --- Enums ---

type Phase int

const (
	PhaseNone Phase = iota
	PhaseDraw
	PhaseMain
	PhaseBattle
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "Draw Phase"
	case PhaseMain:
		return "Main Phase"
	case PhaseBattle:
		return "Battle Phase"
	case PhaseEnd:
		return "End Phase"
	default:
		return "None"
	}
}

type Stance int

const (
	StanceAttack Stance = iota
	StanceDefense
)

func (s Stance) String() string {
	if s == StanceAttack {
		return "Attack"
	}
	return "Defense"
}

// ParseStance converts a string like "attack" or "DEF" to a Stance.
// Anything unrecognized defaults to StanceAttack.
func ParseStance(s string) Stance {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "defense", "defence", "def", "d":
		return StanceDefense
	default:
		return StanceAttack
	}
}

type Attribute int

const (
	AttrNone Attribute = iota
	AttrLIGHT
	AttrDARK
	AttrEARTH
	AttrWATER
	AttrFIRE
	AttrWIND
	AttrDIVINE
)

func (a Attribute) String() string {
	switch a {
	case AttrLIGHT:
		return "LIGHT"
	case AttrDARK:
		return "DARK"
	case AttrEARTH:
		return "EARTH"
	case AttrWATER:
		return "WATER"
	case AttrFIRE:
		return "FIRE"
	case AttrWIND:
		return "WIND"
	case AttrDIVINE:
		return "DIVINE"
	default:
		return ""
	}
}

// ParseAttribute converts a string like "Water" or "FIRE" to an Attribute.
// Unknown strings map to AttrNone.
func ParseAttribute(s string) Attribute {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LIGHT":
		return AttrLIGHT
	case "DARK":
		return AttrDARK
	case "EARTH":
		return AttrEARTH
	case "WATER":
		return AttrWATER
	case "FIRE":
		return AttrFIRE
	case "WIND":
		return AttrWIND
	case "DIVINE":
		return AttrDIVINE
	default:
		return AttrNone
	}
}

// --- Action types ---

type ActionType int

const (
	ActionSummon ActionType = iota
	ActionFuse
	ActionPass
)

func (a ActionType) String() string {
	switch a {
	case ActionSummon:
		return "Summon"
	case ActionFuse:
		return "Fuse"
	case ActionPass:
		return "Pass"
	default:
		return "Unknown"
	}
}

// Action represents a player action with all necessary details.
type Action struct {
	Type   ActionType
	Player int

	// For ActionSummon
	HandIndex int
	Stance    Stance
	Star      int // 1 or 2, which guardian star to fight under

	// For ActionFuse
	FuseA int // lower hand index
	FuseB int // higher hand index

	Card   string // card name being summoned (if applicable)
	Result string // fusion result name (if applicable)
	Desc   string // human-readable description
}

func (a Action) String() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Type.String()
}
