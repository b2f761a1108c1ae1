package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventPhaseChange EventType = iota
	EventNewTurn
	EventDraw
	EventSummon
	EventFusion
	EventFusionFail
	EventPass
	EventAttackDeclare
	EventDamageCalc
	EventBattleDestroy
	EventLifeChange
	EventUndo
	EventWin
	EventTie
)

func (e EventType) String() string {
	switch e {
	case EventPhaseChange:
		return "PhaseChange"
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventSummon:
		return "Summon"
	case EventFusion:
		return "Fusion"
	case EventFusionFail:
		return "FusionFail"
	case EventPass:
		return "Pass"
	case EventAttackDeclare:
		return "AttackDeclare"
	case EventDamageCalc:
		return "DamageCalc"
	case EventBattleDestroy:
		return "BattleDestroy"
	case EventLifeChange:
		return "LifeChange"
	case EventUndo:
		return "Undo"
	case EventWin:
		return "Win"
	case EventTie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a duel.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Main Phase")
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
