package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventDraw
	EventHandFullDiscard
	EventDeckOut
	EventSelectCard
	EventSummon
	EventSpellCast
	EventMove
	EventAttack
	EventCounterAttack
	EventHPChange
	EventStatChange
	EventAbility
	EventDeath
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventHandFullDiscard:
		return "HandFullDiscard"
	case EventDeckOut:
		return "DeckOut"
	case EventSelectCard:
		return "SelectCard"
	case EventSummon:
		return "Summon"
	case EventSpellCast:
		return "SpellCast"
	case EventMove:
		return "Move"
	case EventAttack:
		return "Attack"
	case EventCounterAttack:
		return "CounterAttack"
	case EventHPChange:
		return "HPChange"
	case EventStatChange:
		return "StatChange"
	case EventAbility:
		return "Ability"
	case EventDeath:
		return "Death"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Player  int       // acting player (0 human, 1 AI)
	Type    EventType // event type
	Card    string    // card or unit name (if applicable)
	Details string    // human-readable detail string
}
