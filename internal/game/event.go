package game

// EventKind discriminates broadcast events.
type EventKind int

const (
	// Tile events.
	EvSearchUnit EventKind = iota
	EvValidSummonRange
	EvCheckSummonNeighbour
	EvTextureReset
	EvSummon
	EvMoveHighlight
	EvAttackHighlight
	EvDeleteUnit
	EvSpell
	EvFirstClick
	EvOperateUnit
	EvAIFindOperateTile
	EvCheckMoveVertically
	EvSearchUnitCanProvoke
	EvClearProvoke

	// Unit events.
	EvUnitBeReady
	EvAttacked
	EvModifyUnit
)

func (k EventKind) String() string {
	switch k {
	case EvSearchUnit:
		return "searchUnit"
	case EvValidSummonRange:
		return "validSummonRange"
	case EvCheckSummonNeighbour:
		return "checkSummonNeighbour"
	case EvTextureReset:
		return "textureReset"
	case EvSummon:
		return "summon"
	case EvMoveHighlight:
		return "moveHighlight"
	case EvAttackHighlight:
		return "attackHighlight"
	case EvDeleteUnit:
		return "deleteUnit"
	case EvSpell:
		return "spell"
	case EvFirstClick:
		return "firstClick"
	case EvOperateUnit:
		return "operateUnit"
	case EvAIFindOperateTile:
		return "aiFindOperateTile"
	case EvCheckMoveVertically:
		return "checkMoveVertically"
	case EvSearchUnitCanProvoke:
		return "searchUnitCanProvoke"
	case EvClearProvoke:
		return "clearProvoke"
	case EvUnitBeReady:
		return "unitBeReady"
	case EvAttacked:
		return "attacked"
	case EvModifyUnit:
		return "modifyUnit"
	default:
		return "unknown"
	}
}

// ModifyLimit constrains a modify-unit event.
type ModifyLimit int

const (
	LimitNone ModifyLimit = iota
	// LimitMax clamps the new health to the unit's max health.
	LimitMax
	// LimitEnemyTurn skips the change while the unit's owner is the current player.
	LimitEnemyTurn
)

func (l ModifyLimit) String() string {
	switch l {
	case LimitMax:
		return "max"
	case LimitEnemyTurn:
		return "enemyTurn"
	default:
		return "none"
	}
}

// Event is a tagged union: Kind selects which of the payload fields matter.
// Positional events carry X/Y and are acted on only by the tile at that cell.
type Event struct {
	Kind EventKind
	X, Y int

	Range   SearchRange // searchUnit
	Airdrop bool        // validSummonRange
	Count   int         // moveHighlight depth

	Unit   *Unit // summon: unit to place; searchUnitCanProvoke: unit being probed
	Card   *Card // spell
	Origin *Tile // operateUnit, moveHighlight
	Mover  *Tile // checkMoveVertically: the destination doing the probe

	Attacker *Unit // attacked
	Defender *Unit // attacked

	UnitID int         // modifyUnit
	Attack int         // modifyUnit delta
	Health int         // modifyUnit delta
	Limit  ModifyLimit // modifyUnit
}

func (e Event) at(x, y int) bool {
	return e.X == x && e.Y == y
}
