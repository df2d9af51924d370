package game

// --- Board and rule constants ---

const (
	BoardWidth  = 9
	BoardHeight = 5

	HandSize       = 6
	OpeningHand    = 3
	MaxMana        = 6
	StartingHealth = 20
	AvatarAttack   = 2

	HumanAvatarID = 99
	AIAvatarID    = 100

	// Squared distance at or below which two cells touch (8-neighbourhood).
	adjacentDistance = 2
)

// --- Enums ---

// State is the interaction mode of the match.
type State int

const (
	StateReady State = iota
	StateCardSelect
	StateUnitSelect
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StateCardSelect:
		return "CARD_SELECT"
	case StateUnitSelect:
		return "UNIT_SELECT"
	default:
		return "Unknown"
	}
}

// Highlight is the visual selection state of a tile. The numeric value is
// the render mode sent to the display.
type Highlight int

const (
	HighlightNormal Highlight = iota
	HighlightSelectable
	HighlightAttackable
)

func (h Highlight) String() string {
	switch h {
	case HighlightNormal:
		return "NORMAL"
	case HighlightSelectable:
		return "SELECTABLE"
	case HighlightAttackable:
		return "ATTACKABLE"
	default:
		return "Unknown"
	}
}

// UnitState tracks what a unit may still do this turn.
type UnitState int

const (
	UnitNotReady UnitState = iota
	UnitReady
	UnitHasMoved
	UnitHasAttacked
)

func (s UnitState) String() string {
	switch s {
	case UnitNotReady:
		return "NOT_READY"
	case UnitReady:
		return "READY"
	case UnitHasMoved:
		return "HAS_MOVED"
	case UnitHasAttacked:
		return "HAS_ATTACKED"
	default:
		return "Unknown"
	}
}

// SearchRange selects which occupants a targeting search marks.
type SearchRange int

const (
	RangeNone SearchRange = iota
	RangeEnemy
	RangeAll
	RangeNonAvatar
	RangeYourAvatar
	RangeAllFriends
)

func (r SearchRange) String() string {
	switch r {
	case RangeEnemy:
		return "enemy"
	case RangeAll:
		return "all"
	case RangeNonAvatar:
		return "non_avatar"
	case RangeYourAvatar:
		return "your_avatar"
	case RangeAllFriends:
		return "all_friends"
	default:
		return "none"
	}
}

// SpellEffect is the rules-level effect of a spell card.
type SpellEffect int

const (
	SpellNone SpellEffect = iota
	SpellDamage
	SpellDestroy
	SpellHeal
	SpellEmpowerAvatar
)

func (s SpellEffect) String() string {
	switch s {
	case SpellDamage:
		return "damage"
	case SpellDestroy:
		return "destroy"
	case SpellHeal:
		return "heal"
	case SpellEmpowerAvatar:
		return "empower_avatar"
	default:
		return "none"
	}
}

// Spell effect magnitudes.
const (
	spellDamageAmount  = 2
	spellHealAmount    = 5
	spellEmpowerAmount = 2
)

// Abilities are the keyword abilities a creature card grants its unit.
type Abilities struct {
	Ranged  bool `yaml:"ranged" json:"ranged,omitempty"`
	Flying  bool `yaml:"flying" json:"flying,omitempty"`
	Provoke bool `yaml:"provoke" json:"provoke,omitempty"`
	Airdrop bool `yaml:"airdrop" json:"airdrop,omitempty"`
	Twice   bool `yaml:"twice" json:"twice,omitempty"`
}

// Any reports whether at least one ability is set.
func (a Abilities) Any() bool {
	return a.Ranged || a.Flying || a.Provoke || a.Airdrop || a.Twice
}

// ceilHalf returns ceil(n/2) for non-negative n.
func ceilHalf(n int) int {
	return (n + 1) / 2
}

// distanceSq is the squared Euclidean distance between two cells.
func distanceSq(x1, y1, x2, y2 int) int {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

// neighbours8 lists the 8-neighbourhood offsets in probe order.
var neighbours8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// neighbours4 lists the orthogonal offsets in expansion order.
var neighbours4 = [4][2]int{
	{0, 1}, {1, 0}, {-1, 0}, {0, -1},
}
