package game

import "fmt"

// Hook is the moment an ability fires.
type Hook int

const (
	HookOnSummon Hook = iota
	HookOnCardSelect
	HookOnSpellCast
	HookOnAvatarAttacked
	HookOnUnitDeath
)

func (h Hook) String() string {
	switch h {
	case HookOnSummon:
		return "OnSummon"
	case HookOnCardSelect:
		return "OnCardSelect"
	case HookOnSpellCast:
		return "OnSpellCast"
	case HookOnAvatarAttacked:
		return "OnAvatarAttacked"
	case HookOnUnitDeath:
		return "OnUnitDeath"
	default:
		return "Unknown"
	}
}

// Effect is what an ability does. Apply receives the registry key (the
// card id the ability is registered under). The result is advisory.
type Effect interface {
	Apply(g *Game, id int) bool
	String() string
}

// Ability binds an effect to a hook for every copy of a named card.
type Ability struct {
	Card   string
	Hook   Hook
	Effect Effect
}

// ModifyTarget picks the unit a ModifyUnit effect changes.
type ModifyTarget int

const (
	// TargetSelf is the unit with the registry key's id.
	TargetSelf ModifyTarget = iota
	// TargetCurrentAvatar is the current player's avatar.
	TargetCurrentAvatar
)

// ModifyUnit adds Attack and Health to a unit through a modify-unit broadcast.
type ModifyUnit struct {
	Target ModifyTarget
	Attack int
	Health int
	Limit  ModifyLimit
}

func (m ModifyUnit) String() string {
	return fmt.Sprintf("modify %+d/%+d (limit %s)", m.Attack, m.Health, m.Limit)
}

// AirdropHighlight marks every empty tile as a summon target.
type AirdropHighlight struct{}

func (AirdropHighlight) String() string { return "airdrop" }

// DrawWho selects who draws for a DrawCards effect.
type DrawWho int

const (
	DrawCurrent DrawWho = iota
	DrawBoth
)

// DrawCards makes the current player (and optionally the opponent) draw.
type DrawCards struct {
	Who DrawWho
}

func (d DrawCards) String() string {
	if d.Who == DrawBoth {
		return "both players draw"
	}
	return "current player draws"
}

// AbilityTable lists every card ability. Cards with the Airdrop keyword get
// an AirdropHighlight on card select in addition to these entries.
var AbilityTable = []Ability{
	{Card: "Azure Herald", Hook: HookOnSummon, Effect: ModifyUnit{Target: TargetCurrentAvatar, Health: 3, Limit: LimitMax}},
	{Card: "Blaze Hound", Hook: HookOnSummon, Effect: DrawCards{Who: DrawBoth}},
	{Card: "Pureblade Enforcer", Hook: HookOnSpellCast, Effect: ModifyUnit{Target: TargetSelf, Attack: 1, Health: 1, Limit: LimitEnemyTurn}},
	{Card: "Silverguard Knight", Hook: HookOnAvatarAttacked, Effect: ModifyUnit{Target: TargetSelf, Attack: 2}},
	{Card: "WindShrike", Hook: HookOnUnitDeath, Effect: DrawCards{Who: DrawCurrent}},
}
