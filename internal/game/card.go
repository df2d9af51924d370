package game

import (
	"strings"

	"github.com/peterkuimelis/skirmish/internal/render"
)

// Card is an immutable card template. Decks hold copies with an ID assigned
// by deck position; the ID keys the ability table and becomes the unit id
// once a creature is summoned.
type Card struct {
	ID        int
	Name      string
	ManaCost  int
	Attack    int // -1 for spells
	Health    int
	Rules     []string
	Abilities Abilities
	Spell     SpellEffect
	Target    SearchRange
}

// IsSpell reports whether the card is a spell (derived from its stat block).
func (c *Card) IsSpell() bool {
	return c.Attack < 0
}

// Copy returns a copy carrying the given id.
func (c *Card) Copy(id int) *Card {
	cp := *c
	cp.ID = id
	cp.Rules = append([]string(nil), c.Rules...)
	return &cp
}

// ToUnit creates the unit a creature card summons, owned by owner.
func (c *Card) ToUnit(g *Game, owner *Player) *Unit {
	u := &Unit{
		g:          g,
		ID:         c.ID,
		Name:       c.Name,
		Attack:     c.Attack,
		Health:     c.Health,
		MaxHealth:  c.Health,
		Owner:      owner,
		Ranged:     c.Abilities.Ranged,
		Flying:     c.Abilities.Flying,
		CanProvoke: c.Abilities.Provoke,
		maxMoves:   1,
		maxAttacks: 1,
	}
	if c.Abilities.Twice {
		u.maxMoves, u.maxAttacks = 2, 2
	}
	u.moves, u.attacks = u.maxMoves, u.maxAttacks
	return u
}

func (c *Card) view() render.Card {
	return render.Card{
		ID:       c.ID,
		Name:     c.Name,
		ManaCost: c.ManaCost,
		Attack:   c.Attack,
		Health:   c.Health,
		Rules:    c.Rules,
	}
}

// ClassifyRules derives ability and spell descriptors from a card's first
// rules-text row. Catalog cards declare their descriptors explicitly; this is
// used for YAML templates that leave them out.
func ClassifyRules(rules []string) (Abilities, SpellEffect, SearchRange) {
	var (
		ab     Abilities
		effect SpellEffect
		target SearchRange
	)
	if len(rules) == 0 {
		return ab, effect, target
	}
	rule := strings.ToLower(rules[0])

	ab.Ranged = strings.Contains(rule, "ranged")
	ab.Twice = strings.Contains(rule, "twice")
	ab.Provoke = strings.Contains(rule, "provoke")
	ab.Flying = strings.Contains(rule, "flying")
	ab.Airdrop = strings.Contains(rule, "airdrop")

	switch {
	case strings.Contains(rule, "unit"):
		switch {
		case strings.Contains(rule, "enemy"):
			target = RangeEnemy
		case strings.Contains(rule, "non-avatar"):
			target = RangeNonAvatar
		default:
			target = RangeAll
		}
	case strings.Contains(rule, "your avatar"):
		target = RangeYourAvatar
	}

	switch {
	case strings.Contains(rule, "enemy"):
		effect = SpellDamage
	case strings.Contains(rule, "non-avatar"):
		effect = SpellDestroy
	case strings.Contains(rule, "health"):
		effect = SpellHeal
	case strings.Contains(rule, "gains"):
		effect = SpellEmpowerAvatar
	}
	return ab, effect, target
}
