package game

// Catalog cards. Stats are the printed values; ability and spell descriptors
// are declared here rather than parsed at runtime.

// --- Human deck ---

// ComodoCharger: 1 mana 1/3.
func ComodoCharger() *Card {
	return &Card{Name: "Comodo Charger", ManaCost: 1, Attack: 1, Health: 3}
}

// HailstoneGolem: 4 mana 4/6.
func HailstoneGolem() *Card {
	return &Card{Name: "Hailstone Golem", ManaCost: 4, Attack: 4, Health: 6}
}

// PurebladeEnforcer: 2 mana 1/4. Grows when the enemy casts a spell.
func PurebladeEnforcer() *Card {
	return &Card{
		Name:     "Pureblade Enforcer",
		ManaCost: 2,
		Attack:   1,
		Health:   4,
		Rules:    []string{"If the enemy player casts a spell, this minion gains +1 attack and +1 health"},
	}
}

// AzureHerald: 2 mana 1/4. Heals your avatar on summon.
func AzureHerald() *Card {
	return &Card{
		Name:     "Azure Herald",
		ManaCost: 2,
		Attack:   1,
		Health:   4,
		Rules:    []string{"When this is summoned give your avatar +3 health (maximum 20)"},
	}
}

// SilverguardKnight: 3 mana 1/5, provoke.
func SilverguardKnight() *Card {
	return &Card{
		Name:     "Silverguard Knight",
		ManaCost: 3,
		Attack:   1,
		Health:   5,
		Rules: []string{
			"Provoke: enemy units adjacent to this must attack it and cannot move",
			"If your avatar deals damage this gains +2 attack",
		},
		Abilities: Abilities{Provoke: true},
	}
}

// AzuriteLion: 3 mana 2/3, moves and attacks twice.
func AzuriteLion() *Card {
	return &Card{
		Name:      "Azurite Lion",
		ManaCost:  3,
		Attack:    2,
		Health:    3,
		Rules:     []string{"Can move and attack twice per turn"},
		Abilities: Abilities{Twice: true},
	}
}

// FireSpitter: 4 mana 3/2, ranged.
func FireSpitter() *Card {
	return &Card{
		Name:      "Fire Spitter",
		ManaCost:  4,
		Attack:    3,
		Health:    2,
		Rules:     []string{"Ranged: can attack any enemy on the board"},
		Abilities: Abilities{Ranged: true},
	}
}

// IroncliffGuardian: 5 mana 3/10, airdrop and provoke.
func IroncliffGuardian() *Card {
	return &Card{
		Name:      "Ironcliff Guardian",
		ManaCost:  5,
		Attack:    3,
		Health:    10,
		Rules:     []string{"Airdrop and Provoke: can be summoned anywhere on the board"},
		Abilities: Abilities{Airdrop: true, Provoke: true},
	}
}

// Truestrike: 1 mana spell, 2 damage to an enemy.
func Truestrike() *Card {
	return &Card{
		Name:     "Truestrike",
		ManaCost: 1,
		Attack:   -1,
		Rules:    []string{"Deal 2 damage to an enemy unit"},
		Spell:    SpellDamage,
		Target:   RangeEnemy,
	}
}

// SundropElixir: 1 mana spell, +5 health up to max.
func SundropElixir() *Card {
	return &Card{
		Name:     "Sundrop Elixir",
		ManaCost: 1,
		Attack:   -1,
		Rules:    []string{"Add +5 health to a unit, up to its starting health"},
		Spell:    SpellHeal,
		Target:   RangeAll,
	}
}

// --- AI deck ---

// PlanarScout: 1 mana 2/1, airdrop.
func PlanarScout() *Card {
	return &Card{
		Name:      "Planar Scout",
		ManaCost:  1,
		Attack:    2,
		Health:    1,
		Rules:     []string{"Airdrop: can be summoned anywhere on the board"},
		Abilities: Abilities{Airdrop: true},
	}
}

// RockPulveriser: 2 mana 1/4, provoke.
func RockPulveriser() *Card {
	return &Card{
		Name:      "Rock Pulveriser",
		ManaCost:  2,
		Attack:    1,
		Health:    4,
		Rules:     []string{"Provoke: enemy units adjacent to this must attack it and cannot move"},
		Abilities: Abilities{Provoke: true},
	}
}

// Pyromancer: 2 mana 2/1, ranged.
func Pyromancer() *Card {
	return &Card{
		Name:      "Pyromancer",
		ManaCost:  2,
		Attack:    2,
		Health:    1,
		Rules:     []string{"Ranged: can attack any enemy on the board"},
		Abilities: Abilities{Ranged: true},
	}
}

// BloodshardGolem: 3 mana 4/3.
func BloodshardGolem() *Card {
	return &Card{Name: "Bloodshard Golem", ManaCost: 3, Attack: 4, Health: 3}
}

// BlazeHound: 3 mana 4/3. Both players draw on summon.
func BlazeHound() *Card {
	return &Card{
		Name:     "Blaze Hound",
		ManaCost: 3,
		Attack:   4,
		Health:   3,
		Rules:    []string{"When this is summoned both players draw a card"},
	}
}

// WindShrike: 4 mana 4/3, flying. A card is drawn when it dies.
func WindShrike() *Card {
	return &Card{
		Name:     "WindShrike",
		ManaCost: 4,
		Attack:   4,
		Health:   3,
		Rules: []string{
			"Flying: can move anywhere on the board",
			"When this dies its owner draws a card",
		},
		Abilities: Abilities{Flying: true},
	}
}

// Serpenti: 6 mana 7/4, moves and attacks twice.
func Serpenti() *Card {
	return &Card{
		Name:      "Serpenti",
		ManaCost:  6,
		Attack:    7,
		Health:    4,
		Rules:     []string{"Can move and attack twice per turn"},
		Abilities: Abilities{Twice: true},
	}
}

// StaffOfYKir: 2 mana spell, your avatar gains +2 attack.
func StaffOfYKir() *Card {
	return &Card{
		Name:     "Staff of Y'Kir'",
		ManaCost: 2,
		Attack:   -1,
		Rules:    []string{"Your avatar gains +2 attack"},
		Spell:    SpellEmpowerAvatar,
		Target:   RangeYourAvatar,
	}
}

// EntropicDecay: 5 mana spell, reduces a non-avatar unit to 0 health.
func EntropicDecay() *Card {
	return &Card{
		Name:     "Entropic Decay",
		ManaCost: 5,
		Attack:   -1,
		Rules:    []string{"Reduce a non-avatar unit to 0 health"},
		Spell:    SpellDestroy,
		Target:   RangeNonAvatar,
	}
}
