package game

import (
	"fmt"
	"sort"
)

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Comodo Charger":     ComodoCharger,
	"Hailstone Golem":    HailstoneGolem,
	"Pureblade Enforcer": PurebladeEnforcer,
	"Azure Herald":       AzureHerald,
	"Silverguard Knight": SilverguardKnight,
	"Azurite Lion":       AzuriteLion,
	"Fire Spitter":       FireSpitter,
	"Ironcliff Guardian": IroncliffGuardian,
	"Truestrike":         Truestrike,
	"Sundrop Elixir":     SundropElixir,
	"Planar Scout":       PlanarScout,
	"Rock Pulveriser":    RockPulveriser,
	"Pyromancer":         Pyromancer,
	"Bloodshard Golem":   BloodshardGolem,
	"Blaze Hound":        BlazeHound,
	"WindShrike":         WindShrike,
	"Serpenti":           Serpenti,
	"Staff of Y'Kir'":    StaffOfYKir,
	"Entropic Decay":     EntropicDecay,
}

// HumanDeckList is the human player's deck in draw-id order. A card's
// position is its id.
var HumanDeckList = []string{
	"Comodo Charger",
	"Hailstone Golem",
	"Pureblade Enforcer",
	"Azure Herald",
	"Silverguard Knight",
	"Azurite Lion",
	"Fire Spitter",
	"Ironcliff Guardian",
	"Truestrike",
	"Sundrop Elixir",
}

// AIDeckList is the AI player's deck. Ids start at AIDeckBaseID.
var AIDeckList = []string{
	"Planar Scout",
	"Rock Pulveriser",
	"Pyromancer",
	"Bloodshard Golem",
	"Blaze Hound",
	"WindShrike",
	"Hailstone Golem",
	"Serpenti",
	"Staff of Y'Kir'",
	"Entropic Decay",
}

// AIDeckBaseID is the id of the first card in the AI deck.
const AIDeckBaseID = 10

// LookupCard looks up a card by name and returns a new instance.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}

// BuildDeck instantiates the named cards, assigning ids baseID, baseID+1, ...
func BuildDeck(names []string, baseID int) ([]*Card, error) {
	cards := make([]*Card, 0, len(names))
	for i, name := range names {
		ctor, ok := CardRegistry[name]
		if !ok {
			return nil, fmt.Errorf("unknown card %q", name)
		}
		cards = append(cards, ctor().Copy(baseID+i))
	}
	return cards, nil
}

// DefaultDecks returns fresh copies of the standard human and AI decks.
func DefaultDecks() (human, ai []*Card) {
	human, err := BuildDeck(HumanDeckList, 0)
	if err != nil {
		panic(err)
	}
	ai, err = BuildDeck(AIDeckList, AIDeckBaseID)
	if err != nil {
		panic(err)
	}
	return human, ai
}

// CatalogNames returns every registered card name, sorted.
func CatalogNames() []string {
	names := make([]string, 0, len(CardRegistry))
	for name := range CardRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
