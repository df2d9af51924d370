package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Templates []TemplateEntry `yaml:"templates"`
	Decks     []DeckEntry     `yaml:"decks"`
}

// TemplateEntry defines a card not in the built-in registry. Abilities,
// spell and target fall back to ClassifyRules when omitted.
type TemplateEntry struct {
	Name      string     `yaml:"name"`
	Mana      int        `yaml:"mana"`
	Attack    int        `yaml:"attack"`
	Health    int        `yaml:"health"`
	Rules     []string   `yaml:"rules"`
	Abilities *Abilities `yaml:"abilities"`
	Spell     string     `yaml:"spell"`
	Target    string     `yaml:"target"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckData decodes a deck file.
func ParseDeckData(data []byte) (DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return DeckFile{}, fmt.Errorf("parse deck YAML: %w", err)
	}
	return df, nil
}

func readDeckFile(path string) (DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeckFile{}, err
	}
	return ParseDeckData(data)
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name → card slice.
// Ids start at zero in every deck.
func ParseDeckFile(path string) (map[string][]*Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return nil, err
	}

	decks := make(map[string][]*Card)
	for _, deck := range df.Decks {
		cards, err := df.build(deck, 0)
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
		}
		decks[deck.Name] = cards
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file with ids
// starting at baseID.
func DeckByNumber(path string, n, baseID int) (string, []*Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return "", nil, err
	}
	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	cards, err := df.build(deck, baseID)
	if err != nil {
		return "", nil, fmt.Errorf("deck %q: %w", deck.Name, err)
	}
	return deck.Name, cards, nil
}

// LoadDecks loads the human and AI decks from a deck file. An empty path
// yields the built-in decks.
func LoadDecks(path string, humanDeck, aiDeck int) (human, ai []*Card, err error) {
	if path == "" {
		human, ai = DefaultDecks()
		return human, ai, nil
	}
	if _, human, err = DeckByNumber(path, humanDeck, 0); err != nil {
		return nil, nil, fmt.Errorf("load human deck: %w", err)
	}
	if _, ai, err = DeckByNumber(path, aiDeck, AIDeckBaseID); err != nil {
		return nil, nil, fmt.Errorf("load AI deck: %w", err)
	}
	// Ids must stay clear of the other deck and the avatars.
	if len(human) > AIDeckBaseID {
		return nil, nil, fmt.Errorf("human deck has %d cards, at most %d allowed", len(human), AIDeckBaseID)
	}
	if limit := HumanAvatarID - AIDeckBaseID; len(ai) > limit {
		return nil, nil, fmt.Errorf("AI deck has %d cards, at most %d allowed", len(ai), limit)
	}
	return human, ai, nil
}

func (df DeckFile) build(deck DeckEntry, baseID int) ([]*Card, error) {
	var cards []*Card
	for _, entry := range deck.Cards {
		count := entry.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			tmpl, err := df.lookup(entry.Name)
			if err != nil {
				return nil, err
			}
			cards = append(cards, tmpl.Copy(baseID+len(cards)))
		}
	}
	return cards, nil
}

func (df DeckFile) lookup(name string) (*Card, error) {
	for _, t := range df.Templates {
		if t.Name == name {
			return t.card()
		}
	}
	ctor, ok := CardRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown card %q", name)
	}
	return ctor(), nil
}

func (t TemplateEntry) card() (*Card, error) {
	ab, effect, target := ClassifyRules(t.Rules)
	if t.Abilities != nil {
		ab = *t.Abilities
	}
	if t.Spell != "" {
		e, ok := parseSpellEffect(t.Spell)
		if !ok {
			return nil, fmt.Errorf("card %q: unknown spell effect %q", t.Name, t.Spell)
		}
		effect = e
	}
	if t.Target != "" {
		r, ok := parseSearchRange(t.Target)
		if !ok {
			return nil, fmt.Errorf("card %q: unknown target %q", t.Name, t.Target)
		}
		target = r
	}
	c := &Card{
		Name:      t.Name,
		ManaCost:  t.Mana,
		Attack:    t.Attack,
		Health:    t.Health,
		Rules:     t.Rules,
		Abilities: ab,
	}
	if c.IsSpell() {
		c.Spell, c.Target = effect, target
	}
	return c, nil
}

func parseSpellEffect(s string) (SpellEffect, bool) {
	for _, e := range []SpellEffect{SpellDamage, SpellDestroy, SpellHeal, SpellEmpowerAvatar} {
		if strings.EqualFold(e.String(), s) {
			return e, true
		}
	}
	return SpellNone, false
}

func parseSearchRange(s string) (SearchRange, bool) {
	for _, r := range []SearchRange{RangeEnemy, RangeAll, RangeNonAvatar, RangeYourAvatar} {
		if strings.EqualFold(r.String(), s) {
			return r, true
		}
	}
	return RangeNone, false
}
