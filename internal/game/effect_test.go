package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/skirmish/internal/log"
)

func TestHookRegistryResolvesByName(t *testing.T) {
	human, ai := DefaultDecks()
	r := NewHookRegistry(AbilityTable, human, ai)

	assert.Equal(t, []int{3, 14}, r.Keys(HookOnSummon))
	assert.Equal(t, []int{7, 10}, r.Keys(HookOnCardSelect))
	assert.Equal(t, []int{2}, r.Keys(HookOnSpellCast))
	assert.Equal(t, []int{4}, r.Keys(HookOnAvatarAttacked))
	assert.Equal(t, []int{15}, r.Keys(HookOnUnitDeath))

	e, ok := r.Lookup(HookOnSummon, 3)
	require.True(t, ok)
	assert.Equal(t, ModifyUnit{Target: TargetCurrentAvatar, Health: 3, Limit: LimitMax}, e)

	_, ok = r.Lookup(HookOnSummon, 0)
	assert.False(t, ok)
}

func TestHookRegistryCoversEveryCopy(t *testing.T) {
	deck, err := BuildDeck([]string{"Azure Herald", "Comodo Charger", "Azure Herald"}, 0)
	require.NoError(t, err)
	r := NewHookRegistry(AbilityTable, deck)
	assert.Equal(t, []int{0, 2}, r.Keys(HookOnSummon))
}

func TestEffectStrings(t *testing.T) {
	assert.Equal(t, "modify +0/+3 (limit max)", ModifyUnit{Health: 3, Limit: LimitMax}.String())
	assert.Equal(t, "airdrop", AirdropHighlight{}.String())
	assert.Equal(t, "both players draw", DrawCards{Who: DrawBoth}.String())
	assert.Equal(t, "current player draws", DrawCards{}.String())
	assert.Equal(t, "OnAvatarAttacked", HookOnAvatarAttacked.String())
}

func TestAzureHeraldHealsAvatar(t *testing.T) {
	h := newHarness(t)
	human := h.g.Human()
	human.Avatar().setHealth(15)
	human.SetMana(2)
	slot := h.give(human, "Azure Herald")

	h.clickCard(slot)
	h.clickTile(2, 2)

	assert.Equal(t, 18, human.Health)
	assert.Equal(t, 18, human.Avatar().Health)
	abilities := h.logger.EventsOfType(log.EventAbility)
	require.Len(t, abilities, 1)
	assert.Equal(t, "Azure Herald", abilities[0].Card)
}

func TestAzureHeraldCannotExceedMax(t *testing.T) {
	h := newHarness(t)
	human := h.g.Human()
	human.Avatar().setHealth(19)
	human.SetMana(2)
	slot := h.give(human, "Azure Herald")

	h.clickCard(slot)
	h.clickTile(2, 1)

	assert.Equal(t, StartingHealth, human.Health)
	assert.True(t, h.notified("Cannot exceed the max health"))
}

func TestBlazeHoundDrawsForBoth(t *testing.T) {
	h := newHarness(t)
	g := h.g
	ai := g.AI()
	g.current = ai
	ai.SetMana(3)
	slot := h.give(ai, "Blaze Hound")

	g.cardClicked(slot)
	require.Equal(t, StateCardSelect, g.State)
	g.tileClicked(6, 2)

	hound := g.Tile(6, 2).Occupant()
	require.NotNil(t, hound)
	assert.Equal(t, "Blaze Hound", hound.Name)
	assert.Equal(t, 0, ai.Mana)

	draws := h.logger.EventsOfType(log.EventDraw)
	require.Len(t, draws, 2)
	assert.Equal(t, 1, draws[0].Player)
	assert.Equal(t, "Planar Scout", draws[0].Card)
	assert.Equal(t, 0, draws[1].Player)
	assert.Equal(t, "Comodo Charger", draws[1].Card)
}

func TestPurebladeGrowsOnEnemySpells(t *testing.T) {
	h := newHarness(t)
	g := h.g
	enforcer := h.placeFromDeck(g.Human(), "Pureblade Enforcer", 2, 2)
	h.placeFromDeck(g.AI(), "Bloodshard Golem", 6, 2)

	// The owner's own spell leaves it alone.
	slot := h.give(g.Human(), "Truestrike")
	h.clickCard(slot)
	h.clickTile(6, 2)
	assert.Equal(t, 1, enforcer.Attack)
	assert.Equal(t, 4, enforcer.Health)

	ai := g.AI()
	g.current = ai
	ai.SetMana(2)
	slot = h.give(ai, "Staff of Y'Kir'")
	g.cardClicked(slot)
	g.tileClicked(7, 2)

	assert.Equal(t, 2, enforcer.Attack)
	assert.Equal(t, 5, enforcer.Health)
	assert.Equal(t, AvatarAttack+2, ai.Avatar().Attack)
}

func TestSilverguardKnightGrowsWhenAvatarAttacks(t *testing.T) {
	h := newHarness(t)
	g := h.g
	knight := h.placeFromDeck(g.Human(), "Silverguard Knight", 0, 0)
	golem := h.placeFromDeck(g.AI(), "Bloodshard Golem", 2, 2)

	h.clickTile(1, 2)
	require.Equal(t, HighlightAttackable, g.Tile(2, 2).Highlight)
	h.clickTile(2, 2)

	assert.Equal(t, 3, knight.Attack)
	assert.Equal(t, 1, golem.Health)
	assert.Equal(t, 16, g.Human().Health)
	assert.Equal(t, UnitHasAttacked, g.Human().Avatar().State)
}

func TestWindShrikeDrawsOnDeath(t *testing.T) {
	h := newHarness(t)
	g := h.g
	h.placeFromDeck(g.Human(), "Fire Spitter", 1, 0)
	shrike := h.placeFromDeck(g.AI(), "WindShrike", 5, 2)

	h.clickTile(1, 0)
	h.clickTile(5, 2)

	assert.True(t, shrike.Dead)
	assert.Nil(t, g.Tile(5, 2).Occupant())
	// The draw goes to whoever's turn it is.
	require.NotNil(t, g.Human().Hand[0])
	assert.Equal(t, "Comodo Charger", g.Human().Hand[0].Name)
	assert.Equal(t, 0, g.AI().HandCount())
}

func TestAirdropHighlightsEveryEmptyTile(t *testing.T) {
	h := newHarness(t)
	human := h.g.Human()
	human.SetMana(5)
	slot := h.give(human, "Ironcliff Guardian")

	h.clickCard(slot)
	assert.Len(t, h.highlighted(HighlightSelectable), BoardWidth*BoardHeight-2)
	assert.True(t, h.notified("Ironcliff Guardian: Airdrop activated"))

	h.clickTile(6, 4)
	u := h.g.Tile(6, 4).Occupant()
	require.NotNil(t, u)
	assert.True(t, u.CanProvoke)
	assert.Equal(t, 0, human.Mana)
}
