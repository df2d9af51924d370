package game

import (
	"fmt"

	"github.com/peterkuimelis/skirmish/internal/log"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// onSummon places u on t. While a card is being played the tile must be
// highlighted; outside card play (avatar placement) it is placed directly.
func (t *Tile) onSummon(u *Unit) {
	g := t.g
	fromHand := g.State == StateCardSelect
	if fromHand && t.Highlight != HighlightSelectable {
		g.notify("Select a valid tile!")
		return
	}
	if t.occupant != nil {
		return
	}

	t.occupant = u
	u.setPosition(t)
	g.addUnit(u)
	g.emit(render.DrawUnit(u.view(), t.X, t.Y))
	g.pause(pauseSummon)
	u.displayStats()

	if !fromHand {
		return
	}
	card := g.selectedCard
	g.current.removeCardFromHand(card)
	g.log(log.NewSummonEvent(g.Turn, u.Owner.Index, u.Name, t.X, t.Y))
	g.hooks.Fire(g, HookOnSummon, u.ID)
	g.setCardSelected(nil)
	g.State = StateReady
}

// onSpell casts c on t. Spell-cast abilities fire on every cast attempt;
// the effect only lands on a highlighted target.
func (t *Tile) onSpell(c *Card) {
	g := t.g
	g.hooks.FireAll(g, HookOnSpellCast)

	target := t.occupant
	if t.Highlight == HighlightSelectable && target != nil {
		g.log(log.NewSpellCastEvent(g.Turn, g.current.Index, c.Name, target.Name))
		switch c.Spell {
		case SpellDamage:
			target.changeHealth(target.Health-spellDamageAmount, false)
		case SpellDestroy:
			if !target.IsAvatar() {
				target.changeHealth(0, false)
			}
		case SpellHeal:
			target.changeHealth(target.Health+spellHealAmount, false)
		case SpellEmpowerAvatar:
			if target.IsAvatar() {
				target.changeAttack(target.Attack + spellEmpowerAmount)
			}
		}
		g.current.removeCardFromHand(c)
	} else {
		g.notify(fmt.Sprintf("%s needs a valid target", c.Name))
	}
	g.resetTileSelected()
}
