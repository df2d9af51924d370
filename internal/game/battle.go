package game

import (
	"fmt"

	"github.com/peterkuimelis/skirmish/internal/log"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// attacked resolves a hit on u by attacker. If u survives, allowCounter is
// set and the attacker stands in u's 8-neighbourhood, u strikes back once
// with no further counter.
func (u *Unit) attacked(attacker *Unit, allowCounter bool) {
	g := u.g
	if attacker.ID == HumanAvatarID {
		g.hooks.FireAll(g, HookOnAvatarAttacked)
	}

	if allowCounter {
		g.log(log.NewAttackEvent(g.Turn, attacker.Owner.Index, attacker.Name, u.Name))
	} else {
		g.log(log.NewCounterAttackEvent(g.Turn, attacker.Owner.Index, attacker.Name, u.Name))
	}

	g.emit(render.PlayUnitAnimation(attacker.view(), render.AnimAttack))
	g.pause(pauseAnimation)
	g.emit(render.PlayUnitAnimation(attacker.view(), render.AnimIdle))

	u.changeHealth(u.Health-attacker.Attack, false)

	if allowCounter && !u.Dead && !attacker.Dead && u.inAttackRange(attacker.X, attacker.Y) {
		attacker.attacked(u, false)
	}
}

// die removes the unit from the board. Losing an avatar ends the match.
func (u *Unit) die() {
	g := u.g
	g.hooks.Fire(g, HookOnUnitDeath, u.ID)

	u.setHealth(0)
	g.emit(render.SetUnitHealth(u.view(), 0))
	g.emit(render.PlayUnitAnimation(u.view(), render.AnimDeath))
	g.pause(pauseAnimation)
	g.emit(render.DeleteUnit(u.view()))
	g.broadcastTiles(Event{Kind: EvDeleteUnit, X: u.X, Y: u.Y})
	u.Dead = true
	g.log(log.NewDeathEvent(g.Turn, u.Owner.Index, u.Name))

	switch u.ID {
	case AIAvatarID:
		g.win(g.Human(), fmt.Sprintf("%s was destroyed", u.Name))
	case HumanAvatarID:
		g.win(g.AI(), fmt.Sprintf("%s was destroyed", u.Name))
	}
}

// attackedBroadcast has the unit on t take a hit from attacker and spends
// one of the attacker's attacks.
func (t *Tile) attackedBroadcast(attacker *Unit) {
	g := t.g
	target := t.occupant
	if target == nil {
		g.resetTileSelected()
		return
	}
	g.notify(fmt.Sprintf("%s attacks %s", attacker.Name, target.Name))
	g.broadcastUnits(Event{Kind: EvAttacked, Attacker: attacker, Defender: target})

	attacker.attacks--
	if attacker.attacks < 1 {
		attacker.State = UnitHasAttacked
	}
	g.resetTileSelected()
	g.pause(pauseAttackDone)
}
