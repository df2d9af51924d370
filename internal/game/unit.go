package game

import (
	"fmt"

	"github.com/peterkuimelis/skirmish/internal/log"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// Unit is a creature or avatar on the board.
type Unit struct {
	g *Game

	ID        int
	Name      string
	Attack    int
	Health    int
	MaxHealth int
	Owner     *Player
	State     UnitState

	Ranged     bool
	Flying     bool
	CanProvoke bool
	Provoked   bool

	moves, maxMoves     int
	attacks, maxAttacks int

	X, Y   int
	placed bool
	Dead   bool
}

func newAvatar(g *Game, owner *Player, id int, name string) *Unit {
	return &Unit{
		g:          g,
		ID:         id,
		Name:       name,
		Attack:     AvatarAttack,
		Health:     StartingHealth,
		MaxHealth:  StartingHealth,
		Owner:      owner,
		moves:      1,
		maxMoves:   1,
		attacks:    1,
		maxAttacks: 1,
	}
}

func (u *Unit) Capability() Capability { return CapUnit }

// IsAvatar reports whether the unit is a player's avatar.
func (u *Unit) IsAvatar() bool { return u.ID >= HumanAvatarID }

// MovesLeft returns the remaining move budget this turn.
func (u *Unit) MovesLeft() int { return u.moves }

// AttacksLeft returns the remaining attack budget this turn.
func (u *Unit) AttacksLeft() int { return u.attacks }

// Tile returns the tile the unit stands on.
func (u *Unit) Tile() *Tile {
	if !u.placed || u.Dead {
		return nil
	}
	return u.g.Tile(u.X, u.Y)
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s#%d", u.Name, u.ID)
}

func (u *Unit) view() render.Unit {
	return render.Unit{ID: u.ID, Name: u.Name}
}

func (u *Unit) setPosition(t *Tile) {
	u.X, u.Y = t.X, t.Y
	u.placed = true
}

// setHealth stores h. An avatar's health is its owner's health.
func (u *Unit) setHealth(h int) {
	u.Health = h
	if u.IsAvatar() {
		if u.Owner == nil {
			panic(fmt.Sprintf("avatar %d has no owner", u.ID))
		}
		u.Owner.SetHealth(h)
	}
}

func (u *Unit) setAttack(a int) {
	u.Attack = a
}

func (u *Unit) displayStats() {
	u.g.emit(render.SetUnitHealth(u.view(), u.Health))
	u.g.emit(render.SetUnitAttack(u.view(), u.Attack))
}

// changeAttack sets attack to a and displays it.
func (u *Unit) changeAttack(a int) {
	u.setAttack(a)
	u.g.emit(render.SetUnitAttack(u.view(), a))
}

// changeHealth sets health to h and displays it. Unless canExceedMax, h is
// clamped to max health. At or below zero the unit dies.
func (u *Unit) changeHealth(h int, canExceedMax bool) {
	g := u.g
	old := u.Health
	if h > u.MaxHealth && !canExceedMax {
		h = u.MaxHealth
	}
	if h < 1 {
		u.die()
		return
	}
	u.setHealth(h)
	g.emit(render.SetUnitHealth(u.view(), h))
	if old != h {
		g.log(log.NewHPChangeEvent(g.Turn, u.Owner.Index, u.Name, old, h))
	}
}

// inAttackRange reports whether (x, y) is in the unit's 8-neighbourhood.
func (u *Unit) inAttackRange(x, y int) bool {
	return distanceSq(u.X, u.Y, x, y) <= adjacentDistance
}

// React handles unit-addressed broadcasts.
func (u *Unit) React(e Event) {
	if u.Dead {
		return
	}
	switch e.Kind {
	case EvUnitBeReady:
		u.onBeReady()
	case EvAttacked:
		if e.Defender == u {
			u.attacked(e.Attacker, true)
		}
	case EvModifyUnit:
		if e.UnitID == u.ID {
			u.onModify(e)
		}
	}
}

func (u *Unit) onBeReady() {
	if u.Owner == u.g.current {
		u.State = UnitReady
		u.moves = u.maxMoves
		u.attacks = u.maxAttacks
		return
	}
	u.State = UnitNotReady
}

func (u *Unit) onModify(e Event) {
	g := u.g
	if e.Limit == LimitEnemyTurn && g.current == u.Owner {
		return
	}
	health := u.Health + e.Health
	attack := u.Attack + e.Attack
	if e.Limit == LimitMax && health > u.MaxHealth {
		g.notify("Cannot exceed the max health")
		health = u.MaxHealth
	}
	u.setHealth(health)
	u.setAttack(attack)
	u.displayStats()
	g.log(log.NewStatChangeEvent(g.Turn, u.Owner.Index, u.Name, attack, health))
}
