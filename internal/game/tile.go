package game

import (
	"github.com/peterkuimelis/skirmish/internal/render"
)

// Tile is one board cell. It holds a non-owning reference to its occupant
// and, while a unit standing on it is selected, the cells that unit can
// reach.
type Tile struct {
	g *Game

	X, Y      int
	Highlight Highlight

	occupant  *Unit
	reachable []*Tile
}

func (t *Tile) Capability() Capability { return CapTile }

// Occupant returns the unit on the tile, if any.
func (t *Tile) Occupant() *Unit { return t.occupant }

// Reachable returns the cells computed by the last move highlight from here.
func (t *Tile) Reachable() []*Tile {
	return append([]*Tile(nil), t.reachable...)
}

func (t *Tile) setHighlight(h Highlight) {
	t.Highlight = h
	t.g.emit(render.DrawTile(t.X, t.Y, int(h)))
}

func (t *Tile) addReachable(r *Tile) {
	for _, existing := range t.reachable {
		if existing == r {
			return
		}
	}
	t.reachable = append(t.reachable, r)
}

func (t *Tile) clearReachable() {
	t.reachable = nil
}

// publishAround publishes e once for every cell in t's 8-neighbourhood.
func (t *Tile) publishAround(e Event) {
	for _, d := range neighbours8 {
		e.X, e.Y = t.X+d[0], t.Y+d[1]
		t.g.broadcastTiles(e)
	}
}

// React handles tile-addressed broadcasts. Positional events are acted on
// only by the tile at the event's coordinates.
func (t *Tile) React(e Event) {
	switch e.Kind {
	case EvTextureReset:
		t.onTextureReset()
		return
	case EvSearchUnit:
		t.onSearchUnit(e.Range)
		return
	case EvValidSummonRange:
		t.onValidSummonRange(e.Airdrop)
		return
	case EvAIFindOperateTile:
		t.onAIFindOperateTile()
		return
	}

	if !e.at(t.X, t.Y) {
		return
	}
	switch e.Kind {
	case EvCheckSummonNeighbour:
		if t.occupant == nil {
			t.setHighlight(HighlightSelectable)
		}
	case EvSummon:
		t.onSummon(e.Unit)
	case EvMoveHighlight:
		t.onMoveHighlight(e.Count, e.Origin)
	case EvAttackHighlight:
		t.onAttackHighlight()
	case EvDeleteUnit:
		t.occupant = nil
	case EvSpell:
		t.onSpell(e.Card)
	case EvFirstClick:
		t.onFirstClick()
	case EvOperateUnit:
		t.onOperateUnit(e.Origin)
	case EvCheckMoveVertically:
		e.Mover.move(e.Origin.occupant, e.Origin, t.Highlight != HighlightSelectable)
	case EvSearchUnitCanProvoke:
		t.onSearchUnitCanProvoke(e.Unit)
	case EvClearProvoke:
		if t.occupant != nil && t.occupant.Owner != t.g.current {
			t.occupant.Provoked = false
		}
	}
}

func (t *Tile) onTextureReset() {
	if t.Highlight != HighlightNormal {
		t.setHighlight(HighlightNormal)
		t.g.pause(pauseTexture)
	}
}

func (t *Tile) onSearchUnit(r SearchRange) {
	u := t.occupant
	if u == nil {
		return
	}
	cur := t.g.current
	switch {
	case r == RangeEnemy && u.Owner != cur,
		r == RangeAll,
		r == RangeNonAvatar && !u.IsAvatar():
		t.setHighlight(HighlightSelectable)
	case r == RangeYourAvatar && u.IsAvatar() && u.Owner == cur:
		t.setHighlight(HighlightSelectable)
	case r == RangeAllFriends && u.Owner.IsAI():
		t.g.ai.addCandidate(t)
	}
}

func (t *Tile) onValidSummonRange(airdrop bool) {
	if airdrop {
		if t.occupant == nil {
			t.setHighlight(HighlightSelectable)
			t.g.pause(pauseTexture)
		}
		return
	}
	if t.occupant != nil && t.occupant.Owner == t.g.current {
		t.publishAround(Event{Kind: EvCheckSummonNeighbour})
	}
}

func (t *Tile) onAIFindOperateTile() {
	switch t.Highlight {
	case HighlightSelectable:
		t.g.ai.addMove(t)
	case HighlightAttackable:
		t.g.ai.addAttack(t)
	}
}

func (t *Tile) onSearchUnitCanProvoke(probe *Unit) {
	u := t.occupant
	if u == nil || !u.CanProvoke || u.Owner == t.g.current {
		return
	}
	t.setHighlight(HighlightAttackable)
	probe.Provoked = true
}

// onFirstClick selects the current player's unit on t and highlights what
// it can do. A unit next to an enemy provoker may only attack provokers.
func (t *Tile) onFirstClick() {
	g := t.g
	u := t.occupant
	if u == nil || u.Owner != g.current {
		return
	}

	u.Provoked = false
	t.publishAround(Event{Kind: EvSearchUnitCanProvoke, Unit: u})

	if u.State != UnitReady && u.State != UnitHasMoved {
		if u.Provoked {
			g.broadcastTiles(Event{Kind: EvTextureReset})
		}
		return
	}

	g.setTileSelected(t)
	t.clearReachable()

	switch {
	case u.Provoked:
		// Provoker tiles are already marked.
	case u.State == UnitHasMoved && u.Ranged:
		g.highlightAllAttacks()
	case u.State == UnitHasMoved:
		t.attackHighlight()
	case u.Ranged:
		g.highlightAllAttacks()
		t.expandMove(0, t)
	case u.Flying:
		for _, other := range g.Tiles() {
			g.broadcastTiles(Event{Kind: EvMoveHighlight, X: other.X, Y: other.Y, Origin: t})
		}
	default:
		t.expandMove(0, t)
		t.attackHighlight()
	}
}

// onOperateUnit handles a click on t while the unit on origin is selected.
func (t *Tile) onOperateUnit(origin *Tile) {
	g := t.g
	if origin == nil || origin.occupant == nil {
		g.resetTileSelected()
		return
	}
	u := origin.occupant

	switch t.Highlight {
	case HighlightNormal:
		origin.clearReachable()
		if t.occupant != nil && t.occupant.Owner == g.current {
			g.resetTileSelected()
			g.broadcastTiles(Event{Kind: EvFirstClick, X: t.X, Y: t.Y})
			return
		}
		g.notify("Cancel unit select")
		g.resetTileSelected()
	case HighlightSelectable:
		t.checkMoveVertically(origin)
	case HighlightAttackable:
		t.attackFrom(origin, u)
	}
}

// attackFrom has u, standing on origin, attack the unit on t. A melee unit
// out of reach first steps to a reachable cell next to the target.
func (t *Tile) attackFrom(origin *Tile, u *Unit) {
	g := t.g
	if u.Ranged || u.State == UnitHasMoved || distanceSq(origin.X, origin.Y, t.X, t.Y) <= adjacentDistance {
		origin.clearReachable()
		t.attackedBroadcast(u)
		return
	}

	for _, step := range origin.Reachable() {
		if step.Highlight == HighlightSelectable && distanceSq(step.X, step.Y, t.X, t.Y) <= adjacentDistance {
			step.checkMoveVertically(origin)
			g.pause(pauseMove)
			t.attackedBroadcast(u)
			return
		}
	}
	origin.clearReachable()
	g.resetTileSelected()
}
