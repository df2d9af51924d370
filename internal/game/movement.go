package game

import (
	"fmt"

	"github.com/peterkuimelis/skirmish/internal/log"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// maxMoveDepth is how many orthogonal steps a walking unit may take.
const maxMoveDepth = 2

// expandMove spreads the move highlight from t to its orthogonal
// neighbours. count is the depth already walked to reach t.
func (t *Tile) expandMove(count int, origin *Tile) {
	if count >= maxMoveDepth {
		return
	}
	count++
	for _, d := range neighbours4 {
		t.g.broadcastTiles(Event{Kind: EvMoveHighlight, X: t.X + d[0], Y: t.Y + d[1], Count: count, Origin: origin})
	}
}

// onMoveHighlight marks an empty, unmarked tile reachable from origin and
// keeps expanding. Enemies next to a reachable cell become attackable.
func (t *Tile) onMoveHighlight(count int, origin *Tile) {
	if t.occupant != nil || t.Highlight != HighlightNormal {
		return
	}
	t.setHighlight(HighlightSelectable)
	origin.addReachable(t)
	t.expandMove(count, origin)
	t.attackHighlight()
}

// attackHighlight asks the 8 neighbours to mark enemy occupants.
func (t *Tile) attackHighlight() {
	t.publishAround(Event{Kind: EvAttackHighlight})
}

func (t *Tile) onAttackHighlight() {
	if t.occupant != nil && t.occupant.Owner != t.g.current && t.Highlight == HighlightNormal {
		t.setHighlight(HighlightAttackable)
	}
}

// highlightAllAttacks marks every enemy on the board.
func (g *Game) highlightAllAttacks() {
	for _, t := range g.Tiles() {
		g.broadcastTiles(Event{Kind: EvAttackHighlight, X: t.X, Y: t.Y})
	}
}

// checkMoveVertically moves the unit on origin to t. An exact diagonal step
// goes horizontally first when the corner cell (t.X, origin.Y) is reachable
// and vertically first otherwise.
func (t *Tile) checkMoveVertically(origin *Tile) {
	if distanceSq(t.X, t.Y, origin.X, origin.Y) == adjacentDistance {
		t.g.broadcastTiles(Event{Kind: EvCheckMoveVertically, X: t.X, Y: origin.Y, Mover: t, Origin: origin})
		return
	}
	t.move(origin.occupant, origin, false)
}

// move walks u from origin to t and spends one move.
func (t *Tile) move(u *Unit, origin *Tile, yFirst bool) {
	g := t.g
	if u == nil {
		g.resetTileSelected()
		return
	}
	g.resetTileSelected()
	g.pause(pauseMoveStart)
	g.emit(render.MoveUnitToTile(u.view(), t.X, t.Y, yFirst))
	g.notify(fmt.Sprintf("%s moves to (%d,%d)", u.Name, t.X, t.Y))
	g.pause(pauseMove)

	u.setPosition(t)
	t.occupant = u
	origin.occupant = nil
	origin.clearReachable()

	u.moves--
	if u.moves < 1 {
		u.State = UnitHasMoved
	}
	g.log(log.NewMoveEvent(g.Turn, u.Owner.Index, u.Name, origin.X, origin.Y, t.X, t.Y))

	if u.CanProvoke {
		origin.publishAround(Event{Kind: EvClearProvoke})
	}
}
