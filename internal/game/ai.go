package game

import "go.uber.org/zap"

// aiDriver plays the AI side by sending the same clicks a person would.
type aiDriver struct {
	g      *Game
	player *Player

	candidates []*Tile // own units found by the all-friends search
	moves      []*Tile // SELECTABLE tiles found after a click
	attacks    []*Tile // ATTACKABLE tiles found after a click
}

func appendTile(list []*Tile, t *Tile) []*Tile {
	for _, existing := range list {
		if existing == t {
			return list
		}
	}
	return append(list, t)
}

func (a *aiDriver) addCandidate(t *Tile) { a.candidates = appendTile(a.candidates, t) }
func (a *aiDriver) addMove(t *Tile) { a.moves = appendTile(a.moves, t) }
func (a *aiDriver) addAttack(t *Tile) { a.attacks = appendTile(a.attacks, t) }

func (a *aiDriver) clearRecord() {
	a.moves = nil
	a.attacks = nil
}

// takeTurn runs a whole AI turn: units first, then cards, then hands the
// turn back.
func (a *aiDriver) takeTurn() {
	g := a.g
	g.zl.Debug("AI turn start", zap.Int("turn", g.Turn), zap.Int("mana", a.player.Mana))
	g.pause(pauseAIThink)

	a.operateUnits()
	if g.Over {
		return
	}
	a.playCards()
	if g.Over {
		return
	}
	g.startTurn()
}

// operateUnits gives each ready unit one action: attack the first
// attackable tile, otherwise move to the first reachable one.
func (a *aiDriver) operateUnits() {
	g := a.g
	a.candidates = nil
	g.broadcastTiles(Event{Kind: EvSearchUnit, Range: RangeAllFriends})
	candidates := a.candidates
	a.candidates = nil

	for _, t := range candidates {
		if g.Over {
			return
		}
		u := t.occupant
		if u == nil || u.Owner != a.player || u.State != UnitReady {
			continue
		}

		g.tileClicked(t.X, t.Y)
		if g.State != StateUnitSelect {
			continue
		}

		a.clearRecord()
		g.broadcastTiles(Event{Kind: EvAIFindOperateTile})
		switch {
		case len(a.attacks) > 0:
			g.tileClicked(a.attacks[0].X, a.attacks[0].Y)
		case len(a.moves) > 0:
			g.tileClicked(a.moves[0].X, a.moves[0].Y)
		default:
			g.otherClicked()
		}
		a.clearRecord()
		g.pause(pauseAIStep)
	}
}

// playCards walks the hand in slot order and plays every affordable card
// on the first valid tile.
func (a *aiDriver) playCards() {
	g := a.g
	for pos := 0; pos < HandSize; pos++ {
		if g.Over {
			return
		}
		c := a.player.Hand[pos]
		if c == nil || c.ManaCost > a.player.Mana {
			continue
		}

		g.cardClicked(pos)
		if g.State != StateCardSelect {
			continue
		}

		a.clearRecord()
		g.broadcastTiles(Event{Kind: EvAIFindOperateTile})
		if len(a.moves) > 0 {
			g.tileClicked(a.moves[0].X, a.moves[0].Y)
		} else {
			g.otherClicked()
		}
		a.clearRecord()
		g.pause(pauseAIStep)
	}
}
