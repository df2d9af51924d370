package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/skirmish/internal/log"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// harness drives one engine with recording sinks and a virtual clock.
type harness struct {
	t      *testing.T
	engine *Engine
	g      *Game
	rec    *render.Recorder
	logger *log.MemoryLogger
	clock  *VirtualClock
}

// newHarness builds an unshuffled game with the default decks and
// initializes it in test mode (no opening hands).
func newHarness(t *testing.T, opts ...func(*Config)) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		rec:    render.NewRecorder(),
		logger: log.NewMemoryLogger(),
		clock:  &VirtualClock{},
	}
	cfg := Config{
		Seed:      1,
		NoShuffle: true,
		Pacer:     h.clock,
		Sink:      h.rec,
		Logger:    h.logger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	h.engine = NewEngine(cfg)
	h.g = h.engine.game
	h.do(Intent{Kind: IntentInitialize, Mode: ModeTest})
	return h
}

func (h *harness) do(in Intent) {
	h.t.Helper()
	require.NoError(h.t, h.engine.Handle(context.Background(), in))
}

func (h *harness) clickCard(pos int) { h.do(Intent{Kind: IntentCardClicked, Position: pos}) }

func (h *harness) clickTile(x, y int) {
	h.do(Intent{Kind: IntentTileClicked, TileX: x, TileY: y})
}

func (h *harness) clickOther() { h.do(Intent{Kind: IntentOtherClicked}) }

func (h *harness) endTurn() { h.do(Intent{Kind: IntentEndTurnClicked}) }

// takeFromDeck removes the named card from p's deck and returns it.
func (h *harness) takeFromDeck(p *Player, name string) *Card {
	h.t.Helper()
	for i, c := range p.Deck {
		if c.Name == name {
			p.Deck = append(p.Deck[:i:i], p.Deck[i+1:]...)
			return c
		}
	}
	h.t.Fatalf("%s has no %q in deck", p, name)
	return nil
}

// give moves the named card from p's deck into p's first free hand slot
// and returns the slot.
func (h *harness) give(p *Player, name string) int {
	h.t.Helper()
	c := h.takeFromDeck(p, name)
	slot := p.freeSlot()
	require.GreaterOrEqual(h.t, slot, 0, "hand is full")
	p.Hand[slot] = c
	return slot
}

// place puts c on (x, y) for owner outside card play, refreshed as if a
// new turn had started for it.
func (h *harness) place(owner *Player, c *Card, x, y int) *Unit {
	h.t.Helper()
	g := h.g
	require.Nil(h.t, g.Tile(x, y).Occupant(), "tile (%d,%d) occupied", x, y)
	u := c.ToUnit(g, owner)
	g.broadcastTiles(Event{Kind: EvSummon, X: x, Y: y, Unit: u})
	require.Same(h.t, u, g.Tile(x, y).Occupant())
	u.onBeReady()
	return u
}

// placeFromDeck places the named card from owner's deck.
func (h *harness) placeFromDeck(owner *Player, name string, x, y int) *Unit {
	h.t.Helper()
	return h.place(owner, h.takeFromDeck(owner, name), x, y)
}

// highlighted returns the tiles with the given highlight.
func (h *harness) highlighted(hl Highlight) []*Tile {
	var out []*Tile
	for _, t := range h.g.Tiles() {
		if t.Highlight == hl {
			out = append(out, t)
		}
	}
	return out
}

func (h *harness) notified(text string) bool {
	for _, n := range h.rec.Notifications() {
		if n == text {
			return true
		}
	}
	return false
}

// requireSelectionInvariant checks that at most one selection is active
// and that the state agrees with it.
func (h *harness) requireSelectionInvariant() {
	h.t.Helper()
	g := h.g
	require.False(h.t, g.SelectedCard() != nil && g.SelectedTile() != nil, "card and tile selected together")
	switch g.State {
	case StateReady:
		require.Nil(h.t, g.SelectedCard())
		require.Nil(h.t, g.SelectedTile())
	case StateCardSelect:
		require.NotNil(h.t, g.SelectedCard())
	case StateUnitSelect:
		require.NotNil(h.t, g.SelectedTile())
	}
}

// requireOccupancyInvariant checks that every occupant sits at its tile's
// coordinates and that each living unit occupies exactly one tile.
func (h *harness) requireOccupancyInvariant() {
	h.t.Helper()
	seen := make(map[*Unit]int)
	for _, tile := range h.g.Tiles() {
		u := tile.Occupant()
		if u == nil {
			continue
		}
		require.False(h.t, u.Dead, "%s is dead but still on (%d,%d)", u.Name, tile.X, tile.Y)
		require.Equal(h.t, tile.X, u.X, "%s x on tile (%d,%d)", u.Name, tile.X, tile.Y)
		require.Equal(h.t, tile.Y, u.Y, "%s y on tile (%d,%d)", u.Name, tile.X, tile.Y)
		seen[u]++
	}
	for _, u := range h.g.Units() {
		require.Equal(h.t, 1, seen[u], "%s occupies %d tiles", u.Name, seen[u])
	}
}
