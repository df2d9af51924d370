package game

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/peterkuimelis/skirmish/internal/log"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// Config configures a game.
type Config struct {
	HumanDeck []*Card // defaults to the built-in human deck
	AIDeck    []*Card // defaults to the built-in AI deck
	Seed      int64   // shuffle seed; 0 picks one from the clock
	NoShuffle bool    // draw in deck order

	Pacer  Pacer
	Sink   render.Sink
	Logger log.EventLogger
	Zap    *zap.Logger
}

// Game is the whole mutable state of one match: the board, both players,
// the interaction state machine and the ability registry. It is not safe
// for concurrent use; Engine serializes access.
type Game struct {
	cfg Config
	ctx context.Context

	Turn    int
	State   State
	Players [2]*Player

	current      *Player
	selectedCard *Card
	selectedTile *Tile

	tiles [BoardWidth][BoardHeight]*Tile
	units []*Unit
	bus   Bus
	hooks *HookRegistry
	ai    *aiDriver

	Over   bool
	Winner int

	initialized bool

	sink   render.Sink
	pacer  Pacer
	logger log.EventLogger
	zl     *zap.Logger
	rng    *rand.Rand
}

// NewGame creates an uninitialized game. Call Initialize before any click.
func NewGame(cfg Config) *Game {
	if cfg.HumanDeck == nil || cfg.AIDeck == nil {
		human, ai := DefaultDecks()
		if cfg.HumanDeck == nil {
			cfg.HumanDeck = human
		}
		if cfg.AIDeck == nil {
			cfg.AIDeck = ai
		}
	}
	if cfg.Pacer == nil {
		cfg.Pacer = NoPacer{}
	}
	if cfg.Sink == nil {
		cfg.Sink = render.Discard{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewMemoryLogger()
	}
	if cfg.Zap == nil {
		cfg.Zap = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:    cfg,
		ctx:    context.Background(),
		Winner: -1,
		sink:   cfg.Sink,
		pacer:  cfg.Pacer,
		logger: cfg.Logger,
		zl:     cfg.Zap,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// --- Accessors ---

// Current returns the player whose turn it is.
func (g *Game) Current() *Player { return g.current }

// Human returns the human player.
func (g *Game) Human() *Player { return g.Players[0] }

// AI returns the scripted player.
func (g *Game) AI() *Player { return g.Players[1] }

// Opponent returns the other player.
func (g *Game) Opponent(p *Player) *Player {
	return g.Players[1-p.Index]
}

// SelectedCard returns the card selected for play, if any.
func (g *Game) SelectedCard() *Card { return g.selectedCard }

// SelectedTile returns the tile of the unit selected for action, if any.
func (g *Game) SelectedTile() *Tile { return g.selectedTile }

// Tile returns the tile at (x, y), or nil off the board.
func (g *Game) Tile(x, y int) *Tile {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return nil
	}
	return g.tiles[x][y]
}

// Tiles returns every tile in registration order (column-major).
func (g *Game) Tiles() []*Tile {
	out := make([]*Tile, 0, BoardWidth*BoardHeight)
	for x := 0; x < BoardWidth; x++ {
		for y := 0; y < BoardHeight; y++ {
			if g.tiles[x][y] != nil {
				out = append(out, g.tiles[x][y])
			}
		}
	}
	return out
}

// Units returns every unit still on the board.
func (g *Game) Units() []*Unit {
	var out []*Unit
	for _, u := range g.units {
		if !u.Dead {
			out = append(out, u)
		}
	}
	return out
}

// Unit returns the living unit with the given id, or nil.
func (g *Game) Unit(id int) *Unit {
	for _, u := range g.units {
		if u.ID == id && !u.Dead {
			return u
		}
	}
	return nil
}

// Hooks returns the ability registry.
func (g *Game) Hooks() *HookRegistry { return g.hooks }

// --- Selection state machine ---

// setCardSelected selects c (or clears with nil). The state follows:
// CARD_SELECT with a card, READY without.
func (g *Game) setCardSelected(c *Card) {
	g.selectedCard = c
	if c != nil {
		g.selectedTile = nil
		g.State = StateCardSelect
	} else if g.State == StateCardSelect {
		g.State = StateReady
	}
}

// setTileSelected selects the origin tile for a unit action (or clears
// with nil). The state follows: UNIT_SELECT with a tile, READY without.
func (g *Game) setTileSelected(t *Tile) {
	g.selectedTile = t
	if t != nil {
		g.selectedCard = nil
		g.State = StateUnitSelect
	} else if g.State == StateUnitSelect {
		g.State = StateReady
	}
}

// resetTileSelected drops any selection, returns to READY and clears every
// highlight.
func (g *Game) resetTileSelected() {
	g.clearSelection()
	g.broadcastTiles(Event{Kind: EvTextureReset})
}

// clearSelection drops both selections without touching highlights.
func (g *Game) clearSelection() {
	if g.selectedCard != nil && g.current != nil {
		g.current.ClearSelected()
	}
	g.selectedCard = nil
	g.selectedTile = nil
	g.State = StateReady
}

// --- Broadcast helpers ---

func (g *Game) broadcastTiles(e Event) { g.bus.Publish(CapTile, e) }
func (g *Game) broadcastUnits(e Event) { g.bus.Publish(CapUnit, e) }

// addUnit registers a unit with the game and the bus.
func (g *Game) addUnit(u *Unit) {
	for _, existing := range g.units {
		if existing == u {
			return
		}
	}
	g.units = append(g.units, u)
	g.bus.Subscribe(u)
}

// --- Output helpers ---

func (g *Game) emit(d render.Directive) {
	g.sink.Emit(d)
}

func (g *Game) notify(text string) {
	g.zl.Debug("notification", zap.String("text", text))
	g.emit(render.Notification(text))
}

func (g *Game) log(event log.GameEvent) {
	g.logger.Log(event)
}

func (g *Game) pause(d time.Duration) {
	g.pacer.Pause(g.ctx, d)
}

// --- Lifecycle ---

// initialize resets everything and deals the opening position. In test
// mode no opening hands are drawn.
func (g *Game) initialize(testMode bool) {
	g.bus.Clear()
	g.units = nil
	g.Turn = 0
	g.State = StateReady
	g.selectedCard = nil
	g.selectedTile = nil
	g.current = nil
	g.Over = false
	g.Winner = -1

	for x := 0; x < BoardWidth; x++ {
		for y := 0; y < BoardHeight; y++ {
			t := &Tile{g: g, X: x, Y: y}
			g.tiles[x][y] = t
			g.bus.Subscribe(t)
			g.emit(render.DrawTile(x, y, int(HighlightNormal)))
		}
	}

	human := newPlayer(g, 0, false, g.cfg.HumanDeck)
	ai := newPlayer(g, 1, true, g.cfg.AIDeck)
	g.Players = [2]*Player{human, ai}
	if !g.cfg.NoShuffle {
		human.shuffle(g.rng)
		ai.shuffle(g.rng)
	}
	human.SetHealth(StartingHealth)
	human.SetMana(0)
	ai.SetHealth(StartingHealth)
	ai.SetMana(0)

	g.hooks = NewHookRegistry(AbilityTable, g.cfg.HumanDeck, g.cfg.AIDeck)
	g.ai = &aiDriver{g: g, player: ai}

	g.notify("Your turn")

	g.placeAvatar(newAvatar(g, human, HumanAvatarID, "Human Avatar"), 1, 2)
	g.placeAvatar(newAvatar(g, ai, AIAvatarID, "AI Avatar"), 7, 2)

	g.current = human
	g.Turn = 1
	human.SetMana(ceilHalf(g.Turn))

	if !testMode {
		for i := 0; i < OpeningHand; i++ {
			human.DrawCard()
			ai.DrawCard()
		}
	}

	g.broadcastUnits(Event{Kind: EvUnitBeReady})
	g.initialized = true
	g.log(log.NewTurnEvent(g.Turn, human.Index, human.Mana))
	g.zl.Info("game initialized", zap.Bool("test_mode", testMode),
		zap.Int("human_deck", len(human.Deck)), zap.Int("ai_deck", len(ai.Deck)))
}

func (g *Game) placeAvatar(u *Unit, x, y int) {
	g.broadcastTiles(Event{Kind: EvSummon, X: x, Y: y, Unit: u})
}

// startTurn hands the turn to the other player. The outgoing player draws,
// loses their mana and the incoming player gets ceil(turn/2). If the AI is
// now current it plays its whole turn before startTurn returns.
func (g *Game) startTurn() {
	g.broadcastTiles(Event{Kind: EvTextureReset})
	outgoing := g.current
	g.clearSelection()

	outgoing.DrawCard()
	if g.Over {
		return
	}

	outgoing.SetMana(0)
	g.current = g.Opponent(outgoing)
	if g.current.IsAI() {
		g.notify("AI's turn. Please wait")
	} else {
		g.notify("Your turn. You can operate now")
	}

	g.Turn++
	g.current.SetMana(ceilHalf(g.Turn))
	g.log(log.NewTurnEvent(g.Turn, g.current.Index, g.current.Mana))
	g.broadcastUnits(Event{Kind: EvUnitBeReady})

	if g.current.IsAI() {
		g.ai.takeTurn()
	}
}

// win ends the match.
func (g *Game) win(winner *Player, reason string) {
	if g.Over {
		return
	}
	g.Over = true
	g.Winner = winner.Index
	if winner.IsAI() {
		g.notify("You lost! " + reason)
	} else {
		g.notify("You win! " + reason)
	}
	g.log(log.NewWinEvent(g.Turn, winner.Index, reason))
	g.zl.Info("match over", zap.Int("winner", winner.Index), zap.String("reason", reason))
}
