package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// IntentKind identifies an inbound user intent.
type IntentKind int

const (
	IntentInitialize IntentKind = iota
	IntentCardClicked
	IntentTileClicked
	IntentOtherClicked
	IntentEndTurnClicked
)

func (k IntentKind) String() string {
	switch k {
	case IntentInitialize:
		return "initialize"
	case IntentCardClicked:
		return "cardClicked"
	case IntentTileClicked:
		return "tileClicked"
	case IntentOtherClicked:
		return "otherClicked"
	case IntentEndTurnClicked:
		return "endTurnClicked"
	default:
		return "unknown"
	}
}

// ModeTest initializes without opening hands.
const ModeTest = "test"

// Intent is one user action from the display layer.
type Intent struct {
	Kind     IntentKind
	Mode     string // Initialize
	Position int    // CardClicked: hand slot 0..5
	TileX    int    // TileClicked
	TileY    int    // TileClicked
}

var (
	ErrNotInitialized = errors.New("game not initialized")
	ErrGameOver       = errors.New("game is over")
	ErrUnknownIntent  = errors.New("unknown intent")
	ErrInvalidIntent  = errors.New("invalid intent")
)

// Engine owns one game and serializes every intent against it. The lock is
// held for the full processing of an intent, AI turns included.
type Engine struct {
	mu   sync.Mutex
	game *Game
	zl   *zap.Logger
}

// NewEngine creates an engine around a fresh game.
func NewEngine(cfg Config) *Engine {
	g := NewGame(cfg)
	return &Engine{game: g, zl: g.zl}
}

// Handle applies one intent. Illegal but well-formed intents (unaffordable
// cards, clicks on invalid tiles) are absorbed by the game and return nil.
func (e *Engine) Handle(ctx context.Context, in Intent) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g := e.game
	g.ctx = ctx
	defer func() { g.ctx = context.Background() }()

	e.zl.Debug("intent", zap.Stringer("kind", in.Kind), zap.Int("position", in.Position),
		zap.Int("tilex", in.TileX), zap.Int("tiley", in.TileY))

	if in.Kind == IntentInitialize {
		g.initialize(in.Mode == ModeTest)
		return nil
	}
	if !g.initialized {
		return ErrNotInitialized
	}
	if g.Over {
		return ErrGameOver
	}
	if g.current.IsAI() {
		return nil
	}

	switch in.Kind {
	case IntentCardClicked:
		if in.Position < 0 || in.Position >= HandSize {
			return fmt.Errorf("card position %d: %w", in.Position, ErrInvalidIntent)
		}
		g.cardClicked(in.Position)
	case IntentTileClicked:
		if g.Tile(in.TileX, in.TileY) == nil {
			return fmt.Errorf("tile (%d,%d): %w", in.TileX, in.TileY, ErrInvalidIntent)
		}
		g.tileClicked(in.TileX, in.TileY)
	case IntentOtherClicked:
		g.otherClicked()
	case IntentEndTurnClicked:
		g.startTurn()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownIntent, int(in.Kind))
	}
	return nil
}

// View runs fn with exclusive access to the game.
func (e *Engine) View(fn func(g *Game)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.game)
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Snapshot()
}

// --- Click handling shared by people and the AI ---

func (g *Game) cardClicked(pos int) {
	g.current.SelectCard(pos)
}

func (g *Game) tileClicked(x, y int) {
	switch g.State {
	case StateCardSelect:
		c := g.selectedCard
		if c.IsSpell() {
			g.notify("Play spell: " + c.Name)
			g.broadcastTiles(Event{Kind: EvSpell, X: x, Y: y, Card: c})
			return
		}
		g.notify("Play a card: " + c.Name)
		g.broadcastTiles(Event{Kind: EvSummon, X: x, Y: y, Unit: c.ToUnit(g, g.current)})
	case StateReady:
		g.broadcastTiles(Event{Kind: EvFirstClick, X: x, Y: y})
	case StateUnitSelect:
		g.broadcastTiles(Event{Kind: EvOperateUnit, X: x, Y: y, Origin: g.selectedTile})
	}
}

func (g *Game) otherClicked() {
	g.resetTileSelected()
}
