package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/skirmish/internal/game"
)

// Instructions describes the game to the agent.
const Instructions = `Skirmish: a two-player tactics card game on a 9x5 board.

You play the Human side (avatar starting at tile 1,2) against a scripted AI
(avatar at 7,2). Reduce the enemy avatar to 0 health to win.

Each turn you gain mana. Click a hand card, then a highlighted tile to summon
it next to one of your units or to cast a spell. Click one of your units to
see where it can move (SELECTABLE) or attack (ATTACKABLE), then click the
target. End your turn and the AI plays immediately.

Every tool returns the events since the last call, a JSON snapshot and a text
board (H = your units, A = enemy, @@ = avatar, + = selectable, ! = attackable).`

// Tools exposes one game session over MCP. Only one game runs at a time;
// start_game replaces the current one.
type Tools struct {
	// NewConfig builds the configuration for each new game. Nil means the
	// built-in decks.
	NewConfig func() (game.Config, error)
	Logger    *zap.Logger

	mu      sync.Mutex
	session *GameSession
}

// NewServer creates an MCP server with all game tools registered.
func NewServer(t *Tools) *server.MCPServer {
	s := server.NewMCPServer("skirmish", "1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(Instructions),
	)
	t.Register(s)
	return s
}

// Register adds all game tools to the MCP server.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(startGameTool(), t.handleStartGame)
	s.AddTool(clickCardTool(), t.handleClickCard)
	s.AddTool(clickTileTool(), t.handleClickTile)
	s.AddTool(clickOtherTool(), t.handleClickOther)
	s.AddTool(endTurnTool(), t.handleEndTurn)
	s.AddTool(getGameStateTool(), t.handleGetGameState)
	s.AddTool(listCardsTool(), t.handleListCards)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new game as the Human player. Replaces any running game. "+
			"Returns the opening events, state and board."),
		mcp.WithString("mode", mcp.Description("Empty for a normal game; 'test' starts with empty hands")),
	)
}

func clickCardTool() mcp.Tool {
	return mcp.NewTool("click_card",
		mcp.WithDescription("Click the hand card in the given slot. Clicking the selected card again deselects it."),
		mcp.WithNumber("position", mcp.Required(), mcp.Description("Hand slot, 0-5")),
	)
}

func clickTileTool() mcp.Tool {
	return mcp.NewTool("click_tile",
		mcp.WithDescription("Click a board tile: summon or cast the selected card there, select a unit, "+
			"or move/attack with the selected unit."),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("Column, 0-8")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Row, 0-4")),
	)
}

func clickOtherTool() mcp.Tool {
	return mcp.NewTool("click_other",
		mcp.WithDescription("Click outside the board, cancelling the current selection."),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End your turn. The AI takes its turn before this returns."),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current state and any undelivered events without acting. Read-only."),
	)
}

func listCardsTool() mcp.Tool {
	return mcp.NewTool("list_cards",
		mcp.WithDescription("List every card in the catalog with its cost, stats and rules text."),
	)
}

// --- Tool handlers ---

var errNoGame = errors.New("no game is running; use start_game first")

func (t *Tools) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := game.Config{}
	if t.NewConfig != nil {
		var err error
		if cfg, err = t.NewConfig(); err != nil {
			return mcp.NewToolResultErrorf("Failed to load decks: %v", err), nil
		}
	}
	if cfg.Zap == nil {
		cfg.Zap = t.Logger
	}

	sess, err := NewGameSession(ctx, cfg, request.GetString("mode", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	t.mu.Lock()
	t.session = sess
	t.mu.Unlock()

	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

// act applies an intent to the running game.
func (t *Tools) act(ctx context.Context, in game.Intent) (*mcp.CallToolResult, error) {
	t.mu.Lock()
	sess := t.session
	t.mu.Unlock()
	if sess == nil {
		return mcp.NewToolResultError(errNoGame.Error()), nil
	}

	resp, err := sess.Do(ctx, in)
	if err != nil {
		return mcp.NewToolResultErrorf("%s rejected: %v", in.Kind, err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *Tools) handleClickCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.act(ctx, game.Intent{Kind: game.IntentCardClicked, Position: request.GetInt("position", -1)})
}

func (t *Tools) handleClickTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.act(ctx, game.Intent{
		Kind:  game.IntentTileClicked,
		TileX: request.GetInt("x", -1),
		TileY: request.GetInt("y", -1),
	})
}

func (t *Tools) handleClickOther(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.act(ctx, game.Intent{Kind: game.IntentOtherClicked})
}

func (t *Tools) handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.act(ctx, game.Intent{Kind: game.IntentEndTurnClicked})
}

func (t *Tools) handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.mu.Lock()
	sess := t.session
	t.mu.Unlock()
	if sess == nil {
		return mcp.NewToolResultError(errNoGame.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

// cardView is a catalog entry in the list_cards response.
type cardView struct {
	Name     string   `json:"name"`
	ManaCost int      `json:"mana_cost"`
	Attack   int      `json:"attack,omitempty"`
	Health   int      `json:"health,omitempty"`
	Spell    bool     `json:"spell,omitempty"`
	Rules    []string `json:"rules,omitempty"`
}

func (t *Tools) handleListCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var cards []cardView
	for _, name := range game.CatalogNames() {
		c := game.LookupCard(name)
		cv := cardView{Name: c.Name, ManaCost: c.ManaCost, Spell: c.IsSpell(), Rules: c.Rules}
		if !c.IsSpell() {
			cv.Attack, cv.Health = c.Attack, c.Health
		}
		cards = append(cards, cv)
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
