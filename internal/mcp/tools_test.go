package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/skirmish/internal/game"
)

func newTools() *Tools {
	return &Tools{NewConfig: func() (game.Config, error) {
		return game.Config{NoShuffle: true}, nil
	}}
}

func request(name string, args map[string]any) mcp.CallToolRequest {
	if args == nil {
		args = map[string]any{}
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func decode(t *testing.T, result *mcp.CallToolResult) ToolResponse {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	var resp ToolResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	return resp
}

func TestToolsBeforeStart(t *testing.T) {
	tools := newTools()
	ctx := context.Background()

	result, err := tools.handleClickOther(ctx, request("click_other", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "start_game")

	result, err = tools.handleGetGameState(ctx, request("get_game_state", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestPlayThroughTools(t *testing.T) {
	tools := newTools()
	ctx := context.Background()

	result, err := tools.handleStartGame(ctx, request("start_game", nil))
	require.NoError(t, err)
	resp := decode(t, result)
	require.NotNil(t, resp.State)
	assert.Equal(t, 1, resp.State.Turn)
	assert.Contains(t, resp.Board, "H@@")
	assert.Contains(t, resp.Board, "A@@")
	assert.NotEmpty(t, resp.Events)
	for _, ev := range resp.Events {
		assert.NotEqual(t, "drawTile", ev.Kind)
	}

	result, err = tools.handleClickCard(ctx, request("click_card", map[string]any{"position": float64(0)}))
	require.NoError(t, err)
	resp = decode(t, result)
	require.NotNil(t, resp.State.SelectedSlot)
	assert.Equal(t, 0, *resp.State.SelectedSlot)

	result, err = tools.handleClickTile(ctx, request("click_tile", map[string]any{"x": float64(2), "y": float64(2)}))
	require.NoError(t, err)
	resp = decode(t, result)
	assert.Len(t, resp.State.Units, 3)
	assert.Contains(t, resp.Board, "H00")

	var played bool
	for _, ev := range resp.Events {
		if ev.Text == "Play a card: Comodo Charger" {
			played = true
		}
	}
	assert.True(t, played)

	// Nothing new happened since the last call.
	result, err = tools.handleGetGameState(ctx, request("get_game_state", nil))
	require.NoError(t, err)
	resp = decode(t, result)
	assert.Empty(t, resp.Events)
	assert.Equal(t, 1, resp.State.Turn)

	result, err = tools.handleEndTurn(ctx, request("end_turn", nil))
	require.NoError(t, err)
	resp = decode(t, result)
	assert.Equal(t, 3, resp.State.Turn)
	assert.False(t, resp.GameOver)
}

func TestInvalidIntentIsToolError(t *testing.T) {
	tools := newTools()
	ctx := context.Background()

	_, err := tools.handleStartGame(ctx, request("start_game", map[string]any{"mode": "test"}))
	require.NoError(t, err)

	result, err := tools.handleClickTile(ctx, request("click_tile", map[string]any{"x": float64(9), "y": float64(0)}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "tileClicked rejected")

	result, err = tools.handleClickCard(ctx, request("click_card", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestStartGameReplacesSession(t *testing.T) {
	tools := newTools()
	ctx := context.Background()

	_, err := tools.handleStartGame(ctx, request("start_game", nil))
	require.NoError(t, err)
	first := tools.session

	result, err := tools.handleStartGame(ctx, request("start_game", map[string]any{"mode": "test"}))
	require.NoError(t, err)
	resp := decode(t, result)
	assert.NotSame(t, first, tools.session)
	assert.Empty(t, resp.State.Players[0].Hand)
}

func TestListCards(t *testing.T) {
	result, err := newTools().handleListCards(context.Background(), request("list_cards", nil))
	require.NoError(t, err)

	var cards []cardView
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &cards))
	require.Len(t, cards, len(game.CardRegistry))
	for _, c := range cards {
		if c.Name == "Serpenti" {
			assert.Equal(t, 6, c.ManaCost)
			assert.Equal(t, 7, c.Attack)
		}
	}
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(newTools()))
}
