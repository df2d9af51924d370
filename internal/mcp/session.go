package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peterkuimelis/skirmish/internal/game"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// EventView is one display event as presented in the tool response JSON.
type EventView struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events   []EventView    `json:"events"`
	State    *game.Snapshot `json:"state,omitempty"`
	Board    string         `json:"board,omitempty"`
	GameOver bool           `json:"game_over"`
	Winner   string         `json:"winner,omitempty"`
}

// GameSession is one game the agent plays as the human side, against the
// scripted AI. Display directives are buffered between tool calls.
type GameSession struct {
	engine *game.Engine
	feed   *render.Recorder
}

// NewGameSession creates a session and starts its game in the given mode.
func NewGameSession(ctx context.Context, cfg game.Config, mode string) (*GameSession, error) {
	feed := render.NewRecorder()
	if cfg.Sink != nil {
		cfg.Sink = render.Multi{cfg.Sink, feed}
	} else {
		cfg.Sink = feed
	}
	sess := &GameSession{engine: game.NewEngine(cfg), feed: feed}
	if err := sess.engine.Handle(ctx, game.Intent{Kind: game.IntentInitialize, Mode: mode}); err != nil {
		return nil, err
	}
	return sess, nil
}

// Do applies an intent and reports what happened since the last call.
func (s *GameSession) Do(ctx context.Context, in game.Intent) (*ToolResponse, error) {
	if err := s.engine.Handle(ctx, in); err != nil {
		return nil, err
	}
	return s.respond(), nil
}

// respond drains the buffered events and snapshots the game.
func (s *GameSession) respond() *ToolResponse {
	snap := s.engine.Snapshot()
	return &ToolResponse{
		Events:   s.drainEvents(),
		State:    &snap,
		Board:    snap.Board(),
		GameOver: snap.Over,
		Winner:   snap.Winner,
	}
}

// drainEvents converts the buffered directives into events. Tile redraws
// are dropped; the snapshot carries the highlights.
func (s *GameSession) drainEvents() []EventView {
	events := []EventView{}
	for _, d := range s.feed.Drain() {
		switch d.Kind {
		case render.KindDrawTile:
			continue
		case render.KindNotification:
			events = append(events, EventView{Kind: string(d.Kind), Text: d.Text})
		default:
			events = append(events, EventView{Kind: string(d.Kind), Text: d.String()})
		}
	}
	return events
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
