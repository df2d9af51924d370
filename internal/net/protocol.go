package net

import (
	"encoding/json"
	"fmt"

	"github.com/peterkuimelis/skirmish/internal/game"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// Message types for the JSON protocol. The display layer sends one
// ClientMessage per user action; the server answers with render directives
// followed by a gameState (or error) message.

// --- Client → Server messages ---

const (
	MsgInitialize     = "initialize"
	MsgInitalize      = "initalize" // spelling used by the original display client
	MsgCardClicked    = "cardClicked"
	MsgTileClicked    = "tileClicked"
	MsgOtherClicked   = "otherClicked"
	MsgEndTurnClicked = "endTurnClicked"
)

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"messagetype"`

	// For "initialize"
	Mode string `json:"mode,omitempty"`

	// For "cardClicked"
	Position int `json:"position"`

	// For "tileClicked"
	TileX int `json:"tilex"`
	TileY int `json:"tiley"`
}

// DecodeIntent maps a client message onto a game intent.
func DecodeIntent(msg ClientMessage) (game.Intent, error) {
	switch msg.Type {
	case MsgInitialize, MsgInitalize:
		return game.Intent{Kind: game.IntentInitialize, Mode: msg.Mode}, nil
	case MsgCardClicked:
		return game.Intent{Kind: game.IntentCardClicked, Position: msg.Position}, nil
	case MsgTileClicked:
		return game.Intent{Kind: game.IntentTileClicked, TileX: msg.TileX, TileY: msg.TileY}, nil
	case MsgOtherClicked:
		return game.Intent{Kind: game.IntentOtherClicked}, nil
	case MsgEndTurnClicked:
		return game.Intent{Kind: game.IntentEndTurnClicked}, nil
	default:
		return game.Intent{}, fmt.Errorf("message type %q: %w", msg.Type, game.ErrUnknownIntent)
	}
}

// ParseIntent decodes a raw JSON message into an intent.
func ParseIntent(data []byte) (game.Intent, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return game.Intent{}, fmt.Errorf("decode message: %w", err)
	}
	return DecodeIntent(msg)
}

// --- Server → Client messages ---

const (
	MsgGameState render.Kind = "gameState"
	MsgError     render.Kind = "error"
)

// ServerMessage is the envelope for all server-to-client messages: a render
// directive, or a gameState/error message sent after each intent.
type ServerMessage struct {
	render.Directive

	// For "gameState"
	State *game.Snapshot `json:"state,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

// StateMessage wraps a snapshot.
func StateMessage(s game.Snapshot) ServerMessage {
	return ServerMessage{Directive: render.Directive{Kind: MsgGameState}, State: &s}
}

// ErrorMessage reports a rejected message.
func ErrorMessage(err error) ServerMessage {
	return ServerMessage{Directive: render.Directive{Kind: MsgError}, Error: err.Error()}
}
