package net

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/peterkuimelis/skirmish/internal/game"
	"github.com/peterkuimelis/skirmish/internal/render"
)

func TestDecodeIntent(t *testing.T) {
	tests := []struct {
		raw  string
		want game.Intent
	}{
		{`{"messagetype":"initialize","mode":"test"}`, game.Intent{Kind: game.IntentInitialize, Mode: "test"}},
		{`{"messagetype":"initalize"}`, game.Intent{Kind: game.IntentInitialize}},
		{`{"messagetype":"cardClicked","position":4}`, game.Intent{Kind: game.IntentCardClicked, Position: 4}},
		{`{"messagetype":"tileClicked","tilex":3,"tiley":1}`, game.Intent{Kind: game.IntentTileClicked, TileX: 3, TileY: 1}},
		{`{"messagetype":"otherClicked"}`, game.Intent{Kind: game.IntentOtherClicked}},
		{`{"messagetype":"endTurnClicked"}`, game.Intent{Kind: game.IntentEndTurnClicked}},
	}
	for _, tt := range tests {
		got, err := ParseIntent([]byte(tt.raw))
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := ParseIntent([]byte(`{"messagetype":"heartbeat"}`))
	assert.ErrorIs(t, err, game.ErrUnknownIntent)
	_, err = ParseIntent([]byte(`{`))
	assert.Error(t, err)
}

func TestServerMessageJSON(t *testing.T) {
	data, err := json.Marshal(ServerMessage{Directive: render.Notification("Your turn")})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"messagetype":"addPlayerNotification"`)
	assert.Contains(t, string(data), `"text":"Your turn"`)
	assert.NotContains(t, string(data), `"state"`)

	data, err = json.Marshal(StateMessage(game.Snapshot{Turn: 3}))
	require.NoError(t, err)
	var back ServerMessage
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, MsgGameState, back.Kind)
	require.NotNil(t, back.State)
	assert.Equal(t, 3, back.State.Turn)

	data, err = json.Marshal(ErrorMessage(game.ErrGameOver))
	require.NoError(t, err)
	assert.JSONEq(t, `{"messagetype":"error","mode":0,"position":0,"player":0,"value":0,"error":"game is over"}`, string(data))
}

// pipeConn starts a game on one end of a pipe and returns the other end.
func pipeConn(t *testing.T) (*json.Encoder, *json.Decoder) {
	t.Helper()
	srv := &Server{NoShuffle: true, Seed: 1, Logger: zaptest.NewLogger(t)}
	client, server := net.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ServeConn(ctx, server) }()
	t.Cleanup(func() {
		client.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("ServeConn did not return")
		}
	})
	return json.NewEncoder(client), json.NewDecoder(client)
}

// roundTrip sends msg and collects replies up to the closing gameState or
// error message.
func roundTrip(t *testing.T, enc *json.Encoder, dec *json.Decoder, msg ClientMessage) []ServerMessage {
	t.Helper()
	require.NoError(t, enc.Encode(msg))
	var replies []ServerMessage
	for {
		var reply ServerMessage
		require.NoError(t, dec.Decode(&reply))
		replies = append(replies, reply)
		if reply.Kind == MsgGameState || reply.Kind == MsgError {
			return replies
		}
	}
}

func last(replies []ServerMessage) ServerMessage { return replies[len(replies)-1] }

func TestServeConnPlaysAGame(t *testing.T) {
	enc, dec := pipeConn(t)

	replies := roundTrip(t, enc, dec, ClientMessage{Type: MsgInitialize})
	state := last(replies)
	require.Equal(t, MsgGameState, state.Kind)
	require.NotNil(t, state.State)
	assert.Equal(t, 1, state.State.Turn)
	require.Len(t, state.State.Players, 2)
	assert.Len(t, state.State.Players[0].Hand, game.OpeningHand)
	assert.Len(t, state.State.Units, 2)

	var tiles, notes int
	for _, r := range replies {
		switch r.Kind {
		case render.KindDrawTile:
			tiles++
		case render.KindNotification:
			notes++
		}
	}
	assert.GreaterOrEqual(t, tiles, game.BoardWidth*game.BoardHeight)
	assert.Positive(t, notes)

	// Slot 0 is the Comodo Charger, which costs 1.
	state = last(roundTrip(t, enc, dec, ClientMessage{Type: MsgCardClicked, Position: 0}))
	require.NotNil(t, state.State.SelectedSlot)
	assert.Equal(t, 0, *state.State.SelectedSlot)
	assert.NotEmpty(t, state.State.Highlights)

	replies = roundTrip(t, enc, dec, ClientMessage{Type: MsgTileClicked, TileX: 2, TileY: 2})
	state = last(replies)
	assert.Len(t, state.State.Units, 3)
	assert.Equal(t, 0, state.State.Players[0].Mana)

	var drew bool
	for _, r := range replies {
		if r.Kind == render.KindDrawUnit && r.Tile.X == 2 && r.Tile.Y == 2 {
			drew = true
		}
	}
	assert.True(t, drew)

	state = last(roundTrip(t, enc, dec, ClientMessage{Type: MsgEndTurnClicked}))
	assert.Equal(t, 3, state.State.Turn)
	assert.Equal(t, "Human", state.State.Current)
}

func TestServeConnReportsErrors(t *testing.T) {
	enc, dec := pipeConn(t)

	reply := last(roundTrip(t, enc, dec, ClientMessage{Type: MsgCardClicked}))
	assert.Equal(t, MsgError, reply.Kind)
	assert.Contains(t, reply.Error, "not initialized")

	reply = last(roundTrip(t, enc, dec, ClientMessage{Type: "dance"}))
	assert.Equal(t, MsgError, reply.Kind)
	assert.Contains(t, reply.Error, "unknown intent")

	// The connection survives rejected messages.
	reply = last(roundTrip(t, enc, dec, ClientMessage{Type: MsgInitialize, Mode: game.ModeTest}))
	assert.Equal(t, MsgGameState, reply.Kind)

	reply = last(roundTrip(t, enc, dec, ClientMessage{Type: MsgTileClicked, TileX: 20}))
	assert.Equal(t, MsgError, reply.Kind)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		msg  ClientMessage
		cmd  command
	}{
		{"card 3", ClientMessage{Type: MsgCardClicked, Position: 3}, cmdSend},
		{"t 4 2", ClientMessage{Type: MsgTileClicked, TileX: 4, TileY: 2}, cmdSend},
		{"other", ClientMessage{Type: MsgOtherClicked}, cmdSend},
		{"END", ClientMessage{Type: MsgEndTurnClicked}, cmdSend},
		{"new test", ClientMessage{Type: MsgInitialize, Mode: "test"}, cmdSend},
		{"", ClientMessage{}, cmdHelp},
		{"help", ClientMessage{}, cmdHelp},
		{"quit", ClientMessage{}, cmdQuit},
	}
	for _, tt := range tests {
		msg, cmd, err := parseCommand(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.msg, msg, tt.line)
		assert.Equal(t, tt.cmd, cmd, tt.line)
	}

	for _, bad := range []string{"card", "card x", "tile 1", "tile a b", "jump"} {
		_, _, err := parseCommand(bad)
		assert.Error(t, err, bad)
	}
}

func TestClientREPL(t *testing.T) {
	srv := &Server{NoShuffle: true, Logger: zaptest.NewLogger(t)}
	clientConn, serverConn := net.Pipe()
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- srv.ServeConn(ctx, serverConn) }()

	in := strings.NewReader("card 0\ntile 2 2\nbogus\nhelp\nquit\n")
	var out bytes.Buffer
	require.NoError(t, NewClient(clientConn, in, &out).RunREPL(ctx, ""))
	clientConn.Close()
	require.NoError(t, <-done)

	text := out.String()
	assert.Contains(t, text, "Your turn")
	assert.Contains(t, text, "Play a card: Comodo Charger")
	assert.Contains(t, text, "H00")
	assert.Contains(t, text, "H@@")
	assert.Contains(t, text, `unknown command "bogus"`)
	assert.Contains(t, text, "Commands:")
}

func TestServeAcceptsConnections(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &Server{Logger: zaptest.NewLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, ln) }()

	var out bytes.Buffer
	err = Connect(ctx, ln.Addr().String(), game.ModeTest, strings.NewReader("end\nquit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Turn 3")

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}
