package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/peterkuimelis/skirmish/internal/game"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// NetworkController runs one game for one connection. It decodes client
// messages into intents and doubles as the game's render sink, streaming
// every directive back as a JSON line.
type NetworkController struct {
	ID     string
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	engine *game.Engine
	logger *zap.Logger

	mu      sync.Mutex
	sendErr error
}

// NewNetworkController creates a controller and its game. cfg.Sink is
// replaced by the controller.
func NewNetworkController(id string, conn net.Conn, cfg game.Config, logger *zap.Logger) *NetworkController {
	if logger == nil {
		logger = zap.NewNop()
	}
	nc := &NetworkController{
		ID:     id,
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    json.NewDecoder(conn),
		logger: logger,
	}
	cfg.Sink = nc
	if cfg.Zap == nil {
		cfg.Zap = logger
	}
	nc.engine = game.NewEngine(cfg)
	return nc
}

// Engine returns the controller's game.
func (nc *NetworkController) Engine() *game.Engine { return nc.engine }

// Emit implements render.Sink. The first write error is kept and reported
// by Serve.
func (nc *NetworkController) Emit(d render.Directive) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	if nc.sendErr != nil {
		return
	}
	nc.sendErr = nc.enc.Encode(ServerMessage{Directive: d})
}

// send sends a server message to the client.
func (nc *NetworkController) send(msg ServerMessage) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	if nc.sendErr != nil {
		return nc.sendErr
	}
	nc.sendErr = nc.enc.Encode(msg)
	return nc.sendErr
}

// recv reads a client message.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// Serve handles messages until the client disconnects or ctx is done.
// Rejected messages are answered with an error message; the connection
// stays open.
func (nc *NetworkController) Serve(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		msg, err := nc.recv()
		if err != nil {
			if ctx.Err() != nil || isClosed(err) {
				return nil
			}
			return fmt.Errorf("recv message: %w", err)
		}

		in, err := DecodeIntent(msg)
		if err == nil {
			err = nc.engine.Handle(ctx, in)
		}
		if err != nil {
			nc.logger.Warn("intent rejected", zap.String("game", nc.ID),
				zap.String("messagetype", msg.Type), zap.Error(err))
			if err := nc.send(ErrorMessage(err)); err != nil {
				return fmt.Errorf("send error: %w", err)
			}
			continue
		}

		if err := nc.send(StateMessage(nc.engine.Snapshot())); err != nil {
			return fmt.Errorf("send state: %w", err)
		}
	}
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, net.ErrClosed)
}
