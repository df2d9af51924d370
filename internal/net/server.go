package net

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/peterkuimelis/skirmish/internal/config"
	"github.com/peterkuimelis/skirmish/internal/game"
	"github.com/peterkuimelis/skirmish/internal/log"
)

// Server hosts games over TCP. Every connection plays its own game against
// the AI.
type Server struct {
	Addr      string // listen address, e.g. ":9999"
	DeckFile  string // empty for the built-in decks
	HumanDeck int    // 1-indexed deck numbers in DeckFile
	AIDeck    int
	PaceScale float64
	Seed      int64
	NoShuffle bool
	Logger    *zap.Logger
}

// NewServer creates a server from the process configuration.
func NewServer(addr string, cfg config.GameConfig, logger *zap.Logger) *Server {
	return &Server{
		Addr:      addr,
		DeckFile:  cfg.DecksFile,
		HumanDeck: cfg.HumanDeck,
		AIDeck:    cfg.AIDeck,
		PaceScale: cfg.PaceScale,
		Seed:      cfg.Seed,
		NoShuffle: cfg.NoShuffle,
		Logger:    logger,
	}
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// GameConfig builds the configuration for one new game.
func (s *Server) GameConfig() (game.Config, error) {
	human, ai, err := game.LoadDecks(s.DeckFile, s.HumanDeck, s.AIDeck)
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		HumanDeck: human,
		AIDeck:    ai,
		Seed:      s.Seed,
		NoShuffle: s.NoShuffle,
		Pacer:     game.NewPacer(s.PaceScale),
		Zap:       s.logger(),
	}, nil
}

// Run listens on Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.logger().Info("listening", zap.String("addr", ln.Addr().String()))
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then waits for the
// running games to end.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	var g errgroup.Group
	defer g.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		g.Go(func() error {
			if err := s.ServeConn(ctx, conn); err != nil {
				s.logger().Warn("connection ended", zap.String("remote", conn.RemoteAddr().String()), zap.Error(err))
			}
			return nil
		})
	}
}

// ServeConn plays one game over conn and closes it when done.
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) error {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	cfg, err := s.GameConfig()
	if err != nil {
		return err
	}
	id := uuid.NewString()
	zl := s.logger().With(zap.String("game", id))
	cfg.Logger = log.NewZapLogger(zl)
	cfg.Zap = zl

	zl.Info("game opened", zap.String("remote", remoteAddr(conn)))
	defer zl.Info("game closed")

	return NewNetworkController(id, conn, cfg, zl).Serve(ctx)
}

func remoteAddr(conn net.Conn) string {
	if a := conn.RemoteAddr(); a != nil {
		return a.String()
	}
	return "local"
}
