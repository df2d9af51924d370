package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/peterkuimelis/skirmish/internal/config"
	skirmishnet "github.com/peterkuimelis/skirmish/internal/net"
	"github.com/peterkuimelis/skirmish/internal/web"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides server.addr)")
	decks := flag.String("decks", "", "path to decks YAML file (overrides game.decks_file)")
	withTCP := flag.Bool("tcp", false, "also serve terminal clients on server.tcp_port")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if err := run(*configFile, *addr, *decks, *withTCP); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, addr, decks string, withTCP bool) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if decks != "" {
		cfg.Game.DecksFile = decks
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	games := skirmishnet.NewServer(":"+cfg.Server.TCPPort, cfg.Game, logger)
	// Fail fast on a broken decks file.
	if _, err := games.GameConfig(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return web.NewServer(cfg.Game.DecksFile, games.GameConfig, logger.Named("web")).ListenAndServe(ctx, cfg.Server.Addr)
	})
	if withTCP {
		g.Go(func() error {
			return games.Run(ctx)
		})
	}

	logger.Info("skirmish started", zap.String("http", cfg.Server.Addr), zap.Bool("tcp", withTCP))
	return g.Wait()
}
