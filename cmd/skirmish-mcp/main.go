package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/skirmish/internal/config"
	skirmishmcp "github.com/peterkuimelis/skirmish/internal/mcp"
	skirmishnet "github.com/peterkuimelis/skirmish/internal/net"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	decks := flag.String("decks", "", "path to decks YAML file (overrides game.decks_file)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *decks != "" {
		cfg.Game.DecksFile = *decks
	}
	// The agent reads stdout; it does not need to wait on animations.
	cfg.Game.PaceScale = 0

	// stdout carries the MCP stream, so logs go to stderr only.
	cfg.Logging.Format = "json"
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	games := skirmishnet.NewServer("", cfg.Game, logger)
	tools := &skirmishmcp.Tools{
		NewConfig: games.GameConfig,
		Logger:    logger,
	}

	logger.Info("serving MCP on stdio", zap.String("decks", cfg.Game.DecksFile))
	if err := server.ServeStdio(skirmishmcp.NewServer(tools)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
