package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/peterkuimelis/skirmish/internal/config"
	"github.com/peterkuimelis/skirmish/internal/game"
	skirmishnet "github.com/peterkuimelis/skirmish/internal/net"
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "skirmish",
		Usage: "play the skirmish card game against the AI from a terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a config file (yaml, json or toml)"},
			&cli.StringFlag{Name: "decks", Usage: "path to a decks YAML file (overrides game.decks_file)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (overrides log.level)"},
		},
		Commands: []*cli.Command{
			{
				Name:  "host",
				Usage: "serve games over TCP; every connection plays its own game",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address (default :<server.tcp_port>)"},
				},
				Action: runHost,
			},
			{
				Name:  "join",
				Usage: "connect to a host and play",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: "localhost:9999", Usage: "server address"},
					&cli.BoolFlag{Name: "test", Usage: "start without opening hands"},
				},
				Action: runJoin,
			},
			{
				Name:  "play",
				Usage: "play a local game without a network",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "test", Usage: "start without opening hands"},
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print every display directive"},
					&cli.Int64Flag{Name: "seed", Usage: "shuffle seed (0 picks one)"},
				},
				Action: runPlay,
			},
			{
				Name:   "cards",
				Usage:  "list the card catalog",
				Action: runCards,
			},
		},
	}
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig(c *cli.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if c.IsSet("decks") {
		cfg.Game.DecksFile = c.String("decks")
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, logger, nil
}

func mode(c *cli.Command) string {
	if c.Bool("test") {
		return game.ModeTest
	}
	return ""
}

func runHost(ctx context.Context, c *cli.Command) error {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	addr := c.String("addr")
	if addr == "" {
		addr = ":" + cfg.Server.TCPPort
	}
	fmt.Printf("Waiting for players on %s...\n", addr)
	return skirmishnet.NewServer(addr, cfg.Game, logger).Run(ctx)
}

func runJoin(ctx context.Context, c *cli.Command) error {
	return skirmishnet.Connect(ctx, c.String("addr"), mode(c), os.Stdin, os.Stdout)
}

// runPlay runs the server and the REPL in one process, joined by a pipe.
func runPlay(ctx context.Context, c *cli.Command) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("seed") {
		cfg.Game.Seed = c.Int64("seed")
	}
	// Logs would interleave with the board.
	srv := skirmishnet.NewServer("", cfg.Game, zap.NewNop())

	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	done := make(chan error, 1)
	go func() { done <- srv.ServeConn(ctx, serverConn) }()

	fmt.Println(`Type "help" for commands.`)
	client := skirmishnet.NewClient(clientConn, os.Stdin, os.Stdout)
	client.Verbose = c.Bool("verbose")
	if err := client.RunREPL(ctx, mode(c)); err != nil {
		return err
	}
	clientConn.Close()
	return <-done
}

func runCards(ctx context.Context, c *cli.Command) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOST\tATK/HP\tRULES")
	for _, name := range game.CatalogNames() {
		card := game.LookupCard(name)
		stats := "spell"
		if !card.IsSpell() {
			stats = fmt.Sprintf("%d/%d", card.Attack, card.Health)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", card.Name, card.ManaCost, stats, strings.Join(card.Rules, " "))
	}
	return w.Flush()
}
