package net

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/peterkuimelis/skirmish/internal/game"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// Client connects to a game server and provides a terminal REPL.
type Client struct {
	conn net.Conn
	in   io.Reader
	out  io.Writer

	// Verbose prints every directive, not just notifications.
	Verbose bool
}

// NewClient wraps an open connection.
func NewClient(conn net.Conn, in io.Reader, out io.Writer) *Client {
	return &Client{conn: conn, in: in, out: out}
}

// Connect dials a server, starts a game in the given mode and runs the REPL.
func Connect(ctx context.Context, addr, mode string, in io.Reader, out io.Writer) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	fmt.Fprintf(out, "Connected to %s\n", addr)
	return NewClient(conn, in, out).RunREPL(ctx, mode)
}

type command int

const (
	cmdSend command = iota
	cmdHelp
	cmdQuit
)

// parseCommand turns one input line into a protocol message.
func parseCommand(line string) (ClientMessage, command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ClientMessage{}, cmdHelp, nil
	}
	args := fields[1:]
	switch fields[0] {
	case "new", "n":
		msg := ClientMessage{Type: MsgInitialize}
		if len(args) > 0 {
			msg.Mode = args[0]
		}
		return msg, cmdSend, nil
	case "card", "c":
		if len(args) != 1 {
			return ClientMessage{}, cmdSend, errors.New("usage: card <slot>")
		}
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			return ClientMessage{}, cmdSend, fmt.Errorf("bad slot %q", args[0])
		}
		return ClientMessage{Type: MsgCardClicked, Position: slot}, cmdSend, nil
	case "tile", "t":
		if len(args) != 2 {
			return ClientMessage{}, cmdSend, errors.New("usage: tile <x> <y>")
		}
		x, errX := strconv.Atoi(args[0])
		y, errY := strconv.Atoi(args[1])
		if errX != nil || errY != nil {
			return ClientMessage{}, cmdSend, fmt.Errorf("bad tile %q %q", args[0], args[1])
		}
		return ClientMessage{Type: MsgTileClicked, TileX: x, TileY: y}, cmdSend, nil
	case "other", "o", "cancel":
		return ClientMessage{Type: MsgOtherClicked}, cmdSend, nil
	case "end", "e":
		return ClientMessage{Type: MsgEndTurnClicked}, cmdSend, nil
	case "help", "h", "?":
		return ClientMessage{}, cmdHelp, nil
	case "quit", "q", "exit":
		return ClientMessage{}, cmdQuit, nil
	default:
		return ClientMessage{}, cmdSend, fmt.Errorf("unknown command %q", fields[0])
	}
}

const helpText = `Commands:
  card <slot>     select the hand card in slot 0-5
  tile <x> <y>    click a board tile (x 0-8, y 0-4)
  other           cancel the current selection
  end             end your turn
  new [test]      start a new game
  quit            leave
`

// RunREPL starts a game in the given mode, then reads commands from the
// client's input until it runs out or the user quits.
func (c *Client) RunREPL(ctx context.Context, mode string) error {
	stop := context.AfterFunc(ctx, func() { c.conn.Close() })
	defer stop()

	enc := json.NewEncoder(c.conn)
	dec := json.NewDecoder(c.conn)
	scanner := bufio.NewScanner(c.in)

	if err := c.exchange(enc, dec, ClientMessage{Type: MsgInitialize, Mode: mode}); err != nil {
		return err
	}

	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		msg, cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		switch cmd {
		case cmdHelp:
			fmt.Fprint(c.out, helpText)
			continue
		case cmdQuit:
			return nil
		}
		if err := c.exchange(enc, dec, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// exchange sends one message and prints the replies up to and including
// the closing gameState or error.
func (c *Client) exchange(enc *json.Encoder, dec *json.Decoder, msg ClientMessage) error {
	if err := enc.Encode(msg); err != nil {
		return fmt.Errorf("send %s: %w", msg.Type, err)
	}
	for {
		var reply ServerMessage
		if err := dec.Decode(&reply); err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		switch reply.Kind {
		case MsgError:
			fmt.Fprintf(c.out, "error: %s\n", reply.Error)
			return nil
		case MsgGameState:
			if reply.State != nil {
				c.renderState(*reply.State)
			}
			return nil
		case render.KindNotification:
			fmt.Fprintf(c.out, "  %s\n", reply.Text)
		default:
			if c.Verbose {
				fmt.Fprintf(c.out, "  [%s]\n", reply.Directive.String())
			}
		}
	}
}

func (c *Client) renderState(s game.Snapshot) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Turn %d | %s to play | %s\n", s.Turn, s.Current, s.State)
	for _, p := range s.Players {
		fmt.Fprintf(c.out, "  %-5s  HP %2d  Mana %d  Deck %d\n", p.Name, p.Health, p.Mana, p.DeckCount)
	}
	fmt.Fprint(c.out, s.Board())

	for _, p := range s.Players {
		if p.Name != "Human" || len(p.Hand) == 0 {
			continue
		}
		fmt.Fprint(c.out, "Hand:")
		for _, h := range p.Hand {
			mark := ""
			if s.SelectedSlot != nil && *s.SelectedSlot == h.Slot {
				mark = "*"
			}
			if h.Spell {
				fmt.Fprintf(c.out, "  [%d]%s %s (%d)", h.Slot, mark, h.Name, h.ManaCost)
			} else {
				fmt.Fprintf(c.out, "  [%d]%s %s (%d) %d/%d", h.Slot, mark, h.Name, h.ManaCost, h.Attack, h.Health)
			}
		}
		fmt.Fprintln(c.out)
	}

	if s.Over {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "═══════════════════════════════════")
		fmt.Fprintln(c.out, "          GAME OVER")
		fmt.Fprintln(c.out, "═══════════════════════════════════")
		if s.Winner != "" {
			fmt.Fprintf(c.out, "%s wins. Type \"new\" to play again.\n", s.Winner)
		} else {
			fmt.Fprintln(c.out, "Nobody wins. Type \"new\" to play again.")
		}
	}
}
