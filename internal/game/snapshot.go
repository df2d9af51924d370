package game

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of a game, shaped for JSON.
type Snapshot struct {
	Turn         int              `json:"turn"`
	State        string           `json:"state"`
	Current      string           `json:"current"`
	Over         bool             `json:"over"`
	Winner       string           `json:"winner,omitempty"`
	Players      []PlayerSnapshot `json:"players"`
	Units        []UnitSnapshot   `json:"units"`
	Highlights   []TileSnapshot   `json:"highlights,omitempty"`
	SelectedSlot *int             `json:"selected_slot,omitempty"`
	SelectedTile *TileSnapshot    `json:"selected_tile,omitempty"`
}

type PlayerSnapshot struct {
	Name      string         `json:"name"`
	Health    int            `json:"health"`
	Mana      int            `json:"mana"`
	DeckCount int            `json:"deck_count"`
	Hand      []HandSnapshot `json:"hand"`
}

type HandSnapshot struct {
	Slot     int      `json:"slot"`
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ManaCost int      `json:"mana_cost"`
	Attack   int      `json:"attack"`
	Health   int      `json:"health"`
	Spell    bool     `json:"spell,omitempty"`
	Rules    []string `json:"rules,omitempty"`
}

type UnitSnapshot struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Attack      int    `json:"attack"`
	Health      int    `json:"health"`
	MaxHealth   int    `json:"max_health"`
	State       string `json:"state"`
	MovesLeft   int    `json:"moves_left"`
	AttacksLeft int    `json:"attacks_left"`
	Ranged      bool   `json:"ranged,omitempty"`
	Flying      bool   `json:"flying,omitempty"`
	Provoke     bool   `json:"provoke,omitempty"`
	Provoked    bool   `json:"provoked,omitempty"`
}

type TileSnapshot struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Highlight string `json:"highlight"`
}

// Snapshot copies the game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Turn:  g.Turn,
		State: g.State.String(),
		Over:  g.Over,
	}
	if !g.initialized {
		return s
	}
	s.Current = g.current.String()
	if g.Over && g.Winner >= 0 {
		s.Winner = g.Players[g.Winner].String()
	}

	for _, p := range g.Players {
		ps := PlayerSnapshot{
			Name:      p.String(),
			Health:    p.Health,
			Mana:      p.Mana,
			DeckCount: len(p.Deck),
			Hand:      []HandSnapshot{},
		}
		for slot, c := range p.Hand {
			if c == nil {
				continue
			}
			ps.Hand = append(ps.Hand, HandSnapshot{
				Slot:     slot,
				ID:       c.ID,
				Name:     c.Name,
				ManaCost: c.ManaCost,
				Attack:   c.Attack,
				Health:   c.Health,
				Spell:    c.IsSpell(),
				Rules:    c.Rules,
			})
			if c == g.selectedCard {
				sel := slot
				s.SelectedSlot = &sel
			}
		}
		s.Players = append(s.Players, ps)
	}

	for _, u := range g.Units() {
		s.Units = append(s.Units, UnitSnapshot{
			ID:          u.ID,
			Name:        u.Name,
			Owner:       u.Owner.String(),
			X:           u.X,
			Y:           u.Y,
			Attack:      u.Attack,
			Health:      u.Health,
			MaxHealth:   u.MaxHealth,
			State:       u.State.String(),
			MovesLeft:   u.moves,
			AttacksLeft: u.attacks,
			Ranged:      u.Ranged,
			Flying:      u.Flying,
			Provoke:     u.CanProvoke,
			Provoked:    u.Provoked,
		})
	}

	for _, t := range g.Tiles() {
		if t.Highlight != HighlightNormal {
			s.Highlights = append(s.Highlights, TileSnapshot{X: t.X, Y: t.Y, Highlight: t.Highlight.String()})
		}
	}
	if t := g.selectedTile; t != nil {
		s.SelectedTile = &TileSnapshot{X: t.X, Y: t.Y, Highlight: t.Highlight.String()}
	}
	return s
}

// Board draws the board as text: one row per y, units as H/A plus the last
// digit of their id, highlights as + (selectable) and ! (attackable).
func (s Snapshot) Board() string {
	var grid [BoardHeight][BoardWidth]string
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			grid[y][x] = " . "
		}
	}
	for _, h := range s.Highlights {
		mark := " + "
		if h.Highlight == HighlightAttackable.String() {
			mark = " ! "
		}
		grid[h.Y][h.X] = mark
	}
	for _, u := range s.Units {
		side := "A"
		if u.Owner == "Human" {
			side = "H"
		}
		label := fmt.Sprintf("%s%02d", side, u.ID%100)
		if u.ID >= HumanAvatarID {
			label = side + "@@"
		}
		grid[u.Y][u.X] = label
	}

	var sb strings.Builder
	sb.WriteString("    ")
	for x := 0; x < BoardWidth; x++ {
		fmt.Fprintf(&sb, " %d  ", x)
	}
	sb.WriteByte('\n')
	for y := 0; y < BoardHeight; y++ {
		fmt.Fprintf(&sb, " %d  ", y)
		for x := 0; x < BoardWidth; x++ {
			sb.WriteString(grid[y][x])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
