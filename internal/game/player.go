package game

import (
	"fmt"
	"math/rand"

	"github.com/peterkuimelis/skirmish/internal/log"
	"github.com/peterkuimelis/skirmish/internal/render"
)

// Player holds one side's resources. Health mirrors the player's avatar.
type Player struct {
	g      *Game
	Index  int // 0 human, 1 AI
	Health int
	Mana   int
	Deck   []*Card
	Hand   [HandSize]*Card
	ai     bool
}

func newPlayer(g *Game, index int, ai bool, deck []*Card) *Player {
	return &Player{
		g:     g,
		Index: index,
		ai:    ai,
		Deck:  append([]*Card(nil), deck...),
	}
}

// IsAI reports whether the scripted driver plays this side.
func (p *Player) IsAI() bool { return p.ai }

func (p *Player) String() string {
	if p.ai {
		return "AI"
	}
	return "Human"
}

// Avatar returns the player's avatar unit, or nil once it is dead.
func (p *Player) Avatar() *Unit {
	if p.ai {
		return p.g.Unit(AIAvatarID)
	}
	return p.g.Unit(HumanAvatarID)
}

// SetHealth sets the player's health and displays it.
func (p *Player) SetHealth(h int) {
	p.Health = h
	p.g.emit(render.SetPlayerHealth(p.Index, h))
}

// SetMana sets the player's mana, clamped to [0, MaxMana], and displays it.
func (p *Player) SetMana(m int) {
	if m > MaxMana {
		m = MaxMana
	}
	if m < 0 {
		m = 0
	}
	p.Mana = m
	p.g.emit(render.SetPlayerMana(p.Index, m))
}

// HandCount returns how many hand slots are filled.
func (p *Player) HandCount() int {
	n := 0
	for _, c := range p.Hand {
		if c != nil {
			n++
		}
	}
	return n
}

func (p *Player) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
}

func (p *Player) freeSlot() int {
	for i, c := range p.Hand {
		if c == nil {
			return i
		}
	}
	return -1
}

func (p *Player) slotOf(c *Card) int {
	for i, h := range p.Hand {
		if h == c {
			return i
		}
	}
	return -1
}

// DrawCard moves the top card of the deck into the first free hand slot.
// With a full hand the drawn card is discarded. Drawing from an empty deck
// ends the match in the opponent's favour.
func (p *Player) DrawCard() *Card {
	g := p.g
	if len(p.Deck) == 0 {
		g.log(log.NewDeckOutEvent(g.Turn, p.Index))
		g.win(g.Opponent(p), fmt.Sprintf("%s ran out of cards", p))
		return nil
	}

	c := p.Deck[0]
	p.Deck = p.Deck[1:]

	slot := p.freeSlot()
	if slot < 0 {
		if !p.ai {
			g.notify(fmt.Sprintf("Hand is full, %s is discarded", c.Name))
		}
		g.log(log.NewHandFullDiscardEvent(g.Turn, p.Index, c.Name))
		return nil
	}

	p.Hand[slot] = c
	if !p.ai {
		g.emit(render.DrawCard(c.view(), slot, 0))
	}
	g.pause(pauseDraw)
	g.log(log.NewDrawEvent(g.Turn, p.Index, c.Name))
	return c
}

// SelectCard handles a click on hand slot pos. Clicking the selected card
// again deselects it.
func (p *Player) SelectCard(pos int) {
	g := p.g
	if pos < 0 || pos >= HandSize {
		return
	}
	c := p.Hand[pos]
	if c == nil {
		return
	}

	if g.selectedCard == c {
		p.ClearSelected()
		g.broadcastTiles(Event{Kind: EvTextureReset})
		return
	}

	if c.ManaCost > p.Mana {
		if !p.ai {
			g.notify("Mana not enough")
		}
		return
	}

	switch g.State {
	case StateCardSelect:
		p.ClearSelected()
	case StateUnitSelect:
		g.resetTileSelected()
	}

	g.setCardSelected(c)
	if !p.ai {
		g.emit(render.DrawCard(c.view(), pos, 1))
	}
	g.log(log.NewSelectCardEvent(g.Turn, p.Index, c.Name, pos))

	p.showValidRange(c)
	g.hooks.Fire(g, HookOnCardSelect, c.ID)
}

// ClearSelected deselects the selected card, restoring its normal face.
func (p *Player) ClearSelected() {
	g := p.g
	c := g.selectedCard
	if c == nil {
		return
	}
	if slot := p.slotOf(c); slot >= 0 && !p.ai {
		g.emit(render.DrawCard(c.view(), slot, 0))
	}
	g.setCardSelected(nil)
}

// removeCardFromHand pays for c and takes it out of the hand.
func (p *Player) removeCardFromHand(c *Card) {
	g := p.g
	slot := p.slotOf(c)
	if slot < 0 {
		return
	}
	p.SetMana(p.Mana - c.ManaCost)
	p.ClearSelected()
	if !p.ai {
		g.emit(render.DeleteCard(slot))
	}
	p.Hand[slot] = nil
	g.pause(pauseCardRemoved)
	g.broadcastTiles(Event{Kind: EvTextureReset})
}

// showValidRange highlights where the card can be played.
func (p *Player) showValidRange(c *Card) {
	g := p.g
	g.broadcastTiles(Event{Kind: EvTextureReset})
	g.pause(pauseRangeReset)

	if c.IsSpell() {
		if c.Target != RangeNone {
			g.broadcastTiles(Event{Kind: EvSearchUnit, Range: c.Target})
		}
		return
	}
	// Airdrop creatures are highlighted by their card-select ability.
	if !c.Abilities.Airdrop {
		g.broadcastTiles(Event{Kind: EvValidSummonRange})
	}
}
