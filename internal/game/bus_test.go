package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type probe struct {
	name string
	cap  Capability
	seen *[]string
	on   func(e Event)
}

func (p *probe) Capability() Capability { return p.cap }

func (p *probe) React(e Event) {
	*p.seen = append(*p.seen, p.name+":"+e.Kind.String())
	if p.on != nil {
		p.on(e)
	}
}

func TestBusDeliversInRegistrationOrder(t *testing.T) {
	var seen []string
	var b Bus
	b.Subscribe(&probe{name: "a", cap: CapTile, seen: &seen})
	b.Subscribe(&probe{name: "b", cap: CapTile, seen: &seen})
	b.Subscribe(&probe{name: "c", cap: CapTile, seen: &seen})

	b.Publish(CapTile, Event{Kind: EvTextureReset})

	assert.Equal(t, []string{"a:textureReset", "b:textureReset", "c:textureReset"}, seen)
}

func TestBusFiltersByCapability(t *testing.T) {
	var seen []string
	var b Bus
	b.Subscribe(&probe{name: "tile", cap: CapTile, seen: &seen})
	b.Subscribe(&probe{name: "unit", cap: CapUnit, seen: &seen})

	b.Publish(CapUnit, Event{Kind: EvUnitBeReady})
	b.Publish(CapTile, Event{Kind: EvSearchUnit})

	assert.Equal(t, []string{"unit:unitBeReady", "tile:searchUnit"}, seen)
}

func TestBusNestedPublishIsDepthFirst(t *testing.T) {
	var seen []string
	var b Bus
	first := &probe{name: "a", cap: CapTile, seen: &seen}
	first.on = func(e Event) {
		if e.Kind == EvFirstClick {
			b.Publish(CapTile, Event{Kind: EvAttackHighlight})
		}
	}
	b.Subscribe(first)
	b.Subscribe(&probe{name: "b", cap: CapTile, seen: &seen})

	b.Publish(CapTile, Event{Kind: EvFirstClick})

	assert.Equal(t, []string{
		"a:firstClick",
		"a:attackHighlight",
		"b:attackHighlight",
		"b:firstClick",
	}, seen)
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	var seen []string
	var b Bus
	late := &probe{name: "late", cap: CapTile, seen: &seen}
	b.Subscribe(&probe{name: "a", cap: CapTile, seen: &seen, on: func(Event) {
		if b.Len() == 1 {
			b.Subscribe(late)
		}
	}})

	b.Publish(CapTile, Event{Kind: EvSummon})
	assert.Equal(t, []string{"a:summon"}, seen)

	b.Publish(CapTile, Event{Kind: EvSummon})
	assert.Equal(t, []string{"a:summon", "a:summon", "late:summon"}, seen)
	assert.Equal(t, 2, b.Len())

	b.Clear()
	assert.Equal(t, 0, b.Len())
}
