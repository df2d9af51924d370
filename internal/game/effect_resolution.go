package game

import (
	"fmt"
	"sort"

	"github.com/peterkuimelis/skirmish/internal/log"
)

// HookRegistry holds the abilities of the cards in play, keyed by hook and
// card id. Summon, card-select and death abilities are looked up by the id
// of the card involved; spell-cast and avatar-attacked abilities all fire on
// every occurrence, in ascending id order.
type HookRegistry struct {
	entries map[Hook]map[int]Effect
	names   map[int]string
}

// NewHookRegistry resolves table against the given decks.
func NewHookRegistry(table []Ability, decks ...[]*Card) *HookRegistry {
	r := &HookRegistry{
		entries: make(map[Hook]map[int]Effect),
		names:   make(map[int]string),
	}
	for _, deck := range decks {
		for _, c := range deck {
			r.names[c.ID] = c.Name
			for _, a := range table {
				if a.Card == c.Name {
					r.Register(a.Hook, c.ID, a.Effect)
				}
			}
			if c.Abilities.Airdrop {
				r.Register(HookOnCardSelect, c.ID, AirdropHighlight{})
			}
		}
	}
	return r
}

// Register binds e to hook for card id, replacing any previous entry.
func (r *HookRegistry) Register(hook Hook, id int, e Effect) {
	m, ok := r.entries[hook]
	if !ok {
		m = make(map[int]Effect)
		r.entries[hook] = m
	}
	m[id] = e
}

// Lookup returns the effect registered for hook and id.
func (r *HookRegistry) Lookup(hook Hook, id int) (Effect, bool) {
	e, ok := r.entries[hook][id]
	return e, ok
}

// Keys returns the ids registered for hook, ascending.
func (r *HookRegistry) Keys(hook Hook) []int {
	keys := make([]int, 0, len(r.entries[hook]))
	for id := range r.entries[hook] {
		keys = append(keys, id)
	}
	sort.Ints(keys)
	return keys
}

// Fire runs the ability registered for id, if any.
func (r *HookRegistry) Fire(g *Game, hook Hook, id int) bool {
	e, ok := r.Lookup(hook, id)
	if !ok {
		return false
	}
	g.log(log.NewAbilityEvent(g.Turn, g.current.Index, r.names[id], hook.String()))
	return e.Apply(g, id)
}

// FireAll runs every ability registered for hook.
func (r *HookRegistry) FireAll(g *Game, hook Hook) {
	for _, id := range r.Keys(hook) {
		r.Fire(g, hook, id)
	}
}

// --- Effect resolution ---

func (m ModifyUnit) Apply(g *Game, id int) bool {
	unitID := id
	if m.Target == TargetCurrentAvatar {
		unitID = HumanAvatarID
		if g.current.IsAI() {
			unitID = AIAvatarID
		}
	}
	g.broadcastUnits(Event{Kind: EvModifyUnit, UnitID: unitID, Attack: m.Attack, Health: m.Health, Limit: m.Limit})
	return true
}

func (AirdropHighlight) Apply(g *Game, id int) bool {
	g.broadcastTiles(Event{Kind: EvValidSummonRange, Airdrop: true})
	g.notify(fmt.Sprintf("%s: Airdrop activated", g.hooks.names[id]))
	return true
}

func (d DrawCards) Apply(g *Game, id int) bool {
	cur := g.current
	cur.DrawCard()
	if d.Who == DrawBoth && !g.Over {
		g.Opponent(cur).DrawCard()
	}
	return true
}
