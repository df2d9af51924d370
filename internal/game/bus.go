package game

// Capability is the observer class a broadcast is addressed to.
type Capability int

const (
	CapTile Capability = iota
	CapUnit
)

func (c Capability) String() string {
	if c == CapTile {
		return "tile"
	}
	return "unit"
}

// Observer reacts to broadcast events. Implementations switch on the event
// kind and ignore kinds they do not handle.
type Observer interface {
	Capability() Capability
	React(e Event)
}

// Bus delivers events synchronously, in registration order, to every
// observer of the addressed capability. A reaction may publish again; the
// nested delivery completes before the outer loop continues.
type Bus struct {
	observers []Observer
}

// Subscribe registers an observer. Observers live until Clear.
func (b *Bus) Subscribe(o Observer) {
	b.observers = append(b.observers, o)
}

// Publish delivers e to all observers with the given capability.
// Observers subscribed while a publish is in flight are not visited by
// that publish.
func (b *Bus) Publish(target Capability, e Event) {
	for _, o := range b.observers {
		if o.Capability() == target {
			o.React(e)
		}
	}
}

// Clear drops every observer.
func (b *Bus) Clear() {
	b.observers = nil
}

// Len returns the number of registered observers.
func (b *Bus) Len() int {
	return len(b.observers)
}
