package render

import "fmt"

// Kind names an outbound display instruction.
type Kind string

const (
	KindDrawTile          Kind = "drawTile"
	KindDrawUnit          Kind = "drawUnit"
	KindMoveUnitToTile    Kind = "moveUnitToTile"
	KindSetUnitHealth     Kind = "setUnitHealth"
	KindSetUnitAttack     Kind = "setUnitAttack"
	KindPlayUnitAnimation Kind = "playUnitAnimation"
	KindDrawCard          Kind = "drawCard"
	KindDeleteCard        Kind = "deleteCard"
	KindDeleteUnit        Kind = "deleteUnit"
	KindSetPlayerHealth   Kind = "setPlayerHealth"
	KindSetPlayerMana     Kind = "setPlayerMana"
	KindNotification      Kind = "addPlayerNotification"
)

// Animation names understood by the display layer.
const (
	AnimIdle   = "idle"
	AnimAttack = "attack"
	AnimDeath  = "death"
	AnimMove   = "move"
)

// Tile identifies a board cell.
type Tile struct {
	X int `json:"tilex"`
	Y int `json:"tiley"`
}

// Unit identifies a unit on the board.
type Unit struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// Card is the display face of a hand card.
type Card struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ManaCost int      `json:"manacost"`
	Attack   int      `json:"attack"`
	Health   int      `json:"health"`
	Rules    []string `json:"rules,omitempty"`
}

// Directive is a single fire-and-forget display instruction. Which fields
// are meaningful depends on Kind.
type Directive struct {
	Kind      Kind   `json:"messagetype"`
	Tile      *Tile  `json:"tile,omitempty"`
	Unit      *Unit  `json:"unit,omitempty"`
	Card      *Card  `json:"card,omitempty"`
	Mode      int    `json:"mode"`
	Slot      int    `json:"position"`
	Player    int    `json:"player"`
	Value     int    `json:"value"`
	Animation string `json:"animation,omitempty"`
	YFirst    bool   `json:"yfirst,omitempty"`
	Text      string `json:"text,omitempty"`
}

func (d Directive) String() string {
	switch d.Kind {
	case KindDrawTile:
		return fmt.Sprintf("drawTile (%d,%d) mode=%d", d.Tile.X, d.Tile.Y, d.Mode)
	case KindDrawUnit:
		return fmt.Sprintf("drawUnit %d at (%d,%d)", d.Unit.ID, d.Tile.X, d.Tile.Y)
	case KindMoveUnitToTile:
		return fmt.Sprintf("moveUnitToTile %d -> (%d,%d) yfirst=%t", d.Unit.ID, d.Tile.X, d.Tile.Y, d.YFirst)
	case KindSetUnitHealth, KindSetUnitAttack:
		return fmt.Sprintf("%s %d = %d", d.Kind, d.Unit.ID, d.Value)
	case KindPlayUnitAnimation:
		return fmt.Sprintf("playUnitAnimation %d %s", d.Unit.ID, d.Animation)
	case KindDrawCard:
		return fmt.Sprintf("drawCard %s slot=%d mode=%d", d.Card.Name, d.Slot, d.Mode)
	case KindDeleteCard:
		return fmt.Sprintf("deleteCard slot=%d", d.Slot)
	case KindDeleteUnit:
		return fmt.Sprintf("deleteUnit %d", d.Unit.ID)
	case KindSetPlayerHealth, KindSetPlayerMana:
		return fmt.Sprintf("%s P%d = %d", d.Kind, d.Player+1, d.Value)
	case KindNotification:
		return "notify: " + d.Text
	default:
		return string(d.Kind)
	}
}

// --- Constructors ---

func DrawTile(x, y, mode int) Directive {
	return Directive{Kind: KindDrawTile, Tile: &Tile{X: x, Y: y}, Mode: mode}
}

func DrawUnit(u Unit, x, y int) Directive {
	return Directive{Kind: KindDrawUnit, Unit: &u, Tile: &Tile{X: x, Y: y}}
}

func MoveUnitToTile(u Unit, x, y int, yFirst bool) Directive {
	return Directive{Kind: KindMoveUnitToTile, Unit: &u, Tile: &Tile{X: x, Y: y}, YFirst: yFirst}
}

func SetUnitHealth(u Unit, health int) Directive {
	return Directive{Kind: KindSetUnitHealth, Unit: &u, Value: health}
}

func SetUnitAttack(u Unit, attack int) Directive {
	return Directive{Kind: KindSetUnitAttack, Unit: &u, Value: attack}
}

func PlayUnitAnimation(u Unit, anim string) Directive {
	return Directive{Kind: KindPlayUnitAnimation, Unit: &u, Animation: anim}
}

// DrawCard renders a hand card; mode 1 is the highlighted (selected) face.
func DrawCard(c Card, slot, mode int) Directive {
	return Directive{Kind: KindDrawCard, Card: &c, Slot: slot, Mode: mode}
}

func DeleteCard(slot int) Directive {
	return Directive{Kind: KindDeleteCard, Slot: slot}
}

func DeleteUnit(u Unit) Directive {
	return Directive{Kind: KindDeleteUnit, Unit: &u}
}

func SetPlayerHealth(player, health int) Directive {
	return Directive{Kind: KindSetPlayerHealth, Player: player, Value: health}
}

func SetPlayerMana(player, mana int) Directive {
	return Directive{Kind: KindSetPlayerMana, Player: player, Value: mana}
}

func Notification(text string) Directive {
	return Directive{Kind: KindNotification, Text: text}
}
