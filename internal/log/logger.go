package log

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	mu     sync.Mutex
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]GameEvent, len(l.events))
	copy(out, l.events)
	return out
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- ZapLogger: forwards events to a structured logger, keeps nothing ---

type ZapLogger struct {
	z   *zap.Logger
	mu  sync.Mutex
	seq int
}

func NewZapLogger(z *zap.Logger) *ZapLogger {
	if z == nil {
		z = zap.NewNop()
	}
	return &ZapLogger{z: z}
}

func (l *ZapLogger) Log(event GameEvent) {
	l.mu.Lock()
	l.seq++
	event.Seq = l.seq
	l.mu.Unlock()
	l.z.Info(event.Details,
		zap.Int("seq", event.Seq),
		zap.Int("turn", event.Turn),
		zap.String("player", playerName(event.Player)),
		zap.Stringer("event", event.Type),
		zap.String("card", event.Card),
	)
}

func (l *ZapLogger) Events() []GameEvent {
	return nil
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("T%-2d %s | %s", e.Turn, playerName(e.Player), e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func event(turn, player int, t EventType, card, format string, args ...any) GameEvent {
	return GameEvent{Turn: turn, Player: player, Type: t, Card: card, Details: fmt.Sprintf(format, args...)}
}

func NewTurnEvent(turn int, player int, mana int) GameEvent {
	return event(turn, player, EventNewTurn, "", "=== Turn %d (%s, %d mana) ===", turn, playerName(player), mana)
}

func NewDrawEvent(turn int, player int, cardName string) GameEvent {
	return event(turn, player, EventDraw, cardName, "%s draws %s", playerName(player), cardName)
}

func NewHandFullDiscardEvent(turn int, player int, cardName string) GameEvent {
	return event(turn, player, EventHandFullDiscard, cardName, "%s hand is full, %s is discarded", playerName(player), cardName)
}

func NewDeckOutEvent(turn int, player int) GameEvent {
	return event(turn, player, EventDeckOut, "", "%s cannot draw from an empty deck", playerName(player))
}

func NewSelectCardEvent(turn int, player int, cardName string, slot int) GameEvent {
	return event(turn, player, EventSelectCard, cardName, "%s selects %s (slot %d)", playerName(player), cardName, slot)
}

func NewSummonEvent(turn int, player int, cardName string, x, y int) GameEvent {
	return event(turn, player, EventSummon, cardName, "%s summons %s at (%d,%d)", playerName(player), cardName, x, y)
}

func NewSpellCastEvent(turn int, player int, cardName string, target string) GameEvent {
	return event(turn, player, EventSpellCast, cardName, "%s casts %s on %s", playerName(player), cardName, target)
}

func NewMoveEvent(turn int, player int, unitName string, fromX, fromY, toX, toY int) GameEvent {
	return event(turn, player, EventMove, unitName, "%s moves (%d,%d) → (%d,%d)", unitName, fromX, fromY, toX, toY)
}

func NewAttackEvent(turn int, player int, attacker, defender string) GameEvent {
	return event(turn, player, EventAttack, attacker, "%s attacks %s", attacker, defender)
}

func NewCounterAttackEvent(turn int, player int, defender, attacker string) GameEvent {
	return event(turn, player, EventCounterAttack, defender, "%s counter-attacks %s", defender, attacker)
}

func NewHPChangeEvent(turn int, player int, unitName string, oldHP, newHP int) GameEvent {
	return event(turn, player, EventHPChange, unitName, "%s HP: %d → %d", unitName, oldHP, newHP)
}

func NewStatChangeEvent(turn int, player int, unitName string, attack, health int) GameEvent {
	return event(turn, player, EventStatChange, unitName, "%s is now %d/%d", unitName, attack, health)
}

func NewAbilityEvent(turn int, player int, cardName string, hook string) GameEvent {
	return event(turn, player, EventAbility, cardName, "%s ability triggers (%s)", cardName, hook)
}

func NewDeathEvent(turn int, player int, unitName string) GameEvent {
	return event(turn, player, EventDeath, unitName, "%s is destroyed", unitName)
}

func NewWinEvent(turn int, winner int, reason string) GameEvent {
	return event(turn, winner, EventWin, "", "%s wins! (%s)", playerName(winner), reason)
}
