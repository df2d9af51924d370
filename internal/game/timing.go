package game

import (
	"context"
	"sync"
	"time"
)

// Presentation pauses between steps, at real-time scale 1.
const (
	pauseTexture     = 10 * time.Millisecond
	pauseRangeReset  = 100 * time.Millisecond
	pauseDraw        = 500 * time.Millisecond
	pauseSummon      = 500 * time.Millisecond
	pauseCardRemoved = 500 * time.Millisecond
	pauseMoveStart   = 500 * time.Millisecond
	pauseMove        = 2 * time.Second
	pauseAnimation   = 2 * time.Second
	pauseAttackDone  = 500 * time.Millisecond
	pauseAIStep      = time.Second
	pauseAIThink     = 500 * time.Millisecond
)

// Pacer paces presentation. A cancelled context ends the current pause
// early; the game step that follows still runs.
type Pacer interface {
	Pause(ctx context.Context, d time.Duration)
}

// NoPacer never waits.
type NoPacer struct{}

func (NoPacer) Pause(context.Context, time.Duration) {}

// SleepPacer waits in real time, scaled by Scale (1 = full speed pauses).
type SleepPacer struct {
	Scale float64
}

func (p SleepPacer) Pause(ctx context.Context, d time.Duration) {
	d = time.Duration(float64(d) * p.Scale)
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// VirtualClock records pauses without waiting. Used in tests.
type VirtualClock struct {
	mu      sync.Mutex
	elapsed time.Duration
	pauses  int
}

func (c *VirtualClock) Pause(_ context.Context, d time.Duration) {
	c.mu.Lock()
	c.elapsed += d
	c.pauses++
	c.mu.Unlock()
}

// Elapsed returns the total virtual time paused.
func (c *VirtualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Pauses returns how many pauses were requested.
func (c *VirtualClock) Pauses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pauses
}

// NewPacer returns a real-time pacer at the given scale, or NoPacer when
// scale is not positive.
func NewPacer(scale float64) Pacer {
	if scale <= 0 {
		return NoPacer{}
	}
	return SleepPacer{Scale: scale}
}
