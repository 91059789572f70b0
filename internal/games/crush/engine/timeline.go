package engine

import "time"

// Clock is the virtual timeline. It only moves forward and never waits:
// its value stamps commands and effects so a renderer can replay them later.
type Clock struct {
	now time.Duration
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Reset rewinds the clock to zero for a new swap.
func (c *Clock) Reset() {
	c.now = 0
}

// EffectAction names a one-shot visual/audio cue.
type EffectAction string

const (
	ActionClear          EffectAction = "clear"
	ActionRowDetonate    EffectAction = "row-detonate"
	ActionColumnDetonate EffectAction = "column-detonate"
	ActionAreaDetonate   EffectAction = "area-detonate"
)

// Effect is an immutable timed cue for the renderer.
type Effect struct {
	PlayTime time.Duration
	Pos      Coord
	Action   EffectAction
	Step     int // Cascade round, used to pick staggered sound cues
}

// Timing holds the per-phase animation durations.
type Timing struct {
	Move           time.Duration // Swap and fall animation
	Die            time.Duration // Pause after a round's clears
	Shake          time.Duration // Shake before a color-bomb clear
	Detonation     time.Duration // Delay per detonation wave
	ColorBombDelay time.Duration // Delay for a wave containing a color bomb
	Settle         time.Duration // Buffer after gravity
}

// DefaultTiming returns the stock animation durations.
func DefaultTiming() Timing {
	return Timing{
		Move:           300 * time.Millisecond,
		Die:            200 * time.Millisecond,
		Shake:          400 * time.Millisecond,
		Detonation:     300 * time.Millisecond,
		ColorBombDelay: 700 * time.Millisecond,
		Settle:         300 * time.Millisecond,
	}
}
