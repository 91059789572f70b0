package crush

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush/engine"
)

// flashDuration is how long an effect glyph stays on screen.
const flashDuration = 150 * time.Millisecond

// shakePeriod is the half period of the shake wobble.
const shakePeriod = 50 * time.Millisecond

// playback replays one engine.Result on the virtual clock.
type playback struct {
	res     engine.Result
	before  engine.Snapshot // Board as it was before the swap
	changed map[uint64]*engine.Tile
	elapsed time.Duration
	step    time.Duration // Virtual time per tick
}

func newPlayback(res engine.Result, before engine.Snapshot, step time.Duration) *playback {
	p := &playback{
		res:     res,
		before:  before,
		changed: make(map[uint64]*engine.Tile, len(res.Changed)),
		step:    step,
	}
	for _, t := range res.Changed {
		p.changed[t.ID] = t
	}
	return p
}

// advance moves the clock by one tick. Returns true while frames remain.
func (p *playback) advance() bool {
	p.elapsed += p.step
	return !p.done()
}

func (p *playback) done() bool {
	return p.elapsed >= p.res.Duration
}

// sprite is a tile placed at a fractional board position.
type sprite struct {
	Type   engine.TileType
	Status engine.Status
	Col    float64
	Row    float64
	Shake  int // Horizontal wobble in screen cells
}

// sprites returns every visible tile at the current playback time.
func (p *playback) sprites() []sprite {
	var out []sprite
	for row := 1; row <= p.before.Height; row++ {
		for col := 1; col <= p.before.Width; col++ {
			v := p.before.At(engine.C(col, row))
			if v.Type == engine.TypeNone {
				continue
			}
			if _, moving := p.changed[v.ID]; moving {
				continue
			}
			out = append(out, sprite{Type: v.Type, Status: v.Status, Col: float64(col), Row: float64(row)})
		}
	}
	for _, t := range p.res.Changed {
		if s, ok := tileAt(t, p.elapsed); ok {
			out = append(out, s)
		}
	}
	return out
}

// tileAt replays the commands of t up to time now.
func tileAt(t *engine.Tile, now time.Duration) (sprite, bool) {
	col, row := float64(t.Start.Col), float64(t.Start.Row)
	visible := true
	shake := 0

	for _, c := range t.Commands {
		if c.At > now {
			continue
		}
		elapsed := now - c.At
		switch c.Kind {
		case engine.CmdMove:
			col, row = moveToward(col, row, c.Target, progress(elapsed, c.Duration))
		case engine.CmdMoveAndRevert:
			if elapsed < c.Duration {
				col, row = moveToward(col, row, c.Target, progress(elapsed, c.Duration))
			} else if elapsed < 2*c.Duration {
				back := progress(elapsed-c.Duration, c.Duration)
				tc, tr := float64(c.Target.Col), float64(c.Target.Row)
				col, row = core.Lerp(tc, col, back), core.Lerp(tr, row, back)
			}
		case engine.CmdShake:
			if elapsed < c.Duration {
				if (elapsed/shakePeriod)%2 == 0 {
					shake = 1
				} else {
					shake = -1
				}
			}
		case engine.CmdDespawn:
			return sprite{}, false
		case engine.CmdVisible:
			visible = c.Visible
		}
	}

	if !visible {
		return sprite{}, false
	}
	return sprite{Type: t.Type, Status: t.Status, Col: col, Row: row, Shake: shake}, true
}

func progress(elapsed, d time.Duration) float64 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	return core.EaseOutQuad(float64(elapsed) / float64(d))
}

func moveToward(col, row float64, target engine.Coord, t float64) (float64, float64) {
	return core.Lerp(col, float64(target.Col), t), core.Lerp(row, float64(target.Row), t)
}

// flashes returns the effects whose flash window covers the current time.
func (p *playback) flashes() []engine.Effect {
	var out []engine.Effect
	for _, ef := range p.res.Effects {
		if ef.PlayTime > p.elapsed {
			break
		}
		if p.elapsed-ef.PlayTime < flashDuration {
			out = append(out, ef)
		}
	}
	return out
}

// tickStep returns the virtual time covered by one tick.
func tickStep(tickRate int, speed float64) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(math.Round(float64(time.Second) / float64(tickRate) * speed))
}
