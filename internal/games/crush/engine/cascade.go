package engine

import "sort"

// resolution carries the state of one swap's resolution: the virtual clock,
// the changed tiles and the effect queue.
type resolution struct {
	e     *Engine
	board *Board
	clock Clock

	changed   []*Tile
	inChanged map[*Tile]bool
	effects   []Effect
	detonated map[*Tile]bool

	rounds  int
	cleared int
	maxStep int
}

func newResolution(e *Engine) *resolution {
	return &resolution{
		e:         e,
		board:     e.board,
		inChanged: make(map[*Tile]bool),
		detonated: make(map[*Tile]bool),
	}
}

// touch adds t to the changed set once.
func (r *resolution) touch(t *Tile) {
	if t == nil || r.inChanged[t] {
		return
	}
	r.inChanged[t] = true
	r.changed = append(r.changed, t)
}

func (r *resolution) result(committed bool) Result {
	effects := r.effects
	sort.SliceStable(effects, func(i, j int) bool {
		return effects[i].PlayTime < effects[j].PlayTime
	})
	return Result{
		Changed:   r.changed,
		Effects:   effects,
		Committed: committed,
		Rounds:    r.rounds,
		Cleared:   r.cleared,
		MaxStep:   r.maxStep,
		Duration:  r.clock.Now(),
	}
}

// cascade runs rounds of match, clear, spawn, detonate and gravity until a
// round produces no moved tiles. Each round only re-checks the coordinates
// that gravity touched in the previous one.
func (r *resolution) cascade(work []Coord) {
	timing := r.e.cfg.Timing

	for step := 0; len(work) > 0; step++ {
		var bombs []*Tile
		if step == 0 && len(work) == 2 {
			bombs = r.pairColorBomb(work[0], work[1])
		}

		matches := 0
		for _, c := range work {
			if !r.board.Occupied(c) {
				continue
			}
			m := r.board.Evaluate(c, true)
			if !m.Found() {
				continue
			}
			matches++
			for _, p := range m.Points {
				t := r.board.At(p)
				if t == nil {
					continue
				}
				r.remove(p, false, step)
				if t.Status.Special() {
					bombs = append(bombs, t)
				}
			}
			r.spawnSpecial(m)
		}

		r.detonate(bombs, step)
		r.clock.Advance(timing.Die)

		checked := len(work)
		work = r.gravity()
		r.rounds++

		r.e.logger.Debug("cascade round",
			"step", step,
			"checked", checked,
			"matches", matches,
			"bombs", len(bombs),
			"time", r.clock.Now(),
		)
	}
}

// pairColorBomb handles a color bomb swapped with another tile: the bomb
// takes the other tile's color and detonates directly.
func (r *resolution) pairColorBomb(a, b Coord) []*Tile {
	ta, tb := r.board.At(a), r.board.At(b)
	if ta == nil || tb == nil {
		return nil
	}
	switch {
	case ta.Status == StatusColorBomb:
		ta.Type = tb.Type
		return []*Tile{ta}
	case tb.Status == StatusColorBomb:
		tb.Type = ta.Type
		return []*Tile{tb}
	}
	return nil
}

// remove clears the tile at c. With shake the tile shakes first and
// despawns after the shake duration.
func (r *resolution) remove(c Coord, shake bool, step int) {
	t := r.board.At(c)
	if t == nil {
		return
	}
	r.touch(t)

	at := r.clock.Now()
	if shake {
		t.ShakeAt(at, r.e.cfg.Timing.Shake)
		at += r.e.cfg.Timing.Shake
	}
	t.DespawnAt(at)
	r.effects = append(r.effects, Effect{PlayTime: at, Pos: t.Pos, Action: ActionClear, Step: step})

	r.board.Clear(c)
	r.cleared++
	if step > r.maxStep {
		r.maxStep = step
	}
}

// spawnSpecial places the tile earned by m at its pivot. It stays hidden
// until the current time so it does not show during the clear animation.
func (r *resolution) spawnSpecial(m Match) {
	if m.Status == StatusOrdinary {
		return
	}
	typ := m.Type
	if m.Status == StatusColorBomb {
		typ = TypeWildcard
	}

	t := r.e.newTile(typ, m.Pivot)
	t.Status = m.Status
	t.SetVisibleAt(0, false)
	t.SetVisibleAt(r.clock.Now(), true)

	r.board.Set(m.Pivot, t)
	r.touch(t)
}
