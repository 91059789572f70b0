package engine

// areaRadius is the Manhattan radius of an area-clear blast.
const areaRadius = 2

// detonate processes special tiles in waves. Specials cleared by a wave form
// the next one; a tile detonates at most once per swap.
func (r *resolution) detonate(bombs []*Tile, step int) {
	timing := r.e.cfg.Timing

	for len(bombs) > 0 {
		var next []*Tile
		delay := timing.Detonation
		fired := 0

		for _, t := range bombs {
			if r.detonated[t] {
				continue
			}
			r.detonated[t] = true
			fired++

			switch t.Status {
			case StatusRowClear:
				for col := 1; col <= r.board.Width(); col++ {
					next = r.blast(C(col, t.Pos.Row), false, step, next)
				}
				r.effect(t.Pos, ActionRowDetonate, step)

			case StatusColumnClear:
				for row := 1; row <= r.board.Height(); row++ {
					next = r.blast(C(t.Pos.Col, row), false, step, next)
				}
				r.effect(t.Pos, ActionColumnDetonate, step)

			case StatusAreaClear:
				for _, c := range r.area(t.Pos) {
					next = r.blast(c, false, step, next)
				}
				r.effect(t.Pos, ActionAreaDetonate, step)

			case StatusColorBomb:
				if timing.ColorBombDelay > delay {
					delay = timing.ColorBombDelay
				}
				target := t.Type
				if target == TypeWildcard {
					target = r.e.pool.draw(r.e.rng)
				}
				for _, c := range r.ofType(target) {
					next = r.blast(c, true, step, next)
				}
			}
		}

		if fired > 0 {
			r.clock.Advance(delay)
		}
		bombs = next
	}
}

// blast removes the tile at c and queues it for the next wave if it is an
// undetonated special.
func (r *resolution) blast(c Coord, shake bool, step int, next []*Tile) []*Tile {
	t := r.board.At(c)
	if t == nil {
		return next
	}
	if t.Status.Special() && !r.detonated[t] {
		next = append(next, t)
	}
	r.remove(c, shake, step)
	return next
}

func (r *resolution) effect(pos Coord, action EffectAction, step int) {
	r.effects = append(r.effects, Effect{PlayTime: r.clock.Now(), Pos: pos, Action: action, Step: step})
}

// area returns the occupied coordinates within areaRadius of center.
func (r *resolution) area(center Coord) []Coord {
	var out []Coord
	r.board.Each(func(c Coord, t *Tile) {
		if t != nil && c.Manhattan(center) <= areaRadius {
			out = append(out, c)
		}
	})
	return out
}

// ofType returns the coordinates of every tile of the given type.
func (r *resolution) ofType(typ TileType) []Coord {
	var out []Coord
	r.board.Each(func(c Coord, t *Tile) {
		if t != nil && t.Type == typ {
			out = append(out, c)
		}
	})
	return out
}
