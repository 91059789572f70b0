package engine

// gravity compacts every column toward row 1 and refills the vacated top
// slots with new tiles that fall in from above the board. It returns the
// coordinates of every tile that moved or spawned.
func (r *resolution) gravity() []Coord {
	move := r.e.cfg.Timing.Move
	now := r.clock.Now()
	h := r.board.Height()

	var moved []Coord
	for col := 1; col <= r.board.Width(); col++ {
		dst := 1
		for row := 1; row <= h; row++ {
			src := C(col, row)
			t := r.board.At(src)
			if t == nil {
				continue
			}
			if row != dst {
				to := C(col, dst)
				r.board.Set(to, t)
				r.board.Clear(src)
				r.touch(t)
				t.MoveTo(to, now, move)
				moved = append(moved, to)
			}
			dst++
		}

		for above := 1; dst <= h; dst, above = dst+1, above+1 {
			to := C(col, dst)
			t := r.e.newTile(r.e.pool.draw(r.e.rng), C(col, h+above))
			r.board.Set(to, t)
			r.touch(t)
			t.MoveTo(to, now, move)
			moved = append(moved, to)
		}
	}

	r.clock.Advance(move + r.e.cfg.Timing.Settle)
	return moved
}
