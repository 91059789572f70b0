package engine

import (
	"fmt"
	"time"
)

// Result is everything a renderer needs to replay one selection.
type Result struct {
	Changed   []*Tile  // Tiles whose state or schedule changed, removed tiles included
	Effects   []Effect // One-shot cues ordered by play time
	Committed bool     // The swap was kept and resolved
	Rounds    int      // Cascade rounds run
	Cleared   int      // Tiles removed from the board
	MaxStep   int      // Highest cascade round that cleared a tile
	Duration  time.Duration
}

// Swapped reports whether the selection moved any tile.
func (r Result) Swapped() bool {
	return len(r.Changed) > 0
}

// SelectCell is the gameplay entry point. A tap that is not edge-adjacent to
// the pending selection only re-anchors the selection and returns an empty
// result. An adjacent tap swaps the two tiles, then either reverts the swap or
// resolves the cascade it triggers.
func (e *Engine) SelectCell(c Coord) (Result, error) {
	if !e.mu.TryLock() {
		return Result{}, ErrBusy
	}
	defer e.mu.Unlock()

	if e.board == nil {
		return Result{}, ErrNotReady
	}
	if !e.board.InBounds(c) {
		return Result{}, fmt.Errorf("select %s: %w", c, ErrOutOfBounds)
	}
	if !e.board.Occupied(c) {
		return Result{}, fmt.Errorf("select %s: %w", c, ErrEmptySlot)
	}

	if !e.hasSelected || !e.selected.Adjacent(c) {
		e.selected = c
		e.hasSelected = true
		return Result{}, nil
	}

	last := e.selected
	e.hasSelected = false
	return e.swap(last, c), nil
}

// swap exchanges the tiles at last and cur and either reverts or resolves.
func (e *Engine) swap(last, cur Coord) Result {
	e.board.resetCommands()
	r := newResolution(e)

	curTile := e.board.At(cur)
	lastTile := e.board.At(last)

	e.board.Swap(last, cur)
	curMatch := e.board.Evaluate(cur, false)
	lastMatch := e.board.Evaluate(last, false)

	r.touch(curTile)
	r.touch(lastTile)

	move := e.cfg.Timing.Move
	if !curMatch.Found() && !lastMatch.Found() && !specialCombo(curTile, lastTile) {
		e.board.Swap(last, cur)
		curTile.MoveToAndRevert(last, r.clock.Now(), move)
		lastTile.MoveToAndRevert(cur, r.clock.Now(), move)
		r.clock.Advance(2 * move)
		e.logger.Debug("swap rejected", "from", last, "to", cur)
		return r.result(false)
	}

	curTile.MoveTo(last, r.clock.Now(), move)
	lastTile.MoveTo(cur, r.clock.Now(), move)
	r.clock.Advance(move)

	r.cascade([]Coord{cur, last})
	return r.result(true)
}
