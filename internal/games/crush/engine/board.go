package engine

// Board is the W×H matrix of tile slots. A nil slot is empty; emptiness is
// only valid while a cascade round is in progress.
type Board struct {
	w     int
	h     int
	slots []*Tile
}

// NewBoard creates an empty board.
func NewBoard(w, h int) *Board {
	return &Board{
		w:     w,
		h:     h,
		slots: make([]*Tile, w*h),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

func (b *Board) index(c Coord) int {
	return (c.Row-1)*b.w + (c.Col - 1)
}

// InBounds returns true if the coordinate is on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Col >= 1 && c.Col <= b.w && c.Row >= 1 && c.Row <= b.h
}

// At returns the tile at c, or nil if the slot is empty or off the board.
func (b *Board) At(c Coord) *Tile {
	if !b.InBounds(c) {
		return nil
	}
	return b.slots[b.index(c)]
}

// Occupied returns true if c holds a tile.
func (b *Board) Occupied(c Coord) bool {
	return b.At(c) != nil
}

// Set places t at c. The tile's position is not touched.
func (b *Board) Set(c Coord, t *Tile) {
	if b.InBounds(c) {
		b.slots[b.index(c)] = t
	}
}

// Clear empties the slot at c.
func (b *Board) Clear(c Coord) {
	b.Set(c, nil)
}

// Swap exchanges the tiles at p and q and updates their positions.
func (b *Board) Swap(p, q Coord) {
	tp, tq := b.At(p), b.At(q)
	b.Set(p, tq)
	b.Set(q, tp)
	if tq != nil {
		tq.Pos = p
	}
	if tp != nil {
		tp.Pos = q
	}
}

// Full returns true if every slot holds a tile.
func (b *Board) Full() bool {
	for _, t := range b.slots {
		if t == nil {
			return false
		}
	}
	return true
}

// Each calls fn for every coordinate, bottom row first, left to right.
func (b *Board) Each(fn func(c Coord, t *Tile)) {
	for row := 1; row <= b.h; row++ {
		for col := 1; col <= b.w; col++ {
			c := C(col, row)
			fn(c, b.At(c))
		}
	}
}

// resetCommands drops the commands left from a previous swap and anchors
// every tile's timeline at its current position.
func (b *Board) resetCommands() {
	for _, t := range b.slots {
		if t != nil {
			t.Commands = nil
			t.Start = t.Pos
		}
	}
}
