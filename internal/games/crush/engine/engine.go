// Package engine implements the rules of the crush puzzle: the tile grid,
// match detection, swaps, cascades, special-tile detonations and gravity.
//
// Every mutation is stamped with a virtual time so that a renderer can replay
// the result of a swap as an animation. The engine itself never waits and has
// no dependency on any UI runtime.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
)

// Default board dimensions.
const (
	DefaultWidth  = 9
	DefaultHeight = 9
)

var (
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrEmptySlot   = errors.New("slot is empty")
	ErrBusy        = errors.New("engine is resolving another swap")
	ErrTypeCount   = errors.New("invalid type count")
	ErrLayout      = errors.New("invalid layout")
	ErrNotReady    = errors.New("board not initialized")
)

// Config holds the board dimensions, palette size and animation timing.
type Config struct {
	Width     int
	Height    int
	TypeCount int
	Timing    Timing
}

// DefaultConfig returns a 9×9 board with five colors.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		TypeCount: 5,
		Timing:    DefaultTiming(),
	}
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand sets the random source. Equal seeds give equal games.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger sets the logger used for cascade tracing.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine owns the board and resolves swaps.
// Calls are serialized; a swap issued while another is resolving fails with ErrBusy.
type Engine struct {
	mu     sync.Mutex
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger

	board  *Board
	pool   typePool
	nextID uint64

	selected    Coord
	hasSelected bool
}

// New creates an engine. The board is empty until Initialize or LoadLayout.
func New(cfg Config, opts ...Option) *Engine {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.TypeCount == 0 {
		cfg.TypeCount = DefaultConfig().TypeCount
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(1))
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Initialize fills the board with random tiles such that no tile starts in a
// run longer than two. The active palette is reshuffled to typeCount colors.
func (e *Engine) Initialize(typeCount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.setTypeCount(typeCount); err != nil {
		return err
	}

	e.board = NewBoard(e.cfg.Width, e.cfg.Height)
	e.fillRandom()
	e.hasSelected = false
	e.logger.Debug("board initialized", "types", e.pool.Active())
	return nil
}

// LoadLayout places the tiles of a fixed layout. Cells with TypeNone are
// filled randomly under the same rule as Initialize.
func (e *Engine) LoadLayout(l Layout, typeCount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if l.Width() != e.cfg.Width || l.Height() != e.cfg.Height {
		return fmt.Errorf("%w: layout is %dx%d, board is %dx%d",
			ErrLayout, l.Width(), l.Height(), e.cfg.Width, e.cfg.Height)
	}
	if err := e.setTypeCount(typeCount); err != nil {
		return err
	}

	e.board = NewBoard(e.cfg.Width, e.cfg.Height)
	for row := 1; row <= e.cfg.Height; row++ {
		for col := 1; col <= e.cfg.Width; col++ {
			spec := l.At(C(col, row))
			if spec.Type == TypeNone {
				continue
			}
			t := e.newTile(spec.Type, C(col, row))
			t.Status = spec.Status
			e.board.Set(t.Pos, t)
		}
	}
	e.fillRandom()
	e.hasSelected = false
	return nil
}

func (e *Engine) setTypeCount(n int) error {
	if n < 3 || n > BaseTypeCount {
		return fmt.Errorf("%w: %d (want 3..%d)", ErrTypeCount, n, BaseTypeCount)
	}
	e.cfg.TypeCount = n
	e.pool.reset(e.rng, n)
	return nil
}

// maxRedraws bounds the redraw loop for holes a fixed layout has boxed in.
const maxRedraws = 64

// fillRandom fills every empty slot, redrawing until the new tile is not part
// of a run longer than two.
func (e *Engine) fillRandom() {
	for row := 1; row <= e.cfg.Height; row++ {
		for col := 1; col <= e.cfg.Width; col++ {
			c := C(col, row)
			if e.board.Occupied(c) {
				continue
			}
			t := e.newTile(e.pool.draw(e.rng), c)
			e.board.Set(c, t)
			for i := 0; i < maxRedraws; i++ {
				rowRun, colRun := e.board.Runs(c)
				if len(rowRun) <= 2 && len(colRun) <= 2 {
					break
				}
				t.Type = e.pool.draw(e.rng)
			}
		}
	}
}

func (e *Engine) newTile(typ TileType, at Coord) *Tile {
	e.nextID++
	return &Tile{
		ID:    e.nextID,
		Pos:   at,
		Start: at,
		Type:  typ,
	}
}

// Selection returns the pending selection, if any.
func (e *Engine) Selection() (Coord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected, e.hasSelected
}

// ClearSelection drops the pending selection.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hasSelected = false
}

// ActiveTypes returns the colors currently drawn by the engine.
func (e *Engine) ActiveTypes() []TileType {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pool.Active()
}

// TileView is a read-only copy of a board tile.
type TileView struct {
	ID     uint64
	Type   TileType
	Status Status
}

// Snapshot is a read-only copy of the board.
type Snapshot struct {
	Width  int
	Height int
	tiles  []TileView
}

// At returns the tile at c. Off-board coordinates return the zero view.
func (s Snapshot) At(c Coord) TileView {
	if c.Col < 1 || c.Col > s.Width || c.Row < 1 || c.Row > s.Height {
		return TileView{}
	}
	return s.tiles[(c.Row-1)*s.Width+(c.Col-1)]
}

// Types returns the tile types row by row, row 1 first.
func (s Snapshot) Types() [][]TileType {
	out := make([][]TileType, s.Height)
	for row := 1; row <= s.Height; row++ {
		out[row-1] = make([]TileType, s.Width)
		for col := 1; col <= s.Width; col++ {
			out[row-1][col-1] = s.At(C(col, row)).Type
		}
	}
	return out
}

// Layout converts the snapshot back to a fixed layout, so a position can be
// saved and loaded again with LoadLayout.
func (s Snapshot) Layout() Layout {
	l := NewLayout(s.Width, s.Height)
	for row := 1; row <= s.Height; row++ {
		for col := 1; col <= s.Width; col++ {
			v := s.At(C(col, row))
			l.Set(C(col, row), TileSpec{Type: v.Type, Status: v.Status})
		}
	}
	return l
}

// Cells returns a snapshot of the board for rendering.
func (e *Engine) Cells() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.board == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Width:  e.board.Width(),
		Height: e.board.Height(),
		tiles:  make([]TileView, e.board.Width()*e.board.Height()),
	}
	e.board.Each(func(c Coord, t *Tile) {
		if t != nil {
			s.tiles[e.board.index(c)] = TileView{ID: t.ID, Type: t.Type, Status: t.Status}
		}
	})
	return s
}

// FindSwap returns an adjacent pair whose swap would be accepted, scanning
// bottom-up and left to right. The board is left untouched.
func (e *Engine) FindSwap() (Coord, Coord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.board == nil {
		return Coord{}, Coord{}, false
	}
	for row := 1; row <= e.board.Height(); row++ {
		for col := 1; col <= e.board.Width(); col++ {
			a := C(col, row)
			for _, d := range []Coord{{Col: 1}, {Row: 1}} {
				b := a.Add(d)
				if !e.board.InBounds(b) {
					continue
				}
				if e.swapAccepted(a, b) {
					return a, b, true
				}
			}
		}
	}
	return Coord{}, Coord{}, false
}

// swapAccepted tries the swap, evaluates it and restores the board.
func (e *Engine) swapAccepted(a, b Coord) bool {
	ta, tb := e.board.At(a), e.board.At(b)
	if ta == nil || tb == nil {
		return false
	}
	if specialCombo(ta, tb) {
		return true
	}
	e.board.Swap(a, b)
	ok := e.board.Evaluate(a, false).Found() || e.board.Evaluate(b, false).Found()
	e.board.Swap(a, b)
	return ok
}

// specialCombo reports whether two swapped tiles detonate regardless of runs.
func specialCombo(a, b *Tile) bool {
	return (a.Status.Special() && b.Status.Special()) ||
		a.Status == StatusColorBomb || b.Status == StatusColorBomb
}
