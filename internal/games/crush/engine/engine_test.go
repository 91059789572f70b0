package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInitializeHasNoRuns(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e := New(DefaultConfig(), WithRand(rand.New(rand.NewSource(seed))))
		if err := e.Initialize(5); err != nil {
			t.Fatalf("seed %d: Initialize: %v", seed, err)
		}
		if !e.board.Full() {
			t.Fatalf("seed %d: board not full", seed)
		}
		e.board.Each(func(c Coord, _ *Tile) {
			row, col := e.board.Runs(c)
			if len(row) > 2 || len(col) > 2 {
				t.Errorf("seed %d: run at %s (row %d, col %d)", seed, c, len(row), len(col))
			}
		})
	}
}

func TestInitializeUsesActiveTypes(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		e := New(DefaultConfig(), WithRand(rand.New(rand.NewSource(7))))
		if err := e.Initialize(n); err != nil {
			t.Fatalf("Initialize(%d): %v", n, err)
		}

		active := e.ActiveTypes()
		if len(active) != n {
			t.Fatalf("active types = %v, want %d", active, n)
		}
		allowed := make(map[TileType]bool)
		for _, typ := range active {
			if !typ.Ordinary() {
				t.Errorf("active type %v is not ordinary", typ)
			}
			if allowed[typ] {
				t.Errorf("active type %v repeated", typ)
			}
			allowed[typ] = true
		}

		snap := e.Cells()
		for _, row := range snap.Types() {
			for _, typ := range row {
				if !allowed[typ] {
					t.Errorf("tile type %v outside active set %v", typ, active)
				}
			}
		}
	}
}

func TestInitializeRejectsTypeCount(t *testing.T) {
	e := New(DefaultConfig())
	for _, n := range []int{0, 2, 7} {
		if err := e.Initialize(n); !errors.Is(err, ErrTypeCount) {
			t.Errorf("Initialize(%d) = %v, want ErrTypeCount", n, err)
		}
	}
}

func TestNewFillsDefaults(t *testing.T) {
	e := New(Config{})
	cfg := e.Config()
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, DefaultWidth, DefaultHeight)
	}
	if cfg.TypeCount != DefaultConfig().TypeCount {
		t.Errorf("type count = %d", cfg.TypeCount)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() [][]TileType {
		e := New(DefaultConfig(), WithRand(rand.New(rand.NewSource(99))))
		if err := e.Initialize(5); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
		for i := 0; i < 10; i++ {
			a, b, ok := e.FindSwap()
			if !ok {
				break
			}
			if _, err := e.SelectCell(a); err != nil {
				t.Fatalf("select: %v", err)
			}
			if _, err := e.SelectCell(b); err != nil {
				t.Fatalf("select: %v", err)
			}
		}
		return e.Cells().Types()
	}

	first, second := play(), play()
	for row := range first {
		for col := range first[row] {
			if first[row][col] != second[row][col] {
				t.Fatalf("boards diverge at (%d,%d)", col+1, row+1)
			}
		}
	}
}

func TestLoadLayoutKeepsFixedTiles(t *testing.T) {
	e := newTestEngine(t, 1, map[Coord]string{
		C(3, 3): "A-",
		C(4, 4): "*",
	})

	snap := e.Cells()
	if v := snap.At(C(3, 3)); v.Type != TypeA || v.Status != StatusRowClear {
		t.Errorf("(3,3) = %v/%v, want A row-clear", v.Type, v.Status)
	}
	if v := snap.At(C(4, 4)); v.Type != TypeWildcard || v.Status != StatusColorBomb {
		t.Errorf("(4,4) = %v/%v, want color bomb", v.Type, v.Status)
	}
	if v := snap.At(C(1, 1)); v.Type != patternSpec(1, 1).Type {
		t.Errorf("(1,1) = %v, want %v", v.Type, patternSpec(1, 1).Type)
	}
}

func TestLoadLayoutFillsHoles(t *testing.T) {
	l := testLayout(t, nil)
	l.Set(C(5, 5), TileSpec{})
	l.Set(C(9, 9), TileSpec{})

	e := New(DefaultConfig(), WithRand(rand.New(rand.NewSource(3))))
	if err := e.LoadLayout(l, 5); err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if !e.board.Full() {
		t.Fatal("board not full after LoadLayout")
	}
	for _, c := range []Coord{C(5, 5), C(9, 9)} {
		row, col := e.board.Runs(c)
		if len(row) > 2 || len(col) > 2 {
			t.Errorf("filled hole %s forms a run", c)
		}
	}
}

func TestLoadLayoutRejectsSize(t *testing.T) {
	e := New(DefaultConfig())
	if err := e.LoadLayout(NewLayout(5, 5), 5); !errors.Is(err, ErrLayout) {
		t.Errorf("LoadLayout = %v, want ErrLayout", err)
	}
}

func TestFindSwap(t *testing.T) {
	t.Run("finds the only move", func(t *testing.T) {
		e := newTestEngine(t, 1, map[Coord]string{
			C(1, 1): "A",
			C(1, 2): "A",
			C(2, 3): "A",
		})
		a, b, ok := e.FindSwap()
		if !ok {
			t.Fatal("FindSwap found nothing")
		}
		if !e.swapAccepted(a, b) {
			t.Errorf("swap %s/%s not accepted", a, b)
		}
	})

	t.Run("color bomb always swaps", func(t *testing.T) {
		e := newTestEngine(t, 1, map[Coord]string{C(9, 9): "*"})
		if _, _, ok := e.FindSwap(); !ok {
			t.Error("FindSwap ignored the color bomb")
		}
	})

	t.Run("leaves the board untouched", func(t *testing.T) {
		e := newTestEngine(t, 1, map[Coord]string{
			C(1, 1): "A",
			C(1, 2): "A",
			C(2, 3): "A",
		})
		before := e.Cells().Types()
		e.FindSwap()
		after := e.Cells().Types()
		for row := range before {
			for col := range before[row] {
				if before[row][col] != after[row][col] {
					t.Fatalf("board changed at (%d,%d)", col+1, row+1)
				}
			}
		}
	})

	t.Run("not ready", func(t *testing.T) {
		e := New(DefaultConfig())
		if _, _, ok := e.FindSwap(); ok {
			t.Error("FindSwap on an empty engine")
		}
	})
}

func TestSnapshotOffBoard(t *testing.T) {
	e := newTestEngine(t, 1, nil)
	snap := e.Cells()
	for _, c := range []Coord{C(0, 1), C(1, 0), C(10, 1), C(1, 10)} {
		if v := snap.At(c); v.Type != TypeNone {
			t.Errorf("At(%s) = %v, want none", c, v.Type)
		}
	}
}

func TestSnapshotLayoutReloads(t *testing.T) {
	e := newTestEngine(t, 3, map[Coord]string{C(2, 2): "A-", C(5, 5): "*"})
	snap := e.Cells()

	other := New(DefaultConfig(), WithRand(rand.New(rand.NewSource(99))))
	if err := other.LoadLayout(snap.Layout(), 5); err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	again := other.Cells()
	for row := 1; row <= snap.Height; row++ {
		for col := 1; col <= snap.Width; col++ {
			c := C(col, row)
			a, b := snap.At(c), again.At(c)
			if a.Type != b.Type || a.Status != b.Status {
				t.Fatalf("%s: %v/%v, want %v/%v", c, b.Type, b.Status, a.Type, a.Status)
			}
		}
	}
	if got := snap.Layout().At(C(5, 5)).Status; got != StatusColorBomb {
		t.Errorf("bomb status = %v", got)
	}
}
