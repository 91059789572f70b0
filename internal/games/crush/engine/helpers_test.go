package engine

import (
	"math/rand"
	"testing"
)

// patternSpec returns a D/E/F tile such that no two edge neighbours share a
// type, so the base board holds no runs at all.
func patternSpec(col, row int) TileSpec {
	return TileSpec{Type: TypeD + TileType((col+2*row)%3)}
}

func testLayout(t *testing.T, overrides map[Coord]string) Layout {
	t.Helper()

	l := NewLayout(DefaultWidth, DefaultHeight)
	for row := 1; row <= DefaultHeight; row++ {
		for col := 1; col <= DefaultWidth; col++ {
			l.Set(C(col, row), patternSpec(col, row))
		}
	}
	for c, tok := range overrides {
		spec, err := ParseTileSpec(tok)
		if err != nil {
			t.Fatalf("override %s: %v", c, err)
		}
		l.Set(c, spec)
	}
	return l
}

func newTestEngine(t *testing.T, seed int64, overrides map[Coord]string) *Engine {
	t.Helper()

	e := New(DefaultConfig(), WithRand(rand.New(rand.NewSource(seed))))
	if err := e.LoadLayout(testLayout(t, overrides), 5); err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	return e
}

// sparseBoard builds a board from layout rows, leaving '.' cells empty.
func sparseBoard(t *testing.T, rows []string) *Board {
	t.Helper()

	l, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	b := NewBoard(l.Width(), l.Height())
	var id uint64
	for row := 1; row <= l.Height(); row++ {
		for col := 1; col <= l.Width(); col++ {
			spec := l.At(C(col, row))
			if spec.Type == TypeNone {
				continue
			}
			id++
			b.Set(C(col, row), &Tile{ID: id, Pos: C(col, row), Start: C(col, row), Type: spec.Type, Status: spec.Status})
		}
	}
	return b
}

func coordSet(cs []Coord) map[Coord]bool {
	out := make(map[Coord]bool, len(cs))
	for _, c := range cs {
		out[c] = true
	}
	return out
}

func effectsAt(effects []Effect, step int, action EffectAction) []Effect {
	var out []Effect
	for _, ef := range effects {
		if ef.Step == step && ef.Action == action {
			out = append(out, ef)
		}
	}
	return out
}
