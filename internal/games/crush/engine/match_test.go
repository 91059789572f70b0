package engine

import "testing"

func TestEvaluateClassification(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		pivot  Coord
		status Status
		points int
	}{
		{
			name: "no match",
			rows: []string{
				". . . . .",
				". . . . .",
				"A A B A .",
				". . . . .",
				". . . . .",
			},
			pivot:  C(1, 3),
			status: StatusOrdinary,
			points: 0,
		},
		{
			name: "three in a row",
			rows: []string{
				". . . . .",
				". . . . .",
				"A A A B .",
				". . . . .",
				". . . . .",
			},
			pivot:  C(2, 3),
			status: StatusOrdinary,
			points: 3,
		},
		{
			name: "four in a row",
			rows: []string{
				". . . . .",
				". . . . .",
				"A A A A B",
				". . . . .",
				". . . . .",
			},
			pivot:  C(1, 3),
			status: StatusRowClear,
			points: 4,
		},
		{
			name: "four in a column",
			rows: []string{
				". . A . .",
				". . A . .",
				". . A . .",
				". . A . .",
				". . B . .",
			},
			pivot:  C(3, 2),
			status: StatusColumnClear,
			points: 4,
		},
		{
			name: "five in a row",
			rows: []string{
				". . . . .",
				". . . . .",
				"A A A A A",
				". . . . .",
				". . . . .",
			},
			pivot:  C(3, 3),
			status: StatusColorBomb,
			points: 5,
		},
		{
			name: "five in a column",
			rows: []string{
				"B . . . .",
				"B . . . .",
				"B . . . .",
				"B . . . .",
				"B . . . .",
			},
			pivot:  C(1, 1),
			status: StatusColorBomb,
			points: 5,
		},
		{
			name: "L shape through pivot",
			rows: []string{
				"A . . . .",
				"A . . . .",
				"A A A . .",
				". . . . .",
				". . . . .",
			},
			pivot:  C(1, 3),
			status: StatusAreaClear,
			points: 5,
		},
		{
			name: "T shape through pivot",
			rows: []string{
				". . . . .",
				"C C C . .",
				". C . . .",
				". C . . .",
				". . . . .",
			},
			pivot:  C(2, 4),
			status: StatusAreaClear,
			points: 5,
		},
		{
			name: "specials share type with their color",
			rows: []string{
				". . . . .",
				". . . . .",
				"A- A A| . .",
				". . . . .",
				". . . . .",
			},
			pivot:  C(2, 3),
			status: StatusOrdinary,
			points: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sparseBoard(t, tt.rows)
			m := b.Evaluate(tt.pivot, false)
			if m.Status != tt.status {
				t.Errorf("status = %v, want %v", m.Status, tt.status)
			}
			if len(m.Points) != tt.points {
				t.Errorf("points = %d (%v), want %d", len(m.Points), m.Points, tt.points)
			}
			if m.Pivot != tt.pivot {
				t.Errorf("pivot = %v, want %v", m.Pivot, tt.pivot)
			}
			if m.Found() != (tt.points >= 3) {
				t.Errorf("Found() = %v with %d points", m.Found(), len(m.Points))
			}
		})
	}
}

func TestScanIsAxisConstrained(t *testing.T) {
	// The A at (2,2) extends only the column through (2,3).
	b := sparseBoard(t, []string{
		". . . .",
		"A A A .",
		". A . .",
		". . . .",
	})

	row, col := b.Runs(C(1, 3))
	if len(row) != 3 {
		t.Errorf("row run = %v, want 3 cells", row)
	}
	if len(col) != 1 {
		t.Errorf("col run = %v, want origin only", col)
	}

	_, col = b.Runs(C(2, 3))
	if len(col) != 2 {
		t.Errorf("col run through (2,3) = %v, want 2 cells", col)
	}
}

func TestScanStopsAtEmptySlots(t *testing.T) {
	b := sparseBoard(t, []string{
		"A A . A A",
	})

	row, _ := b.Runs(C(1, 1))
	if len(row) != 2 {
		t.Errorf("row run = %v, want 2 cells", row)
	}
}

func TestEvaluateRecursivePrefersLargerCombo(t *testing.T) {
	// Pivot (1,3) only sees a plain row of three; (3,3) sees a cross.
	b := sparseBoard(t, []string{
		". . A . .",
		". . A . .",
		"A A A . .",
		". . . . .",
		". . . . .",
	})

	flat := b.Evaluate(C(1, 3), false)
	if flat.Status != StatusOrdinary || len(flat.Points) != 3 {
		t.Fatalf("non-recursive = %v with %d points, want ordinary with 3", flat.Status, len(flat.Points))
	}

	best := b.Evaluate(C(1, 3), true)
	if best.Status != StatusAreaClear {
		t.Errorf("recursive status = %v, want %v", best.Status, StatusAreaClear)
	}
	if best.Pivot != C(3, 3) {
		t.Errorf("recursive pivot = %v, want (3,3)", best.Pivot)
	}
	if len(best.Points) != 5 {
		t.Errorf("recursive points = %d, want 5", len(best.Points))
	}
}

func TestEvaluateRecursiveKeepsPivotOnTie(t *testing.T) {
	b := sparseBoard(t, []string{
		"A A A A B",
	})

	m := b.Evaluate(C(4, 1), true)
	if m.Pivot != C(4, 1) {
		t.Errorf("pivot = %v, want (4,1)", m.Pivot)
	}
	if m.Status != StatusRowClear {
		t.Errorf("status = %v, want %v", m.Status, StatusRowClear)
	}
}

func TestMatchBeats(t *testing.T) {
	three := []Coord{C(1, 1), C(2, 1), C(3, 1)}
	four := []Coord{C(1, 1), C(2, 1), C(3, 1), C(4, 1)}

	tests := []struct {
		name string
		a, b Match
		want bool
	}{
		{"higher rank wins", Match{Status: StatusAreaClear, Points: three}, Match{Status: StatusRowClear, Points: four}, true},
		{"lower rank loses", Match{Status: StatusRowClear, Points: four}, Match{Status: StatusColorBomb, Points: three}, false},
		{"more points on equal rank", Match{Status: StatusOrdinary, Points: four}, Match{Status: StatusOrdinary, Points: three}, true},
		{"equal is not better", Match{Status: StatusOrdinary, Points: three}, Match{Status: StatusOrdinary, Points: three}, false},
		{"row wins tie over column", Match{Status: StatusRowClear, Points: four}, Match{Status: StatusColumnClear, Points: four}, true},
		{"column does not win tie over row", Match{Status: StatusColumnClear, Points: four}, Match{Status: StatusRowClear, Points: four}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.beats(tt.b); got != tt.want {
				t.Errorf("beats = %v, want %v", got, tt.want)
			}
		})
	}
}
