package engine

import (
	"errors"
	"testing"
)

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]string{
		"A * .",
		"C- D| E+",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if l.Width() != 3 || l.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", l.Width(), l.Height())
	}

	tests := []struct {
		at   Coord
		want TileSpec
	}{
		{C(1, 2), TileSpec{Type: TypeA}},
		{C(2, 2), TileSpec{Type: TypeWildcard, Status: StatusColorBomb}},
		{C(3, 2), TileSpec{}},
		{C(1, 1), TileSpec{Type: TypeC, Status: StatusRowClear}},
		{C(2, 1), TileSpec{Type: TypeD, Status: StatusColumnClear}},
		{C(3, 1), TileSpec{Type: TypeE, Status: StatusAreaClear}},
	}
	for _, tt := range tests {
		if got := l.At(tt.at); got != tt.want {
			t.Errorf("At(%s) = %+v, want %+v", tt.at, got, tt.want)
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged", []string{"A B C", "A B"}},
		{"unknown color", []string{"A G"}},
		{"unknown suffix", []string{"A B#"}},
		{"bad suffix on bomb", []string{"A B*"}},
		{"too long", []string{"A-- B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLayout(tt.rows); !errors.Is(err, ErrLayout) {
				t.Errorf("err = %v, want ErrLayout", err)
			}
		})
	}
}

func TestLayoutStringRoundTrip(t *testing.T) {
	rows := []string{
		"A B C",
		". * F+",
		"D- E| A",
	}
	l, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	want := "A B C\n. * F+\nD- E| A"
	if got := l.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
