package engine

import (
	"fmt"
	"strings"
)

// TileSpec describes one cell of a fixed layout.
type TileSpec struct {
	Type   TileType
	Status Status
}

// Layout is a fixed board description. Cells left as TypeNone are filled randomly.
type Layout struct {
	w     int
	h     int
	cells []TileSpec
}

// NewLayout returns an all-random layout of the given size.
func NewLayout(w, h int) Layout {
	return Layout{w: w, h: h, cells: make([]TileSpec, w*h)}
}

// Width returns the number of columns.
func (l Layout) Width() int {
	return l.w
}

// Height returns the number of rows.
func (l Layout) Height() int {
	return l.h
}

// At returns the tile spec at c.
func (l Layout) At(c Coord) TileSpec {
	if c.Col < 1 || c.Col > l.w || c.Row < 1 || c.Row > l.h {
		return TileSpec{}
	}
	return l.cells[(c.Row-1)*l.w+(c.Col-1)]
}

// Set stores the tile spec at c.
func (l Layout) Set(c Coord, s TileSpec) {
	if c.Col < 1 || c.Col > l.w || c.Row < 1 || c.Row > l.h {
		return
	}
	l.cells[(c.Row-1)*l.w+(c.Col-1)] = s
}

// ParseLayout parses text rows listed top row first. Each row holds
// whitespace-separated tokens:
//
//	A..F  ordinary tile of that color
//	.     random tile
//	*     color bomb
//
// An ordinary token may carry a suffix: '-' row-clear, '|' column-clear,
// '+' area-clear.
func ParseLayout(rows []string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, fmt.Errorf("%w: no rows", ErrLayout)
	}

	h := len(rows)
	w := len(strings.Fields(rows[0]))
	l := NewLayout(w, h)

	for i, line := range rows {
		tokens := strings.Fields(line)
		if len(tokens) != w {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLayout, i+1, len(tokens), w)
		}
		row := h - i
		for j, tok := range tokens {
			spec, err := ParseTileSpec(tok)
			if err != nil {
				return Layout{}, fmt.Errorf("%w: row %d col %d: %v", ErrLayout, i+1, j+1, err)
			}
			l.Set(C(j+1, row), spec)
		}
	}
	return l, nil
}

// ParseTileSpec parses a single layout token.
func ParseTileSpec(tok string) (TileSpec, error) {
	switch tok {
	case ".":
		return TileSpec{}, nil
	case "*":
		return TileSpec{Type: TypeWildcard, Status: StatusColorBomb}, nil
	}
	if len(tok) == 0 || len(tok) > 2 {
		return TileSpec{}, fmt.Errorf("bad token %q", tok)
	}

	letter := tok[0]
	if letter < 'A' || letter >= 'A'+BaseTypeCount {
		return TileSpec{}, fmt.Errorf("bad color %q", letter)
	}
	spec := TileSpec{Type: TypeA + TileType(letter-'A')}

	if len(tok) == 2 {
		switch tok[1] {
		case '-':
			spec.Status = StatusRowClear
		case '|':
			spec.Status = StatusColumnClear
		case '+':
			spec.Status = StatusAreaClear
		default:
			return TileSpec{}, fmt.Errorf("bad status suffix %q", tok[1])
		}
	}
	return spec, nil
}

// String renders the layout in ParseLayout's format.
func (l Layout) String() string {
	var sb strings.Builder
	for row := l.h; row >= 1; row-- {
		for col := 1; col <= l.w; col++ {
			if col > 1 {
				sb.WriteByte(' ')
			}
			s := l.At(C(col, row))
			switch {
			case s.Type == TypeNone:
				sb.WriteByte('.')
			case s.Status == StatusColorBomb:
				sb.WriteByte('*')
			default:
				sb.WriteByte(s.Type.Letter())
				sb.WriteString(statusSuffix(s.Status))
			}
		}
		if row > 1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
