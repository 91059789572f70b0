package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetColor(1, 1, '●', ColorBrightRed)
	if c := s.GetCell(1, 1); c.Rune != '●' || c.Color != ColorBrightRed {
		t.Errorf("GetCell(1, 1) = %+v", c)
	}

	s.SetCell(2, 1, Cell{Rune: '◆', Color: ColorCyan, Attr: AttrReverse | AttrBold})
	c := s.GetCell(2, 1)
	if !c.Attr.Has(AttrReverse) || !c.Attr.Has(AttrBold) || c.Attr.Has(AttrFaint) {
		t.Errorf("attrs = %b", c.Attr)
	}

	s.DrawTextColor(0, 2, "hi", ColorGreen)
	if c := s.GetCell(1, 2); c.Rune != 'i' || c.Color != ColorGreen {
		t.Errorf("DrawTextColor cell = %+v", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("after Clear = %+v, expected blank", c)
	}
}

func TestDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "▶ab")

	if s.Get(1, 0) != 'a' {
		t.Errorf("rune after multibyte = %q, expected 'a'", s.Get(1, 0))
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 1)
	s.DrawTextCentered(0, "test")

	// "test" is 4 chars, screen is 20, so x = (20-4)/2 = 8
	if s.Row(0)[8:12] != "test" {
		t.Errorf("centered row = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box corner lost its color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.SetColor(1, 0, 'B', ColorRed)
	s.Set(2, 0, 'C')
	s.Set(0, 1, 'D')
	s.Set(1, 1, 'E')
	s.Set(2, 1, 'F')

	expected := "ABC\nDEF"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColor(2, 2, 'X', ColorBlue)

	s.Resize(10, 10)
	if s.Width() != 10 || s.Height() != 10 {
		t.Errorf("After Resize, dimensions = (%d, %d), expected (10, 10)", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'X' || c.Color != ColorBlue {
		t.Errorf("Resize lost content: %+v", c)
	}

	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != 'X' {
		t.Errorf("shrink lost content: %+v", c)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(5); got != strings.Repeat(" ", 4) {
		t.Errorf("Row(5) = %q", got)
	}
}
