package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The first six bright colors double as tile colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Attr is a set of text attributes applied on top of a cell color.
type Attr uint8

// AttrNone is a plain cell.
const AttrNone Attr = 0

const (
	AttrBold    Attr = 1 << iota // Bold text
	AttrReverse                  // Swap foreground and background
	AttrFaint                    // Dimmed text
)

// Has reports whether all attributes in other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
