// Package font defines the glyph type and dimensional constants for
// the built-in bitmap font of github.com/rrumana/text-to-input.
package font

// Dimensional constants of the built-in font.
const (
	// Height is the fixed pixel-row count of every glyph.
	Height = 5
	// MinWidth is the narrowest permitted glyph width, in columns.
	MinWidth = 1
	// MaxWidth is the widest permitted glyph width, in columns.
	MaxWidth = 5
)

// Glyph is one character's pixel pattern: Height rows of width columns.
// Rows are stored as per-row bitmasks with the least-significant bit
// holding the leftmost column. A Glyph is immutable; values handed out
// by Lookup and Space are copies and cannot affect the table.
type Glyph struct {
	width int
	rows  [Height]uint8
}

// Width returns the glyph's column count, in [MinWidth, MaxWidth].
// Complexity: O(1).
func (g Glyph) Width() int {
	return g.width
}

// Pixel reports whether the pixel at column x, row y is set.
// Coordinates outside the glyph's width×Height box are unset.
// Complexity: O(1).
func (g Glyph) Pixel(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= Height {
		return false
	}

	return g.rows[y]&(1<<uint(x)) != 0
}
