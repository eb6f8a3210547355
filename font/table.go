// Package font holds the compiled-in glyph dataset and its read
// accessors. The pixel patterns are authored below as '0'/'1' row
// strings and packed into row bitmasks once, at package init.
package font

import (
	"fmt"
	"sort"
)

// glyphSpecs is the authored dataset: Height row strings per rune,
// '1' marking a set pixel. Widths are a design choice, not derived:
// narrow letters take 1–3 columns, most lowercase 4, wide shapes 5.
var glyphSpecs = map[rune][]string{
	'A': {
		"01110",
		"10001",
		"11111",
		"10001",
		"10001",
	},
	'B': {
		"11110",
		"10001",
		"11110",
		"10001",
		"11110",
	},
	'C': {
		"01110",
		"10001",
		"10000",
		"10001",
		"01110",
	},
	'D': {
		"11110",
		"10001",
		"10001",
		"10001",
		"11110",
	},
	'E': {
		"11111",
		"10000",
		"11110",
		"10000",
		"11111",
	},
	'F': {
		"11111",
		"10000",
		"11110",
		"10000",
		"10000",
	},
	'G': {
		"01110",
		"10000",
		"10111",
		"10001",
		"01110",
	},
	'H': {
		"10001",
		"10001",
		"11111",
		"10001",
		"10001",
	},
	'I': {
		"111",
		"010",
		"010",
		"010",
		"111",
	},
	'J': {
		"11111",
		"00010",
		"00010",
		"10010",
		"01100",
	},
	'K': {
		"10010",
		"10100",
		"11000",
		"10100",
		"10010",
	},
	'L': {
		"10000",
		"10000",
		"10000",
		"10000",
		"11111",
	},
	'M': {
		"10001",
		"11011",
		"10101",
		"10001",
		"10001",
	},
	'N': {
		"10001",
		"11001",
		"10101",
		"10011",
		"10001",
	},
	'O': {
		"01110",
		"10001",
		"10001",
		"10001",
		"01110",
	},
	'P': {
		"11110",
		"10001",
		"11110",
		"10000",
		"10000",
	},
	'Q': {
		"01110",
		"10001",
		"10101",
		"10011",
		"01111",
	},
	'R': {
		"11110",
		"10001",
		"11110",
		"10100",
		"10010",
	},
	'S': {
		"01110",
		"10000",
		"01110",
		"00001",
		"01110",
	},
	'T': {
		"11111",
		"00100",
		"00100",
		"00100",
		"00100",
	},
	'U': {
		"10001",
		"10001",
		"10001",
		"10001",
		"01110",
	},
	'V': {
		"10001",
		"10001",
		"10001",
		"01010",
		"00100",
	},
	'W': {
		"10001",
		"10001",
		"10101",
		"11011",
		"10001",
	},
	'X': {
		"10001",
		"01010",
		"00100",
		"01010",
		"10001",
	},
	'Y': {
		"10001",
		"01010",
		"00100",
		"00100",
		"00100",
	},
	'Z': {
		"11111",
		"00010",
		"00100",
		"01000",
		"11111",
	},
	'a': {
		"0000",
		"0110",
		"0001",
		"0111",
		"0111",
	},
	'b': {
		"1000",
		"1000",
		"1110",
		"1001",
		"1110",
	},
	'c': {
		"0000",
		"0110",
		"1000",
		"1000",
		"0110",
	},
	'd': {
		"0001",
		"0001",
		"0111",
		"1001",
		"0111",
	},
	'e': {
		"0000",
		"0110",
		"1111",
		"1000",
		"0110",
	},
	'f': {
		"011",
		"010",
		"110",
		"010",
		"010",
	},
	'g': {
		"0000",
		"0111",
		"1001",
		"0111",
		"0001",
	},
	'h': {
		"1000",
		"1000",
		"1110",
		"1001",
		"1001",
	},
	'i': {
		"1",
		"0",
		"1",
		"1",
		"1",
	},
	'j': {
		"01",
		"00",
		"01",
		"01",
		"10",
	},
	'k': {
		"100",
		"101",
		"110",
		"110",
		"101",
	},
	'l': {
		"1",
		"1",
		"1",
		"1",
		"1",
	},
	'm': {
		"00000",
		"11010",
		"10101",
		"10101",
		"10101",
	},
	'n': {
		"0000",
		"1110",
		"1001",
		"1001",
		"1001",
	},
	'o': {
		"0000",
		"0110",
		"1001",
		"1001",
		"0110",
	},
	'p': {
		"0000",
		"1110",
		"1001",
		"1110",
		"1000",
	},
	'q': {
		"0000",
		"0111",
		"1001",
		"0111",
		"0001",
	},
	'r': {
		"000",
		"101",
		"110",
		"100",
		"100",
	},
	's': {
		"0000",
		"0110",
		"0100",
		"0010",
		"1100",
	},
	't': {
		"010",
		"111",
		"010",
		"010",
		"001",
	},
	'u': {
		"0000",
		"1001",
		"1001",
		"1001",
		"0111",
	},
	'v': {
		"0000",
		"1001",
		"1001",
		"0110",
		"0010",
	},
	'w': {
		"00000",
		"10001",
		"10101",
		"10101",
		"01010",
	},
	'x': {
		"0000",
		"1001",
		"0110",
		"0010",
		"1001",
	},
	'y': {
		"0000",
		"1001",
		"1001",
		"0111",
		"0001",
	},
	'z': {
		"0000",
		"1111",
		"0010",
		"0100",
		"1111",
	},
	' ': {
		"000",
		"000",
		"000",
		"000",
		"000",
	},
}

// glyphs is the packed table. Built once at init, read-only thereafter.
var glyphs = buildTable(glyphSpecs)

// space is the blank glyph, kept aside for spacing and lossy fallback.
var space = glyphs[' ']

// rowBits packs one '0'/'1' row string into a bitmask, least-significant
// bit holding the leftmost column.
func rowBits(row string) uint8 {
	var o uint8
	for i := 0; i < len(row); i++ {
		if row[i] == '1' {
			o |= 1 << uint(i)
		}
	}

	return o
}

// mustGlyph packs the row strings of one glyph, panicking on malformed
// data: exactly Height rows, equal row lengths, width in
// [MinWidth, MaxWidth]. The dataset is compiled in, so a violation is a
// build defect, not a runtime condition.
func mustGlyph(ch rune, rows []string) Glyph {
	if len(rows) != Height {
		panic(fmt.Sprintf("font: glyph %q has %d rows, want %d", ch, len(rows), Height))
	}
	w := len(rows[0])
	if w < MinWidth || w > MaxWidth {
		panic(fmt.Sprintf("font: glyph %q width %d outside [%d,%d]", ch, w, MinWidth, MaxWidth))
	}
	var g Glyph
	g.width = w
	for y, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("font: glyph %q row %d has length %d, want %d", ch, y, len(row), w))
		}
		g.rows[y] = rowBits(row)
	}

	return g
}

// buildTable packs every authored glyph into its bitmask form.
func buildTable(specs map[rune][]string) map[rune]Glyph {
	t := make(map[rune]Glyph, len(specs))
	for ch, rows := range specs {
		t[ch] = mustGlyph(ch, rows)
	}

	return t
}

// Lookup returns the glyph for ch and whether ch is supported.
// Absence is reported via the boolean, not an error.
// Complexity: O(1).
func Lookup(ch rune) (Glyph, bool) {
	g, ok := glyphs[ch]

	return g, ok
}

// Supports reports whether Lookup(ch) would succeed.
// Complexity: O(1).
func Supports(ch rune) bool {
	_, ok := glyphs[ch]

	return ok
}

// Space returns the blank glyph used for horizontal blank space and
// for lossy substitution of unsupported characters.
// Complexity: O(1).
func Space() Glyph {
	return space
}

// SupportedRunes returns the supported character set in ascending rune
// order. The slice is freshly allocated per call.
// Complexity: O(n log n), n = table size.
func SupportedRunes() []rune {
	out := make([]rune, 0, len(glyphs))
	for ch := range glyphs {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
