// Package pixelart implements validation, glyph composition and row
// serialization over the built-in font.
package pixelart

import (
	"fmt"

	"github.com/rrumana/text-to-input/font"
)

// Glyph height plus one blank border row above and below.
const totalHeight = font.Height + 2

// Validate checks that text can be rendered under opts.
//
// Checks, in order:
//  1. Non-empty: zero characters fail with ErrEmptyText.
//  2. Length: more than opts.MaxTextLength characters fail with
//     ErrTextTooLong carrying the actual count.
//  3. Support: in strict mode the first character, scanning left to
//     right, that the font does not support fails with
//     ErrCharacterNotFound naming that character. Lossy mode skips
//     this scan — unsupported characters render as blank space.
//
// Lengths are counted in runes. Complexity: O(n) time, O(n) memory.
func Validate(text string, opts Options) error {
	runes := []rune(text)
	if len(runes) == 0 {
		return ErrEmptyText
	}
	if maxLen := opts.maxLength(); len(runes) > maxLen {
		return fmt.Errorf("%w: %d characters (max %d)", ErrTextTooLong, len(runes), maxLen)
	}
	if opts.OnUnsupported == SpaceOnUnsupported {
		return nil
	}
	for _, ch := range runes {
		if !font.Supports(ch) {
			return fmt.Errorf("%w: %q", ErrCharacterNotFound, ch)
		}
	}

	return nil
}

// Render converts text into its pixel-art bitmap.
//
// Algorithm Outline:
//  1. Validate; a validation failure is surfaced unchanged.
//  2. Resolve each character to its glyph (space glyph for unsupported
//     characters under SpaceOnUnsupported).
//  3. Content width = Σ glyph widths + one blank spacing column
//     between each pair of neighbors.
//  4. Final width = content width + 2 border columns; final height =
//     font.Height + 2 border rows = 7.
//  5. Blit each glyph into rows 1..5 at the accumulated column offset,
//     starting at column 1 and advancing by width+1 per glyph.
//  6. Serialize every bitmap row to a string over {'0','1'}.
//
// The returned rows all share the same length. Rendering either fully
// succeeds or fails with no partial output.
//
// Complexity: O(n·W) time and memory (n = characters, W = mean width).
func Render(text string, opts Options) ([]string, error) {
	if err := Validate(text, opts); err != nil {
		return nil, err
	}

	runes := []rune(text)
	gs := make([]font.Glyph, len(runes))
	for i, ch := range runes {
		gs[i] = glyphFor(ch, opts.OnUnsupported)
	}

	return compose(gs), nil
}

// RenderLossy renders text substituting blank space for unsupported
// characters instead of failing. ErrEmptyText and ErrTextTooLong still
// apply. Complexity matches Render.
func RenderLossy(text string, opts Options) ([]string, error) {
	opts.OnUnsupported = SpaceOnUnsupported

	return Render(text, opts)
}

// Width reports the final bitmap width Render would produce for text
// under opts, without rendering: Σ glyph widths + (n−1) spacing
// columns + 2 border columns. Validation applies as in Render.
// Complexity: O(n) time, O(n) memory.
func Width(text string, opts Options) (int, error) {
	if err := Validate(text, opts); err != nil {
		return 0, err
	}

	w := 2
	runes := []rune(text)
	for i, ch := range runes {
		w += glyphFor(ch, opts.OnUnsupported).Width()
		if i < len(runes)-1 {
			w++
		}
	}

	return w, nil
}

// glyphFor resolves ch under the given fallback policy. Validation has
// already guaranteed support in strict mode, so a failed lookup outside
// SpaceOnUnsupported is an internal invariant violation, not a normal
// error path.
func glyphFor(ch rune, fb Fallback) font.Glyph {
	g, ok := font.Lookup(ch)
	if ok {
		return g
	}
	if fb == SpaceOnUnsupported {
		return font.Space()
	}
	panic(fmt.Sprintf("pixelart: validated character %q missing from font", ch))
}

// compose blits the glyph sequence into a bordered bitmap and
// serializes its rows. gs must be non-empty.
func compose(gs []font.Glyph) []string {
	width := 2 + len(gs) - 1
	for _, g := range gs {
		width += g.Width()
	}

	bitmap := make([][]byte, totalHeight)
	for y := range bitmap {
		row := make([]byte, width)
		for x := range row {
			row[x] = '0'
		}
		bitmap[y] = row
	}

	// Column 0 and the top/bottom rows stay blank as border; the last
	// glyph's missing spacing column is absorbed into the right border.
	x := 1
	for _, g := range gs {
		for y := 0; y < font.Height; y++ {
			for c := 0; c < g.Width(); c++ {
				if g.Pixel(c, y) {
					bitmap[y+1][x+c] = '1'
				}
			}
		}
		x += g.Width() + 1
	}

	rows := make([]string, totalHeight)
	for y, row := range bitmap {
		rows[y] = string(row)
	}

	return rows
}
